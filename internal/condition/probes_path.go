package condition

import (
	"context"
	"errors"
	"os"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hostcond-org/hostcond/internal/fileutil"
	"github.com/hostcond-org/hostcond/internal/logger"
	"github.com/hostcond-org/hostcond/internal/sysinfo"
)

// Path probes treat an absent path as an ordinary false outcome, never
// as an error.

func probePathExists(_ context.Context, c *Condition, _ []string) (bool, error) {
	_, err := os.Stat(c.Parameter)
	return err == nil, nil
}

func probePathExistsGlob(_ context.Context, c *Condition, _ []string) (bool, error) {
	matches, err := doublestar.FilepathGlob(c.Parameter)
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

func probePathIsDirectory(_ context.Context, c *Condition, _ []string) (bool, error) {
	return fileutil.IsDir(c.Parameter), nil
}

func probePathIsSymbolicLink(_ context.Context, c *Condition, _ []string) (bool, error) {
	return fileutil.IsSymlink(c.Parameter), nil
}

func probePathIsMountPoint(_ context.Context, c *Condition, _ []string) (bool, error) {
	ok, err := isMountPoint(c.Parameter)
	return err == nil && ok, nil
}

func probePathIsReadWrite(ctx context.Context, c *Condition, _ []string) (bool, error) {
	ro, err := isReadOnlyFS(c.Parameter)
	if err != nil {
		if sysinfo.IsNotExist(err) {
			return false, nil
		}
		// Anything short of "the path is gone" should not block work
		// that only asked for a writable location.
		logger.Debug(ctx, "failed to determine if filesystem is read-only",
			"path", c.Parameter, "err", err)
		return true, nil
	}
	return !ro, nil
}

func probePathIsEncrypted(ctx context.Context, c *Condition, _ []string) (bool, error) {
	encrypted, err := isEncrypted(c.Parameter)
	if err != nil {
		if !sysinfo.IsNotExist(err) {
			logger.Debug(ctx, "failed to determine if path is encrypted",
				"path", c.Parameter, "err", err)
		}
		return false, nil
	}
	return encrypted, nil
}

func probeDirectoryNotEmpty(ctx context.Context, c *Condition, _ []string) (bool, error) {
	notEmpty, err := fileutil.DirNotEmpty(c.Parameter)
	if err != nil {
		if sysinfo.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) {
			return false, nil
		}
		logger.Debug(ctx, "failed to enumerate directory, assuming not empty",
			"path", c.Parameter, "err", err)
		return true, nil
	}
	return notEmpty, nil
}

func probeFileNotEmpty(_ context.Context, c *Condition, _ []string) (bool, error) {
	return fileutil.IsNonEmptyFile(c.Parameter), nil
}

func probeFileIsExecutable(_ context.Context, c *Condition, _ []string) (bool, error) {
	return fileutil.IsExecutableFile(c.Parameter), nil
}
