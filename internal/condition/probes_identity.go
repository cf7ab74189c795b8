package condition

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/hostcond-org/hostcond/internal/fileutil"
	"github.com/hostcond-org/hostcond/internal/logger"
	"github.com/hostcond-org/hostcond/internal/stringutil"
	"github.com/hostcond-org/hostcond/internal/sysinfo"
)

func probeUser(_ context.Context, c *Condition, _ []string) (bool, error) {
	if id, ok := sysinfo.ParseUID(c.Parameter); ok {
		return id == os.Getuid() || id == os.Geteuid(), nil
	}

	if c.Parameter == "@system" {
		return sysinfo.IsSystemUID(os.Getuid()) || sysinfo.IsSystemUID(os.Geteuid()), nil
	}

	// As the init process we must not touch the user database; it may
	// live on a filesystem that is not mounted yet.
	if isPID1() {
		return c.Parameter == "root", nil
	}

	if currentUserName() == c.Parameter {
		return true, nil
	}

	id, ok := lookupUserID(c.Parameter)
	if !ok {
		return false, nil
	}
	return id == os.Getuid() || id == os.Geteuid(), nil
}

func probeGroup(_ context.Context, c *Condition, _ []string) (bool, error) {
	if id, ok := sysinfo.ParseUID(c.Parameter); ok {
		return inGroupID(id), nil
	}
	if isPID1() {
		return c.Parameter == "root", nil
	}
	return inGroupName(c.Parameter), nil
}

func probeFirstBoot(ctx context.Context, c *Condition, _ []string) (bool, error) {
	want, err := stringutil.ParseBool(c.Parameter)
	if err != nil {
		return false, err
	}

	// The boot command line overrides the on-disk state, so that a single
	// boot can be forced to look like (or unlike) a first boot.
	if line, err := kernelCommandLine(); err == nil {
		if b, ok := sysinfo.KernelCommandLineGetBool(line, cmdlineFirstBootOverride); ok {
			return b == want, nil
		}
	}

	fb, err := isFirstBoot()
	if err != nil {
		logger.Debug(ctx, "failed to check for first boot marker", "err", err)
		fb = false
	}
	return fb == want, nil
}

func probeNeedsUpdate(ctx context.Context, c *Condition, _ []string) (bool, error) {
	if line, err := kernelCommandLine(); err == nil {
		if b, ok := sysinfo.KernelCommandLineGetBool(line, cmdlineNeedsUpdateOverride); ok {
			return b, nil
		}
	}

	// Never run updates from the initrd; the real root is not up yet.
	if inInitrd() {
		return false, nil
	}

	if !filepath.IsAbs(c.Parameter) {
		logger.Debug(ctx, "parameter is not an absolute path, assuming an update is needed",
			"path", c.Parameter)
		return true, nil
	}

	// A read-only filesystem cannot receive an update, so never suggest
	// one. From here on any ambiguity resolves to "update needed": running
	// update tools needlessly is cheaper than missing a required update.
	ro, err := isReadOnlyFS(c.Parameter)
	if err != nil {
		logger.Debug(ctx, "failed to determine if filesystem is read-only",
			"path", c.Parameter, "err", err)
	} else if ro {
		return false, nil
	}

	marker := filepath.Join(c.Parameter, ".updated")
	markerSec, _, err := fileMTime(marker)
	if err != nil {
		if !sysinfo.IsNotExist(err) {
			logger.Debug(ctx, "failed to stat update marker", "path", marker, "err", err)
		}
		return true, nil
	}

	usrSec, usrNsec, err := fileMTime(usrDir)
	if err != nil {
		logger.Debug(ctx, "failed to stat vendor tree", "path", usrDir, "err", err)
		return true, nil
	}

	// Seconds are always accurate; only fall back to nanoseconds on a tie.
	if usrSec != markerSec {
		return usrSec > markerSec, nil
	}

	// The marker's own nanosecond field may have been truncated by the
	// filesystem, so the update tool records the exact stamp inside the
	// marker file instead.
	fields, err := godotenv.Read(marker)
	if err != nil {
		logger.Debug(ctx, "failed to read update marker", "path", marker, "err", err)
		return true, nil
	}
	stampStr, ok := fields["TIMESTAMP_NSEC"]
	if !ok {
		logger.Debug(ctx, "update marker carries no timestamp", "path", marker)
		return true, nil
	}
	stamp, err := strconv.ParseUint(stampStr, 10, 64)
	if err != nil {
		logger.Debug(ctx, "failed to parse update marker timestamp", "path", marker, "err", err)
		return true, nil
	}

	return uint64(usrSec)*1_000_000_000+uint64(usrNsec) > stamp, nil
}

func probeCredential(_ context.Context, c *Condition, _ []string) (bool, error) {
	// A credential with an invalid name cannot exist, no point looking.
	if !sysinfo.CredentialNameValid(c.Parameter) {
		return false, nil
	}

	for _, dir := range []func() (string, error){credentialsDir, encryptedCredsDir} {
		d, err := dir()
		if err != nil {
			if errors.Is(err, sysinfo.ErrNoCredentialsDir) {
				continue
			}
			return false, err
		}
		if fileutil.FileExists(filepath.Join(d, c.Parameter)) {
			return true, nil
		}
	}
	return false, nil
}
