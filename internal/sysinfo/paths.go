package sysinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// IsMountPoint reports whether path is the root of a mount. Symlinks are
// followed before the check.
func IsMountPoint(path string) (bool, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false, err
	}

	var st, parent unix.Stat_t
	if err := unix.Stat(resolved, &st); err != nil {
		return false, err
	}
	if err := unix.Stat(filepath.Dir(resolved), &parent); err != nil {
		return false, err
	}

	// A mount boundary changes the device; the filesystem root is its
	// own parent.
	if st.Dev != parent.Dev {
		return true, nil
	}
	return st.Ino == parent.Ino, nil
}

// IsReadOnlyFS reports whether the filesystem holding path is mounted
// read-only.
func IsReadOnlyFS(path string) (bool, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return false, err
	}
	return st.Flags&unix.ST_RDONLY != 0, nil
}

// IsEncrypted reports whether the block device backing path is a dm-crypt
// target. Paths not backed by a block device report false.
func IsEncrypted(path string) (bool, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false, err
	}

	dev := st.Dev
	if st.Mode&unix.S_IFMT == unix.S_IFBLK {
		dev = st.Rdev
	}
	major := unix.Major(dev)
	minor := unix.Minor(dev)
	if major == 0 { // virtual filesystem, nothing backing it
		return false, nil
	}

	uuidPath := fmt.Sprintf("/sys/dev/block/%d:%d/dm/uuid", major, minor)
	line, err := ReadVirtualLine(uuidPath)
	if err != nil {
		if IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return strings.HasPrefix(line, "CRYPT-"), nil
}

// MTime returns the modification time of path without following
// symlinks, split into seconds and nanoseconds.
func MTime(path string) (sec int64, nsec int64, err error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return 0, 0, err
	}
	return st.Mtim.Sec, st.Mtim.Nsec, nil
}

// IsPID1 reports whether this process is the init process. Identity
// probes short-circuit user database lookups for PID 1.
func IsPID1() bool {
	return os.Getpid() == 1
}
