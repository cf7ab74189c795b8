package sysinfo

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"strings"

	"golang.org/x/sys/unix"
)

// ControllerMask is a bitmask of cgroup controllers.
type ControllerMask uint32

const (
	ControllerCPU ControllerMask = 1 << iota
	ControllerCPUAcct
	ControllerCPUSet
	ControllerIO
	ControllerBlkIO
	ControllerMemory
	ControllerDevices
	ControllerPids
)

var controllerNames = map[string]ControllerMask{
	"cpu":     ControllerCPU,
	"cpuacct": ControllerCPUAcct,
	"cpuset":  ControllerCPUSet,
	"io":      ControllerIO,
	"blkio":   ControllerBlkIO,
	"memory":  ControllerMemory,
	"devices": ControllerDevices,
	"pids":    ControllerPids,
}

// Contains reports whether m includes every controller in sub.
func (m ControllerMask) Contains(sub ControllerMask) bool {
	return m&sub == sub
}

const cgroupRoot = "/sys/fs/cgroup"

// AllUnified reports whether the unified (v2) cgroup hierarchy is mounted
// at the cgroup root.
func AllUnified() (bool, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(cgroupRoot, &st); err != nil {
		return false, fmt.Errorf("failed to statfs %s: %w", cgroupRoot, err)
	}
	return st.Type == unix.CGROUP2_SUPER_MAGIC, nil
}

// SupportedControllers returns the mask of controllers available on this
// system, from cgroup.controllers on the unified hierarchy or
// /proc/cgroups on legacy setups.
func SupportedControllers() (ControllerMask, error) {
	unified, err := AllUnified()
	if err != nil {
		return 0, err
	}

	if unified {
		line, err := ReadVirtualLine(path.Join(cgroupRoot, "cgroup.controllers"))
		if err != nil {
			return 0, err
		}
		var mask ControllerMask
		for _, name := range strings.Fields(line) {
			mask |= controllerNames[name]
		}
		return mask, nil
	}

	f, err := os.Open("/proc/cgroups")
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = f.Close()
	}()

	var mask ControllerMask
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if fields[3] == "1" {
			mask |= controllerNames[fields[0]]
		}
	}
	return mask, scanner.Err()
}

// MaskFromString parses a comma/space-separated list of controller names
// into a mask. Unknown controller names are skipped; only the validity of
// the recognized ones is assessed.
func MaskFromString(s string) (ControllerMask, error) {
	var mask ControllerMask
	for _, name := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}) {
		m, ok := controllerNames[name]
		if !ok {
			continue
		}
		mask |= m
	}
	return mask, nil
}

// SliceToPath converts a slice unit name into its cgroup path, e.g.
// "foo-bar.slice" becomes "foo.slice/foo-bar.slice". The root slice
// "-.slice" maps to the empty path.
func SliceToPath(name string) (string, error) {
	if name == "-.slice" {
		return "", nil
	}
	prefix, ok := strings.CutSuffix(name, ".slice")
	if !ok || prefix == "" || strings.ContainsRune(name, '/') {
		return "", fmt.Errorf("not a valid slice name: %q", name)
	}

	parts := strings.Split(prefix, "-")
	var sb strings.Builder
	for i := range parts {
		if parts[i] == "" {
			return "", fmt.Errorf("not a valid slice name: %q", name)
		}
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(strings.Join(parts[:i+1], "-"))
		sb.WriteString(".slice")
	}
	return sb.String(), nil
}

// OwnCgroupPath returns the cgroup path of the current process on the
// unified hierarchy, relative to the cgroup root.
func OwnCgroupPath() (string, error) {
	f, err := os.Open("/proc/self/cgroup")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if rest, ok := strings.CutPrefix(scanner.Text(), "0::"); ok {
			return rest, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no unified cgroup entry in /proc/self/cgroup")
}
