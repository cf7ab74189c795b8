package sysinfo

import (
	"bufio"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/sys/unix"
)

// PhysicalMemory returns the total physical memory of the system in
// bytes.
func PhysicalMemory() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Total, nil
}

// CPUsInAffinityMask returns the number of CPUs the current process may
// run on, falling back to the logical CPU count when the affinity mask
// cannot be queried.
func CPUsInAffinityMask() (int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err == nil {
		return set.Count(), nil
	}

	n, err := cpu.Counts(true)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// KernelRelease returns uname's release field, e.g. "6.5.0-14-generic".
func KernelRelease() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(u.Release[:]), nil
}

// UnameMachine returns uname's machine field, e.g. "x86_64".
func UnameMachine() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(u.Machine[:]), nil
}

// architectureNames maps uname machine values to canonical architecture
// names.
var architectureNames = map[string]string{
	"x86_64":      "x86-64",
	"i386":        "x86",
	"i486":        "x86",
	"i586":        "x86",
	"i686":        "x86",
	"aarch64":     "arm64",
	"armv7l":      "arm",
	"armv6l":      "arm",
	"riscv64":     "riscv64",
	"riscv32":     "riscv32",
	"ppc64le":     "ppc64-le",
	"ppc64":       "ppc64",
	"s390x":       "s390x",
	"mips":        "mips",
	"mips64":      "mips64",
	"loongarch64": "loongarch64",
}

// Architecture returns the canonical name of the architecture the kernel
// reports.
func Architecture() (string, error) {
	machine, err := UnameMachine()
	if err != nil {
		return "", err
	}
	if name, ok := architectureNames[machine]; ok {
		return name, nil
	}
	return machine, nil
}

// KnownArchitecture reports whether name is a canonical architecture
// name that Architecture can return.
func KnownArchitecture(name string) bool {
	for _, canonical := range architectureNames {
		if name == canonical {
			return true
		}
	}
	return false
}

// NativeArchitecture returns the canonical name of the architecture this
// binary was built for.
func NativeArchitecture() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86-64"
	case "386":
		return "x86"
	case "arm64":
		return "arm64"
	case "arm":
		return "arm"
	case "riscv64":
		return "riscv64"
	case "ppc64le":
		return "ppc64-le"
	case "ppc64":
		return "ppc64"
	case "s390x":
		return "s390x"
	case "loong64":
		return "loongarch64"
	default:
		return runtime.GOARCH
	}
}

// HasCPUFeature reports whether the flags line of /proc/cpuinfo lists the
// given feature. The name is matched case-insensitively.
func HasCPUFeature(name string) (bool, error) {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()

	want := strings.ToLower(name)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "flags", "Features":
		default:
			continue
		}
		for _, flag := range strings.Fields(value) {
			if strings.ToLower(flag) == want {
				return true, nil
			}
		}
		return false, nil
	}
	return false, scanner.Err()
}
