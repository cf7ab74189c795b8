package sysinfo

import (
	"os"
	"strings"

	"github.com/hostcond-org/hostcond/internal/cmdutil"
)

// KernelCommandLine returns the raw kernel boot command line. When running
// in a container the boot command line is meaningless, so an empty string
// is returned there.
func KernelCommandLine() (string, error) {
	if _, isContainer, _ := DetectVirtualization(); isContainer {
		return "", nil
	}
	return ReadVirtualLine("/proc/cmdline")
}

// KernelCommandLineGetBool looks up a boolean switch on the kernel command
// line. It returns (value, found). A bare "key" token counts as true,
// "key=..." is parsed as a boolean.
func KernelCommandLineGetBool(line, key string) (bool, bool) {
	for _, word := range cmdutil.SplitWordsRelaxed(line) {
		name, value, hasValue := strings.Cut(word, "=")
		if name != key {
			continue
		}
		if !hasValue {
			return true, true
		}
		switch strings.ToLower(value) {
		case "1", "yes", "true", "on":
			return true, true
		case "0", "no", "false", "off":
			return false, true
		}
		return false, false
	}
	return false, false
}

// InInitrd reports whether the system is currently running from an
// initial RAM disk.
func InInitrd() bool {
	_, err := os.Stat("/etc/initrd-release")
	return err == nil
}
