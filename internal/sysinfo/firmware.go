package sysinfo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hostcond-org/hostcond/internal/fileutil"
	"github.com/hostcond-org/hostcond/internal/stringutil"
)

const (
	dmiClassDir          = "/sys/class/dmi/id"
	deviceTreeDir        = "/sys/firmware/device-tree"
	deviceTreeCompatFile = "/proc/device-tree/compatible"
	efiDir               = "/sys/firmware/efi"
	efivarsDir           = "/sys/firmware/efi/efivars"
)

// IsEFIBoot reports whether the system was booted through EFI firmware.
func IsEFIBoot() bool {
	return fileutil.IsDir(efiDir)
}

// HasDeviceTree reports whether firmware exposes a device tree.
func HasDeviceTree() (bool, error) {
	_, err := os.Stat(deviceTreeDir)
	if err == nil {
		return true, nil
	}
	if IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// DeviceTreeCompatible returns the list of compatible strings the device
// tree advertises. The file holds NUL-terminated strings back to back.
func DeviceTreeCompatible() ([]string, error) {
	data, err := ReadVirtualFile(deviceTreeCompatFile)
	if err != nil {
		return nil, err
	}
	if data == "" || data[len(data)-1] != '\x00' {
		return nil, nil
	}
	return strings.Split(strings.TrimSuffix(data, "\x00"), "\x00"), nil
}

// DMIField reads one SMBIOS field from sysfs, with trailing whitespace
// removed.
func DMIField(field string) (string, error) {
	value, err := ReadVirtualFile(filepath.Join(dmiClassDir, field))
	if err != nil {
		return "", err
	}
	return stringutil.DeleteTrailingWhitespace(value), nil
}

// secureBootVar is the UEFI global variable holding the secure boot
// state; the payload's fifth byte is the flag.
const secureBootVar = "SecureBoot-8be4df61-93ca-11d2-aa0d-00e098032b8c"

// IsEFISecureBoot reports whether the firmware booted with secure boot
// enforced.
func IsEFISecureBoot() bool {
	data, err := os.ReadFile(filepath.Join(efivarsDir, secureBootVar))
	if err != nil || len(data) < 5 {
		return false
	}
	return data[4] == 1
}
