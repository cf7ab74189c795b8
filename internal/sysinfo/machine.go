package sysinfo

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

// MachineID returns the machine id from /etc/machine-id as a UUID.
func MachineID() (uuid.UUID, error) {
	line, err := ReadVirtualLine("/etc/machine-id")
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(strings.TrimSpace(line))
}

// ParseMachineID parses a 128-bit id in either plain-hex or RFC 4122
// form.
func ParseMachineID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Hostname returns the system hostname.
func Hostname() (string, error) {
	return os.Hostname()
}

// firstBootPath is the runtime marker the init system leaves in place
// during the first boot of a fresh installation.
const firstBootPath = "/run/systemd/first-boot"

// IsFirstBoot reports whether the first-boot runtime marker exists.
// Failures other than absence are reported so the caller can log them.
func IsFirstBoot() (bool, error) {
	_, err := os.Stat(firstBootPath)
	if err == nil {
		return true, nil
	}
	if IsNotExist(err) {
		return false, nil
	}
	return false, err
}
