package sysinfo

import (
	"os"
	"path/filepath"
	"strings"
)

const powerSupplyDir = "/sys/class/power_supply"

// OnACPower reports whether at least one non-battery power supply is
// online. When the system exposes no power supply information at all it
// is assumed to be on external power.
func OnACPower() (bool, error) {
	entries, err := os.ReadDir(powerSupplyDir)
	if err != nil {
		if IsNotExist(err) {
			return true, nil
		}
		return false, err
	}

	foundOffline := false
	for _, e := range entries {
		dir := filepath.Join(powerSupplyDir, e.Name())

		kind, err := ReadVirtualLine(filepath.Join(dir, "type"))
		if err != nil {
			continue
		}
		if strings.TrimSpace(kind) == "Battery" {
			continue
		}

		online, err := ReadVirtualLine(filepath.Join(dir, "online"))
		if err != nil {
			continue
		}
		if strings.TrimSpace(online) != "0" {
			return true, nil
		}
		foundOffline = true
	}

	// No non-battery supply seen at all: desktop machine, assume AC.
	return !foundOffline, nil
}
