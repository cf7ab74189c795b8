package sysinfo

import (
	"os"

	"github.com/hostcond-org/hostcond/internal/fileutil"
)

// SELinuxEnabled reports whether an SELinux policy is loaded.
func SELinuxEnabled() bool {
	return fileutil.FileExists("/sys/fs/selinux/enforce")
}

// SmackEnabled reports whether the SMACK security module is active.
func SmackEnabled() bool {
	return fileutil.IsDir("/sys/fs/smackfs")
}

// AppArmorEnabled reports whether AppArmor is loaded and enabled.
func AppArmorEnabled() bool {
	line, err := ReadVirtualLine("/sys/module/apparmor/parameters/enabled")
	if err != nil {
		return false
	}
	return line == "Y"
}

// TomoyoEnabled reports whether the TOMOYO security module is active.
func TomoyoEnabled() bool {
	return fileutil.IsDir("/sys/kernel/security/tomoyo")
}

// IMAEnabled reports whether the kernel integrity measurement
// architecture is active with a non-empty policy.
func IMAEnabled() bool {
	return fileutil.FileExists("/sys/kernel/security/ima/policy")
}

// AuditEnabled reports whether the kernel audit subsystem assigned this
// session a login uid, which requires auditing to be compiled in and
// enabled.
func AuditEnabled() bool {
	line, err := ReadVirtualLine("/proc/self/loginuid")
	if err != nil {
		return false
	}
	// 4294967295 is (uid_t) -1, i.e. unset.
	return line != "" && line != "4294967295"
}

// HasTPM2 reports whether a TPM2 device is usable: either the resource
// manager driver is loaded, or the firmware advertises a TPM2 so the
// driver can be expected to show up later in boot.
func HasTPM2() bool {
	if entries, err := os.ReadDir("/sys/class/tpmrm"); err == nil && len(entries) > 0 {
		return true
	}
	if fileutil.FileExists("/sys/firmware/acpi/tables/TPM2") {
		return true
	}
	// Device-tree systems advertise the TPM as a compatible node.
	compat, err := DeviceTreeCompatible()
	if err != nil {
		return false
	}
	for _, c := range compat {
		if c == "tcg,tpm-tis-mmio" || c == "tcg,tpm_tis-spi" {
			return true
		}
	}
	return false
}
