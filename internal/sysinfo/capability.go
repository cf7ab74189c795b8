package sysinfo

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// capabilityNames maps capability names (without the CAP_ prefix,
// lowercase) to their bit numbers, matching linux/capability.h.
var capabilityNames = map[string]int{
	"chown":              0,
	"dac_override":       1,
	"dac_read_search":    2,
	"fowner":             3,
	"fsetid":             4,
	"kill":               5,
	"setgid":             6,
	"setuid":             7,
	"setpcap":            8,
	"linux_immutable":    9,
	"net_bind_service":   10,
	"net_broadcast":      11,
	"net_admin":          12,
	"net_raw":            13,
	"ipc_lock":           14,
	"ipc_owner":          15,
	"sys_module":         16,
	"sys_rawio":          17,
	"sys_chroot":         18,
	"sys_ptrace":         19,
	"sys_pacct":          20,
	"sys_admin":          21,
	"sys_boot":           22,
	"sys_nice":           23,
	"sys_resource":       24,
	"sys_time":           25,
	"sys_tty_config":     26,
	"mknod":              27,
	"lease":              28,
	"audit_write":        29,
	"audit_control":      30,
	"setfcap":            31,
	"mac_override":       32,
	"mac_admin":          33,
	"syslog":             34,
	"wake_alarm":         35,
	"block_suspend":      36,
	"audit_read":         37,
	"perfmon":            38,
	"bpf":                39,
	"checkpoint_restore": 40,
}

// CapabilityFromName resolves a capability name such as "CAP_SYS_ADMIN"
// or "sys_admin" to its bit number.
func CapabilityFromName(name string) (int, bool) {
	n := strings.ToLower(name)
	n = strings.TrimPrefix(n, "cap_")
	bit, ok := capabilityNames[n]
	return bit, ok
}

// BoundingCapabilities returns the bounding capability set of the current
// process, from the CapBnd field of /proc/self/status.
func BoundingCapabilities() (uint64, error) {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rest, ok := strings.CutPrefix(scanner.Text(), "CapBnd:")
		if !ok {
			continue
		}
		mask, err := strconv.ParseUint(strings.TrimSpace(rest), 16, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed CapBnd field: %w", err)
		}
		return mask, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("no CapBnd field in /proc/self/status")
}
