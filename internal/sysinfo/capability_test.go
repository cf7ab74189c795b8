package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityFromName(t *testing.T) {
	tests := []struct {
		name string
		bit  int
		ok   bool
	}{
		{"CAP_SYS_ADMIN", 21, true},
		{"sys_admin", 21, true},
		{"cap_chown", 0, true},
		{"CHOWN", 0, true},
		{"checkpoint_restore", 40, true},
		{"CAP_NOT_A_THING", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		bit, ok := CapabilityFromName(tc.name)
		assert.Equal(t, tc.ok, ok, "name %q", tc.name)
		if tc.ok {
			assert.Equal(t, tc.bit, bit, "name %q", tc.name)
		}
	}
}
