package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKernelCommandLineGetBool(t *testing.T) {
	line := "ro quiet flag.a flag.b=yes flag.c=0 flag.d=junk"

	tests := []struct {
		key   string
		value bool
		found bool
	}{
		// A bare switch counts as true.
		{"flag.a", true, true},
		{"flag.b", true, true},
		{"flag.c", false, true},
		// An unparseable value counts as not found.
		{"flag.d", false, false},
		{"flag.e", false, false},
	}
	for _, tc := range tests {
		value, found := KernelCommandLineGetBool(line, tc.key)
		assert.Equal(t, tc.found, found, "key %q", tc.key)
		assert.Equal(t, tc.value, value, "key %q", tc.key)
	}
}
