package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUID(t *testing.T) {
	tests := []struct {
		input string
		uid   int
		ok    bool
	}{
		{"0", 0, true},
		{"1000", 1000, true},
		{"+5", 0, false},
		{"-1", 0, false},
		{"05", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		uid, ok := ParseUID(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.uid, uid, "input %q", tc.input)
		}
	}
}

func TestIsSystemUID(t *testing.T) {
	assert.True(t, IsSystemUID(0))
	assert.True(t, IsSystemUID(999))
	assert.False(t, IsSystemUID(1000))
}
