package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncString(t *testing.T) {
	assert.Equal(t, "abc", TruncString("abcdef", 3))
	assert.Equal(t, "abc", TruncString("abc", 10))
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"1", "yes", "Yes", "TRUE", "on", "t", "y"} {
		b, err := ParseBool(s)
		require.NoError(t, err, "input %q", s)
		assert.True(t, b, "input %q", s)
	}
	for _, s := range []string{"0", "no", "No", "FALSE", "off", "f", "n"} {
		b, err := ParseBool(s)
		require.NoError(t, err, "input %q", s)
		assert.False(t, b, "input %q", s)
	}
	for _, s := range []string{"", "2", "maybe", "tru"} {
		_, err := ParseBool(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		base     uint64
		expected uint64
	}{
		// A bare number is plain bytes regardless of base.
		{"100", 1024, 100},
		{"0", 1024, 0},
		{"4096B", 1024, 4096},
		{"10K", 1024, 10240},
		{"512M", 1024, 512 << 20},
		{"1G", 1024, 1 << 30},
		{"2T", 1024, 2 << 40},
		{"1.5K", 1024, 1536},
		{"1g", 1024, 1 << 30},
		{"1K", 1000, 1000},
		{"1G", 1000, 1_000_000_000},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			size, err := ParseSize(tc.input, tc.base)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, size)
		})
	}

	for _, invalid := range []string{"", "G", "-1", "10X", "1..5K"} {
		t.Run("Invalid_"+invalid, func(t *testing.T) {
			_, err := ParseSize(invalid, 1024)
			assert.Error(t, err)
		})
	}
}

func TestParsePermyriad(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"10%", 1000},
		{"10", 1000},
		{"0.01%", 1},
		{"0.1%", 10},
		{"1.5%", 150},
		{"100%", 10000},
		{"0%", 0},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			v, err := ParsePermyriad(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}

	for _, invalid := range []string{"", "%", "-1%", "1.234%", "1.%", "x%"} {
		t.Run("Invalid_"+invalid, func(t *testing.T) {
			_, err := ParsePermyriad(invalid)
			assert.Error(t, err)
		})
	}
}

func TestIsValidEnvName(t *testing.T) {
	for _, valid := range []string{"ID", "VERSION_ID", "_private", "a1"} {
		assert.True(t, IsValidEnvName(valid), "input %q", valid)
	}
	for _, invalid := range []string{"", "1D", "VERSION-ID", "A B", "é"} {
		assert.False(t, IsValidEnvName(invalid), "input %q", invalid)
	}
}

func TestDeleteTrailingWhitespace(t *testing.T) {
	assert.Equal(t, "abc", DeleteTrailingWhitespace("abc \t\r\n"))
	assert.Equal(t, " abc", DeleteTrailingWhitespace(" abc"))
	assert.Equal(t, "", DeleteTrailingWhitespace("  "))
}
