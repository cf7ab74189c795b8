package stringutil

import (
	"fmt"
	"strconv"
	"strings"
)

// TruncString returns truncated string.
func TruncString(val string, maxLen int) string {
	if len(val) > maxLen {
		return val[:maxLen]
	}
	return val
}

// ParseBool parses a boolean string the way unit files do: 1/yes/true/on
// and 0/no/false/off, case-insensitively.
func ParseBool(val string) (bool, error) {
	switch strings.ToLower(val) {
	case "1", "yes", "y", "true", "t", "on":
		return true, nil
	case "0", "no", "n", "false", "f", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value: %q", val)
}

// sizeSuffixExponents maps size suffix letters to the power of the base
// they multiply by. A bare number is plain bytes.
var sizeSuffixExponents = map[string]int{
	"B": 0,
	"K": 1,
	"M": 2,
	"G": 3,
	"T": 4,
	"P": 5,
	"E": 6,
}

// ParseSize parses a size string such as "512M" or "1.5G" into bytes.
// base selects the suffix multipliers, 1024 for binary units or 1000
// for decimal ones.
func ParseSize(val string, base uint64) (uint64, error) {
	s := strings.TrimSpace(val)
	if s == "" {
		return 0, fmt.Errorf("empty size value")
	}

	// Split off the suffix. Only a single trailing unit letter is
	// recognized.
	num := s
	unit := uint64(1)
	last := s[len(s)-1]
	if last < '0' || last > '9' {
		exp, ok := sizeSuffixExponents[strings.ToUpper(string(last))]
		if !ok {
			return 0, fmt.Errorf("unknown size suffix in %q", val)
		}
		for range exp {
			unit *= base
		}
		num = strings.TrimSpace(s[:len(s)-1])
		if num == "" {
			return 0, fmt.Errorf("missing number in size value %q", val)
		}
	}

	if i, err := strconv.ParseUint(num, 10, 64); err == nil {
		if i > (1<<64-1)/unit {
			return 0, fmt.Errorf("size value %q overflows", val)
		}
		return i * unit, nil
	}

	// Fractional sizes like "1.5G" are allowed as long as the result is
	// a whole number of bytes.
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid size value %q", val)
	}
	return uint64(f * float64(unit)), nil
}

// ParsePermyriad parses a percentage with up to two decimal places into
// basis points, e.g. "10%" -> 1000, "0.01%" -> 1. The trailing '%' is
// optional.
func ParsePermyriad(val string) (int, error) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(val), "%"))
	if s == "" {
		return 0, fmt.Errorf("empty percentage value")
	}

	whole, frac, found := strings.Cut(s, ".")
	w, err := strconv.Atoi(whole)
	if err != nil || w < 0 {
		return 0, fmt.Errorf("invalid percentage value %q", val)
	}

	f := 0
	if found {
		if len(frac) > 2 || frac == "" {
			return 0, fmt.Errorf("invalid percentage value %q", val)
		}
		f, err = strconv.Atoi(frac)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("invalid percentage value %q", val)
		}
		if len(frac) == 1 {
			f *= 10
		}
	}

	return w*100 + f, nil
}

// IsValidEnvName reports whether s is a valid environment-variable-style
// name: [A-Za-z_][A-Za-z0-9_]*.
func IsValidEnvName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// DeleteTrailingWhitespace removes trailing spaces, tabs and newlines.
func DeleteTrailingWhitespace(s string) string {
	return strings.TrimRight(s, " \t\n\r")
}
