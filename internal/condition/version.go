package condition

import "strings"

// CompareVersions imposes a total order on version strings following
// distro packaging conventions: numeric runs compare numerically, alpha
// runs lexicographically, '~' marks a pre-release sorting below
// everything, and '-', '^' and '.' act as separators of decreasing
// weight. It returns <0, 0 or >0.
func CompareVersions(a, b string) int {
	for {
		a = skipNonVersionChars(a)
		b = skipNonVersionChars(b)

		// A '~' sorts lower than anything, including the end of the
		// string.
		if strings.HasPrefix(a, "~") || strings.HasPrefix(b, "~") {
			if r := cmpBool(!strings.HasPrefix(a, "~"), !strings.HasPrefix(b, "~")); r != 0 {
				return r
			}
			a, b = a[1:], b[1:]
		}

		// The shorter string is the older version.
		if a == "" || b == "" {
			return cmpBool(a != "", b != "")
		}

		for _, sep := range []string{"-", "^", "."} {
			if strings.HasPrefix(a, sep) || strings.HasPrefix(b, sep) {
				if r := cmpBool(!strings.HasPrefix(a, sep), !strings.HasPrefix(b, sep)); r != 0 {
					return r
				}
				a, b = strings.TrimPrefix(a, sep), strings.TrimPrefix(b, sep)
			}
		}

		if isDigit(firstByte(a)) || isDigit(firstByte(b)) {
			// Numeric segment: strip leading zeros, then a longer run of
			// digits wins, then lexicographic order of the equal-length
			// runs.
			a = strings.TrimLeft(a, "0")
			b = strings.TrimLeft(b, "0")

			ra, resta := takeRun(a, isDigit)
			rb, restb := takeRun(b, isDigit)
			if r := cmpInt(len(ra), len(rb)); r != 0 {
				return r
			}
			if r := strings.Compare(ra, rb); r != 0 {
				return r
			}
			a, b = resta, restb
		} else {
			ra, resta := takeRun(a, isAlpha)
			rb, restb := takeRun(b, isAlpha)
			n := min(len(ra), len(rb))
			if r := strings.Compare(ra[:n], rb[:n]); r != 0 {
				return r
			}
			if r := cmpInt(len(ra), len(rb)); r != 0 {
				return r
			}
			a, b = resta, restb
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isVersionChar(c byte) bool {
	return isDigit(c) || isAlpha(c) || c == '~' || c == '-' || c == '^' || c == '.'
}

func skipNonVersionChars(s string) string {
	for s != "" && !isVersionChar(s[0]) {
		s = s[1:]
	}
	return s
}

func firstByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}

func takeRun(s string, class func(byte) bool) (run, rest string) {
	i := 0
	for i < len(s) && class(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func cmpBool(x, y bool) int {
	switch {
	case x == y:
		return 0
	case !x:
		return -1
	default:
		return 1
	}
}

func cmpInt(x, y int) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
