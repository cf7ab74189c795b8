package condition

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hostcond-org/hostcond/internal/cmdutil"
	"github.com/hostcond-org/hostcond/internal/logger"
	"github.com/hostcond-org/hostcond/internal/stringutil"
)

func probeKernelCommandLine(_ context.Context, c *Condition, _ []string) (bool, error) {
	line, err := kernelCommandLine()
	if err != nil {
		return false, err
	}
	return tokenListContains(cmdutil.SplitWordsRelaxed(line), c.Parameter), nil
}

func probeEnvironment(_ context.Context, c *Condition, env []string) (bool, error) {
	return tokenListContains(env, c.Parameter), nil
}

// tokenListContains matches a parameter against KEY=VALUE style tokens:
// a parameter containing '=' must match a token exactly, a bare
// parameter matches any token with that key regardless of value.
func tokenListContains(tokens []string, parameter string) bool {
	wantExact := strings.ContainsRune(parameter, '=')
	for _, token := range tokens {
		if wantExact {
			if token == parameter {
				return true
			}
			continue
		}
		rest, ok := strings.CutPrefix(token, parameter)
		if ok && (rest == "" || strings.HasPrefix(rest, "=")) {
			return true
		}
	}
	return false
}

func probeKernelVersion(_ context.Context, c *Condition, _ []string) (bool, error) {
	release, err := kernelRelease()
	if err != nil {
		return false, err
	}
	return testVersionClauses(c.Parameter, release)
}

// testVersionClauses evaluates a whitespace-separated sequence of
// version clauses against version, requiring all of them to hold. A
// clause starting with a comparator is an ordering check; anything else
// is a glob pattern.
func testVersionClauses(parameter, version string) (bool, error) {
	words, err := cmdutil.SplitWords(parameter)
	if err != nil {
		return false, fmt.Errorf("failed to parse condition string %q: %w", parameter, err)
	}

	for i := 0; i < len(words); i++ {
		clause := strings.TrimSpace(words[i])

		op, rest := ParseOrder(clause, false)
		if op == OrderInvalid {
			// No comparator prefix: treat the clause as a glob. A bad
			// pattern simply does not match.
			ok, err := doublestar.Match(clause, version)
			if err != nil || !ok {
				return false, nil
			}
			continue
		}

		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			// Whitespace between operator and value is tolerated, but
			// only in the very first clause.
			if i != 0 || i+1 >= len(words) {
				return false, fmt.Errorf("unexpected end of expression: %s", parameter)
			}
			i++
			rest = words[i]
		}

		if !op.Test(CompareVersions(version, rest)) {
			return false, nil
		}
	}
	return true, nil
}

func probeOSRelease(_ context.Context, c *Condition, _ []string) (bool, error) {
	clauses, err := cmdutil.SplitWords(c.Parameter)
	if err != nil {
		return false, fmt.Errorf("failed to parse parameter %q: %w", c.Parameter, err)
	}

	for _, clause := range clauses {
		idx := strings.IndexAny(clause, "!<=>")
		if idx <= 0 {
			return false, fmt.Errorf("key/value format expected in %q", clause)
		}
		key := clause[:idx]
		if !stringutil.IsValidEnvName(key) {
			return false, fmt.Errorf("invalid os-release key %q", key)
		}

		op, value := ParseOrder(clause[idx:], false)
		// Whitespace after the separator is not valid os-release format.
		if op == OrderInvalid || value == "" || value[0] == ' ' || value[0] == '\t' {
			return false, fmt.Errorf("key/value format expected in %q", clause)
		}

		actual, _, err := osReleaseField(key)
		if err != nil {
			return false, err
		}

		var matches bool
		switch op {
		case OrderEqual:
			// Not necessarily comparing versions, so match exactly.
			matches = actual == value
		case OrderUnequal:
			matches = actual != value
		default:
			matches = op.Test(CompareVersions(actual, value))
		}
		if !matches {
			return false, nil
		}
	}
	return true, nil
}

func probeMemory(_ context.Context, c *Condition, _ []string) (bool, error) {
	total, err := physicalMemory()
	if err != nil {
		return false, err
	}

	op, rest := ParseOrder(c.Parameter, false)
	if op == OrderInvalid {
		op, rest = OrderGreaterOrEqual, c.Parameter
	}

	want, err := stringutil.ParseSize(rest, 1024)
	if err != nil {
		return false, fmt.Errorf("failed to parse size %q: %w", rest, err)
	}
	return op.Test(cmpUint64(total, want)), nil
}

func probeCPUs(_ context.Context, c *Condition, _ []string) (bool, error) {
	n, err := cpusInAffinityMask()
	if err != nil {
		return false, err
	}

	op, rest := ParseOrder(c.Parameter, false)
	if op == OrderInvalid {
		op, rest = OrderGreaterOrEqual, c.Parameter
	}

	want, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || want < 0 {
		return false, fmt.Errorf("failed to parse number of CPUs %q", rest)
	}
	return op.Test(cmpInt(n, want)), nil
}

func probeCapability(_ context.Context, c *Condition, _ []string) (bool, error) {
	bit, ok := capabilityFromName(c.Parameter)
	if !ok {
		return false, fmt.Errorf("unknown capability %q", c.Parameter)
	}
	caps, err := boundingCapabilities()
	if err != nil {
		return false, err
	}
	return caps&(1<<uint(bit)) != 0, nil
}

func probeCPUFeature(_ context.Context, c *Condition, _ []string) (bool, error) {
	return hasCPUFeature(strings.ToLower(c.Parameter))
}

func probeControlGroupController(ctx context.Context, c *Condition, _ []string) (bool, error) {
	switch c.Parameter {
	case "v2":
		return allUnified()
	case "v1":
		unified, err := allUnified()
		if err != nil {
			return false, err
		}
		return !unified, nil
	}

	systemMask, err := supportedControllers()
	if err != nil {
		return false, fmt.Errorf("failed to determine supported controllers: %w", err)
	}

	wantedMask, err := maskFromControllerString(c.Parameter)
	if err != nil || wantedMask == 0 {
		// An unparseable controller list must not block work; degrade
		// to success rather than guessing.
		logger.Debug(ctx, "failed to parse cgroup controller list", "parameter", c.Parameter)
		return true, nil
	}
	return systemMask.Contains(wantedMask), nil
}

func cmpUint64(x, y uint64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
