package condition

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hostcond-org/hostcond/internal/cmdutil"
	"github.com/hostcond-org/hostcond/internal/fileutil"
	"github.com/hostcond-org/hostcond/internal/logger"
	"github.com/hostcond-org/hostcond/internal/stringutil"
	"github.com/hostcond-org/hostcond/internal/sysinfo"
)

func probeVirtualization(_ context.Context, c *Condition, _ []string) (bool, error) {
	if c.Parameter == "private-users" {
		return runningInUserNS(), nil
	}

	name, isContainer, err := detectVirtualization()
	if err != nil {
		return false, err
	}

	if b, err := stringutil.ParseBool(c.Parameter); err == nil {
		return b == (name != ""), nil
	}
	switch c.Parameter {
	case "vm":
		return name != "" && !isContainer, nil
	case "container":
		return isContainer, nil
	}
	return name == c.Parameter, nil
}

func probeArchitecture(_ context.Context, c *Condition, _ []string) (bool, error) {
	want := c.Parameter
	if want == "native" {
		want = sysinfo.NativeArchitecture()
	} else if !sysinfo.KnownArchitecture(want) {
		return false, fmt.Errorf("unknown architecture %q", c.Parameter)
	}

	arch, err := systemArchitecture()
	if err != nil {
		return false, err
	}
	return arch == want, nil
}

func probeSecurity(ctx context.Context, c *Condition, _ []string) (bool, error) {
	switch strings.ToLower(c.Parameter) {
	case "selinux":
		return selinuxEnabled(), nil
	case "smack":
		return smackEnabled(), nil
	case "apparmor":
		return apparmorEnabled(), nil
	case "tomoyo":
		return tomoyoEnabled(), nil
	case "ima":
		return imaEnabled(), nil
	case "audit":
		return auditEnabled(), nil
	case "uefi-secureboot":
		return isEFISecureBoot(), nil
	case "tpm2":
		return hasTPM2(), nil
	}
	// Unknown security technologies are simply absent, not an error, so
	// that new names can be probed on old installations.
	logger.Debug(ctx, "unknown security technology", "parameter", c.Parameter)
	return false, nil
}

func probeHost(_ context.Context, c *Condition, _ []string) (bool, error) {
	if want, ok := sysinfo.ParseMachineID(c.Parameter); ok {
		id, err := machineID()
		if err != nil {
			return false, err
		}
		return id == want, nil
	}

	hn, err := hostname()
	if err != nil {
		return false, err
	}
	ok, err := doublestar.Match(strings.ToLower(c.Parameter), strings.ToLower(hn))
	return err == nil && ok, nil
}

func probeACPower(_ context.Context, c *Condition, _ []string) (bool, error) {
	want, err := stringutil.ParseBool(c.Parameter)
	if err != nil {
		return false, err
	}
	on, err := onACPower()
	if err != nil {
		return false, err
	}
	return on == want, nil
}

func probeFirmware(ctx context.Context, c *Condition, _ []string) (bool, error) {
	switch {
	case c.Parameter == "device-tree":
		ok, err := hasDeviceTree()
		if err != nil {
			logger.Debug(ctx, "failed to detect device tree", "err", err)
			return false, nil
		}
		return ok, nil

	case strings.HasPrefix(c.Parameter, "device-tree-compatible("):
		arg, ok := parseParenArg(c.Parameter, "device-tree-compatible(")
		if !ok {
			logger.Debug(ctx, "malformed device-tree-compatible() parameter", "parameter", c.Parameter)
			return false, nil
		}
		compat, err := deviceTreeCompatible()
		if err != nil {
			if !sysinfo.IsNotExist(err) {
				logger.Debug(ctx, "failed to read device tree compatible strings", "err", err)
			}
			return false, nil
		}
		for _, entry := range compat {
			if entry == arg {
				return true, nil
			}
		}
		return false, nil

	case c.Parameter == "uefi":
		return isEFIBoot(), nil

	case strings.HasPrefix(c.Parameter, "smbios-field("):
		expr, ok := parseParenArg(c.Parameter, "smbios-field(")
		if !ok {
			return false, fmt.Errorf("malformed smbios-field() parameter %q", c.Parameter)
		}
		return testSMBIOSField(expr)

	default:
		logger.Debug(ctx, "unsupported firmware parameter", "parameter", c.Parameter)
		return false, nil
	}
}

// parseParenArg extracts the argument from a "name(arg)" parameter whose
// "name(" prefix already matched. The closing parenthesis must be the
// last character and the argument must not be empty.
func parseParenArg(parameter, prefix string) (string, bool) {
	arg := parameter[len(prefix):]
	if len(arg) < 2 || arg[len(arg)-1] != ')' {
		return "", false
	}
	return arg[:len(arg)-1], true
}

// testSMBIOSField evaluates an expression of the form
// "<field> <op> <value>" against the SMBIOS field of that name. The
// fnmatch operators "=$" and "!=$" glob-match the value; the ordering
// operators compare it as a version string.
func testSMBIOSField(expr string) (bool, error) {
	idx := strings.IndexAny(expr, "!<=>$")
	if idx <= 0 {
		return false, fmt.Errorf("malformed smbios-field() expression %q", expr)
	}
	field := stringutil.DeleteTrailingWhitespace(expr[:idx])
	if !fileutil.IsValidFilename(field) {
		return false, fmt.Errorf("invalid smbios field name %q", field)
	}

	op, rest := ParseOrder(expr[idx:], true)
	if op == OrderInvalid {
		return false, fmt.Errorf("malformed smbios-field() expression %q", expr)
	}

	words, err := cmdutil.SplitWords(strings.TrimLeft(rest, " \t"))
	if err != nil || len(words) != 1 {
		return false, fmt.Errorf("expected a single value in smbios-field() expression %q", expr)
	}
	expected := words[0]

	actual, err := dmiField(field)
	if err != nil {
		if sysinfo.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	if op.IsFnmatch() {
		ok, err := doublestar.Match(expected, actual)
		match := err == nil && ok
		if op == OrderFnmatchUnequal {
			return !match, nil
		}
		return match, nil
	}
	return op.Test(CompareVersions(actual, expected)), nil
}
