package condition

import (
	"fmt"
	"strings"
)

// Parse parses an assignment such as "ConditionPathExists=|!/run/foo"
// into a condition. The value may carry a leading "|" trigger marker
// followed by a leading "!" negation marker, in that order. Assert-style
// names are accepted too; isAssert reports which flavor was used.
func Parse(assignment string) (c *Condition, isAssert bool, err error) {
	name, value, found := strings.Cut(assignment, "=")
	if !found {
		return nil, false, fmt.Errorf("not a condition assignment: %q", assignment)
	}

	t, isAssert, ok := TypeFromName(strings.TrimSpace(name))
	if !ok {
		return nil, false, fmt.Errorf("unknown condition type %q", name)
	}

	value = strings.TrimSpace(value)
	var trigger, negate bool
	if rest, ok := strings.CutPrefix(value, "|"); ok {
		trigger, value = true, rest
	}
	if rest, ok := strings.CutPrefix(value, "!"); ok {
		negate, value = true, rest
	}

	c, err = New(t, value, trigger, negate)
	return c, isAssert, err
}
