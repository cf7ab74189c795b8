package condition

import (
	"fmt"
	"io"
)

// Condition is one named, parameterized predicate about system state.
// Trigger marks the entry as part of the list's OR-group instead of the
// mandatory AND set; Negate inverts the raw probe outcome before it is
// recorded and combined.
type Condition struct {
	Type      Type
	Parameter string
	Trigger   bool
	Negate    bool

	// Result caches the outcome of the last evaluation. It is mutated in
	// place during Test and is not safe for concurrent writers.
	Result Result
}

// New creates a condition. The parameter must be non-empty; its syntax is
// not validated here — malformed parameters surface as evaluation errors.
func New(t Type, parameter string, trigger, negate bool) (*Condition, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid condition type %d", int(t))
	}
	if parameter == "" {
		return nil, fmt.Errorf("%s: empty parameter", t)
	}
	return &Condition{
		Type:      t,
		Parameter: parameter,
		Trigger:   trigger,
		Negate:    negate,
	}, nil
}

// String renders the condition in its assignment form, e.g.
// "ConditionPathExists=|!/run/foo".
func (c *Condition) String() string {
	return fmt.Sprintf("%s=%s%s", c.Type, markers(c.Trigger, c.Negate), c.Parameter)
}

func markers(trigger, negate bool) string {
	s := ""
	if trigger {
		s += "|"
	}
	if negate {
		s += "!"
	}
	return s
}

// Dump writes a one-line diagnostic rendering of the condition.
func (c *Condition) Dump(w io.Writer, prefix string) {
	fmt.Fprintf(w, "%s\t%s: %s%s %s\n",
		prefix, c.Type, markers(c.Trigger, c.Negate), c.Parameter, c.Result)
}

// List is an ordered sequence of conditions owned by a single caller.
// Order matters for trigger-group semantics and early exit.
type List []*Condition

// Filter returns the list without entries of the given type.
func (l List) Filter(t Type) List {
	var out List
	for _, c := range l {
		if c.Type != t {
			out = append(out, c)
		}
	}
	return out
}

// Dump writes the diagnostic rendering of every entry.
func (l List) Dump(w io.Writer, prefix string) {
	for _, c := range l {
		c.Dump(w, prefix)
	}
}
