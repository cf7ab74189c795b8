package condition

import (
	"fmt"
	"strings"
)

// OrderOperator is a comparison operator parsed from the front of a
// condition parameter.
type OrderOperator int

const (
	OrderFnmatchEqual OrderOperator = iota
	OrderFnmatchUnequal
	OrderLowerOrEqual
	OrderGreaterOrEqual
	OrderLower
	OrderGreater
	OrderEqual
	OrderUnequal
)

// OrderInvalid is the sentinel for "no operator prefix found". Callers
// typically fall back to a default operator or glob matching.
const OrderInvalid OrderOperator = -1

// orderPrefixes lists operator tokens in matching priority order. Some
// tokens are prefixes of others, so the longest must be tried first:
// "!=" before "!", "<="/">=" before "<"/">", and the fnmatch variants
// before their plain counterparts.
var orderPrefixes = []struct {
	op     OrderOperator
	prefix string
}{
	{OrderFnmatchEqual, "=$"},
	{OrderFnmatchUnequal, "!=$"},
	{OrderLowerOrEqual, "<="},
	{OrderGreaterOrEqual, ">="},
	{OrderLower, "<"},
	{OrderGreater, ">"},
	{OrderEqual, "="},
	{OrderUnequal, "!="},
}

// ParseOrder scans s for an operator prefix and returns the operator and
// the remainder of the string. When allowFnmatch is false a matched
// fnmatch-class operator is treated as not found, so that "!=$foo" does
// not silently degrade to "!=" with a "$foo" operand.
func ParseOrder(s string, allowFnmatch bool) (OrderOperator, string) {
	for _, entry := range orderPrefixes {
		rest, ok := strings.CutPrefix(s, entry.prefix)
		if !ok {
			continue
		}
		if !allowFnmatch && entry.op.IsFnmatch() {
			break
		}
		return entry.op, rest
	}
	return OrderInvalid, s
}

// IsFnmatch reports whether the operator compares by glob pattern rather
// than by ordering.
func (o OrderOperator) IsFnmatch() bool {
	return o == OrderFnmatchEqual || o == OrderFnmatchUnequal
}

// Test maps a three-way comparison result onto the operator. Fnmatch and
// invalid operators must never reach this function; passing one is a
// programming error.
func (o OrderOperator) Test(k int) bool {
	switch o {
	case OrderLower:
		return k < 0
	case OrderLowerOrEqual:
		return k <= 0
	case OrderEqual:
		return k == 0
	case OrderUnequal:
		return k != 0
	case OrderGreaterOrEqual:
		return k >= 0
	case OrderGreater:
		return k > 0
	default:
		panic(fmt.Sprintf("order operator %d cannot be tested against a comparison result", int(o)))
	}
}
