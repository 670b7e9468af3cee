package evaluator

import (
	"fmt"
	"strings"

	"github.com/funvibe/shellexpr/internal/operator"
	"github.com/funvibe/shellexpr/internal/value"
)

// Apply evaluates left op right.
//
// Comparison operators are delegated to the Comparator and arithmetic to the
// Calculator; their errors are returned unchanged. Containment and boolean
// logic are handled here and fail with *value.KindMismatch.
func (e *Evaluator) Apply(op operator.Operator, left, right value.Value) (value.Value, error) {
	switch op {
	case operator.Equal, operator.NotEqual,
		operator.LessThan, operator.GreaterThan,
		operator.LessThanOrEqual, operator.GreaterThanOrEqual:
		ok, err := e.Comparator.Compare(op, left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ok), nil
	case operator.Contains:
		ok, err := stringContains(left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ok), nil
	case operator.NotContains:
		ok, err := stringContains(left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean(!ok), nil
	case operator.Plus, operator.Minus, operator.Multiply, operator.Divide:
		return e.Calculator.Compute(op, left, right)
	case operator.In:
		ok, err := tableContains(left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ok), nil
	case operator.And:
		l, lok := value.AsBool(left)
		r, rok := value.AsBool(right)
		if !lok || !rok {
			return nil, value.Mismatch(left, right)
		}
		return value.Boolean(l && r), nil
	case operator.Or:
		l, lok := value.AsBool(left)
		r, rok := value.AsBool(right)
		if !lok || !rok {
			return nil, value.Mismatch(left, right)
		}
		return value.Boolean(l || r), nil
	}
	// Every member of operator.Operator has a case above.
	panic(fmt.Sprintf("evaluator: unhandled operator %v", op))
}

// stringContains reports whether left's text contains right's text. Both
// operands must be String or Line, in any combination.
func stringContains(left, right value.Value) (bool, error) {
	l, lok := left.(value.Text)
	r, rok := right.(value.Text)
	if !lok || !rok {
		return false, value.Mismatch(left, right)
	}
	return strings.Contains(l.Text(), r.Text()), nil
}

// tableContains reports whether any element of the right-hand table is
// structurally equal to left.
func tableContains(left, right value.Value) (bool, error) {
	table, ok := right.(value.Table)
	if !ok {
		return false, value.Mismatch(left, right)
	}
	for _, row := range table {
		if value.Equal(row, left) {
			return true, nil
		}
	}
	return false, nil
}
