package value

import (
	"bytes"
	"cmp"
	"fmt"
	"math/big"
	"strings"

	"github.com/funvibe/shellexpr/internal/operator"
)

// Compare applies one of the six comparison operators. The operands are first
// coerced to a common domain (numbers, filesizes, text, ...); pairs without a
// common domain, and any Row or Table operand, yield a KindMismatch.
func Compare(op operator.Operator, left, right Value) (bool, error) {
	if !op.IsComparison() {
		return false, &UnsupportedOperatorError{Operator: op.String(), Unit: "comparator"}
	}

	ordering, ok := order(left, right)
	if !ok {
		return false, Mismatch(left, right)
	}

	switch op {
	case operator.Equal:
		return ordering == 0, nil
	case operator.NotEqual:
		return ordering != 0, nil
	case operator.LessThan:
		return ordering < 0, nil
	case operator.GreaterThan:
		return ordering > 0, nil
	case operator.LessThanOrEqual:
		return ordering <= 0, nil
	case operator.GreaterThanOrEqual:
		return ordering >= 0, nil
	}
	// Guarded by IsComparison above.
	panic(fmt.Sprintf("value: unhandled comparison operator %v", op))
}

// order returns -1, 0 or +1 for left relative to right, and false when the
// kinds share no ordering.
func order(left, right Value) (int, bool) {
	switch l := left.(type) {
	case Nothing:
		if _, ok := right.(Nothing); ok {
			return 0, true
		}
	case Int:
		switch r := right.(type) {
		case Int:
			return l.big().Cmp(r.big()), true
		case Decimal:
			return new(big.Rat).SetInt(l.big()).Cmp(r.rat()), true
		case Filesize:
			return l.big().Cmp(new(big.Int).SetUint64(uint64(r))), true
		}
	case Decimal:
		switch r := right.(type) {
		case Int:
			return l.rat().Cmp(new(big.Rat).SetInt(r.big())), true
		case Decimal:
			return l.rat().Cmp(r.rat()), true
		}
	case Filesize:
		switch r := right.(type) {
		case Filesize:
			return cmp.Compare(l, r), true
		case Int:
			return new(big.Int).SetUint64(uint64(l)).Cmp(r.big()), true
		}
	case Text:
		switch r := right.(type) {
		case Text:
			return strings.Compare(l.Text(), r.Text()), true
		case Path:
			return strings.Compare(l.Text(), string(r)), true
		}
	case Path:
		switch r := right.(type) {
		case Path:
			return strings.Compare(string(l), string(r)), true
		case Text:
			return strings.Compare(string(l), r.Text()), true
		}
	case Boolean:
		if r, ok := right.(Boolean); ok {
			return cmp.Compare(boolRank(l), boolRank(r)), true
		}
	case Date:
		if r, ok := right.(Date); ok {
			return l.t.Compare(r.t), true
		}
	case Duration:
		if r, ok := right.(Duration); ok {
			return cmp.Compare(l, r), true
		}
	case Binary:
		if r, ok := right.(Binary); ok {
			return bytes.Compare(l, r), true
		}
	case Uuid:
		if r, ok := right.(Uuid); ok {
			return bytes.Compare(l[:], r[:]), true
		}
	}
	return 0, false
}

func boolRank(b Boolean) int {
	if b {
		return 1
	}
	return 0
}
