package value

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNegativeFilesize = errors.New("filesize cannot be negative")
	ErrFilesizeOverflow = errors.New("filesize overflow")
	ErrDurationOverflow = errors.New("duration overflow")
)

// KindMismatch reports that an operator cannot combine the two operand kinds.
// The type names fully describe the failure; callers add the operator when
// rendering a diagnostic.
type KindMismatch struct {
	Left  string
	Right string
}

// Mismatch builds a KindMismatch from the operands' type names.
func Mismatch(left, right Value) *KindMismatch {
	return &KindMismatch{Left: TypeName(left), Right: TypeName(right)}
}

func (e *KindMismatch) Error() string {
	return fmt.Sprintf("type mismatch: %s and %s", e.Left, e.Right)
}

// UnsupportedOperatorError is returned when Compare or Compute receive an
// operator outside their group.
type UnsupportedOperatorError struct {
	Operator string
	Unit     string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("%s does not support operator %s", e.Unit, e.Operator)
}
