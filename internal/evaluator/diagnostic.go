package evaluator

import (
	"errors"
	"fmt"

	"github.com/funvibe/shellexpr/internal/operator"
	"github.com/funvibe/shellexpr/internal/value"
)

// Diagnostic renders err, as returned by Apply, as a user-facing message that
// names the operator.
func Diagnostic(op operator.Operator, err error) string {
	var mismatch *value.KindMismatch
	if errors.As(err, &mismatch) {
		return fmt.Sprintf("cannot apply '%s' to %s and %s", op, mismatch.Left, mismatch.Right)
	}
	return fmt.Sprintf("cannot apply '%s': %v", op, err)
}
