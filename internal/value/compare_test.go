package value

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/shellexpr/internal/operator"
)

func TestCompare(t *testing.T) {
	early := NewDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	late := NewDate(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		op          operator.Operator
		left, right Value
		expect      bool
	}{
		{operator.LessThan, NewInt(3), NewInt(4), true},
		{operator.LessThanOrEqual, NewInt(4), NewInt(4), true},
		{operator.GreaterThan, NewInt(3), NewInt(4), false},
		{operator.GreaterThanOrEqual, NewInt(4), NewInt(4), true},
		{operator.Equal, NewInt(3), NewDecimal(3, 1), true},
		{operator.LessThan, NewInt(3), NewDecimal(7, 2), true},
		{operator.GreaterThan, NewDecimal(7, 2), NewInt(3), true},
		{operator.NotEqual, NewDecimal(1, 3), NewDecimal(2, 6), false},
		{operator.Equal, Filesize(1024), NewInt(1024), true},
		{operator.LessThan, NewInt(10), Filesize(11), true},
		{operator.GreaterThan, Filesize(2048), Filesize(1024), true},
		{operator.Equal, String("x"), Line("x"), true},
		{operator.LessThan, Line("a"), String("b"), true},
		{operator.Equal, Path("/tmp"), String("/tmp"), true},
		{operator.GreaterThan, Line("/b"), Path("/a"), true},
		{operator.LessThan, False, True, true},
		{operator.LessThan, early, late, true},
		{operator.Equal, Duration(time.Minute), Duration(60 * time.Second), true},
		{operator.LessThan, Binary{0x01}, Binary{0x01, 0x00}, true},
		{operator.Equal, Nothing{}, Nothing{}, true},
		{operator.NotEqual, Nothing{}, Nothing{}, false},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			got, err := Compare(test.op, test.left, test.right)
			require.NoError(t, err)
			assert.Equal(t, test.expect, got)
		})
	}
}

func TestCompareMismatch(t *testing.T) {
	tests := []struct {
		left, right Value
	}{
		{NewInt(1), String("1")},
		{String("x"), Boolean(true)},
		{Nothing{}, NewInt(0)},
		{Table{NewInt(1)}, Table{NewInt(1)}},
		{NewRow(), NewRow()},
		{Decimal{}, Filesize(0)},
		{Duration(0), NewInt(0)},
	}

	for _, test := range tests {
		_, err := Compare(operator.Equal, test.left, test.right)
		var mismatch *KindMismatch
		require.True(t, errors.As(err, &mismatch), "%s vs %s: %v", TypeName(test.left), TypeName(test.right), err)
		assert.Equal(t, TypeName(test.left), mismatch.Left)
		assert.Equal(t, TypeName(test.right), mismatch.Right)
	}
}

func TestCompareRejectsOtherOperators(t *testing.T) {
	for _, op := range operator.All() {
		if op.IsComparison() {
			continue
		}
		_, err := Compare(op, NewInt(1), NewInt(1))
		var unsupported *UnsupportedOperatorError
		assert.True(t, errors.As(err, &unsupported), "operator %s", op)
	}

	var unsupported *UnsupportedOperatorError
	assert.NotPanics(t, func() {
		_, err := Compare(operator.Operator(99), NewInt(1), NewInt(1))
		assert.True(t, errors.As(err, &unsupported))
	})
}
