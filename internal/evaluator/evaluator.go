// Package evaluator applies binary operators to already-computed values.
package evaluator

import (
	"github.com/funvibe/shellexpr/internal/operator"
	"github.com/funvibe/shellexpr/internal/value"
)

// Comparator orders two values for the six comparison operators.
type Comparator interface {
	Compare(op operator.Operator, left, right value.Value) (bool, error)
}

// Calculator combines two values for the four arithmetic operators.
type Calculator interface {
	Compute(op operator.Operator, left, right value.Value) (value.Value, error)
}

// ComparatorFunc adapts a function to Comparator.
type ComparatorFunc func(op operator.Operator, left, right value.Value) (bool, error)

func (f ComparatorFunc) Compare(op operator.Operator, left, right value.Value) (bool, error) {
	return f(op, left, right)
}

// CalculatorFunc adapts a function to Calculator.
type CalculatorFunc func(op operator.Operator, left, right value.Value) (value.Value, error)

func (f CalculatorFunc) Compute(op operator.Operator, left, right value.Value) (value.Value, error) {
	return f(op, left, right)
}

// Evaluator holds the collaborators used for comparison and arithmetic.
// It keeps no state between calls and is safe for concurrent use as long as
// its fields are not reassigned.
type Evaluator struct {
	Comparator Comparator
	Calculator Calculator
}

// New returns an Evaluator backed by value.Compare and value.Compute.
func New() *Evaluator {
	return &Evaluator{
		Comparator: ComparatorFunc(value.Compare),
		Calculator: CalculatorFunc(value.Compute),
	}
}

var defaultEvaluator = New()

// Apply evaluates left op right with the default collaborators.
func Apply(op operator.Operator, left, right value.Value) (value.Value, error) {
	return defaultEvaluator.Apply(op, left, right)
}
