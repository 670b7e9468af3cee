package operator

import "fmt"

// Operator is a binary operator of the expression language.
type Operator int

const (
	Equal Operator = iota
	NotEqual
	LessThan
	GreaterThan
	LessThanOrEqual
	GreaterThanOrEqual
	Contains
	NotContains
	Plus
	Minus
	Multiply
	Divide
	In
	And
	Or

	operatorCount
)

var symbols = [operatorCount]string{
	Equal:              "==",
	NotEqual:           "!=",
	LessThan:           "<",
	GreaterThan:        ">",
	LessThanOrEqual:    "<=",
	GreaterThanOrEqual: ">=",
	Contains:           "=~",
	NotContains:        "!~",
	Plus:               "+",
	Minus:              "-",
	Multiply:           "*",
	Divide:             "/",
	In:                 "in",
	And:                "&&",
	Or:                 "||",
}

// aliases accepted by Parse in addition to the canonical symbols
var aliases = map[string]Operator{
	"in:": In,
}

var bySymbol = func() map[string]Operator {
	m := make(map[string]Operator, len(symbols)+len(aliases))
	for op, sym := range symbols {
		m[sym] = Operator(op)
	}
	for sym, op := range aliases {
		m[sym] = op
	}
	return m
}()

// All returns every operator in declaration order.
func All() []Operator {
	ops := make([]Operator, 0, operatorCount)
	for op := Operator(0); op < operatorCount; op++ {
		ops = append(ops, op)
	}
	return ops
}

// Valid reports whether op is a member of the enumeration.
func (op Operator) Valid() bool {
	return op >= 0 && op < operatorCount
}

func (op Operator) String() string {
	if !op.Valid() {
		return fmt.Sprintf("operator(%d)", int(op))
	}
	return symbols[op]
}

// IsComparison reports whether op orders or equates its operands.
func (op Operator) IsComparison() bool {
	switch op {
	case Equal, NotEqual, LessThan, GreaterThan, LessThanOrEqual, GreaterThanOrEqual:
		return true
	}
	return false
}

func (op Operator) IsArithmetic() bool {
	switch op {
	case Plus, Minus, Multiply, Divide:
		return true
	}
	return false
}

func (op Operator) IsContainment() bool {
	switch op {
	case Contains, NotContains, In:
		return true
	}
	return false
}

func (op Operator) IsLogical() bool {
	return op == And || op == Or
}

// UnknownOperatorError is returned by Parse for symbols outside the table.
type UnknownOperatorError struct {
	Symbol string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator: %q", e.Symbol)
}

// Parse maps a source symbol such as "=~" to its Operator.
func Parse(symbol string) (Operator, error) {
	if op, ok := bySymbol[symbol]; ok {
		return op, nil
	}
	return 0, &UnknownOperatorError{Symbol: symbol}
}
