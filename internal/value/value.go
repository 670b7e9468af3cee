// Package value is the dynamic value model of the shell expression language.
//
// Every runtime datum is a Value carrying a Kind tag. The set of concrete
// types is closed: only types declared in this package implement Value.
package value

import "fmt"

// Kind identifies the runtime value category.
type Kind int

const (
	KindNothing Kind = iota
	KindInt
	KindDecimal
	KindFilesize
	KindString
	KindLine
	KindPath
	KindBoolean
	KindDate
	KindDuration
	KindBinary
	KindUuid
	KindRow
	KindTable

	kindCount
)

// String returns the user-facing type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindInt:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindFilesize:
		return "bytes"
	case KindString:
		return "string"
	case KindLine:
		return "line"
	case KindPath:
		return "path"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindDuration:
		return "duration"
	case KindBinary:
		return "binary"
	case KindUuid:
		return "uuid"
	case KindRow:
		return "row"
	case KindTable:
		return "table"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
	sealed()
}

// Text is implemented by the string-like kinds (String and Line). The two
// differ only in how they are rendered by the shell; containment and
// comparison treat them alike.
type Text interface {
	Value
	Text() string
}

// TypeName returns the type name of v. A nil Value is reported as nothing.
func TypeName(v Value) string {
	if v == nil {
		return KindNothing.String()
	}
	return v.Kind().String()
}

// AsBool interprets v as a canonical Boolean. No other kind is truthy.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Boolean)
	return bool(b), ok
}
