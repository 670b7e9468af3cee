package value

import (
	"bytes"
)

// Equal performs a deep structural equality check. Values of different kinds
// are never equal, so Int 3 and Decimal 3 differ here even though Compare
// orders them as equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch aVal := a.(type) {
	case Nothing:
		return true
	case Int:
		if bVal, ok := b.(Int); ok {
			return aVal.big().Cmp(bVal.big()) == 0
		}
	case Decimal:
		if bVal, ok := b.(Decimal); ok {
			return aVal.rat().Cmp(bVal.rat()) == 0
		}
	case Filesize:
		if bVal, ok := b.(Filesize); ok {
			return aVal == bVal
		}
	case String:
		if bVal, ok := b.(String); ok {
			return aVal == bVal
		}
	case Line:
		if bVal, ok := b.(Line); ok {
			return aVal == bVal
		}
	case Path:
		if bVal, ok := b.(Path); ok {
			return aVal == bVal
		}
	case Boolean:
		if bVal, ok := b.(Boolean); ok {
			return aVal == bVal
		}
	case Date:
		if bVal, ok := b.(Date); ok {
			return aVal.t.Equal(bVal.t)
		}
	case Duration:
		if bVal, ok := b.(Duration); ok {
			return aVal == bVal
		}
	case Binary:
		if bVal, ok := b.(Binary); ok {
			return bytes.Equal(aVal, bVal)
		}
	case Uuid:
		if bVal, ok := b.(Uuid); ok {
			return aVal == bVal
		}
	case *Row:
		if bVal, ok := b.(*Row); ok {
			if aVal.Len() != bVal.Len() {
				return false
			}
			// Column order is presentation only.
			for _, k := range aVal.keys {
				v2, ok := bVal.values[k]
				if !ok || !Equal(aVal.values[k], v2) {
					return false
				}
			}
			return true
		}
	case Table:
		if bVal, ok := b.(Table); ok {
			if len(aVal) != len(bVal) {
				return false
			}
			for i := range aVal {
				if !Equal(aVal[i], bVal[i]) {
					return false
				}
			}
			return true
		}
	}

	return false
}
