package value

import (
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/google/uuid"
)

var (
	True  = Boolean(true)
	False = Boolean(false)
)

// Nothing is the absent value.
type Nothing struct{}

func (Nothing) Kind() Kind { return KindNothing }
func (Nothing) sealed()    {}

// Int is an arbitrary-precision integer.
type Int struct {
	v *big.Int
}

func NewInt(i int64) Int {
	return Int{v: big.NewInt(i)}
}

// IntFromBig copies b into a new Int.
func IntFromBig(b *big.Int) Int {
	return Int{v: new(big.Int).Set(b)}
}

// ParseInt accepts any base prefix understood by big.Int.SetString with base 0.
func ParseInt(s string) (Int, error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Int{}, fmt.Errorf("invalid integer literal %q", s)
	}
	return Int{v: b}, nil
}

func (Int) Kind() Kind { return KindInt }
func (Int) sealed()    {}

// Big returns a copy of the integer.
func (i Int) Big() *big.Int {
	return new(big.Int).Set(i.big())
}

func (i Int) big() *big.Int {
	if i.v == nil {
		return new(big.Int)
	}
	return i.v
}

func (i Int) String() string { return i.big().String() }

// Decimal is an exact rational number.
type Decimal struct {
	v *big.Rat
}

// NewDecimal returns num/den. It panics if den is zero, like big.NewRat.
func NewDecimal(num, den int64) Decimal {
	return Decimal{v: big.NewRat(num, den)}
}

// DecimalFromRat copies r into a new Decimal.
func DecimalFromRat(r *big.Rat) Decimal {
	return Decimal{v: new(big.Rat).Set(r)}
}

func DecimalFromFloat(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, fmt.Errorf("decimal cannot represent %v", f)
	}
	return Decimal{v: new(big.Rat).SetFloat64(f)}, nil
}

// ParseDecimal parses decimal ("1.25"), exponent ("1e3") or fraction ("1/3") forms.
func ParseDecimal(s string) (Decimal, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Decimal{}, fmt.Errorf("invalid decimal literal %q", s)
	}
	return Decimal{v: r}, nil
}

func (Decimal) Kind() Kind { return KindDecimal }
func (Decimal) sealed()    {}

// Rat returns a copy of the decimal.
func (d Decimal) Rat() *big.Rat {
	return new(big.Rat).Set(d.rat())
}

func (d Decimal) rat() *big.Rat {
	if d.v == nil {
		return new(big.Rat)
	}
	return d.v
}

// Filesize is a byte count.
type Filesize uint64

func (Filesize) Kind() Kind { return KindFilesize }
func (Filesize) sealed()    {}

type String string

func (String) Kind() Kind       { return KindString }
func (String) sealed()          {}
func (s String) Text() string   { return string(s) }
func (s String) String() string { return string(s) }

// Line is a string read from a line-oriented source.
type Line string

func (Line) Kind() Kind       { return KindLine }
func (Line) sealed()          {}
func (l Line) Text() string   { return string(l) }
func (l Line) String() string { return string(l) }

type Path string

func (Path) Kind() Kind { return KindPath }
func (Path) sealed()    {}

type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }
func (Boolean) sealed()    {}

// Date is a point in time.
type Date struct {
	t time.Time
}

func NewDate(t time.Time) Date {
	return Date{t: t}
}

func (Date) Kind() Kind { return KindDate }
func (Date) sealed()    {}

func (d Date) Time() time.Time { return d.t }

type Duration time.Duration

func (Duration) Kind() Kind { return KindDuration }
func (Duration) sealed()    {}

// Binary is an opaque byte string. Callers must not mutate it after construction.
type Binary []byte

func (Binary) Kind() Kind { return KindBinary }
func (Binary) sealed()    {}

type Uuid uuid.UUID

func (Uuid) Kind() Kind { return KindUuid }
func (Uuid) sealed()    {}

func (u Uuid) String() string { return uuid.UUID(u).String() }
