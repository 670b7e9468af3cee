package value

import (
	"math"
	"math/big"
	"time"

	"github.com/funvibe/shellexpr/internal/operator"
)

// Compute applies one of the four arithmetic operators.
func Compute(op operator.Operator, left, right Value) (Value, error) {
	if !op.IsArithmetic() {
		return nil, &UnsupportedOperatorError{Operator: op.String(), Unit: "arithmetic"}
	}

	switch l := left.(type) {
	case Int:
		switch r := right.(type) {
		case Int:
			return intArith(op, l.big(), r.big(), left, right)
		case Decimal:
			return ratArith(op, new(big.Rat).SetInt(l.big()), r.rat(), left, right)
		case Filesize:
			if op == operator.Multiply {
				return scaleFilesize(r, l.big())
			}
		}
	case Decimal:
		switch r := right.(type) {
		case Int:
			return ratArith(op, l.rat(), new(big.Rat).SetInt(r.big()), left, right)
		case Decimal:
			return ratArith(op, l.rat(), r.rat(), left, right)
		}
	case Filesize:
		switch r := right.(type) {
		case Filesize:
			return filesizeArith(op, l, r, left, right)
		case Int:
			switch op {
			case operator.Multiply:
				return scaleFilesize(l, r.big())
			case operator.Divide:
				return divideFilesize(l, r.big())
			}
		}
	case Date:
		switch r := right.(type) {
		case Date:
			if op == operator.Minus {
				// Sub saturates at the Duration bounds.
				d := l.t.Sub(r.t)
				if !r.t.Add(d).Equal(l.t) {
					return nil, ErrDurationOverflow
				}
				return Duration(d), nil
			}
		case Duration:
			switch op {
			case operator.Plus:
				return Date{t: l.t.Add(time.Duration(r))}, nil
			case operator.Minus:
				if r == math.MinInt64 {
					return nil, ErrDurationOverflow
				}
				return Date{t: l.t.Add(-time.Duration(r))}, nil
			}
		}
	case Duration:
		if r, ok := right.(Duration); ok {
			switch op {
			case operator.Plus:
				return addDurations(l, r)
			case operator.Minus:
				if r == math.MinInt64 {
					return nil, ErrDurationOverflow
				}
				return addDurations(l, -r)
			}
		}
	case Text:
		if r, ok := right.(Text); ok && op == operator.Plus {
			if _, lineL := l.(Line); lineL {
				if _, lineR := r.(Line); lineR {
					return Line(l.Text() + r.Text()), nil
				}
			}
			return String(l.Text() + r.Text()), nil
		}
	}

	return nil, Mismatch(left, right)
}

func intArith(op operator.Operator, x, y *big.Int, left, right Value) (Value, error) {
	switch op {
	case operator.Plus:
		return Int{v: new(big.Int).Add(x, y)}, nil
	case operator.Minus:
		return Int{v: new(big.Int).Sub(x, y)}, nil
	case operator.Multiply:
		return Int{v: new(big.Int).Mul(x, y)}, nil
	case operator.Divide:
		if y.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		q, m := new(big.Int).QuoRem(x, y, new(big.Int))
		if m.Sign() == 0 {
			return Int{v: q}, nil
		}
		return Decimal{v: new(big.Rat).SetFrac(x, y)}, nil
	}
	return nil, Mismatch(left, right)
}

func ratArith(op operator.Operator, x, y *big.Rat, left, right Value) (Value, error) {
	switch op {
	case operator.Plus:
		return Decimal{v: new(big.Rat).Add(x, y)}, nil
	case operator.Minus:
		return Decimal{v: new(big.Rat).Sub(x, y)}, nil
	case operator.Multiply:
		return Decimal{v: new(big.Rat).Mul(x, y)}, nil
	case operator.Divide:
		if y.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return Decimal{v: new(big.Rat).Quo(x, y)}, nil
	}
	return nil, Mismatch(left, right)
}

func filesizeArith(op operator.Operator, x, y Filesize, left, right Value) (Value, error) {
	switch op {
	case operator.Plus:
		if x > math.MaxUint64-y {
			return nil, ErrFilesizeOverflow
		}
		return x + y, nil
	case operator.Minus:
		if y > x {
			return nil, ErrNegativeFilesize
		}
		return x - y, nil
	}
	return nil, Mismatch(left, right)
}

func addDurations(x, y Duration) (Value, error) {
	if (y > 0 && x > math.MaxInt64-y) || (y < 0 && x < math.MinInt64-y) {
		return nil, ErrDurationOverflow
	}
	return x + y, nil
}

func scaleFilesize(size Filesize, factor *big.Int) (Value, error) {
	if factor.Sign() < 0 {
		return nil, ErrNegativeFilesize
	}
	p := new(big.Int).Mul(new(big.Int).SetUint64(uint64(size)), factor)
	if !p.IsUint64() {
		return nil, ErrFilesizeOverflow
	}
	return Filesize(p.Uint64()), nil
}

func divideFilesize(size Filesize, divisor *big.Int) (Value, error) {
	switch divisor.Sign() {
	case 0:
		return nil, ErrDivisionByZero
	case -1:
		return nil, ErrNegativeFilesize
	}
	q := new(big.Int).Quo(new(big.Int).SetUint64(uint64(size)), divisor)
	return Filesize(q.Uint64()), nil
}
