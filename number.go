package safeexpr

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Number is the result of evaluating an expression: either an exact
// arbitrary-precision integer or an arbitrary-precision floating-point
// value. Integer arithmetic stays exact at any magnitude; an operation
// involving a floating-point operand, and true division always, produces
// a floating-point result.
type Number struct {
	i *big.Int
	f *big.Float
}

func intNumber(i *big.Int) Number {
	return Number{i: i}
}

func floatNumber(f *big.Float) Number {
	return Number{f: f}
}

// IsInt reports whether the number is an exact integer.
func (n Number) IsInt() bool {
	return n.i != nil
}

// Int returns a copy of the value as an arbitrary-precision integer. The
// second result is false if the number is not an exact integer.
func (n Number) Int() (*big.Int, bool) {
	if n.i == nil {
		return nil, false
	}
	return new(big.Int).Set(n.i), true
}

// Float returns a copy of the value as a floating-point number with the
// given precision in bits.
func (n Number) Float(prec uint) *big.Float {
	if n.i != nil {
		return new(big.Float).SetPrec(prec).SetInt(n.i)
	}
	return new(big.Float).SetPrec(prec).Set(n.f)
}

// Float64 returns the value as a float64, rounded if necessary.
func (n Number) Float64() float64 {
	f, _ := n.Float(64).Float64()
	return f
}

// String formats the number: integers exactly, floating-point values in
// shortest 'g' form.
func (n Number) String() string {
	if n.i != nil {
		return n.i.String()
	}
	return n.f.Text('g', -1)
}

func (n Number) sign() int {
	if n.i != nil {
		return n.i.Sign()
	}
	return n.f.Sign()
}

func add(x, y Number, prec uint) (Number, error) {
	if x.i != nil && y.i != nil {
		return intNumber(new(big.Int).Add(x.i, y.i)), nil
	}
	return floatNumber(new(big.Float).SetPrec(prec).Add(x.Float(prec), y.Float(prec))), nil
}

func sub(x, y Number, prec uint) (Number, error) {
	if x.i != nil && y.i != nil {
		return intNumber(new(big.Int).Sub(x.i, y.i)), nil
	}
	return floatNumber(new(big.Float).SetPrec(prec).Sub(x.Float(prec), y.Float(prec))), nil
}

func mul(x, y Number, prec uint) (Number, error) {
	if x.i != nil && y.i != nil {
		return intNumber(new(big.Int).Mul(x.i, y.i)), nil
	}
	return floatNumber(new(big.Float).SetPrec(prec).Mul(x.Float(prec), y.Float(prec))), nil
}

// quo is true division: the result is floating-point even for integer
// operands.
func quo(x, y Number, prec uint) (Number, error) {
	if y.sign() == 0 {
		return Number{}, &DivisionByZeroError{}
	}
	return floatNumber(new(big.Float).SetPrec(prec).Quo(x.Float(prec), y.Float(prec))), nil
}

// floorDiv divides and rounds the quotient toward negative infinity.
func floorDiv(x, y Number, prec uint) (Number, error) {
	if y.sign() == 0 {
		return Number{}, &DivisionByZeroError{}
	}
	if x.i != nil && y.i != nil {
		q, r := new(big.Int).QuoRem(x.i, y.i, new(big.Int))
		if r.Sign() != 0 && (r.Sign() < 0) != (y.i.Sign() < 0) {
			q.Sub(q, big.NewInt(1))
		}
		return intNumber(q), nil
	}
	q := new(big.Float).SetPrec(prec).Quo(x.Float(prec), y.Float(prec))
	return floatNumber(floorBig(q, prec)), nil
}

// mod is the floor-division remainder; its sign follows the divisor.
func mod(x, y Number, prec uint) (Number, error) {
	if y.sign() == 0 {
		return Number{}, &DivisionByZeroError{}
	}
	if x.i != nil && y.i != nil {
		r := new(big.Int).Rem(x.i, y.i)
		if r.Sign() != 0 && (r.Sign() < 0) != (y.i.Sign() < 0) {
			r.Add(r, y.i)
		}
		return intNumber(r), nil
	}
	// m = x - floor(x/y)*y
	xf, yf := x.Float(prec), y.Float(prec)
	q := floorBig(new(big.Float).SetPrec(prec).Quo(xf, yf), prec)
	m := new(big.Float).SetPrec(prec).Sub(xf, q.Mul(q, yf))
	return floatNumber(m), nil
}

// pow is exponentiation. An integer base raised to a non-negative integer
// exponent is exact; every other combination is floating-point. A negative
// base requires an integer-valued exponent, since real-valued rules would
// need a complex result otherwise.
func pow(x, y Number, prec uint) (Number, error) {
	if x.i != nil && y.i != nil && y.i.Sign() >= 0 {
		return intNumber(new(big.Int).Exp(x.i, y.i, nil)), nil
	}
	xf, yf := x.Float(prec), y.Float(prec)
	switch {
	case yf.Sign() == 0:
		return floatNumber(new(big.Float).SetPrec(prec).SetInt64(1)), nil
	case xf.Sign() == 0:
		if yf.Sign() < 0 {
			return Number{}, &DomainError{Reason: "zero cannot be raised to a negative power"}
		}
		return floatNumber(new(big.Float).SetPrec(prec)), nil
	case xf.Sign() < 0:
		if !yf.IsInt() {
			return Number{}, &DomainError{Reason: "fractional power of a negative base"}
		}
		mag := new(big.Float).SetPrec(prec)
		bigfloat.Pow(mag, new(big.Float).SetPrec(prec).Neg(xf), yf)
		yi, _ := yf.Int(nil)
		if yi.Bit(0) == 1 {
			mag.Neg(mag)
		}
		return floatNumber(mag), nil
	default:
		z := new(big.Float).SetPrec(prec)
		bigfloat.Pow(z, xf, yf)
		return floatNumber(z), nil
	}
}

func neg(n Number) (Number, error) {
	if n.i != nil {
		return intNumber(new(big.Int).Neg(n.i)), nil
	}
	return floatNumber(new(big.Float).SetPrec(n.f.Prec()).Neg(n.f)), nil
}

func pos(n Number) (Number, error) {
	return n, nil
}

// floorBig rounds f toward negative infinity and returns the result as a
// float of the given precision.
func floorBig(f *big.Float, prec uint) *big.Float {
	i, acc := f.Int(nil)
	if f.Signbit() && acc != big.Exact {
		i.Sub(i, big.NewInt(1))
	}
	return new(big.Float).SetPrec(prec).SetInt(i)
}
