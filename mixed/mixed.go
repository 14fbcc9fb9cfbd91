// Package mixed provides exact mixed-number arithmetic ("3 1/2") backed
// by math/big rationals. Numbers are immutable; every operation returns a
// new value.
package mixed

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Sentinel errors for construction and arithmetic.
var (
	ErrZeroDenominator = errors.New("zero denominator")
	ErrDivideByZero    = errors.New("division by zero")
	ErrMalformed       = errors.New("malformed mixed number")
)

// Number is an exact rational presented as a mixed number: a whole part
// plus a proper fraction, e.g. "3 1/2" for 7/2. The zero value is 0.
type Number struct {
	rat *big.Rat
}

// value returns the backing rational, treating the zero Number as 0.
func (n Number) value() *big.Rat {
	if n.rat == nil {
		return new(big.Rat)
	}

	return n.rat
}

// New creates a mixed number whole + num/den. The sign of whole applies to
// the fraction too: New(-3, 1, 2) is -(3 + 1/2) = -7/2, matching how mixed
// numbers are read. Returns ErrZeroDenominator if den is 0.
func New(whole, num, den int64) (Number, error) {
	if den == 0 {
		return Number{}, ErrZeroDenominator
	}

	frac := big.NewRat(num, den)
	frac.Abs(frac)

	out := new(big.Rat).SetInt64(whole)
	if whole < 0 {
		out.Sub(out, frac)
	} else {
		out.Add(out, frac)
	}

	return Number{rat: out}, nil
}

// FromInt creates a whole mixed number.
func FromInt(whole int64) Number {
	return Number{rat: new(big.Rat).SetInt64(whole)}
}

// FromRat creates a mixed number from a rational. The value is copied.
func FromRat(r *big.Rat) Number {
	return Number{rat: new(big.Rat).Set(r)}
}

// Parse reads a mixed number from one of the forms "3", "1/2", "3 1/2" or
// "-3 1/2". In the last form the sign applies to the whole value.
func Parse(s string) (Number, error) {
	fields := strings.Fields(s)

	switch len(fields) {
	case 1:
		rat, ok := new(big.Rat).SetString(fields[0])
		if !ok {
			return Number{}, fmt.Errorf("%w: %q", ErrMalformed, s)
		}

		return Number{rat: rat}, nil
	case 2:
		whole, ok := new(big.Rat).SetString(fields[0])
		if !ok || !whole.IsInt() {
			return Number{}, fmt.Errorf("%w: %q", ErrMalformed, s)
		}

		frac, ok := new(big.Rat).SetString(fields[1])
		if !ok || frac.Sign() < 0 {
			return Number{}, fmt.Errorf("%w: %q", ErrMalformed, s)
		}

		neg := strings.HasPrefix(fields[0], "-")

		out := whole
		if neg {
			out.Sub(out, frac)
		} else {
			out.Add(out, frac)
		}

		return Number{rat: out}, nil
	default:
		return Number{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
}

// Add returns n + other.
func (n Number) Add(other Number) Number {
	return Number{rat: new(big.Rat).Add(n.value(), other.value())}
}

// Sub returns n - other.
func (n Number) Sub(other Number) Number {
	return Number{rat: new(big.Rat).Sub(n.value(), other.value())}
}

// Mul returns n * other.
func (n Number) Mul(other Number) Number {
	return Number{rat: new(big.Rat).Mul(n.value(), other.value())}
}

// Div returns n / other, or ErrDivideByZero if other is zero.
func (n Number) Div(other Number) (Number, error) {
	if other.value().Sign() == 0 {
		return Number{}, ErrDivideByZero
	}

	return Number{rat: new(big.Rat).Quo(n.value(), other.value())}, nil
}

// Neg returns -n.
func (n Number) Neg() Number {
	return Number{rat: new(big.Rat).Neg(n.value())}
}

// Cmp compares n and other, returning -1, 0 or +1.
func (n Number) Cmp(other Number) int {
	return n.value().Cmp(other.value())
}

// IsZero returns true if n is exactly zero.
func (n Number) IsZero() bool {
	return n.value().Sign() == 0
}

// Rat returns a copy of the backing rational.
func (n Number) Rat() *big.Rat {
	return new(big.Rat).Set(n.value())
}

// Float64 returns the nearest float64 and whether it is exact.
func (n Number) Float64() (float64, bool) {
	return n.value().Float64()
}

// Parts splits n into its whole part and proper fraction numerator and
// denominator. The whole part carries the sign; the fraction is always
// non-negative with 0 <= num < den. Parts of -7/2 are (-3, 1, 2).
func (n Number) Parts() (whole, num, den *big.Int) {
	rat := n.value()

	whole = new(big.Int).Quo(rat.Num(), rat.Denom())

	rem := new(big.Int).Rem(rat.Num(), rat.Denom())
	rem.Abs(rem)

	return whole, rem, new(big.Int).Set(rat.Denom())
}

// String renders n as a mixed number: "3 1/2", "-3 1/2", "1/2" or "3".
func (n Number) String() string {
	rat := n.value()
	whole, num, den := n.Parts()

	if num.Sign() == 0 {
		return whole.String()
	}

	if whole.Sign() == 0 {
		if rat.Sign() < 0 {
			return fmt.Sprintf("-%s/%s", num, den)
		}

		return fmt.Sprintf("%s/%s", num, den)
	}

	return fmt.Sprintf("%s %s/%s", whole, num, den)
}
