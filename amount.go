package monetary

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

var (
	errAmountOverflow   = errors.New("amount overflow")
	errCurrencyMismatch = errors.New("currency mismatch")
	errScaleRange       = errors.New("scale out of range")
)

// Amount is a decimal value denominated in a [Currency].
// The value always has at least as many digits after the decimal point as the
// currency scale, so "USD 10.5" is held as 10.50.
// The zero value is "XXX 0".
// Amounts are immutable values and may be shared between goroutines.
type Amount struct {
	curr  Currency
	value decimal.Decimal
}

// newAmountUnsafe skips padding; d must already have the currency scale.
func newAmountUnsafe(c Currency, d decimal.Decimal) Amount {
	return Amount{curr: c, value: d}
}

// newAmountSafe pads d to the currency scale.
func newAmountSafe(c Currency, d decimal.Decimal) (Amount, error) {
	if d.Scale() < c.Scale() {
		d = d.Pad(c.Scale())
		if d.Scale() < c.Scale() {
			return Amount{}, fmt.Errorf("padding %v to %v digits: %w", d, c.Scale(), errAmountOverflow)
		}
	}
	return newAmountUnsafe(c, d), nil
}

// NewAmount returns the amount coef / 10^scale in the currency with the given code.
//
// NewAmount fails if the code is unknown, the scale is outside
// [0, decimal.MaxScale] or the value does not fit once padded to the
// currency scale.
func NewAmount(curr string, coef int64, scale int) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.New(coef, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("creating decimal: %w", err)
	}
	a, err := newAmountSafe(c, d)
	if err != nil {
		return Amount{}, fmt.Errorf("creating amount: %w", err)
	}
	return a, nil
}

// MustNewAmount is like [NewAmount] but panics on error.
func MustNewAmount(curr string, coef int64, scale int) Amount {
	a, err := NewAmount(curr, coef, scale)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%q, %v, %v) failed: %v", curr, coef, scale, err))
	}
	return a
}

// NewAmountFromDecimal pads amount to the scale of curr.
// It is the constructor of [StandardVariant].
func NewAmountFromDecimal(curr Currency, amount decimal.Decimal) (Amount, error) {
	return newAmountSafe(curr, amount)
}

// ParseAmount parses a currency code such as "USD" or "840" and a decimal
// such as "10.5".
func ParseAmount(curr, amount string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.ParseExact(amount, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newAmountSafe(c, d)
}

// MustParseAmount is like [ParseAmount] but panics on error.
// Handy for package-level variables and tests.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the value without the currency.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsNeg reports whether a < 0.
func (a Amount) IsNeg() bool {
	return a.value.IsNeg()
}

// IsZero reports whether a = 0.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Scale returns the number of digits after the decimal point.
func (a Amount) Scale() int {
	return a.value.Scale()
}

// SameCurr reports whether a and b have the same currency.
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// Add returns a + b.
// It fails if the currencies differ or the sum overflows.
func (a Amount) Add(b Amount) (Amount, error) {
	return a.combine(b, "+", decimal.Decimal.AddExact)
}

// Sub returns a - b.
// It fails if the currencies differ or the difference overflows.
func (a Amount) Sub(b Amount) (Amount, error) {
	return a.combine(b, "-", decimal.Decimal.SubExact)
}

func (a Amount) combine(b Amount, op string, f func(d, e decimal.Decimal, scale int) (decimal.Decimal, error)) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v %v %v]: %w", a, op, b, errCurrencyMismatch)
	}
	d, err := f(a.value, b.value, a.curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v %v %v]: %w", a, op, b, err)
	}
	return newAmountSafe(a.curr, d)
}

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
// It fails if the currencies differ.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, errCurrencyMismatch)
	}
	return a.value.Cmp(b.value), nil
}

// Equal returns true if amounts have the same currency and numerically equal
// values. Unlike the == operator, Equal ignores differences in scale,
// so "USD 1.5" and "USD 1.50" are equal.
func (a Amount) Equal(b Amount) bool {
	return a.SameCurr(b) && a.Decimal().Cmp(b.Decimal()) == 0
}

// RoundToCurr rounds half to even to the scale of the currency.
// It is the rounding of [RoundedVariant].
func (a Amount) RoundToCurr() Amount {
	c := a.curr
	return newAmountUnsafe(c, a.value.Round(c.Scale()).Pad(c.Scale()))
}

// RoundHalfUp returns an amount rounded to the specified number of digits after
// the decimal point using [rounding half away from zero]: the magnitude is
// rounded half up and the sign is restored afterwards, so 0.125 becomes 0.13
// and -0.125 becomes -0.13.
// If the scale is less than the scale of the currency, the result is
// zero-padded to the scale of the currency.
//
// RoundHalfUp returns an error if the scale is out of range or the rounded
// value overflows.
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func (a Amount) RoundHalfUp(scale int) (Amount, error) {
	d, err := roundHalfUp(a.value, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("rounding %v to %v digits: %w", a, scale, err)
	}
	return newAmountSafe(a.curr, d)
}

// roundHalfUp rounds the magnitude of d half up to the given scale and
// restores the sign. The result always has exactly the given scale.
func roundHalfUp(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	if scale < 0 || scale > decimal.MaxScale {
		return decimal.Decimal{}, errScaleRange
	}
	if d.Scale() > scale {
		t := d.Trunc(scale)
		r, err := d.Sub(t)
		if err != nil {
			return decimal.Decimal{}, err
		}
		// Discarded digits are at least one half of the last kept digit
		if r.CmpAbs(decimal.MustNew(5, scale+1)) >= 0 {
			ulp := t.ULP().CopySign(d)
			t, err = t.Add(ulp)
			if err != nil {
				return decimal.Decimal{}, err
			}
		}
		d = t
	}
	d = d.Pad(scale)
	if d.Scale() != scale {
		return decimal.Decimal{}, errAmountOverflow
	}
	return d, nil
}

// String returns the code and the exact value, e.g. "USD 10.505".
// For the canonical text see [TextFormat].
func (a Amount) String() string {
	return a.Curr().Code() + " " + a.Decimal().String()
}
