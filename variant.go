package monetary

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

// Variant selects the precision policy used when an amount is constructed
// from a currency and a decimal, for example by [TextFormat.Parse].
// The set of variants is closed; the numeric value is never changed
// by a variant beyond what its policy states.
type Variant int8

const (
	// StandardVariant keeps the exact value and zero-pads it to the scale
	// of the currency. See [NewAmountFromDecimal].
	StandardVariant Variant = iota
	// FastVariant stores the value with exactly [FastScale] digits after
	// the decimal point and rejects values that need more digits.
	FastVariant
	// RoundedVariant rounds the value to the scale of the currency on
	// construction using half-to-even rounding.
	RoundedVariant
)

// FastScale is the fixed number of digits after the decimal point used by
// amounts constructed with [FastVariant].
const FastScale = 5

var (
	errUnknownVariant = errors.New("unknown variant")
	errFastPrecision  = errors.New("too many digits after the decimal point")
)

var variantConstructors = [...]func(Currency, decimal.Decimal) (Amount, error){
	StandardVariant: newAmountSafe,
	FastVariant:     newFastAmount,
	RoundedVariant:  newRoundedAmount,
}

var variantNames = [...]string{
	StandardVariant: "standard",
	FastVariant:     "fast",
	RoundedVariant:  "rounded",
}

// ParseVariant converts a variant name ("standard", "fast" or "rounded")
// to a variant.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if name == s {
			return Variant(v), nil
		}
	}
	return StandardVariant, fmt.Errorf("%w: %q", errUnknownVariant, s)
}

func (v Variant) valid() bool {
	return v >= 0 && int(v) < len(variantConstructors)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Variant) String() string {
	if !v.valid() {
		return fmt.Sprintf("Variant(%d)", int8(v))
	}
	return variantNames[v]
}

// New constructs an amount using the precision policy of the variant.
func (v Variant) New(curr Currency, d decimal.Decimal) (Amount, error) {
	if !v.valid() {
		return Amount{}, fmt.Errorf("constructing amount: %w: %v", errUnknownVariant, v)
	}
	a, err := variantConstructors[v](curr, d)
	if err != nil {
		return Amount{}, fmt.Errorf("constructing %v amount: %w", v, err)
	}
	return a, nil
}

// NewFastAmountFromDecimal returns an amount constructed with [FastVariant].
func NewFastAmountFromDecimal(curr Currency, d decimal.Decimal) (Amount, error) {
	return FastVariant.New(curr, d)
}

// NewRoundedAmountFromDecimal returns an amount constructed with [RoundedVariant].
func NewRoundedAmountFromDecimal(curr Currency, d decimal.Decimal) (Amount, error) {
	return RoundedVariant.New(curr, d)
}

func newFastAmount(c Currency, d decimal.Decimal) (Amount, error) {
	if d.MinScale() > FastScale {
		return Amount{}, fmt.Errorf("%v: %w: %v > %v", d, errFastPrecision, d.MinScale(), FastScale)
	}
	d = d.Trim(FastScale).Pad(FastScale)
	if d.Scale() != FastScale {
		return Amount{}, fmt.Errorf("padding amount: %w", errAmountOverflow)
	}
	return newAmountUnsafe(c, d), nil
}

func newRoundedAmount(c Currency, d decimal.Decimal) (Amount, error) {
	return newAmountSafe(c, d.Round(c.Scale()))
}
