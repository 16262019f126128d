package monetary

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

// RoundingKind classifies a [Rounding].
type RoundingKind int8

const (
	StandardRounding RoundingKind = iota + 1 // rounding to the minor unit
	CashRounding                             // rounding to circulating denominations
	CustomRounding                           // named rounding requested by id
)

func (k RoundingKind) String() string {
	switch k {
	case StandardRounding:
		return "standard"
	case CashRounding:
		return "cash"
	case CustomRounding:
		return "custom"
	default:
		return fmt.Sprintf("RoundingKind(%d)", int8(k))
	}
}

var (
	errInvalidRounding = errors.New("invalid rounding")
	errInvalidStep     = errors.New("cash step must be positive")
)

// Rounding is a pure adjustment of monetary amounts.
// Applying a rounding never changes the currency of the amount.
// The zero value is not a valid rounding, see [Rounding.IsZero].
// Rounding is immutable and safe for concurrent use by multiple goroutines.
type Rounding struct {
	kind RoundingKind
	name string
	fn   func(Amount) (Amount, error)
}

// NewCustomRounding wraps fn as a rounding of kind [CustomRounding].
// The currency of the amount returned by fn is replaced by the currency of
// its input.
func NewCustomRounding(name string, fn func(Amount) (Amount, error)) Rounding {
	return Rounding{kind: CustomRounding, name: name, fn: fn}
}

// NewMinorRounding returns a standard rounding to the given number of digits
// after the decimal point using half-up rounding of the magnitude.
// See also method [Amount.RoundHalfUp].
func NewMinorRounding(scale int) Rounding {
	return Rounding{
		kind: StandardRounding,
		name: fmt.Sprintf("minor/%v", scale),
		fn: func(a Amount) (Amount, error) {
			return a.RoundHalfUp(scale)
		},
	}
}

// NewCashRounding returns a rounding onto a grid of cash denominations.
// The amount is first rounded half up to scale digits, then moved to a
// multiple of step: if the remainder above the lower grid line is at least
// threshold the amount is rounded up to the next multiple, otherwise it is
// rounded down.
//
// For Swiss francs with 5 centime coins the parameters are scale 2, step 0.05
// and threshold 0.03, so 10.02 becomes 10.00 and 10.03 becomes 10.05.
//
// NewCashRounding returns an error if step is not positive or threshold is
// not within [0, step].
func NewCashRounding(scale int, step, threshold decimal.Decimal) (Rounding, error) {
	if !step.IsPos() {
		return Rounding{}, fmt.Errorf("cash rounding %v: %w", step, errInvalidStep)
	}
	if threshold.IsNeg() || threshold.Cmp(step) > 0 {
		return Rounding{}, fmt.Errorf("cash rounding %v: threshold %v is not within [0, %v]", step, threshold, step)
	}
	if scale < 0 || scale > decimal.MaxScale {
		return Rounding{}, fmt.Errorf("cash rounding %v: %w", step, errScaleRange)
	}
	return Rounding{
		kind: CashRounding,
		name: fmt.Sprintf("cash/%v", step),
		fn: func(a Amount) (Amount, error) {
			return roundCash(a, scale, step, threshold)
		},
	}, nil
}

// MustNewCashRounding is like [NewCashRounding] but panics if the parameters
// are invalid.
func MustNewCashRounding(scale int, step, threshold decimal.Decimal) Rounding {
	r, err := NewCashRounding(scale, step, threshold)
	if err != nil {
		panic(fmt.Sprintf("NewCashRounding(%v, %v, %v) failed: %v", scale, step, threshold, err))
	}
	return r
}

// CHFCashRounding returns the cash rounding of Swiss francs: amounts are
// rounded to centimes and then to multiples of 0.05.
func CHFCashRounding() Rounding {
	return MustNewCashRounding(2, decimal.MustNew(5, 2), decimal.MustNew(3, 2))
}

func roundCash(a Amount, scale int, step, threshold decimal.Decimal) (Amount, error) {
	base, err := roundHalfUp(a.Decimal(), scale)
	if err != nil {
		return Amount{}, fmt.Errorf("rounding %v to %v digits: %w", a, scale, err)
	}
	// Remainder above the grid line at or below base, always in [0, step)
	_, rem, err := base.QuoRem(step)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v mod %v]: %w", base, step, err)
	}
	if rem.IsNeg() {
		rem, err = rem.Add(step)
		if err != nil {
			return Amount{}, err
		}
	}
	var d decimal.Decimal
	switch {
	case rem.IsZero():
		d = base
	case rem.Cmp(threshold) >= 0:
		var up decimal.Decimal
		up, err = step.Sub(rem)
		if err == nil {
			d, err = base.Add(up)
		}
	default:
		d, err = base.Sub(rem)
	}
	if err != nil {
		return Amount{}, fmt.Errorf("rounding %v to %v: %w", a, step, err)
	}
	d = d.Trim(scale).Pad(scale)
	return newAmountSafe(a.Curr(), d)
}

// NewFixedRounding returns a rounding that replaces every amount with
// value in the currency of the amount.
func NewFixedRounding(name string, value decimal.Decimal) Rounding {
	return NewCustomRounding(name, func(a Amount) (Amount, error) {
		return NewAmountFromDecimal(a.Curr(), value)
	})
}

// Kind returns the kind of the rounding.
func (r Rounding) Kind() RoundingKind {
	return r.kind
}

// Name returns the name of the rounding.
func (r Rounding) Name() string {
	return r.name
}

// IsZero returns true if r is the zero value, which cannot be applied.
func (r Rounding) IsZero() bool {
	return r.fn == nil
}

// tag returns a copy of r with the given kind and, if not empty, name.
func (r Rounding) tag(k RoundingKind, name string) Rounding {
	r.kind = k
	if name != "" {
		r.name = name
	}
	return r
}

// Apply returns the rounded amount.
//
// Apply returns an error if the rounding is the zero value or if the rounded
// value cannot be represented.
func (r Rounding) Apply(a Amount) (Amount, error) {
	if r.IsZero() {
		return Amount{}, fmt.Errorf("applying rounding to %v: %w", a, errInvalidRounding)
	}
	b, err := r.fn(a)
	if err != nil {
		return Amount{}, fmt.Errorf("applying %v rounding %q: %w", r.kind, r.name, err)
	}
	if !b.SameCurr(a) {
		return newAmountSafe(a.Curr(), b.Decimal())
	}
	return b, nil
}

// MustApply is like [Rounding.Apply] but panics if the rounding fails.
func (r Rounding) MustApply(a Amount) Amount {
	b, err := r.Apply(a)
	if err != nil {
		panic(fmt.Sprintf("%q.Apply(%v) failed: %v", r.name, a, err))
	}
	return b
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rounding) String() string {
	return r.kind.String() + ":" + r.name
}
