package monetary

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/govalues/decimal"
)

// ConfigKeyFormatOrder is the configuration key holding the [FormatOrder]
// used by [TextFormat.Format].
const ConfigKeyFormatOrder = "toStringFormatOrder"

// FormatScale is the number of digits after the decimal point in the
// canonical text format.
const FormatScale = 2

var (
	// ErrMalformedText is returned by [TextFormat.Parse] when the text does not
	// consist of exactly two tokens separated by a single space.
	ErrMalformedText = errors.New("malformed amount text")
	// ErrUnresolvableAmount is returned by [TextFormat.Parse] when neither
	// token order yields a known currency and a valid decimal.
	ErrUnresolvableAmount = errors.New("unresolvable amount text")
)

// FormatOrder determines the position of the currency code in the
// canonical text format.
type FormatOrder int8

const (
	AmountThenCurrency FormatOrder = iota // "10.50 USD"
	CurrencyThenAmount                    // "USD 10.50"
)

// ParseFormatOrder converts a configuration value to a format order.
// The values "ca", "c-a", "c a", "currency-amount" and "currency amount"
// select [CurrencyThenAmount]; matching is case-sensitive.
// Every other value, including "ac", "a-c", "a c" and the empty string,
// selects [AmountThenCurrency].
func ParseFormatOrder(s string) FormatOrder {
	switch s {
	case "ca", "c-a", "c a", "currency-amount", "currency amount":
		return CurrencyThenAmount
	default:
		return AmountThenCurrency
	}
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (o FormatOrder) String() string {
	if o == CurrencyThenAmount {
		return "currency-amount"
	}
	return "amount-currency"
}

// ParseError describes a failure of [TextFormat.Parse].
// Offset is the zero-based position of the error in Text; no partial
// position diagnosis is attempted, so it is always 0.
type ParseError struct {
	Text   string
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q at offset %v: %v", e.Text, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TextFormat formats amounts as text such as "10.50 USD" and parses such
// text back into amounts.
//
// The amount is rounded to [FormatScale] digits using half-up rounding of
// its magnitude and printed in plain notation with a '.' decimal point.
// Decimals hold at most 19 digits, so values with 18 or more integer digits
// cannot carry two fractional digits; they are rounded half-up to whole
// units instead, e.g. "123456789012345678.9 XXX" is written as
// "123456789012345679 XXX".
// The position of the currency code is read from the configuration key
// [ConfigKeyFormatOrder] on every call.
// Parsing accepts both orders regardless of the configuration.
//
// TextFormat is safe for concurrent use by multiple goroutines.
type TextFormat struct {
	style Variant
	conf  Config
}

// NewTextFormat returns a format that builds parsed amounts with the given
// variant and reads its format order from conf.
// A nil conf behaves as an empty configuration.
func NewTextFormat(style Variant, conf Config) *TextFormat {
	return &TextFormat{style: style, conf: conf}
}

var defaultFormat = NewTextFormat(StandardVariant, nil)

// FormatAmount is a shortcut for formatting with an unconfigured
// [StandardVariant] format, e.g. "10.50 USD".
func FormatAmount(a Amount) string {
	return defaultFormat.Format(&a)
}

// ParseText is a shortcut for parsing with an unconfigured [StandardVariant] format.
func ParseText(text string) (Amount, error) {
	return defaultFormat.Parse(text)
}

// Style returns the variant used to construct parsed amounts.
func (f *TextFormat) Style() Variant {
	return f.style
}

// Order returns the format order currently configured.
func (f *TextFormat) Order() FormatOrder {
	s, _ := lookup(f.conf, ConfigKeyFormatOrder)
	return ParseFormatOrder(s)
}

// Format returns the canonical text of amount a.
// A nil amount is formatted as "null".
func (f *TextFormat) Format(a *Amount) string {
	if a == nil {
		return "null"
	}
	num := formatDecimal(a.Decimal())
	code := a.Curr().Code()
	if f.Order() == CurrencyThenAmount {
		return code + " " + num
	}
	return num + " " + code
}

// formatDecimal rounds d to FormatScale digits and prints it in plain notation.
func formatDecimal(d decimal.Decimal) string {
	r, err := roundHalfUp(d, FormatScale)
	if err != nil {
		// Only 17 integer digits fit at scale 2
		r, err = roundHalfUp(d, 0)
		if err != nil {
			return d.String()
		}
	}
	return r.String()
}

// Print writes the canonical text of amount a to w.
func (f *TextFormat) Print(w io.Writer, a *Amount) error {
	_, err := io.WriteString(w, f.Format(a))
	return err
}

// Parse converts text such as "10.50 USD" or "USD 10.50" to an amount.
// The text must consist of exactly two tokens separated by a single space.
// The amount-then-currency reading is tried first; the currency-then-amount
// reading is tried only if the first one fails.
// The result is constructed with the variant of the format.
//
// Parse returns a [*ParseError] wrapping [ErrMalformedText] or
// [ErrUnresolvableAmount], or the error of the variant constructor.
func (f *TextFormat) Parse(text string) (Amount, error) {
	c, d, err := parseTokens(text)
	if err != nil {
		return Amount{}, &ParseError{Text: text, Err: err}
	}
	a, err := f.style.New(c, d)
	if err != nil {
		return Amount{}, &ParseError{Text: text, Err: err}
	}
	return a, nil
}

func parseTokens(text string) (Currency, decimal.Decimal, error) {
	tokens := strings.Split(text, " ")
	if len(tokens) != 2 {
		return XXX, decimal.Decimal{}, fmt.Errorf("%w: want 2 space-separated tokens, got %v", ErrMalformedText, len(tokens))
	}
	c, d, errA := parsePair(tokens[1], tokens[0])
	if errA == nil {
		return c, d, nil
	}
	c, d, errB := parsePair(tokens[0], tokens[1])
	if errB == nil {
		return c, d, nil
	}
	return XXX, decimal.Decimal{}, fmt.Errorf("%w: %v; %v", ErrUnresolvableAmount, errA, errB)
}

func parsePair(curr, amount string) (Currency, decimal.Decimal, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return XXX, decimal.Decimal{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return XXX, decimal.Decimal{}, fmt.Errorf("parsing amount: %w", err)
	}
	return c, d, nil
}
