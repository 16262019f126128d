package monetary

import (
	"errors"
	"fmt"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency unit.
// The zero value is [XXX], which indicates an unknown currency.
//
// Currency is implemented as an integer index into an in-memory array that
// stores properties defined by [ISO 4217], such as code and scale.
// Two currencies are equal if and only if their codes are equal.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency uint8

var errInvalidCurrency = errors.New("invalid currency")

// ParseCurr resolves a currency code to a currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns an error if the string does not represent a known currency.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return XXX, fmt.Errorf("%w: %q", errInvalidCurrency, curr)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics on error.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// String returns the alphabetic code, same as [Currency.Code].
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalText accepts every form understood by [ParseCurr].
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText returns the alphabetic code.
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scale returns the number of digits of the minor unit: 2 for USD (cents),
// 0 for JPY, 3 for OMR.
func (c Currency) Scale() int {
	if int(c) >= len(scaleLookup) {
		return 0
	}
	return int(scaleLookup[c])
}

// Num returns the numeric ISO 4217 code, e.g. "840".
func (c Currency) Num() string {
	if int(c) >= len(numLookup) {
		return numLookup[XXX]
	}
	return numLookup[c]
}

// Code returns the alphabetic ISO 4217 code, e.g. "USD".
// Values outside the currency table report "XXX".
func (c Currency) Code() string {
	if int(c) >= len(codeLookup) {
		return codeLookup[XXX]
	}
	return codeLookup[c]
}
