/*
Package monetary implements the canonical text format of monetary amounts
and a registry of rounding policies.
It builds on the [decimal] package for the numeric value of an amount and
on a [Currency] index for ISO 4217 currencies.

# Features

  - Immutable monetary amounts, safe for use across multiple goroutines
  - Text format "10.50 USD" or "USD 10.50", selected by configuration
  - Parsing that accepts both orders regardless of configuration
  - Standard, cash and custom roundings, with time-based cutovers
  - Swiss franc cash rounding to multiples of 0.05

# Representation

An [Amount] consists of a [Currency] and a decimal value.
The value of an amount is never narrower than the scale of its currency,
so "USD 10.5" is kept as 10.50.
Amounts are created in one of three variants, see [Variant]:
the standard variant keeps the decimal as is, the fast variant stores it
with exactly [FastScale] fractional digits and the rounded variant rounds
it to the scale of the currency.

# Text Format

A [TextFormat] renders an amount with [FormatScale] fractional digits,
rounding half-up, followed or preceded by the currency code:

	10.50 USD
	USD 10.50

The order is read from the [Config] passed to [NewTextFormat] under the key
[ConfigKeyFormatOrder] every time an amount is formatted.
Parsing tries the amount-first order before the currency-first order and
ignores the configuration.

# Rounding

A [Rounding] is a pure adjustment of an amount that never changes its currency.
A [RoundingRegistry] maps currencies to standard and cash roundings and ids
to custom roundings.
A currency may carry cutovers: roundings that replace the base rounding for
instants strictly after a given time.
Registries are assembled with a [RoundingBuilder] and do not change after
[RoundingBuilder.Build].

# Errors

Parsing fails with a [*ParseError] wrapping [ErrMalformedText] or
[ErrUnresolvableAmount].
Registry lookups report a missing rounding with a false result.
Functions prefixed with Must panic instead of returning an error.
*/
package monetary
