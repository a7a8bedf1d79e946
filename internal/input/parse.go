// Package input converts raw text typed by the user into numbers.
//
// Parsing never fails from the caller's point of view: text that is not a
// plain decimal literal is treated as absent and replaced by a default, or
// reported as an invalid NullDecimal for fields without one.
package input

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultTipPercent is used when the tip percentage field does not parse.
var DefaultTipPercent = decimal.NewFromInt(20)

// Decimal parses text as a decimal literal, returning def when it does not parse.
func Decimal(text string, def decimal.Decimal) decimal.Decimal {
	if d, ok := parse(text); ok {
		return d
	}
	return def
}

// OptionalDecimal parses text as a decimal literal. Blank or unparseable
// text yields a NullDecimal with Valid set to false; "0" is a valid zero.
func OptionalDecimal(text string) decimal.NullDecimal {
	d, ok := parse(text)
	return decimal.NullDecimal{Decimal: d, Valid: ok}
}

// BillAmount parses the bill amount field, defaulting to zero.
func BillAmount(text string) decimal.Decimal {
	return Decimal(text, decimal.Zero)
}

// TipPercent parses the tip percentage field, defaulting to DefaultTipPercent.
func TipPercent(text string) decimal.Decimal {
	return Decimal(text, DefaultTipPercent)
}

// Limits on accepted literals. Anything larger is not a bill a person types,
// and unbounded exponents make rounding allocate without limit.
const (
	maxMantissaDigits = 40
	maxExponent       = 64
)

// parse accepts an optional sign, digits with an optional fractional part
// and an optional exponent. At least one digit is required in the mantissa.
func parse(text string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(text)
	if !isLiteral(s) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func isLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 || digits > maxMantissaDigits {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits, exp := 0, 0
		for i < len(s) && isDigit(s[i]) {
			exp = exp*10 + int(s[i]-'0')
			if exp > maxExponent {
				return false
			}
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
