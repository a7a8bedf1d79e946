// Package format renders money amounts for display.
package format

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// Currency formats amounts in the currency of a locale's region.
// A Currency is safe for concurrent use once created.
type Currency struct {
	tag     language.Tag
	unit    currency.Unit
	scale   int
	symbol  string
	point   string
	printer *message.Printer
}

var maxWhole = decimal.NewFromInt(math.MaxInt64)

// NewCurrency creates a formatter for the given BCP 47 locale (e.g. "en-US").
// The currency is the one in use in the locale's region, falling back to USD
// when the region has none.
func NewCurrency(locale string) (*Currency, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	unit := currency.USD
	region, _ := tag.Region()
	if u, ok := currency.FromRegion(region); ok {
		unit = u
	}
	scale, _ := currency.Standard.Rounding(unit)

	p := message.NewPrinter(tag)
	return &Currency{
		tag:     tag,
		unit:    unit,
		scale:   scale,
		symbol:  p.Sprint(currency.NarrowSymbol(unit)),
		point:   decimalPoint(p),
		printer: p,
	}, nil
}

// MustCurrency is like NewCurrency but panics on an invalid locale.
func MustCurrency(locale string) *Currency {
	c, err := NewCurrency(locale)
	if err != nil {
		panic(err)
	}
	return c
}

// Format renders v rounded to the currency's standard number of fraction
// digits, with locale digit grouping and the currency symbol in front.
func (c *Currency) Format(v decimal.Decimal) string {
	v = v.Round(int32(c.scale))
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}
	return sign + c.symbol + c.digits(v)
}

// digits renders a non-negative amount already rounded to c.scale. The whole
// and fraction parts go through the printer as integers so no float64
// conversion loses cents. Amounts beyond int64 fall back to float64.
func (c *Currency) digits(v decimal.Decimal) string {
	if v.GreaterThan(maxWhole) {
		return c.printer.Sprint(number.Decimal(v.InexactFloat64(), number.Scale(c.scale)))
	}
	whole := v.Truncate(0)
	out := c.printer.Sprint(number.Decimal(whole.IntPart()))
	if c.scale == 0 {
		return out
	}
	frac := v.Sub(whole).Shift(int32(c.scale)).IntPart()
	return out + c.point + c.printer.Sprint(number.Decimal(frac,
		number.MinIntegerDigits(c.scale), number.NoSeparator()))
}

// decimalPoint extracts the locale's decimal separator from a sample number.
func decimalPoint(p *message.Printer) string {
	sample := p.Sprint(number.Decimal(1.5, number.Scale(1)))
	return strings.TrimFunc(sample, unicode.IsDigit)
}

// Unit returns the ISO 4217 currency in use.
func (c *Currency) Unit() currency.Unit {
	return c.unit
}

// Tag returns the parsed locale.
func (c *Currency) Tag() language.Tag {
	return c.tag
}
