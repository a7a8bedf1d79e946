package models

import "github.com/shopspring/decimal"

// Mode identifies which rule produced the raw tip.
type Mode string

const (
	// ModePercentage means the tip was derived from TipPercent × Amount.
	ModePercentage Mode = "percentage"

	// ModeCustom means the user-entered override replaced the percentage rule.
	ModeCustom Mode = "custom"
)

// TipInput holds parsed user input for one calculation.
type TipInput struct {
	// Amount is the bill amount. Unparseable text becomes zero.
	Amount decimal.Decimal

	// TipPercent is the tip rate in percent (20 means 20%).
	// Unparseable text becomes the default rate.
	TipPercent decimal.Decimal

	// CustomTip is the optional absolute tip override.
	// When Valid, TipPercent is ignored.
	CustomTip decimal.NullDecimal

	// RoundUp requests ceiling rounding of the tip to a whole currency unit.
	RoundUp bool
}

// TipResult is the derived output of a calculation.
type TipResult struct {
	// Tip is never negative.
	Tip decimal.Decimal

	// Total is Amount + Tip.
	Total decimal.Decimal

	Mode Mode
}
