package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/tipcalc/internal/models"
)

// Tip computes the tip owed on a bill.
//
// The raw tip is customTip when it is Valid, otherwise tipPercent/100 × amount.
// A negative raw tip is clamped to zero. With roundUp set the clamped tip is
// raised to the next whole currency unit (ceiling, not nearest).
// There is no upper bound: an override larger than the bill is kept as is.
func Tip(amount, tipPercent decimal.Decimal, customTip decimal.NullDecimal, roundUp bool) decimal.Decimal {
	// Multiply first and shift: exact, where dividing by 100 first would
	// round tiny percentages away.
	raw := amount.Mul(tipPercent).Shift(-2)
	if customTip.Valid {
		raw = customTip.Decimal
	}

	tip := decimal.Max(raw, decimal.Zero)
	if roundUp {
		tip = tip.Ceil()
	}
	return tip
}

// Total returns the amount owed including the tip.
// Callers must pass the same amount that was given to Tip.
func Total(amount, tip decimal.Decimal) decimal.Decimal {
	return amount.Add(tip)
}

// Calculate runs Tip and Total for a parsed input.
func Calculate(in models.TipInput) models.TipResult {
	tip := Tip(in.Amount, in.TipPercent, in.CustomTip, in.RoundUp)

	mode := models.ModePercentage
	if in.CustomTip.Valid {
		mode = models.ModeCustom
	}

	return models.TipResult{
		Tip:   tip,
		Total: Total(in.Amount, tip),
		Mode:  mode,
	}
}
