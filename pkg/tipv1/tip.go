// Package tipv1 is the wire contract of the tipcalc.v1 Connect API.
//
// Money values travel as decimal strings so clients never see binary
// floating point artifacts.
package tipv1

// CalculateRequest carries the raw screen input. Text fields are sent
// exactly as typed; the server applies the usual defaults.
type CalculateRequest struct {
	AmountInput     string `json:"amountInput,omitempty"`
	TipPercentInput string `json:"tipPercentInput,omitempty"`
	CustomTipInput  string `json:"customTipInput,omitempty"`
	RoundUp         bool   `json:"roundUp,omitempty"`

	// Locale is a BCP 47 tag. Empty means the server default.
	Locale string `json:"locale,omitempty"`
}

// CalculateResponse is one rendered calculation.
type CalculateResponse struct {
	Tip   string `json:"tip"`
	Total string `json:"total"`

	FormattedTip   string `json:"formattedTip"`
	FormattedTotal string `json:"formattedTotal"`

	TipLine   string `json:"tipLine"`
	TotalLine string `json:"totalLine"`

	// Mode is "percentage" or "custom".
	Mode string `json:"mode"`

	Currency string `json:"currency"`
	Locale   string `json:"locale"`
}
