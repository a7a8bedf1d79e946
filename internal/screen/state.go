// Package screen is the calculator's presentation layer: it owns the raw
// text of the input fields and the round-up toggle, and turns them into a
// rendered View on demand.
//
// The package is single-threaded by design of the UI event model. A State
// is owned by exactly one Screen and must not be shared across goroutines.
package screen

// State is the transient input owned by the screen. Fields are unexported so
// every change goes through a setter.
type State struct {
	amount    string
	tipPct    string
	customTip string
	roundUp   bool
}

// NewState returns an empty state: blank fields, rounding off.
func NewState() *State {
	return &State{}
}

// SetAmount stores the bill amount text exactly as typed.
func (s *State) SetAmount(text string) { s.amount = text }

// SetTipPercent stores the tip percentage text exactly as typed.
func (s *State) SetTipPercent(text string) { s.tipPct = text }

// SetCustomTip stores the override tip text. Blank text means no override.
func (s *State) SetCustomTip(text string) { s.customTip = text }

// SetRoundUp turns rounding the tip up to a whole unit on or off.
func (s *State) SetRoundUp(on bool) { s.roundUp = on }

// ToggleRoundUp flips the round-up switch.
func (s *State) ToggleRoundUp() { s.roundUp = !s.roundUp }

// Reset clears all four inputs.
func (s *State) Reset() {
	*s = State{}
}

// AmountInput returns the raw bill amount text.
func (s *State) AmountInput() string { return s.amount }

// TipPercentInput returns the raw tip percentage text.
func (s *State) TipPercentInput() string { return s.tipPct }

// CustomTipInput returns the raw override tip text.
func (s *State) CustomTipInput() string { return s.customTip }

// RoundUp reports whether the tip is rounded up.
func (s *State) RoundUp() bool { return s.roundUp }
