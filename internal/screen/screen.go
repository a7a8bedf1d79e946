package screen

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/format"
	"github.com/mmynk/tipcalc/internal/i18n"
	"github.com/mmynk/tipcalc/internal/input"
	"github.com/mmynk/tipcalc/internal/models"
)

// Keyboard is the kind of on-screen keyboard a field asks for.
type Keyboard string

const (
	KeyboardDecimal Keyboard = "decimal"
	KeyboardNumber  Keyboard = "number"
)

// IMEAction is what the keyboard's action key does in a field.
type IMEAction string

const (
	IMENext IMEAction = "next"
	IMEDone IMEAction = "done"
)

// Field describes one text input as rendered.
type Field struct {
	Key      string
	Label    string
	Value    string
	Keyboard Keyboard
	Action   IMEAction
}

// View is one render pass of the screen.
type View struct {
	Title string

	Amount    Field
	TipPct    Field
	CustomTip Field

	RoundUpLabel string
	RoundUp      bool

	// TipLine and TotalLine are the localized output labels,
	// e.g. "Tip Amount: $6.00".
	TipLine   string
	TotalLine string

	FormattedTip   string
	FormattedTotal string

	Input  models.TipInput
	Result models.TipResult
}

// Screen binds a State to a currency formatter and a label set.
type Screen struct {
	state  *State
	money  *format.Currency
	labels i18n.Labels
}

// New creates a Screen rendering state with the given formatter and labels.
func New(state *State, money *format.Currency, labels i18n.Labels) *Screen {
	return &Screen{state: state, money: money, labels: labels}
}

// NewForLocale creates a Screen with a fresh State for a locale.
func NewForLocale(locale string) (*Screen, error) {
	money, err := format.NewCurrency(locale)
	if err != nil {
		return nil, err
	}
	return New(NewState(), money, i18n.NewLabels(locale)), nil
}

// State returns the state the screen renders.
func (s *Screen) State() *State {
	return s.state
}

// Currency returns the formatter used for output.
func (s *Screen) Currency() *format.Currency {
	return s.money
}

// Labels returns the label set used for output.
func (s *Screen) Labels() i18n.Labels {
	return s.labels
}

// Input parses the current state. The override field has no default.
func (s *Screen) Input() models.TipInput {
	return models.TipInput{
		Amount:     input.BillAmount(s.state.amount),
		TipPercent: input.TipPercent(s.state.tipPct),
		CustomTip:  input.OptionalDecimal(s.state.customTip),
		RoundUp:    s.state.roundUp,
	}
}

// Render recomputes the tip and total from the current state.
func (s *Screen) Render() View {
	in := s.Input()
	res := calculator.Calculate(in)

	slog.Debug("Rendered tip",
		"amount", in.Amount.String(),
		"tip_percent", in.TipPercent.String(),
		"custom_tip", nullString(in.CustomTip),
		"round_up", in.RoundUp,
		"mode", res.Mode,
		"tip", res.Tip.String(),
		"total", res.Total.String(),
	)

	tip := s.money.Format(res.Tip)
	total := s.money.Format(res.Total)

	return View{
		Title: s.labels.Get(i18n.CalculateTip),
		Amount: Field{
			Key: i18n.BillAmount, Label: s.labels.Get(i18n.BillAmount),
			Value: s.state.amount, Keyboard: KeyboardDecimal, Action: IMENext,
		},
		TipPct: Field{
			Key: i18n.TipPercent, Label: s.labels.Get(i18n.TipPercent),
			Value: s.state.tipPct, Keyboard: KeyboardNumber, Action: IMENext,
		},
		CustomTip: Field{
			Key: i18n.CustomTipAmount, Label: s.labels.Get(i18n.CustomTipAmount),
			Value: s.state.customTip, Keyboard: KeyboardDecimal, Action: IMEDone,
		},
		RoundUpLabel:   s.labels.Get(i18n.RoundTip),
		RoundUp:        s.state.roundUp,
		TipLine:        s.labels.Get(i18n.TipAmount, tip),
		TotalLine:      s.labels.Get(i18n.TotalAmount, total),
		FormattedTip:   tip,
		FormattedTotal: total,
		Input:          in,
		Result:         res,
	}
}

// Fields returns the three text inputs in screen order.
func (v View) Fields() []Field {
	return []Field{v.Amount, v.TipPct, v.CustomTip}
}

func nullString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
