// Package i18n provides the localized labels shown on the calculator screen.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Label keys.
const (
	CalculateTip    = "calculate_tip"
	BillAmount      = "bill_amount"
	TipPercent      = "tip_percent"
	CustomTipAmount = "custom_tip_amount"
	RoundTip        = "round_tip"
	TipAmount       = "tip_amount"   // takes the formatted tip
	TotalAmount     = "total_amount" // takes the formatted total
)

// Keys lists every label key in screen order.
var Keys = []string{CalculateTip, BillAmount, TipPercent, CustomTipAmount, RoundTip, TipAmount, TotalAmount}

// supported is ordered; the first entry is the fallback.
var supported = []language.Tag{language.English, language.Spanish, language.French}

var translations = map[language.Tag]map[string]string{
	language.English: {
		CalculateTip:    "Calculate Tip",
		BillAmount:      "Bill Amount",
		TipPercent:      "Tip Percentage",
		CustomTipAmount: "Custom Tip Amount",
		RoundTip:        "Round up tip?",
		TipAmount:       "Tip Amount: %s",
		TotalAmount:     "Total Amount: %s",
	},
	language.Spanish: {
		CalculateTip:    "Calcular propina",
		BillAmount:      "Importe de la cuenta",
		TipPercent:      "Porcentaje de propina",
		CustomTipAmount: "Propina personalizada",
		RoundTip:        "¿Redondear la propina?",
		TipAmount:       "Propina: %s",
		TotalAmount:     "Total: %s",
	},
	language.French: {
		CalculateTip:    "Calculer le pourboire",
		BillAmount:      "Montant de l'addition",
		TipPercent:      "Pourcentage du pourboire",
		CustomTipAmount: "Pourboire personnalisé",
		RoundTip:        "Arrondir le pourboire ?",
		TipAmount:       "Pourboire : %s",
		TotalAmount:     "Total : %s",
	},
}

var (
	cat     = buildCatalog()
	matcher = language.NewMatcher(supported)
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(supported[0]))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

// Match returns the supported language closest to locale.
// Unparseable or unsupported locales match English.
func Match(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return supported[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return supported[0]
	}
	return supported[idx]
}

// Labels looks up screen labels in one language.
type Labels struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLabels returns the label set best matching locale.
func NewLabels(locale string) Labels {
	tag := Match(locale)
	return Labels{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Language returns the language the labels are rendered in.
func (l Labels) Language() language.Tag {
	return l.tag
}

// Get renders the label for key. Keys without a translation render as the
// key itself.
func (l Labels) Get(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// All returns every static label keyed by label key. Labels that take an
// argument are returned with their placeholder intact.
func (l Labels) All() map[string]string {
	out := make(map[string]string, len(Keys))
	for _, key := range Keys {
		if msg, ok := translations[l.tag][key]; ok {
			out[key] = msg
			continue
		}
		out[key] = translations[supported[0]][key]
	}
	return out
}
