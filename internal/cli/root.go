// Package cli implements the tipcalc command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmynk/tipcalc/internal/config"
	"github.com/mmynk/tipcalc/internal/screen"
	"github.com/mmynk/tipcalc/internal/service"
)

type options struct {
	locale string
	cfg    config.Config
}

// resolvedLocale prefers the --locale flag over configuration.
func (o *options) resolvedLocale() string {
	if o.locale != "" {
		return o.locale
	}
	return o.cfg.Locale
}

// NewRootCommand builds the tipcalc command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "tipcalc",
		Short:         "Calculate the tip and total for a bill",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.locale, "locale", "", "BCP 47 locale for labels and currency (default $TIPCALC_LOCALE or en-US)")

	root.AddCommand(newCalcCommand(opts), newInteractiveCommand(opts))
	return root
}

func newCalcCommand(opts *options) *cobra.Command {
	var (
		amount, percent, custom string
		roundUp, asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute one tip and total",
		Example: `  tipcalc calc --amount 33 --percent 18 --round-up
  tipcalc calc --amount 40 --custom 3.50 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, err := screen.NewForLocale(opts.resolvedLocale())
			if err != nil {
				return err
			}
			st := scr.State()
			st.SetAmount(amount)
			st.SetTipPercent(percent)
			st.SetCustomTip(custom)
			st.SetRoundUp(roundUp)

			v := scr.Render()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(service.ResponseFromView(scr, v))
			}
			return writeView(cmd.OutOrStdout(), v)
		},
	}

	// Values are raw text so they get the same parsing as typed input.
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Bill amount")
	cmd.Flags().StringVarP(&percent, "percent", "p", "", "Tip percentage (default 20)")
	cmd.Flags().StringVarP(&custom, "custom", "c", "", "Custom tip amount; overrides the percentage")
	cmd.Flags().BoolVarP(&roundUp, "round-up", "r", false, "Round the tip up to a whole unit")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

// writeView prints the screen as plain text.
func writeView(w io.Writer, v screen.View) error {
	round := "off"
	if v.RoundUp {
		round = "on"
	}
	_, err := fmt.Fprintf(w, "%s\n  %s: %s\n  %s: %s\n  %s: %s\n  %s %s\n%s\n%s\n",
		v.Title,
		v.Amount.Label, v.Amount.Value,
		v.TipPct.Label, v.TipPct.Value,
		v.CustomTip.Label, v.CustomTip.Value,
		v.RoundUpLabel, round,
		v.TipLine,
		v.TotalLine,
	)
	return err
}
