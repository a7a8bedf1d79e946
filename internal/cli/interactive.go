package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/tipcalc/internal/screen"
)

const interactiveHelp = `commands:
  amount [text]        set the bill amount
  percent [text]       set the tip percentage
  custom [text]        set the custom tip (blank clears it)
  round [on|off]       set or toggle rounding up
  reset                clear every field
  show                 render again
  quit                 leave`

func newInteractiveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Edit the calculator fields line by line",
		Long:    "Starts a line-driven calculator screen. Every edit re-renders the tip and total.\n\n" + interactiveHelp,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, err := screen.NewForLocale(opts.resolvedLocale())
			if err != nil {
				return err
			}
			return runInteractive(scr, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runInteractive applies one edit per input line and re-renders after
// each. It returns at end of input or on quit.
func runInteractive(scr *screen.Screen, in io.Reader, out io.Writer) error {
	if err := writeView(out, scr.Render()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		st := scr.State()
		switch strings.ToLower(name) {
		case "amount":
			st.SetAmount(arg)
		case "percent":
			st.SetTipPercent(arg)
		case "custom":
			st.SetCustomTip(arg)
		case "round":
			switch strings.ToLower(arg) {
			case "":
				st.ToggleRoundUp()
			case "on":
				st.SetRoundUp(true)
			case "off":
				st.SetRoundUp(false)
			default:
				if _, err := fmt.Fprintf(out, "round takes on or off, got %q\n", arg); err != nil {
					return err
				}
				continue
			}
		case "reset":
			st.Reset()
		case "show":
		case "help":
			if _, err := fmt.Fprintln(out, interactiveHelp); err != nil {
				return err
			}
			continue
		case "quit", "exit":
			return nil
		default:
			if _, err := fmt.Fprintf(out, "unknown command %q (try help)\n", name); err != nil {
				return err
			}
			continue
		}

		if err := writeView(out, scr.Render()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
