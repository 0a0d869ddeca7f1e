package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/input"
	"github.com/rshade/footprint/internal/report"
	"github.com/rshade/footprint/internal/tui"
)

// Output formats of calculate.
const (
	outputTable = "table"
	outputJSON  = "json"
)

const defaultTerminalWidth = 80

func newCalculateCmd(a *app) *cobra.Command {
	var (
		snap        snapshotFlags
		output      string
		unit        string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Show the footprint of a snapshot",
		Long: `Aggregates the snapshot into Scope 1, 2 and 3 emissions and prints the
figures shown before a report is generated: scope totals, total, tree-years,
gas volume, column height and tower percentage.`,
		Example: `  footprint calculate --input betrieb.yaml
  footprint calculate --set km_total=12000 --set vehicles_diesel=2 --output json
  footprint calculate --input betrieb.yaml --unit t`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != outputTable && output != outputJSON {
				return fmt.Errorf("unsupported output format %q: want %s or %s", output, outputTable, outputJSON)
			}
			if unit != "" && !greenops.IsRecognizedUnit(unit) {
				return fmt.Errorf("%w: %q", greenops.ErrInvalidUnit, unit)
			}
			if _, err := a.validConfig(); err != nil {
				return err
			}

			s, err := snap.load()
			if err != nil {
				return err
			}
			b, err := a.builder()
			if err != nil {
				return err
			}

			recalc := func(s input.Snapshot) report.Summary {
				return report.NewSummary(b.Calculate(s))
			}

			if interactive {
				summary, previewErr := runPreview(cmd.Context(), cmd, s, recalc)
				if previewErr != nil {
					return previewErr
				}
				return tui.WritePlainSummary(cmd.OutOrStdout(), summary)
			}

			logger.Debug().Ctx(cmd.Context()).Strs("unknown_fields", s.UnknownFields()).Msg("calculating")
			return renderSummary(cmd.OutOrStdout(), recalc(s), output, unit)
		},
	}

	snap.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")
	cmd.Flags().StringVar(&unit, "unit", "", "also show the total in this mass unit (g, kg, t, lb)")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "edit fields in a live preview")

	return cmd
}

// convertedTotal is the total expressed in a requested unit.
type convertedTotal struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type summaryOutput struct {
	report.Summary
	Converted *convertedTotal `json:"total_converted,omitempty"`
}

// renderSummary writes s as JSON, as a styled box on a terminal, or as
// plain aligned text otherwise.
func renderSummary(w io.Writer, s report.Summary, output, unit string) error {
	var converted *convertedTotal
	if unit != "" && !strings.EqualFold(unit, "kg") {
		v, err := greenops.ConvertKg(s.TotalKg, unit)
		if err != nil {
			return err
		}
		converted = &convertedTotal{Value: v, Unit: unit}
	}

	if output == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaryOutput{Summary: s, Converted: converted})
	}

	if f, ok := w.(*os.File); ok && isTerminal(f) {
		width, _, err := term.GetSize(int(f.Fd()))
		if err != nil || width <= 0 {
			width = defaultTerminalWidth
		}
		if _, err = fmt.Fprintln(w, tui.RenderSummary(s, width)); err != nil {
			return err
		}
	} else if err := tui.WritePlainSummary(w, s); err != nil {
		return err
	}

	if converted != nil {
		_, err := fmt.Fprintf(w, "Gesamt in %s: %s\n", converted.Unit, greenops.FormatFloat(converted.Value, greenops.TonnePrecision))
		return err
	}
	return nil
}

// runPreview runs the interactive preview and returns the final figures.
func runPreview(
	ctx context.Context,
	cmd *cobra.Command,
	s input.Snapshot,
	recalc tui.RecalculateFunc,
) (report.Summary, error) {
	model := tui.NewPreviewModel(s, recalc)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return report.Summary{}, fmt.Errorf("running preview: %w", err)
	}
	return model.Summary(), nil
}
