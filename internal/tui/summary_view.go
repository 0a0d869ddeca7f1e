package tui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rshade/footprint/internal/report"
)

// Layout constants.
const (
	borderPadding = 2
	labelWidth    = 16
	minBoxWidth   = 40
)

// RenderSummary renders the on-screen figures as a boxed, styled block of
// the given total width, followed by the equivalence legend rows and their
// prose summary when the total is non-zero.
func RenderSummary(s report.Summary, width int) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("CO₂-BILANZ"))
	content.WriteString("\n")
	for _, f := range s.Fields() {
		content.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, f.Label)))
		content.WriteString(ValueStyle.Render(f.Value))
		content.WriteString("\n")
	}
	if s.TotalKg > 0 {
		for _, r := range s.Equivalences {
			content.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, r.FormattedValue)))
			content.WriteString(SubtleStyle.Render(r.Label))
			content.WriteString("\n")
		}
		content.WriteString(SubtleStyle.Render(s.DisplayText))
	}

	width = max(width, minBoxWidth)
	return BoxStyle.Width(width - borderPadding).Render(strings.TrimRight(content.String(), "\n"))
}

// WritePlainSummary writes the figures as aligned plain text, for output
// that is not a terminal. The prose summary follows on its own line.
func WritePlainSummary(w io.Writer, s report.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range s.Fields() {
		fmt.Fprintf(tw, "%s:\t%s\n", f.Label, f.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if s.TotalKg > 0 && s.DisplayText != "" {
		_, err := fmt.Fprintln(w, s.DisplayText)
		return err
	}
	return nil
}
