package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/pdf"
	"github.com/rshade/footprint/internal/report"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		snap   snapshotFlags
		entity string
		date   string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the PDF report",
		Long: `Recomputes the footprint from the snapshot, derives the verification token
from entity and audit date and writes a three-page A4 report named
<Entity>_<Kind>_Testbericht.pdf.`,
		Example: `  footprint export --input betrieb.yaml --entity "Bäckerei Müller"
  footprint export --input betrieb.yaml --entity "Bäckerei Müller" --date 2026-12-31 --out-dir berichte`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if strings.TrimSpace(entity) == "" {
				return errors.New("--entity is required")
			}
			auditDate, err := report.ResolveAuditDate(date, time.Now())
			if err != nil {
				return fmt.Errorf("--date: %w", err)
			}

			cfg, err := a.validConfig()
			if err != nil {
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

			r, err := b.Build(ctx, report.Request{EntityName: entity, AuditDate: auditDate, Snapshot: s})
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = cfg.Report.OutputDir
			}
			opts := cfg.LayoutOptions()
			path, err := pdf.SaveFile(outDir, report.FileName(entity, cfg.Report.Kind), func(w io.Writer) error {
				return pdf.Render(w, r, opts)
			})
			if err != nil {
				return err
			}

			logger.Info().Ctx(ctx).
				Str("path", path).
				Str("run_id", r.RunID).
				Float64("total_kg", r.Emissions.Total).
				Msg("report written")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bericht gespeichert: %s\n", path)
			fmt.Fprintf(out, "Prüf-ID: %s\n", r.Token)
			return nil
		},
	}

	snap.register(cmd)
	cmd.Flags().StringVar(&entity, "entity", "", "name of the reporting entity (required)")
	cmd.Flags().StringVar(&date, "date", "", "audit date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "output directory (default from config)")

	return cmd
}
