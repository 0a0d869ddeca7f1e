package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/batch"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/verify"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		parallel int
		outDir   string
	)

	cmd := &cobra.Command{
		Use:   "batch <manifest>",
		Short: "Render the reports listed in a manifest",
		Long: `Renders one PDF report per manifest entry, several at a time. A failing
entry does not stop the others; the command fails if any entry failed.`,
		Example: `  footprint batch berichte.yaml
  footprint batch berichte.yaml --parallel 8 --out-dir berichte`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := a.validConfig()
			if err != nil {
				return err
			}
			m, err := batch.LoadManifest(args[0])
			if err != nil {
				return err
			}
			b, err := a.builder()
			if err != nil {
				return err
			}

			if parallel <= 0 {
				parallel = cfg.Report.Parallel
			}
			if outDir == "" {
				outDir = cfg.Report.OutputDir
			}

			runner := &batch.Runner{
				Builder:  b,
				Layout:   cfg.LayoutOptions(),
				OutDir:   outDir,
				Kind:     cfg.Report.Kind,
				Parallel: parallel,
			}
			// Callbacks are serialized by the processor.
			var last batch.ProgressSnapshot
			runner.OnProgress = func(p batch.ProgressSnapshot) {
				last = p
				level := zerolog.DebugLevel
				if p.Complete() {
					level = zerolog.InfoLevel
				}
				logger.WithLevel(level).Ctx(ctx).
					Int("processed", p.ProcessedItems).
					Int("total", p.TotalItems).
					Int("failed", p.FailedItems).
					Float64("percent", p.PercentComplete).
					Dur("elapsed", p.ElapsedTime).
					Dur("remaining", p.EstimatedRemaining).
					Msg("batch progress")
			}

			results, runErr := runner.Run(ctx, m.Reports)
			if results == nil {
				return runErr
			}
			out := cmd.OutOrStdout()
			if err = writeBatchResults(out, results); err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
			}
			fmt.Fprintf(out, "\n%d von %d Berichten erstellt in %s\n",
				len(results)-failed, len(results), last.ElapsedTime.Round(time.Millisecond))
			if failed > 0 {
				logger.Debug().Ctx(ctx).Err(runErr).Msg("batch finished with failures")
				return fmt.Errorf("%d of %d reports failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0,
		fmt.Sprintf("reports rendered at once, at most %d (default from config)", batch.MaxParallel))
	cmd.Flags().StringVar(&outDir, "out-dir", "", "output directory (default from config)")

	return cmd
}

func writeBatchResults(w io.Writer, results []batch.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ORGANISATION\tGESAMT\tPRÜF-ID\tERGEBNIS")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\tFEHLER: %v\n", r.Entity, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Entity, greenops.FormatKg(r.TotalKg), verify.Short(r.Token, 12), r.Path)
	}
	return tw.Flush()
}
