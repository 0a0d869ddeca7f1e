// Package cli implements the footprint command line.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/footprint/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root command. ver is reported by --version.
func NewRootCmd(ver string) *cobra.Command {
	a := &app{}
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Greenhouse-gas footprint reports for small organisations",
		Long: `footprint computes a Scope 1/2/3 greenhouse-gas footprint from activity data,
translates it into everyday equivalences and renders a verifiable PDF report.`,
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.load(cmd)
			result := setupLogging(cmd, a.cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logResult != nil {
				return logResult.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&a.projectDirFlag, "project-dir", "",
		"project directory holding .footprint/config.yaml (default: nearest ancestor)")
	cmd.PersistentFlags().StringVar(&a.factorsFlag, "factors", "",
		"factor table YAML file (overrides config and FOOTPRINT_FACTORS_FILE)")

	cmd.AddCommand(
		newCalculateCmd(a),
		newExportCmd(a),
		newBatchCmd(a),
		newFactorsCmd(a),
		newConfigCmd(a),
	)

	return cmd
}

const rootCmdExample = `  # Show the footprint of an input file
  footprint calculate --input betrieb.yaml

  # Override single fields and print JSON
  footprint calculate --input betrieb.yaml --set green_share=100 --output json

  # Edit the input interactively and watch the totals change
  footprint calculate --input betrieb.yaml --interactive

  # Render the PDF report
  footprint export --input betrieb.yaml --entity "Bäckerei Müller" --date 2026-12-31

  # Render many reports at once
  footprint batch berichte.yaml --parallel 8

  # Print the effective factor table
  footprint factors show`
