package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newFactorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Inspect the emission factor table",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective factor table as YAML",
		Long: `Prints the factor table used for calculations: the built-in table, or the
file named by --factors, factors.file or FOOTPRINT_FACTORS_FILE. The output
can be edited and passed back with --factors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.table()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err = enc.Encode(t); err != nil {
				return fmt.Errorf("encoding factor table: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.AddCommand(show)
	return cmd
}
