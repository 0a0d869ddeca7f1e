package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/config"
)

const configFileName = "config.yaml"

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage footprint configuration",
		Long: `Settings are read from ~/.footprint/config.yaml (or $FOOTPRINT_HOME), then
from the nearest project .footprint/config.yaml, then from FOOTPRINT_*
environment variables.`,
	}

	cmd.AddCommand(
		newConfigInitCmd(a),
		newConfigShowCmd(a),
		newConfigValidateCmd(a),
	)
	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var global, force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Writes the default configuration to the project .footprint directory, or
with --global to the user configuration directory. Existing files are kept
unless --force is given.`,
		Example: `  footprint config init
  footprint config init --global --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := initTarget(a, cmd, global)
			if err != nil {
				return err
			}
			if _, statErr := os.Stat(path); statErr == nil && !force {
				return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", path)
			}

			if err = config.Default().SaveTo(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Konfiguration geschrieben: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "write the user configuration instead of the project one")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// initTarget returns the file config init writes to.
func initTarget(a *app, cmd *cobra.Command, global bool) (string, error) {
	if global {
		dir, err := config.GetConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, configFileName), nil
	}
	dir := a.projectDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		dir = config.ResolveProjectDir(cmd.Context(), wd, "")
	}
	return filepath.Join(dir, configFileName), nil
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			return enc.Close()
		},
	}
}

func newConfigValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the effective configuration and factor table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfgErr := a.validConfig()
			_, tableErr := a.table()
			if err := errors.Join(cfgErr, tableErr); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Konfiguration ist gültig.")
			return nil
		},
	}
}
