package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/input"
	"github.com/rshade/footprint/internal/report"
)

// app holds the state resolved once per invocation and shared by all
// subcommands.
type app struct {
	projectDirFlag string
	factorsFlag    string

	projectDir string
	cfg        *config.Config
}

// load resolves the project directory and the effective configuration.
func (a *app) load(cmd *cobra.Command) {
	ctx := cmd.Context()
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	a.projectDir = config.ResolveProjectDir(ctx, a.projectDirFlag, wd)
	a.cfg = config.NewWithProjectDir(ctx, a.projectDir)
	if a.factorsFlag != "" {
		a.cfg.Factors.File = a.factorsFlag
	}
}

// validConfig returns the configuration or the reasons it cannot be used.
func (a *app) validConfig() (*config.Config, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return a.cfg, nil
}

// table loads the effective factor table.
func (a *app) table() (*factors.Table, error) {
	t, err := a.cfg.FactorTable()
	if err != nil {
		return nil, fmt.Errorf("loading factor table: %w", err)
	}
	return t, nil
}

// builder returns a report builder over the effective factor table.
func (a *app) builder() (*report.Builder, error) {
	t, err := a.table()
	if err != nil {
		return nil, err
	}
	return report.NewBuilder(t, nil), nil
}

// snapshotFlags are the input flags shared by calculate and export.
type snapshotFlags struct {
	input string
	set   []string
}

func (f *snapshotFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "snapshot file (flat YAML or JSON mapping)")
	cmd.Flags().StringArrayVar(&f.set, "set", nil, "set a field, as key=value (repeatable, wins over --input)")
}

// load reads the snapshot file, if any, and applies --set overrides.
func (f *snapshotFlags) load() (input.Snapshot, error) {
	snap := input.New(nil)
	if f.input != "" {
		loaded, err := input.LoadFile(f.input)
		if err != nil {
			return input.Snapshot{}, err
		}
		snap = loaded
	}
	overrides, err := input.ParseAssignments(f.set)
	if err != nil {
		return input.Snapshot{}, err
	}
	return snap.With(overrides), nil
}
