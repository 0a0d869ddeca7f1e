package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rshade/footprint/internal/logging"
)

// projectDirName is the per-project configuration directory.
const projectDirName = ".footprint"

// ResolveProjectDir determines the project-local .footprint directory. It
// checks, in order:
//  1. flagValue (--project-dir CLI flag)
//  2. the FOOTPRINT_PROJECT_DIR environment variable
//  3. the nearest ancestor of startDir containing a .footprint directory
//
// It returns an absolute path, or "" when no project is found. Nothing is
// created.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}
	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}
	if startDir == "" {
		return ""
	}

	dir := toAbsProjectDir(ctx, startDir)
	for {
		if info, err := os.Stat(dir); err == nil && info.IsDir() && !isHomeConfigDir(dir) {
			return dir
		}
		parent := filepath.Dir(filepath.Dir(dir))
		next := filepath.Join(parent, projectDirName)
		if next == dir {
			return ""
		}
		dir = next
	}
}

// isHomeConfigDir reports whether dir is the user-level config directory,
// which must not double as a project overlay.
func isHomeConfigDir(dir string) bool {
	home, err := GetConfigDir()
	if err != nil {
		return false
	}
	abs, err := filepath.Abs(home)
	if err != nil {
		return false
	}
	return abs == dir
}

// NewWithProjectDir loads the user configuration and shallow-merges the
// project config on top. With an empty projectDir it behaves like New.
func NewWithProjectDir(ctx context.Context, projectDir string) *Config {
	cfg := New(ctx)
	if projectDir == "" {
		return cfg
	}

	overlayPath := filepath.Join(projectDir, configFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		return cfg
	}

	merged := *cfg
	if err := ShallowMergeYAML(&merged, overlayPath); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using user config")
		return cfg
	}
	// The environment still wins over the project file.
	merged.applyEnv()
	return &merged
}

// toAbsProjectDir converts dir to an absolute path ending in .footprint.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == projectDirName {
		return abs
	}
	return filepath.Join(abs, projectDirName)
}
