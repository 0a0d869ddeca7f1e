package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/config"
)

func TestResolveProjectDir_FlagOverridesEnv(t *testing.T) {
	isolate(t)
	envDir := t.TempDir()
	flagDir := t.TempDir()
	t.Setenv(config.EnvProjectDir, envDir)

	got := config.ResolveProjectDir(context.Background(), flagDir, "/does/not/matter")
	assert.Equal(t, filepath.Join(flagDir, ".footprint"), got)
}

func TestResolveProjectDir_EnvVar(t *testing.T) {
	isolate(t)
	envDir := t.TempDir()
	t.Setenv(config.EnvProjectDir, envDir)

	got := config.ResolveProjectDir(context.Background(), "", "/does/not/matter")
	assert.Equal(t, filepath.Join(envDir, ".footprint"), got)
	assert.True(t, filepath.IsAbs(got))
}

func TestResolveProjectDir_NoDoubleAppend(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), ".footprint")

	got := config.ResolveProjectDir(context.Background(), dir, "")
	assert.Equal(t, dir, got)
}

func TestResolveProjectDir_WalkUp(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".footprint"), 0755))
	subDir := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(subDir, 0755))

	got := config.ResolveProjectDir(context.Background(), "", subDir)
	assert.Equal(t, filepath.Join(root, ".footprint"), got)
}

func TestResolveProjectDir_NotFound(t *testing.T) {
	isolate(t)
	got := config.ResolveProjectDir(context.Background(), "", t.TempDir())
	assert.Empty(t, got)
}

func TestNewWithProjectDir(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
logging:
  level: warn
report:
  kind: Global
`), 0600))

	projectDir := filepath.Join(t.TempDir(), ".footprint")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte(`
report:
  kind: Projekt
  parallel: 8
`), 0600))
	t.Setenv(config.EnvOutputDir, "/env/out")

	cfg := config.NewWithProjectDir(context.Background(), projectDir)
	assert.Equal(t, "Projekt", cfg.Report.Kind)
	assert.Equal(t, 8, cfg.Report.Parallel)
	assert.Equal(t, "warn", cfg.Logging.Level, "sections absent from the project keep user values")
	assert.Equal(t, "/env/out", cfg.Report.OutputDir, "environment wins over the project file")
}

func TestNewWithProjectDir_FallsBack(t *testing.T) {
	isolate(t)

	cfg := config.NewWithProjectDir(context.Background(), "")
	assert.Equal(t, "CO2-Bilanz", cfg.Report.Kind)

	missing := config.NewWithProjectDir(context.Background(), t.TempDir())
	assert.Equal(t, "CO2-Bilanz", missing.Report.Kind)

	broken := filepath.Join(t.TempDir(), ".footprint")
	require.NoError(t, os.MkdirAll(broken, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(broken, "config.yaml"), []byte("report: [\n"), 0600))
	cfg = config.NewWithProjectDir(context.Background(), broken)
	assert.Equal(t, "CO2-Bilanz", cfg.Report.Kind)
}
