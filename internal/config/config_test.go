package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg, err := Load(fs, ".tsinstall.yaml")
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoad_ParsesInstallSection(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	contents := `
install:
  venv: /home/u/.venv
  entry_point: timesheeter.py
  launcher: bin/timesheeter.sh
`
	require.NoError(t, afero.WriteFile(fs, ".tsinstall.yaml", []byte(contents), 0o600))

	cfg, err := Load(fs, ".tsinstall.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/.venv", cfg.Install.Venv)
	assert.Equal(t, "timesheeter.py", cfg.Install.EntryPoint)
	assert.Equal(t, "bin/timesheeter.sh", cfg.Install.Launcher)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, ".tsinstall.yaml", []byte("install: ["), 0o600))

	_, err := Load(fs, ".tsinstall.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")
}
