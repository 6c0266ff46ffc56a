package state

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsZeroState(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	st := Load(fs, ".tsinstall-state.json")
	assert.Equal(t, State{}, st)
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	saved := State{
		LauncherPath: "timesheeter.sh",
		VenvPath:     "/home/u/.venv",
		InstalledAt:  time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}
	Save(fs, ".tsinstall-state.json", saved)

	loaded := Load(fs, ".tsinstall-state.json")
	assert.Equal(t, saved, loaded)
}

func TestLoad_CorruptFileReturnsZeroState(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, ".tsinstall-state.json", []byte("{not json"), 0o644))

	st := Load(fs, ".tsinstall-state.json")
	assert.Equal(t, State{}, st)
}

func TestRemove_DeletesRecord(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	Save(fs, ".tsinstall-state.json", State{LauncherPath: "timesheeter.sh"})
	Remove(fs, ".tsinstall-state.json")

	exists, err := afero.Exists(fs, ".tsinstall-state.json")
	require.NoError(t, err)
	assert.False(t, exists)
}
