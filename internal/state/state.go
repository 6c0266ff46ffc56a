package state

import (
	"encoding/json" // For JSON encoding and decoding of the state file
	"time"

	"github.com/spf13/afero"
	"timesheeter-install/internal/logger"
)

// DefaultPath is where the installer records what it installed, relative
// to the invocation directory.
const DefaultPath = ".tsinstall-state.json"

// State records the outcome of the last successful install so that the
// uninstall command can later remove exactly what was put there.
// - LauncherPath: where the launcher script was written.
// - VenvPath: the virtual environment the launcher activates ("" if none).
// - InstalledAt: when the install completed.
type State struct {
	LauncherPath string    `json:"launcher_path"`
	VenvPath     string    `json:"venv_path"`
	InstalledAt  time.Time `json:"installed_at"`
}

// Load reads the saved state from a JSON file at the given path.
// If the file does not exist or cannot be read, it returns a zero State:
// the installer has simply never run here (or the record was deleted),
// and everything falls back to defaults.
func Load(fs afero.Fs, path string) State {
	file, err := afero.ReadFile(fs, path)
	if err != nil {
		// File missing or unreadable: treat as "never installed".
		return State{}
	}

	var st State
	if err := json.Unmarshal(file, &st); err != nil {
		// A corrupt record is not worth failing over; warn and start fresh.
		logger.Warn("[WARN] Ignoring unreadable state file %s: %v\n", path, err)
		return State{}
	}
	return st
}

// Save writes the given State to a JSON file at the given path.
// It pretty-prints the JSON with indentation for readability.
// Errors during marshalling or writing are logged but not propagated:
// losing the record never invalidates an otherwise successful install.
func Save(fs afero.Fs, path string, st State) {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	if err := afero.WriteFile(fs, path, file, 0o644); err != nil {
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}

// Remove deletes the state record. Like Save, this is best-effort.
func Remove(fs afero.Fs, path string) {
	if err := fs.Remove(path); err != nil {
		logger.Debug("[DEBUG] Could not remove state file %s: %v\n", path, err)
	}
}
