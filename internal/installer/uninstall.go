package installer

import (
	"fmt"
	"os"

	"timesheeter-install/internal/launcher"
	"timesheeter-install/internal/logger"
	"timesheeter-install/internal/state"
)

// Uninstall removes the launcher recorded by the last install, plus the
// install record itself. When no record exists (state file deleted, or the
// install predates state tracking) it falls back to the default launcher
// path so a plain `uninstall` still cleans up the common case.
func Uninstall(opts Options) error {
	st := state.Load(opts.Fs, opts.StatePath)

	path := opts.LauncherPath
	if path == "" {
		path = st.LauncherPath
	}
	if path == "" {
		path = launcher.DefaultPath
		logger.Debug("[DEBUG] No install record found, assuming launcher at %s\n", path)
	}

	err := opts.Fs.Remove(path)
	switch {
	case err == nil:
		logger.Info("[INFO] Removed launcher %s.\n", path)
	case os.IsNotExist(err):
		logger.Warn("[WARN] No launcher found at %s, nothing to remove.\n", path)
	default:
		return fmt.Errorf("failed to remove launcher %s: %w", path, err)
	}

	state.Remove(opts.Fs, opts.StatePath)
	return nil
}
