package installer

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"timesheeter-install/internal/config"
	"timesheeter-install/internal/launcher"
	"timesheeter-install/internal/logger"
	"timesheeter-install/internal/state"
)

// Options collects everything an install run needs. The cmd layer fills it
// from flags; tests fill it directly.
type Options struct {
	// Fs is the filesystem the run operates on.
	Fs afero.Fs

	// ConfigPath is where the optional install config lives.
	ConfigPath string

	// StatePath is where the install record is written.
	StatePath string

	// LauncherPath overrides where the launcher is written ("" = config/default).
	LauncherPath string

	// VenvPath is the virtual environment path supplied via --venv.
	// VenvSet distinguishes an explicit empty flag value from "not given".
	VenvPath string
	VenvSet  bool

	// NoInput disables the interactive prompt entirely.
	NoInput bool

	// Ask is called to prompt the user for the venv path when neither the
	// flag nor the config supplied one. Injectable so tests never touch
	// a terminal.
	Ask func() (string, error)

	// Now stamps the install record. Nil means time.Now.
	Now func() time.Time
}

// Run performs one install: greet the user, figure out the virtual
// environment path (flag, then config, then prompt), generate the
// executable launcher, record what was done, and print guidance.
// Only the launcher generation itself can fail the run.
func Run(opts Options) error {
	greet()

	cfg, err := config.Load(opts.Fs, opts.ConfigPath)
	if err != nil {
		return err
	}

	venv, err := resolveVenv(opts, cfg)
	if err != nil {
		return err
	}

	// The path goes into the generated script verbatim, matching how the
	// launcher has always been built. Shell metacharacters therefore end
	// up unescaped in the activation line; say so rather than silently
	// rewriting the user's input.
	if strings.ContainsAny(venv, "$`;&|<>\"'") {
		logger.Warn("[WARN] The venv path contains shell special characters; they are written to the launcher as-is.\n")
	}

	path := opts.LauncherPath
	if path == "" {
		path = cfg.Install.Launcher
	}
	if path == "" {
		path = launcher.DefaultPath
	}

	logger.Info("[INFO] Creating the launcher script at %s...\n", path)
	script := launcher.Script{VenvPath: venv, EntryPoint: cfg.Install.EntryPoint}
	if err := launcher.Generate(opts.Fs, path, script); err != nil {
		return err
	}
	logger.Info("[INFO] Launcher created and marked executable.\n")

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	state.Save(opts.Fs, opts.StatePath, state.State{
		LauncherPath: path,
		VenvPath:     venv,
		InstalledAt:  now(),
	})

	logger.Info("[INFO] All done! Run ./%s to start Timesheeter.\n", path)
	if venv == "" {
		logger.Info("[INFO] No virtual environment was set, so the launcher uses the system python3.\n")
	}
	return nil
}

// resolveVenv picks the virtual environment path for the launcher.
// Precedence: the --venv flag, then the install config, then the prompt.
// With --no-input and nothing configured, no environment is used.
func resolveVenv(opts Options, cfg config.Config) (string, error) {
	if opts.VenvSet {
		logger.Debug("[DEBUG] Using venv path from flag: %q\n", opts.VenvPath)
		return opts.VenvPath, nil
	}
	if cfg.Install.Venv != "" {
		logger.Debug("[DEBUG] Using venv path from %s: %q\n", opts.ConfigPath, cfg.Install.Venv)
		return cfg.Install.Venv, nil
	}
	if opts.NoInput {
		return "", nil
	}
	return opts.Ask()
}

// greet prints the opening banner. Host and user names are best-effort
// decoration only; a run on a box where neither resolves greets anonymously.
func greet() {
	host, _ := os.Hostname()
	user := os.Getenv("USER")

	switch {
	case user != "" && host != "":
		logger.Info("[INFO] Hi %s@%s! Let's install Timesheeter.\n", user, host)
	case user != "":
		logger.Info("[INFO] Hi %s! Let's install Timesheeter.\n", user)
	default:
		logger.Info("[INFO] Let's install Timesheeter.\n")
	}
	fmt.Println()
}
