package config

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the installer looks for its optional config file,
// relative to the invocation directory.
const DefaultPath = ".tsinstall.yaml"

// Install holds the values a config file can pre-answer so the installer
// can run without prompting.
// - Venv: path of the Python virtual environment to activate in the
//   launcher. Empty means none (or ask the user, in interactive runs).
// - EntryPoint: the Python file the launcher starts. Empty means the
//   default timesheeter.py.
// - Launcher: where to write the launcher. Empty means timesheeter.sh.
type Install struct {
	Venv       string `yaml:"venv"`
	EntryPoint string `yaml:"entry_point"`
	Launcher   string `yaml:"launcher"`
}

// Config is the top-level structure of the .tsinstall.yaml file.
type Config struct {
	Install Install `yaml:"install"`
}

// Load reads the install config from path. The file is optional: when it
// does not exist, a zero-value Config is returned and the caller falls back
// to flags and the interactive prompt. A file that exists but cannot be
// read or parsed is an error, since the user clearly meant it to apply.
func Load(fs afero.Fs, path string) (Config, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	return cfg, nil
}
