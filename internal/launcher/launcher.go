package launcher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"timesheeter-install/internal/logger"
)

// Default locations used when neither flags nor the install config override them.
const (
	// DefaultPath is where the launcher is written, relative to the
	// directory the installer is invoked from.
	DefaultPath = "timesheeter.sh"

	// DefaultEntryPoint is the Python file the launcher starts.
	DefaultEntryPoint = "timesheeter.py"
)

// execBits adds execute permission for owner, group and other on top of
// whatever read/write bits the file already carries (chmod +x semantics).
const execBits = 0o111

// ErrWrite and ErrChmod distinguish the two ways generation can fail:
// the launcher file could not be written at all, or it was written but
// could not be marked executable. Callers match with errors.Is.
var (
	ErrWrite = errors.New("failed to write launcher")
	ErrChmod = errors.New("failed to mark launcher executable")
)

// Script describes the launcher to generate.
// - VenvPath: path of the Python virtual environment to activate before the
//   application starts. Treated as opaque text: it is not checked for
//   existence and not escaped, and whitespace is NOT trimmed, so even a
//   blank (but non-empty) value produces an activation line. An empty
//   string means no virtual environment.
// - EntryPoint: the Python file the launcher runs. Empty means DefaultEntryPoint.
type Script struct {
	VenvPath   string
	EntryPoint string
}

// Render builds the full launcher content. The layout is fixed:
//
//	#!/bin/bash
//
//	source <venv>/bin/activate   <- only when VenvPath is non-empty
//	python3 timesheeter.py
//
// The activation line, when present, always precedes the invocation line,
// and the invocation line is always the last line of the file.
func (s Script) Render() string {
	entry := s.EntryPoint
	if entry == "" {
		entry = DefaultEntryPoint
	}

	var b strings.Builder
	b.WriteString("#!/bin/bash\n\n")
	if s.VenvPath != "" {
		b.WriteString("source " + s.VenvPath + "/bin/activate\n")
	}
	b.WriteString("python3 " + entry + "\n")
	return b.String()
}

// Generate writes the rendered launcher to path and marks it executable.
// The write truncates: a previous launcher at the same path is fully
// replaced, never merged with. If the write succeeds but the permission
// change fails, the content-correct, non-executable file is left in place
// (no rollback) and ErrChmod is returned.
func Generate(fs afero.Fs, path string, script Script) error {
	logger.Debug("[DEBUG] Generating launcher at %s (venv=%q)\n", path, script.VenvPath)

	if err := afero.WriteFile(fs, path, []byte(script.Render()), 0o644); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}

	info, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrChmod, path, err)
	}
	if err := fs.Chmod(path, info.Mode()|execBits); err != nil {
		return fmt.Errorf("%w %s: %w", ErrChmod, path, err)
	}

	logger.Debug("[DEBUG] Launcher %s written with mode %v\n", path, info.Mode()|execBits)
	return nil
}
