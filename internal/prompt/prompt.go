// Package prompt collects the single piece of user input the installer
// needs: the path of an optional Python virtual environment. On a terminal
// it shows a one-field text input; when stdin is a pipe it falls back to
// reading one raw line, so scripted runs behave like `echo path | install`.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user aborts the prompt (Esc or Ctrl+C).
// The installer treats it as "stop the run, write nothing".
var ErrCancelled = errors.New("prompt cancelled")

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// AskVenvPath asks the user for the virtual environment path.
// The returned value is exactly what was typed: no trimming is applied,
// so a whitespace-only answer counts as a (strange but accepted) path.
// An empty answer means "no virtual environment".
func AskVenvPath() (string, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return askInteractive()
	}
	return ReadLine(os.Stdin)
}

// ReadLine reads exactly one line from r and strips only the trailing
// line ending (\n or \r\n). EOF before any newline still yields whatever
// was read, so `printf path | install` works without a final newline.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// model is the bubbletea model for the single-question prompt.
type model struct {
	input     textinput.Model
	done      bool
	cancelled bool
}

func newModel() model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "/home/you/.venv (leave empty to skip)"
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()
	return model{input: ti}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(questionStyle.Render("Path of the Python virtual environment for Timesheeter:"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter to confirm · esc to cancel"))
	b.WriteString("\n")
	return b.String()
}

func askInteractive() (string, error) {
	final, err := tea.NewProgram(newModel()).Run()
	if err != nil {
		return "", fmt.Errorf("failed to run prompt: %w", err)
	}

	m, ok := final.(model)
	if !ok || m.cancelled {
		return "", ErrCancelled
	}
	return m.input.Value(), nil
}
