package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

type pollDoneMsg struct {
	err error
}

type pollSpinnerModel struct {
	spinner spinner.Model
	label   string
	work    tea.Cmd
	err     error
	done    bool
}

func newPollSpinnerModel(label string, work tea.Cmd) pollSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#107c10"))),
	)

	return pollSpinnerModel{spinner: s, label: label, work: work}
}

func (m pollSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m pollSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case pollDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m pollSpinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runWithSpinner shows label on output while work runs. The spinner is
// skipped when quiet is set, so JSON and piped output stay clean.
func runWithSpinner(ctx context.Context, output io.Writer, label string, quiet bool, work func(context.Context) error) error {
	if quiet {
		return work(ctx)
	}

	p := tea.NewProgram(
		newPollSpinnerModel(label, func() tea.Msg { return pollDoneMsg{err: work(ctx)} }),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	result, ok := final.(pollSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", final)
	}
	return result.err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
