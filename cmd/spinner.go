package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// elapsedAfter is how long a workflow runs before the spinner shows a timer.
const elapsedAfter = time.Second

var workflowLabels = map[domain.Operation]string{
	domain.OperationUpload:       "Uploading",
	domain.OperationAsk:          "Thinking",
	domain.OperationSearch:       "Searching the document",
	domain.OperationClarify:      "Looking for clarifications",
	domain.OperationGenerateQuiz: "Generating quiz",
	domain.OperationSubmitAnswer: "Scoring answer",
	domain.OperationHint:         "Fetching hint",
	domain.OperationQuizProgress: "Fetching progress",
	domain.OperationFinishQuiz:   "Finishing quiz",
}

func workflowLabel(op domain.Operation, subject string) string {
	label, ok := workflowLabels[op]
	if !ok {
		label = string(op)
	}
	if subject != "" {
		label += " " + subject
	}
	return label + "..."
}

type workDoneMsg struct {
	err error
}

type workflowSpinner struct {
	spinner spinner.Model
	label   string
	started time.Time
	now     func() time.Time
	work    tea.Cmd
	err     error
	done    bool
}

func newWorkflowSpinner(label string, now func() time.Time, work tea.Cmd) workflowSpinner {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return workflowSpinner{
		spinner: s,
		label:   label,
		started: now(),
		now:     now,
		work:    work,
	}
}

func (m workflowSpinner) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m workflowSpinner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case workDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m workflowSpinner) View() string {
	if m.done {
		return ""
	}

	view := fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	if elapsed := m.now().Sub(m.started); elapsed >= elapsedAfter {
		view += fmt.Sprintf(" %ds", int(elapsed/time.Second))
	}
	return view
}

// runWorkflow runs one network workflow behind a spinner on output. When
// output is not a terminal it runs without one.
func runWorkflow(ctx context.Context, output io.Writer, op domain.Operation, subject string, work func(context.Context) error) error {
	if !isTerminal(output) {
		return work(ctx)
	}

	workCmd := func() tea.Msg {
		return workDoneMsg{err: work(ctx)}
	}

	p := tea.NewProgram(
		newWorkflowSpinner(workflowLabel(op, subject), time.Now, workCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("%s spinner: %w", op, err)
	}

	result, ok := finalModel.(workflowSpinner)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
