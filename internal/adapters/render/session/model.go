package session

import (
	"errors"
	"io"

	"github.com/bnema/docassist-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	render func(styles) string
	styles styles
	output string
}

func newModel(render func(styles) string) model {
	return model{
		render: render,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.render(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws one view of snapshot.
func Render(kind Kind, snapshot domain.Session, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderView(kind, snapshot, opts, s)
	})
}

// RenderProgress draws quiz progress reported by the backend.
func RenderProgress(title string, progress domain.Progress) (string, error) {
	return run(func(s styles) string {
		return renderProgress(title, progress, s)
	})
}

// RenderSearch draws ranked passages returned for a search.
func RenderSearch(results domain.SearchResults) (string, error) {
	return run(func(s styles) string {
		return renderSearch(results, s)
	})
}

func RenderClarification(clarification domain.Clarification) (string, error) {
	return run(func(s styles) string {
		return renderClarification(clarification, s)
	})
}

func run(render func(styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(render),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
