package scope

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	conversation string
	scope        domain.SessionContext
	opts         RenderOptions
	styles       styles
	output       string
}

func newModel(conversation string, sc domain.SessionContext, opts RenderOptions) model {
	return model{
		conversation: conversation,
		scope:        sc,
		opts:         opts,
		styles:       newStyles(),
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
		m.output = renderView(m.conversation, m.scope, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws the session scope through a one-shot bubbletea program so
// lipgloss styling resolves against the real terminal profile.
func Render(conversation string, sc domain.SessionContext, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(conversation, sc, opts),
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
