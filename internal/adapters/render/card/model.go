package card

import (
	"errors"
	"io"

	"github.com/bnema/partners-cli/internal/application"
	"github.com/bnema/partners-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	view   func(styles) string
	styles styles
	output string
}

func newModel(view func(styles) string) model {
	return model{view: view, styles: newStyles()}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.view(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func render(view func(styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(view),
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

func RenderProfile(builder domain.Builder) (string, error) {
	return render(func(s styles) string { return profileView(builder, s) })
}

func RenderSession(session domain.Session, signedIn bool) (string, error) {
	return render(func(s styles) string { return sessionView(session, signedIn, s) })
}

// RenderDirectory lists builders in the order the server returned them.
func RenderDirectory(builders []domain.Builder, opts DirectoryOptions) (string, error) {
	return render(func(s styles) string { return directoryView(builders, opts, s) })
}

func RenderMatches(outcomes []application.MatchOutcome) (string, error) {
	return render(func(s styles) string { return matchesView(outcomes, s) })
}
