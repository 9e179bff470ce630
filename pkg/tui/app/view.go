package teaui

import (
	"tableflip.dev/flashq/pkg/app"
)

// View renders the screen for the current phase.
func (m *Model) View() string {
	switch m.session.Phase() {
	case app.PhaseSettings:
		return m.settingsView()
	case app.PhaseQuiz:
		return m.quizView()
	}
	return m.topicsView()
}

// footer is the help line followed by the status or error line.
func (m *Model) footer(help string) string {
	th := m.theme.Footer
	out := th.Help.Render(help)
	switch {
	case m.errText != "":
		out += "\n" + th.Error.Render(m.errText)
	case m.status != "":
		out += "\n" + th.Status.Render(m.status)
	}
	return out
}
