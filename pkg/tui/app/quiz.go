package teaui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/flashq/pkg/app"
	"tableflip.dev/flashq/pkg/gesture"
	"tableflip.dev/flashq/pkg/navigator"
)

const buttonGap = "  "

// buttonSpan is the horizontal extent of an on-screen control.
type buttonSpan struct {
	start, end int
	action     gesture.Action
}

func (m *Model) handleQuizKey(key string) tea.Cmd {
	switch key {
	case "q":
		return m.quit()
	case "f":
		m.fullscreen = !m.fullscreen
		m.logger.Printf("fullscreen=%t", m.fullscreen)
		return nil
	case "s", "esc":
		if err := m.session.Back(); err != nil {
			m.errText = err.Error()
			return nil
		}
		m.drag = nil
		m.logger.Printf("phase %s", m.session.Phase())
		return nil
	}
	if a := gesture.FromKey(key); a != gesture.None {
		m.do(a)
	}
	return nil
}

func (m *Model) do(a gesture.Action) {
	if m.fatal {
		return
	}
	err := m.session.Do(a)
	if err == nil {
		m.errText = ""
		m.logger.Printf("%s -> %+v", a, m.session.Navigator().State())
		return
	}
	m.logger.Printf("%s: %v", a, err)
	var oob *navigator.IndexOutOfRangeError
	if errors.As(err, &oob) {
		m.fatal = true
		m.errText = "internal error: " + oob.Error()
		return
	}
	m.errText = err.Error()
}

func (m *Model) handleMouseClick(mouse tea.Mouse) tea.Cmd {
	if m.session.Phase() != app.PhaseQuiz || mouse.Button != tea.MouseLeft {
		return nil
	}
	_, row := m.quizLayout()
	if mouse.Y == row {
		for _, span := range m.buttonSpans() {
			if mouse.X >= span.start && mouse.X < span.end {
				m.do(span.action)
				return nil
			}
		}
	}
	start := mouse
	m.drag = &start
	return nil
}

func (m *Model) handleMouseRelease(mouse tea.Mouse) tea.Cmd {
	if m.drag == nil {
		return nil
	}
	start := *m.drag
	m.drag = nil
	if m.session.Phase() != app.PhaseQuiz {
		return nil
	}
	a := gesture.FromSwipe(mouse.X-start.X, mouse.Y-start.Y, m.opts.SwipeThreshold)
	if a != gesture.None {
		m.logger.Printf("swipe %d,%d -> %s", mouse.X-start.X, mouse.Y-start.Y, a)
		m.do(a)
	}
	return nil
}

func (m *Model) renderButtons() []string {
	var out []string
	for _, b := range gesture.Buttons() {
		out = append(out, m.theme.Button.Normal.Render(b.Label))
	}
	return out
}

func (m *Model) buttonSpans() []buttonSpan {
	var spans []buttonSpan
	x := 0
	for i, b := range gesture.Buttons() {
		w := lipgloss.Width(m.theme.Button.Normal.Render(b.Label))
		spans = append(spans, buttonSpan{start: x, end: x + w, action: b.Action})
		x += w
		if i < len(gesture.Buttons())-1 {
			x += len(buttonGap)
		}
	}
	return spans
}

// quizLayout renders everything above the button bar and returns it with
// the screen row the buttons land on.
func (m *Model) quizLayout() (string, int) {
	card := m.renderCard()
	var above string
	if m.fullscreen && m.termWidth > 0 && m.termHeight > 3 {
		above = lipgloss.Place(m.termWidth, m.termHeight-3, lipgloss.Center, lipgloss.Center, card)
	} else {
		header := m.theme.Title.Render("flashq · " + m.session.Mode().String())
		above = strings.Join([]string{header, "", card, ""}, "\n")
	}
	return above, lipgloss.Height(above)
}

func (m *Model) renderCard() string {
	th := m.theme.Card
	cell, err := m.session.CurrentCell()
	if err != nil {
		return th.Frame.Render(m.theme.Footer.Error.Render(err.Error()))
	}
	width := m.cardWidth()
	state := m.session.Navigator().State()
	info := fmt.Sprintf("%s · row %d of %d", m.displayName(cell.DatasetKey), state.Row+1, m.session.Navigator().RowCount())
	value := cell.Value
	if strings.TrimSpace(value) == "" {
		value = "(empty)"
	}
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		th.Column.Render(cell.Column),
		"",
		th.Value.Render(wordwrap.String(value, width)),
		"",
		th.Context.Render(info),
	)
	return th.Frame.Render(body)
}

func (m *Model) cardWidth() int {
	if m.termWidth <= 0 {
		return 60
	}
	if w := m.termWidth - 8; w > 20 {
		return w
	}
	return 20
}

func (m *Model) quizView() string {
	above, _ := m.quizLayout()
	help := "←/→ column · ↑/↓ row · drag to swipe · f fullscreen · s settings · q quit"
	if m.fullscreen {
		help = "f exit fullscreen"
	}
	return above + "\n" + strings.Join(m.renderButtons(), buttonGap) + "\n" + m.footer(help)
}
