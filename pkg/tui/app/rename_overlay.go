package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/flashq/pkg/app"
	"tableflip.dev/flashq/pkg/tui/theme"
)

type renameSubmitMsg struct {
	Key  string
	Name string
}

type renameCancelledMsg struct{}

type renameOverlay struct {
	topic  app.Topic
	input  textinput.Model
	theme  theme.ModalTheme
	errMsg string
	width  int
}

func newRenameOverlay(t app.Topic, th theme.ModalTheme) *renameOverlay {
	ti := textinput.New()
	ti.Placeholder = t.DefaultName
	ti.CharLimit = 128
	ti.Prompt = "> "
	ti.SetValue(t.DisplayName)
	return &renameOverlay{topic: t, input: ti, theme: th}
}

func (o *renameOverlay) Init() tea.Cmd {
	return o.input.Focus()
}

func (o *renameOverlay) Update(msg tea.Msg) (*renameOverlay, tea.Cmd) {
	if v, ok := msg.(tea.KeyMsg); ok {
		switch v.String() {
		case "enter":
			name := strings.TrimSpace(o.input.Value())
			key := o.topic.Key
			o.errMsg = ""
			o.input.Blur()
			return o, func() tea.Msg { return renameSubmitMsg{Key: key, Name: name} }
		case "esc":
			o.errMsg = ""
			o.input.Blur()
			return o, func() tea.Msg { return renameCancelledMsg{} }
		default:
			o.errMsg = ""
		}
	}
	model, cmd := o.input.Update(msg)
	o.input = model
	return o, cmd
}

// SetError shows err under the input and refocuses it.
func (o *renameOverlay) SetError(err error) tea.Cmd {
	o.errMsg = err.Error()
	return o.input.Focus()
}

func (o *renameOverlay) SetWidth(width int) {
	o.width = width
}

func (o *renameOverlay) View() string {
	title := o.theme.Title.Render(fmt.Sprintf("Rename %s", o.topic.Key))
	info := o.theme.Body.Render("Enter saves. An empty name restores " + fmt.Sprintf("%q", o.topic.DefaultName) + ". Esc cancels.")
	if msg := strings.TrimSpace(o.errMsg); msg != "" {
		info = o.theme.Error.Render(msg)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, title, o.input.View(), info)
	frame := o.theme.Frame
	if o.width > 8 {
		frame = frame.Width(o.width - 4)
	}
	return frame.Render(body)
}
