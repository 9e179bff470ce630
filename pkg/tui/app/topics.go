package teaui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
)

func (m *Model) handleTopicsKey(key string) tea.Cmd {
	if m.loading {
		if key == "q" {
			return m.quit()
		}
		return nil
	}
	switch key {
	case "q":
		return m.quit()
	case "up", "k":
		if m.topicCursor > 0 {
			m.topicCursor--
		}
	case "down", "j":
		if m.topicCursor < len(m.topics)-1 {
			m.topicCursor++
		}
	case "space", "x":
		if len(m.topics) == 0 {
			return nil
		}
		topic := m.topics[m.topicCursor].Key
		on, err := m.session.ToggleTopic(topic)
		if err != nil {
			m.errText = err.Error()
			return nil
		}
		m.errText = ""
		m.logger.Printf("topic %s selected=%t", topic, on)
	case "r":
		if len(m.topics) == 0 {
			return nil
		}
		m.rename = newRenameOverlay(m.topics[m.topicCursor], m.theme.Modal)
		m.rename.SetWidth(m.termWidth)
		return m.rename.Init()
	case "enter":
		return m.beginLoad()
	}
	return nil
}

func (m *Model) topicsView() string {
	th := m.theme
	var b strings.Builder
	b.WriteString(th.Title.Render("flashq · choose topics"))
	b.WriteString("\n\n")
	if len(m.topics) == 0 {
		b.WriteString(th.List.Muted.Render("No datasets found."))
		b.WriteString("\n")
	}
	for i, t := range m.topics {
		cursor := "  "
		if i == m.topicCursor {
			cursor = th.List.Cursor.Render("> ")
		}
		box := "[ ]"
		style := th.List.Item
		if m.session.IsSelected(t.Key) {
			box = "[x]"
			style = th.List.Selected
		}
		line := style.Render(fmt.Sprintf("%s %s", box, t.DisplayName))
		if t.Renamed() {
			line += th.List.Muted.Render(fmt.Sprintf("  (%s)", t.Key))
		}
		b.WriteString(cursor + line + "\n")
	}
	if m.rename != nil {
		b.WriteString("\n")
		b.WriteString(m.rename.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.footer("space select · r rename · enter continue · q quit"))
	return b.String()
}
