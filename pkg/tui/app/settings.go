package teaui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/flashq/pkg/navigator"
)

// settingsItem is one selectable line. An empty key is the mode toggle.
type settingsItem struct {
	key    string
	column string
}

func (m *Model) settingsItems() []settingsItem {
	items := []settingsItem{{}}
	for _, d := range m.session.Datasets() {
		for _, h := range d.Headers {
			items = append(items, settingsItem{key: d.Key, column: h})
		}
	}
	return items
}

func (m *Model) handleSettingsKey(key string) tea.Cmd {
	items := m.settingsItems()
	switch key {
	case "q":
		return m.quit()
	case "up", "k":
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case "down", "j":
		if m.settingsCursor < len(items)-1 {
			m.settingsCursor++
		}
	case "m":
		m.toggleMode()
	case "space", "x":
		item := items[m.settingsCursor]
		if item.key == "" {
			m.toggleMode()
			return nil
		}
		if err := m.session.ToggleColumn(item.key, item.column); err != nil {
			m.errText = err.Error()
			return nil
		}
		m.errText = ""
	case "enter":
		m.start()
	case "esc":
		if err := m.session.Back(); err != nil {
			m.errText = err.Error()
			return nil
		}
		m.errText = ""
		m.logger.Printf("phase %s", m.session.Phase())
		return m.loadTopics()
	}
	return nil
}

func (m *Model) toggleMode() {
	next := navigator.Random
	if m.session.Mode() == navigator.Random {
		next = navigator.Sequential
	}
	if err := m.session.SetMode(next); err != nil {
		m.errText = err.Error()
		return
	}
	m.errText = ""
}

// start begins the quiz. A configuration problem keeps the user here with
// the reason shown inline.
func (m *Model) start() {
	err := m.session.Start()
	var ce *navigator.ConfigurationError
	switch {
	case errors.As(err, &ce):
		m.logger.Printf("start refused: %v", err)
		m.errText = ce.Error()
		return
	case err != nil:
		m.logger.Printf("start: %v", err)
		m.errText = err.Error()
		return
	}
	m.errText = ""
	m.fatal = false
	m.logger.Printf("phase %s: mode %s", m.session.Phase(), m.session.Mode())
}

func (m *Model) settingsView() string {
	th := m.theme
	reg := m.session.Registry()
	items := m.settingsItems()

	var b strings.Builder
	b.WriteString(th.Title.Render("flashq · settings"))
	b.WriteString("\n\n")
	lastKey := ""
	for i, item := range items {
		cursor := "  "
		if i == m.settingsCursor {
			cursor = th.List.Cursor.Render("> ")
		}
		if item.key == "" {
			b.WriteString(cursor + fmt.Sprintf("Mode: %s", th.List.Selected.Render(m.session.Mode().String())))
			b.WriteString(th.List.Muted.Render("  (m)"))
			b.WriteString("\n")
			continue
		}
		if item.key != lastKey {
			lastKey = item.key
			b.WriteString("\n  " + th.List.Heading.Render(m.displayName(item.key)) + "\n")
		}
		box := "[ ]"
		style := th.List.Item
		if reg != nil && reg.IsEligible(item.key, item.column) {
			box = "[x]"
			style = th.List.Selected
		}
		b.WriteString(cursor + "  " + style.Render(box+" "+item.column) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.footer("space toggle · m mode · enter start · esc topics · q quit"))
	return b.String()
}
