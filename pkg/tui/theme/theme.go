package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title  lipgloss.Style
	List   ListTheme
	Card   CardTheme
	Button ButtonTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// ListTheme styles the topic and settings screens.
type ListTheme struct {
	Cursor   lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Heading  lipgloss.Style
}

// CardTheme styles the quiz card.
type CardTheme struct {
	Frame   lipgloss.Style
	Column  lipgloss.Style
	Value   lipgloss.Style
	Context lipgloss.Style
}

// ButtonTheme styles the on-screen navigation controls.
type ButtonTheme struct {
	Normal lipgloss.Style
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// ModalTheme styles centered modal overlays such as rename.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Error lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")

	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
		List: ListTheme{
			Cursor:   lipgloss.NewStyle().Foreground(accent).Bold(true),
			Item:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Muted:    lipgloss.NewStyle().Foreground(muted),
			Heading:  lipgloss.NewStyle().Bold(true).Underline(true),
		},
		Card: CardTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Column:  lipgloss.NewStyle().Foreground(muted).Italic(true),
			Value:   lipgloss.NewStyle().Bold(true),
			Context: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Button: ButtonTheme{
			Normal: lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle().Foreground(muted),
			Error: lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		},
	}
}
