// Package gesture maps user input to navigation actions.
package gesture

import (
	"tableflip.dev/flashq/pkg/navigator"
)

// Action is a navigation request.
type Action int

const (
	None Action = iota
	PrevRow
	NextRow
	PrevColumn
	NextColumn
)

func (a Action) String() string {
	switch a {
	case PrevRow:
		return "prev-row"
	case NextRow:
		return "next-row"
	case PrevColumn:
		return "prev-column"
	case NextColumn:
		return "next-column"
	}
	return "none"
}

// FromKey maps a key name to an action. Arrows move like the browser viewer;
// h/j/k/l are vi-style aliases.
func FromKey(key string) Action {
	switch key {
	case "up", "k":
		return PrevRow
	case "down", "j":
		return NextRow
	case "left", "h":
		return PrevColumn
	case "right", "l":
		return NextColumn
	}
	return None
}

// FromSwipe maps a drag from start to end, measured as dx, dy, to an action.
// The dominant axis wins; ties count as vertical. Dragging right or down goes
// back, dragging left or up goes forward. Moves no longer than threshold are
// ignored.
func FromSwipe(dx, dy, threshold int) Action {
	if abs(dx) > abs(dy) {
		switch {
		case dx > threshold:
			return PrevColumn
		case dx < -threshold:
			return NextColumn
		}
		return None
	}
	switch {
	case dy > threshold:
		return PrevRow
	case dy < -threshold:
		return NextRow
	}
	return None
}

// Apply performs a on n.
func Apply(n *navigator.Navigator, a Action) error {
	switch a {
	case PrevRow:
		return n.AdvanceRow(-1)
	case NextRow:
		return n.AdvanceRow(1)
	case PrevColumn:
		return n.AdvanceColumn(-1)
	case NextColumn:
		return n.AdvanceColumn(1)
	}
	return nil
}

// Button is an on-screen control.
type Button struct {
	Label  string
	Action Action
}

// Buttons returns the on-screen controls in display order.
func Buttons() []Button {
	return []Button{
		{Label: "◀ col", Action: PrevColumn},
		{Label: "▲ row", Action: PrevRow},
		{Label: "▼ row", Action: NextRow},
		{Label: "col ▶", Action: NextColumn},
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
