package gesture

import (
	"testing"

	"tableflip.dev/flashq/pkg/dataset"
	"tableflip.dev/flashq/pkg/navigator"
	"tableflip.dev/flashq/pkg/selection"
)

func TestFromKey(t *testing.T) {
	cases := map[string]Action{
		"up":    PrevRow,
		"k":     PrevRow,
		"down":  NextRow,
		"j":     NextRow,
		"left":  PrevColumn,
		"h":     PrevColumn,
		"right": NextColumn,
		"l":     NextColumn,
		"x":     None,
		"enter": None,
	}
	for key, want := range cases {
		if got := FromKey(key); got != want {
			t.Fatalf("FromKey(%q) = %s, want %s", key, got, want)
		}
	}
}

func TestFromSwipe(t *testing.T) {
	const th = 4
	cases := []struct {
		dx, dy int
		want   Action
	}{
		{dx: 10, dy: 2, want: PrevColumn},
		{dx: -10, dy: 2, want: NextColumn},
		{dx: 2, dy: 10, want: PrevRow},
		{dx: 2, dy: -10, want: NextRow},
		{dx: 4, dy: 0, want: None},
		{dx: 0, dy: -4, want: None},
		{dx: 5, dy: 5, want: PrevRow},
		{dx: -6, dy: 6, want: PrevRow},
		{dx: 0, dy: 0, want: None},
	}
	for _, tc := range cases {
		if got := FromSwipe(tc.dx, tc.dy, th); got != tc.want {
			t.Fatalf("FromSwipe(%d, %d) = %s, want %s", tc.dx, tc.dy, got, tc.want)
		}
	}
}

func TestApply(t *testing.T) {
	d := &dataset.Dataset{Key: "d", Headers: []string{"A", "B"}, Rows: [][]string{{"a1", "b1"}, {"a2", "b2"}}}
	n := navigator.New([]*dataset.Dataset{d}, selection.ForDatasets(d))
	if err := n.Start(navigator.Sequential); err != nil {
		t.Fatal(err)
	}
	steps := []struct {
		action Action
		want   navigator.State
	}{
		{NextRow, navigator.State{Row: 1}},
		{NextColumn, navigator.State{Row: 1, Column: 1}},
		{PrevRow, navigator.State{Row: 0, Column: 1}},
		{PrevColumn, navigator.State{}},
		{None, navigator.State{}},
	}
	for _, s := range steps {
		if err := Apply(n, s.action); err != nil {
			t.Fatalf("%s: %v", s.action, err)
		}
		if got := n.State(); got != s.want {
			t.Fatalf("after %s: %+v, want %+v", s.action, got, s.want)
		}
	}
}

func TestButtonsCoverEveryAction(t *testing.T) {
	seen := map[Action]bool{}
	for _, b := range Buttons() {
		seen[b.Action] = true
	}
	for _, a := range []Action{PrevRow, NextRow, PrevColumn, NextColumn} {
		if !seen[a] {
			t.Fatalf("no button for %s", a)
		}
	}
}
