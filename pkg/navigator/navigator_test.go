package navigator

import (
	"errors"
	"reflect"
	"testing"

	"tableflip.dev/flashq/pkg/dataset"
	"tableflip.dev/flashq/pkg/selection"
)

func letters() *dataset.Dataset {
	return &dataset.Dataset{
		Key:     "letters",
		Headers: []string{"A", "B", "C"},
		Rows:    [][]string{{"a1", "b1", "c1"}, {"a2", "b2", "c2"}, {"a3", "b3", "c3"}},
	}
}

func started(t *testing.T, mode Mode, ds ...*dataset.Dataset) *Navigator {
	t.Helper()
	n := New(ds, selection.ForDatasets(ds...), WithSeed(7))
	if err := n.Start(mode); err != nil {
		t.Fatalf("start: %v", err)
	}
	return n
}

func checkBounds(t *testing.T, n *Navigator) {
	t.Helper()
	s := n.State()
	ds := n.Datasets()
	if s.Dataset < 0 || s.Dataset >= len(ds) {
		t.Fatalf("dataset index %d out of range", s.Dataset)
	}
	d := ds[s.Dataset]
	if s.Row < 0 || s.Row >= len(d.Rows) {
		t.Fatalf("row index %d out of range for %d rows", s.Row, len(d.Rows))
	}
	if s.Column < 0 || s.Column >= len(d.Headers) {
		t.Fatalf("column index %d out of range for %d headers", s.Column, len(d.Headers))
	}
}

func TestStartSequentialMathExample(t *testing.T) {
	math := &dataset.Dataset{Key: "math", Headers: []string{"Q", "A"}, Rows: [][]string{{"1+1", "2"}}}
	reg := selection.ForDatasets(math)
	_ = reg.SetColumnEligible("math", "A", true)

	n := New([]*dataset.Dataset{math}, reg)
	if err := n.Start(Sequential); err != nil {
		t.Fatalf("start: %v", err)
	}
	got, err := n.CurrentCell()
	if err != nil {
		t.Fatalf("current cell: %v", err)
	}
	want := Cell{DatasetKey: "math", Column: "A", Row: []string{"1+1", "2"}, Value: "2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CurrentCell() = %+v, want %+v", got, want)
	}
}

func TestStartSequentialFallsBackToFirstColumn(t *testing.T) {
	d := letters()
	reg := selection.ForDatasets(d)
	_ = reg.SetColumnEligible("letters", "not-a-header", true)
	n := New([]*dataset.Dataset{d}, reg)
	if err := n.Start(Sequential); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := n.State(); got != (State{}) {
		t.Fatalf("expected origin, got %+v", got)
	}
}

func TestStartConfigurationErrors(t *testing.T) {
	empty := &dataset.Dataset{Key: "empty", Headers: []string{"A"}}
	noCols := letters()
	regNoCols := selection.ForDatasets(noCols)
	_ = regNoCols.SetColumnEligible("letters", "A", false)

	cases := map[string]*Navigator{
		"no datasets":         New(nil, selection.New(nil)),
		"no rows":             New([]*dataset.Dataset{empty}, selection.ForDatasets(empty)),
		"no eligible columns": New([]*dataset.Dataset{letters(), noCols}, regNoCols),
	}
	for name, n := range cases {
		for _, mode := range []Mode{Sequential, Random} {
			err := n.Start(mode)
			var ce *ConfigurationError
			if !errors.As(err, &ce) {
				t.Fatalf("%s/%s: expected ConfigurationError, got %v", name, mode, err)
			}
			if n.Started() {
				t.Fatalf("%s/%s: navigator must stay idle", name, mode)
			}
		}
	}
}

func TestNavigationBeforeStart(t *testing.T) {
	d := letters()
	n := New([]*dataset.Dataset{d}, selection.ForDatasets(d))
	if err := n.AdvanceRow(1); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
	if _, err := n.CurrentCell(); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
}

func TestAdvanceRowWrapsOnUnderflow(t *testing.T) {
	n := started(t, Sequential, letters())
	if err := n.AdvanceRow(-1); err != nil {
		t.Fatal(err)
	}
	if got := n.State().Row; got != 2 {
		t.Fatalf("expected row 2 after underflow, got %d", got)
	}
	if err := n.AdvanceRow(1); err != nil {
		t.Fatal(err)
	}
	if got := n.State().Row; got != 0 {
		t.Fatalf("expected row 0 after overflow, got %d", got)
	}
}

func TestAdvanceRowRoundTrip(t *testing.T) {
	n := started(t, Sequential, letters())
	_ = n.AdvanceRow(1)
	before := n.State()
	_ = n.AdvanceRow(1)
	_ = n.AdvanceRow(-1)
	if n.State() != before {
		t.Fatalf("+1/-1 should round trip: %+v vs %+v", n.State(), before)
	}
	_ = n.AdvanceRow(-1)
	_ = n.AdvanceRow(1)
	if n.State() != before {
		t.Fatalf("-1/+1 should round trip: %+v vs %+v", n.State(), before)
	}
}

func TestAdvanceRowStaysInDataset(t *testing.T) {
	other := &dataset.Dataset{Key: "other", Headers: []string{"X"}, Rows: [][]string{{"x"}}}
	n := started(t, Sequential, letters(), other)
	for i := 0; i < 10; i++ {
		_ = n.AdvanceRow(1)
		if n.State().Dataset != 0 {
			t.Fatalf("sequential row moves must not change dataset")
		}
	}
}

func TestAdvanceColumnWraps(t *testing.T) {
	n := started(t, Sequential, letters())
	_ = n.AdvanceColumn(1)
	_ = n.AdvanceColumn(1)
	if got := n.State().Column; got != 2 {
		t.Fatalf("expected column 2, got %d", got)
	}
	_ = n.AdvanceColumn(1)
	cell, _ := n.CurrentCell()
	if n.State().Column != 0 || cell.Column != "A" {
		t.Fatalf("expected wrap to A, got %d (%s)", n.State().Column, cell.Column)
	}
	_ = n.AdvanceColumn(-1)
	cell, _ = n.CurrentCell()
	if n.State().Column != 2 || cell.Column != "C" {
		t.Fatalf("expected wrap to C, got %d (%s)", n.State().Column, cell.Column)
	}
}

func TestDeltaIsSignBased(t *testing.T) {
	n := started(t, Sequential, letters())
	_ = n.AdvanceRow(5)
	if got := n.State().Row; got != 1 {
		t.Fatalf("delta 5 should move one row, got %d", got)
	}
	_ = n.AdvanceColumn(-40)
	if got := n.State().Column; got != 2 {
		t.Fatalf("delta -40 should move one column back, got %d", got)
	}
	before := n.State()
	_ = n.AdvanceRow(0)
	if n.State() != before {
		t.Fatalf("zero delta must not move")
	}
}

func TestBoundsHoldUnderRandomWalk(t *testing.T) {
	small := &dataset.Dataset{Key: "small", Headers: []string{"Q", "A"}, Rows: [][]string{{"q", "a"}}}
	for _, mode := range []Mode{Sequential, Random} {
		n := started(t, mode, letters(), small)
		checkBounds(t, n)
		for i := 0; i < 200; i++ {
			var err error
			switch i % 4 {
			case 0:
				err = n.AdvanceRow(1)
			case 1:
				err = n.AdvanceColumn(-1)
			case 2:
				err = n.AdvanceRow(-1)
			default:
				err = n.AdvanceColumn(1)
			}
			if err != nil {
				t.Fatalf("%s step %d: %v", mode, i, err)
			}
			checkBounds(t, n)
			if _, err := n.CurrentCell(); err != nil {
				t.Fatalf("%s step %d: %v", mode, i, err)
			}
		}
	}
}

func TestRandomRedrawVisitsSeveralDatasets(t *testing.T) {
	a := &dataset.Dataset{Key: "a", Headers: []string{"Q"}, Rows: [][]string{{"a1"}, {"a2"}}}
	b := &dataset.Dataset{Key: "b", Headers: []string{"Q"}, Rows: [][]string{{"b1"}}}
	c := &dataset.Dataset{Key: "c", Headers: []string{"Q"}, Rows: [][]string{{"c1"}, {"c2"}, {"c3"}}}
	n := started(t, Random, a, b, c)

	seen := map[int]bool{n.State().Dataset: true}
	for i := 0; i < 100; i++ {
		if err := n.AdvanceRow(1); err != nil {
			t.Fatal(err)
		}
		seen[n.State().Dataset] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected more than one dataset visited, got %v", seen)
	}
}

func TestRandomDrawsOnlyEligibleColumns(t *testing.T) {
	d := letters()
	reg := selection.ForDatasets(d)
	_ = reg.SetColumnEligible("letters", "B", true)
	_ = reg.SetColumnEligible("letters", "C", true)
	n := New([]*dataset.Dataset{d}, reg, WithSeed(42))
	if err := n.Start(Random); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		if col := n.State().Column; col == 0 {
			t.Fatalf("draw %d picked ineligible column A", i)
		}
		_ = n.AdvanceRow(-1)
	}
}

func TestRandomColumnMoveDoesNotRedraw(t *testing.T) {
	n := started(t, Random, letters(), letters())
	before := n.State()
	_ = n.AdvanceColumn(1)
	after := n.State()
	if after.Dataset != before.Dataset || after.Row != before.Row {
		t.Fatalf("column move changed dataset/row: %+v -> %+v", before, after)
	}
	if after.Column != (before.Column+1)%3 {
		t.Fatalf("expected local wrap, got %+v -> %+v", before, after)
	}
}

func TestSeedIsReproducible(t *testing.T) {
	walk := func() []State {
		n := started(t, Random, letters(), letters(), letters())
		out := []State{n.State()}
		for i := 0; i < 20; i++ {
			_ = n.AdvanceRow(1)
			out = append(out, n.State())
		}
		return out
	}
	if a, b := walk(), walk(); !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different walks")
	}
}

func TestRowMoveDependsOnMode(t *testing.T) {
	seq := started(t, Sequential, letters())
	if _, ok := seq.RowMove(1).(Step); !ok {
		t.Fatalf("sequential row move should be a Step")
	}
	rnd := started(t, Random, letters())
	if _, ok := rnd.RowMove(1).(Redraw); !ok {
		t.Fatalf("random row move should be a Redraw")
	}
	if _, ok := ColumnMove(1).(Step); !ok {
		t.Fatalf("column move should be a Step")
	}
}

func TestCurrentCellReportsCorruption(t *testing.T) {
	n := started(t, Sequential, letters())
	n.state.Row = 9
	var oor *IndexOutOfRangeError
	if _, err := n.CurrentCell(); !errors.As(err, &oor) || oor.What != "row" {
		t.Fatalf("expected row IndexOutOfRangeError, got %v", err)
	}
}

func TestRestartResetsState(t *testing.T) {
	n := started(t, Sequential, letters())
	_ = n.AdvanceRow(1)
	_ = n.AdvanceColumn(1)
	if err := n.Start(Sequential); err != nil {
		t.Fatal(err)
	}
	if n.State() != (State{}) {
		t.Fatalf("restart should reset to origin, got %+v", n.State())
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": Sequential, "Sequential": Sequential, "random": Random, "r": Random} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMode("shuffle"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
