// Package navigator holds the quiz position and moves it.
//
// A Navigator walks a fixed list of datasets. Sequential mode steps rows and
// columns one at a time with wraparound and never leaves the active dataset.
// Random mode answers every row move with a fresh uniform draw of dataset,
// row and eligible column; the same cell may come up twice in a row. Column
// moves always wrap within the active dataset's headers.
package navigator

import (
	"math/rand/v2"

	"tableflip.dev/flashq/pkg/dataset"
)

// Eligibility reports the columns of a dataset that may be drawn.
type Eligibility interface {
	EligibleColumns(key string) []string
}

// State is the current position.
type State struct {
	Dataset int
	Row     int
	Column  int
}

// Cell is the value at the current position together with its context.
type Cell struct {
	DatasetKey string
	Column     string
	Row        []string
	Value      string
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithSeed makes random draws reproducible.
func WithSeed(seed int64) Option {
	return func(n *Navigator) { n.rng = seededRNG(seed) }
}

// WithRand uses r for random draws.
func WithRand(r *rand.Rand) Option {
	return func(n *Navigator) { n.rng = r }
}

// Navigator is single-owner state; it is not safe for concurrent use.
type Navigator struct {
	datasets []*dataset.Dataset
	reg      Eligibility
	rng      *rand.Rand

	mode    Mode
	state   State
	started bool
}

// New returns an idle navigator over datasets.
func New(datasets []*dataset.Dataset, reg Eligibility, opts ...Option) *Navigator {
	n := &Navigator{
		datasets: append([]*dataset.Dataset(nil), datasets...),
		reg:      reg,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.rng == nil {
		n.rng = seededRNG(timeSeed())
	}
	return n
}

// Start validates the configuration and places the navigator at its first
// cell. Calling Start again restarts from scratch.
func (n *Navigator) Start(mode Mode) error {
	n.started = false
	if err := n.validate(); err != nil {
		return err
	}
	n.mode = mode
	switch mode {
	case Random:
		if err := n.draw(); err != nil {
			return err
		}
	default:
		n.mode = Sequential
		d := n.datasets[0]
		col := 0
		if cols := n.eligible(d); len(cols) > 0 {
			col = resolve(d, cols[0])
		}
		n.state = State{Dataset: 0, Row: 0, Column: col}
	}
	n.started = true
	return nil
}

func (n *Navigator) validate() error {
	if len(n.datasets) == 0 {
		return &ConfigurationError{Reason: "no dataset loaded"}
	}
	for _, d := range n.datasets {
		switch {
		case d == nil:
			return &ConfigurationError{Reason: "nil dataset"}
		case len(d.Headers) == 0:
			return &ConfigurationError{Dataset: d.Key, Reason: "no columns"}
		case len(d.Rows) == 0:
			return &ConfigurationError{Dataset: d.Key, Reason: "no rows"}
		case len(n.eligible(d)) == 0:
			return &ConfigurationError{Dataset: d.Key, Reason: "no eligible columns selected"}
		}
	}
	return nil
}

func (n *Navigator) eligible(d *dataset.Dataset) []string {
	if n.reg == nil {
		return nil
	}
	return n.reg.EligibleColumns(d.Key)
}

// resolve maps an eligible column name to its header index. A name that is
// not a header falls back to the first column.
func resolve(d *dataset.Dataset, name string) int {
	if idx := d.Column(name); idx >= 0 {
		return idx
	}
	return 0
}

func (n *Navigator) draw() error {
	di := n.rng.IntN(len(n.datasets))
	d := n.datasets[di]
	if len(d.Rows) == 0 {
		return &IndexOutOfRangeError{What: "row", Index: 0, Len: 0}
	}
	cols := n.eligible(d)
	if len(cols) == 0 {
		return &IndexOutOfRangeError{What: "eligible column", Index: 0, Len: 0}
	}
	n.state = State{
		Dataset: di,
		Row:     n.rng.IntN(len(d.Rows)),
		Column:  resolve(d, cols[n.rng.IntN(len(cols))]),
	}
	return nil
}

// RowMove is the move a row request maps to under the navigator's mode.
func (n *Navigator) RowMove(delta int) Move {
	if n.mode == Random {
		return Redraw{}
	}
	return Step{Axis: AxisRow, Delta: delta}
}

// Apply performs m.
func (n *Navigator) Apply(m Move) error {
	if !n.started {
		return ErrNotStarted
	}
	switch mv := m.(type) {
	case Redraw:
		return n.draw()
	case Step:
		d, err := n.active()
		if err != nil {
			return err
		}
		if mv.Axis == AxisColumn {
			n.state.Column = wrap(n.state.Column, mv.Delta, len(d.Headers))
		} else {
			n.state.Row = wrap(n.state.Row, mv.Delta, len(d.Rows))
		}
		return nil
	}
	return nil
}

// AdvanceRow moves to the next (delta > 0) or previous (delta < 0) row in
// sequential mode, and redraws in random mode.
func (n *Navigator) AdvanceRow(delta int) error {
	return n.Apply(n.RowMove(delta))
}

// AdvanceColumn moves across the active dataset's headers with wraparound.
func (n *Navigator) AdvanceColumn(delta int) error {
	return n.Apply(ColumnMove(delta))
}

func (n *Navigator) active() (*dataset.Dataset, error) {
	if n.state.Dataset < 0 || n.state.Dataset >= len(n.datasets) {
		return nil, &IndexOutOfRangeError{What: "dataset", Index: n.state.Dataset, Len: len(n.datasets)}
	}
	return n.datasets[n.state.Dataset], nil
}

// CurrentCell resolves the current position. It has no side effects.
func (n *Navigator) CurrentCell() (Cell, error) {
	if !n.started {
		return Cell{}, ErrNotStarted
	}
	d, err := n.active()
	if err != nil {
		return Cell{}, err
	}
	if n.state.Row < 0 || n.state.Row >= len(d.Rows) {
		return Cell{}, &IndexOutOfRangeError{What: "row", Index: n.state.Row, Len: len(d.Rows)}
	}
	if n.state.Column < 0 || n.state.Column >= len(d.Headers) {
		return Cell{}, &IndexOutOfRangeError{What: "column", Index: n.state.Column, Len: len(d.Headers)}
	}
	row := d.Rows[n.state.Row]
	value := ""
	if n.state.Column < len(row) {
		value = row[n.state.Column]
	}
	return Cell{
		DatasetKey: d.Key,
		Column:     d.Headers[n.state.Column],
		Row:        append([]string(nil), row...),
		Value:      value,
	}, nil
}

// State returns the current position.
func (n *Navigator) State() State { return n.state }

// Mode returns the mode given to Start.
func (n *Navigator) Mode() Mode { return n.mode }

// Started reports whether Start succeeded.
func (n *Navigator) Started() bool { return n.started }

// Datasets returns the datasets being navigated.
func (n *Navigator) Datasets() []*dataset.Dataset { return n.datasets }

// RowCount returns the number of rows in the active dataset.
func (n *Navigator) RowCount() int {
	d, err := n.active()
	if err != nil {
		return 0
	}
	return len(d.Rows)
}
