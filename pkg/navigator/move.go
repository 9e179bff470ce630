package navigator

import "fmt"

// Axis is the direction a Step moves along.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

func (a Axis) String() string {
	if a == AxisColumn {
		return "column"
	}
	return "row"
}

// Move is one navigation transition: either a Step or a Redraw.
type Move interface {
	fmt.Stringer
	isMove()
}

// Step moves by the sign of Delta along Axis with wraparound.
type Step struct {
	Axis  Axis
	Delta int
}

// Redraw picks a fresh random dataset, row and column.
type Redraw struct{}

func (Step) isMove()   {}
func (Redraw) isMove() {}

func (s Step) String() string {
	return fmt.Sprintf("step %s %+d", s.Axis, sign(s.Delta))
}

func (Redraw) String() string { return "redraw" }

// ColumnMove is the move for a column request; columns always wrap locally.
func ColumnMove(delta int) Move {
	return Step{Axis: AxisColumn, Delta: delta}
}

func sign(delta int) int {
	switch {
	case delta > 0:
		return 1
	case delta < 0:
		return -1
	}
	return 0
}

func wrap(idx, delta, n int) int {
	return (idx + sign(delta) + n) % n
}
