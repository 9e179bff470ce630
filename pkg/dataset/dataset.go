// Package dataset loads the tabular sources that flashcards are drawn from.
//
// A source is comma separated text: the first line holds the column names and
// every following line holds one row. Values are split on every comma; quoted
// fields are not recognised, so a value containing a literal comma is split
// into two columns.
package dataset

// Dataset is one loaded source. It is immutable once parsed.
type Dataset struct {
	Key     string
	Headers []string
	Rows    [][]string
}

// Column returns the index of the named header, or -1.
func (d *Dataset) Column(name string) int {
	if d == nil {
		return -1
	}
	for i, h := range d.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at row, col and whether the position exists.
func (d *Dataset) Cell(row, col int) (string, bool) {
	if d == nil || row < 0 || row >= len(d.Rows) {
		return "", false
	}
	r := d.Rows[row]
	if col < 0 || col >= len(r) {
		return "", false
	}
	return r[col], true
}

// Empty reports whether the dataset has nothing to quiz on.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Headers) == 0 || len(d.Rows) == 0
}
