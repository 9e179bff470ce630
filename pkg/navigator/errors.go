package navigator

import (
	"errors"
	"fmt"
)

// ErrNotStarted is returned by navigation calls made before Start.
var ErrNotStarted = errors.New("navigator: not started")

// ConfigurationError blocks a quiz from starting: nothing is loaded, or a
// dataset has no rows, no headers, or no eligible columns.
type ConfigurationError struct {
	Dataset string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Dataset != "" {
		return fmt.Sprintf("navigator: dataset %q: %s", e.Dataset, e.Reason)
	}
	return "navigator: " + e.Reason
}

// IndexOutOfRangeError means the navigator reached a position outside its
// data. It indicates a bug and is never clamped away.
type IndexOutOfRangeError struct {
	What  string
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("navigator: %s index %d out of range [0,%d)", e.What, e.Index, e.Len)
}
