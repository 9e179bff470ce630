package navigator

import (
	"fmt"
	"strings"
)

// Mode is the transition policy for row moves. It is fixed once a quiz starts.
type Mode int

const (
	// Sequential steps through rows and columns one at a time.
	Sequential Mode = iota
	// Random treats every row move as a fresh random draw.
	Random
)

func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Random:
		return "random"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "sequential" or "random" (or their first letter).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sequential", "seq", "s":
		return Sequential, nil
	case "random", "rand", "r":
		return Random, nil
	}
	return Sequential, fmt.Errorf("navigator: unknown mode %q (expected sequential or random)", s)
}
