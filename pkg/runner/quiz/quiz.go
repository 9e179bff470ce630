// Package quiz launches the interactive quiz.
package quiz

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/flashq/pkg/app"
	teaui "tableflip.dev/flashq/pkg/tui/app"
)

var errNoTerminal = errors.New("quiz: stdout is not a terminal, use `flashq draw` instead")

// Quiz runs the terminal UI.
type Quiz struct {
	Service *app.Service
	Options teaui.Options
}

// Do blocks until the user quits.
func (q *Quiz) Do(ctx context.Context) error {
	if q.Service == nil {
		return errors.New("quiz: no service configured")
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errNoTerminal
	}
	return teaui.Run(ctx, q.Service, q.Options)
}
