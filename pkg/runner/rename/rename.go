// Package rename stores a display name for a dataset.
package rename

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/flashq/pkg/app"
)

// Rename sets or clears the display name of the dataset matching Query.
type Rename struct {
	Service *app.Service
	Query   string
	Name    string
	Out     io.Writer
}

func (r *Rename) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("rename: no service configured")
	}
	t, err := r.Service.Rename(ctx, r.Query, r.Name)
	if err != nil {
		return err
	}
	out := r.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)
	if !t.Renamed() {
		_, _ = fmt.Fprintf(out, "%s shows as %s (default)\n", t.Key, bold.Sprint(t.DisplayName))
		return nil
	}
	_, _ = fmt.Fprintf(out, "%s shows as %s\n", t.Key, bold.Sprint(t.DisplayName))
	return nil
}
