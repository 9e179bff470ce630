// Package manifest regenerates the dataset manifest of a data directory.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/flashq/pkg/manifest"
	"tableflip.dev/flashq/pkg/printers"
)

// Manifest scans Dir and writes Path.
type Manifest struct {
	Dir  string
	Path string
	// DryRun prints the manifest instead of writing it.
	DryRun bool
	Out    io.Writer
}

func (m *Manifest) Do(_ context.Context) error {
	if m.Dir == "" {
		return errors.New("manifest: data directory required")
	}
	list, err := manifest.Scan(m.Dir)
	if err != nil {
		return err
	}
	out := m.Out
	if out == nil {
		out = color.Output
	}
	if m.DryRun {
		return printers.JSON(out, list)
	}
	if err := manifest.Write(m.Path, list); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "wrote %d datasets to %s\n", len(list), m.Path)
	return nil
}
