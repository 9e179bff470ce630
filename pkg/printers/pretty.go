// Package printers renders flashq data for the terminal.
package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"

	"tableflip.dev/flashq/pkg/app"
	"tableflip.dev/flashq/pkg/navigator"
)

// PrettyPrint writes colored, human oriented output.
type PrettyPrint struct {
	Out io.Writer
	// ShowRow prints the whole row under each cell.
	ShowRow bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Title prints a bold, underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Cell prints one quiz cell with its dataset and column.
func (pp *PrettyPrint) Cell(c navigator.Cell, datasetName string, headers []string) {
	w := pp.out()
	faint := color.New(color.Faint)
	col := color.New(color.FgHiYellow, color.Italic)
	val := color.New(color.Bold)

	_, _ = faint.Fprintf(w, "%s · ", datasetName)
	_, _ = col.Fprintf(w, "%s: ", c.Column)
	value := c.Value
	if value == "" {
		value = "(empty)"
	}
	_, _ = val.Fprintln(w, value)

	if pp.ShowRow {
		tbl := uitable.New()
		tbl.Separator = "  "
		for i, h := range headers {
			if i < len(c.Row) {
				tbl.AddRow("  "+faint.Sprint(h), c.Row[i])
			}
		}
		_, _ = fmt.Fprintln(w, tbl)
	}
}

// Topics prints the dataset list as a table.
func (pp *PrettyPrint) Topics(topics []app.Topic) {
	w := pp.out()
	if len(topics) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(w, " none")
		return
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("File"), bold.Sprint("Default"))
	for _, t := range topics {
		def := ""
		if t.Renamed() {
			def = faint.Sprint(t.DefaultName)
		}
		tbl.AddRow(t.DisplayName, t.Key, def)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	if w == nil {
		w = color.Output
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}
