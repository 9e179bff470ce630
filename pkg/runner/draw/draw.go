// Package draw prints quiz cells without the interactive UI.
package draw

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/flashq/pkg/app"
	"tableflip.dev/flashq/pkg/gesture"
	"tableflip.dev/flashq/pkg/navigator"
	"tableflip.dev/flashq/pkg/printers"
)

// Draw walks a session and prints Count cells.
type Draw struct {
	Service *app.Service
	// Topics to draw from; all topics when empty.
	Topics  []string
	Mode    navigator.Mode
	Seed    int64
	Columns string
	Count   int
	ShowRow bool
	JSON    bool
	Printer *printers.PrettyPrint
}

type drawnCell struct {
	Dataset     string            `json:"dataset"`
	DisplayName string            `json:"displayName"`
	Column      string            `json:"column"`
	Value       string            `json:"value"`
	Row         map[string]string `json:"row,omitempty"`
}

// Do loads the topics, starts the quiz and prints each drawn cell. Every
// cell after the first is one row move further on.
func (d *Draw) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("draw: no service configured")
	}
	topics, err := d.topics(ctx)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(topics))
	s := d.session()
	for _, t := range topics {
		names[t.Key] = t.DisplayName
		if _, err := s.ToggleTopic(t.Key); err != nil {
			return err
		}
	}
	ds, err := d.Service.Load(ctx, s.Selected())
	if err != nil {
		return err
	}
	if err := s.Adopt(ds); err != nil {
		return err
	}
	if err := s.SetMode(d.Mode); err != nil {
		return err
	}
	if d.Columns != "" {
		if err := s.ApplyColumns(d.Columns); err != nil {
			return err
		}
	}
	if err := s.Start(); err != nil {
		return err
	}

	count := d.Count
	if count <= 0 {
		count = 1
	}
	pp := d.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.ShowRow = pp.ShowRow || d.ShowRow

	var drawn []drawnCell
	for i := 0; i < count; i++ {
		if i > 0 {
			if err := s.Do(gesture.NextRow); err != nil {
				return err
			}
		}
		c, err := s.CurrentCell()
		if err != nil {
			return err
		}
		headers := headersFor(s, c.DatasetKey)
		if d.JSON {
			drawn = append(drawn, toDrawn(c, names[c.DatasetKey], headers, pp.ShowRow))
			continue
		}
		pp.Cell(c, names[c.DatasetKey], headers)
	}
	if d.JSON {
		return printers.JSON(pp.Out, drawn)
	}
	return nil
}

func (d *Draw) session() *app.Session {
	if d.Seed != 0 {
		return app.NewSession(navigator.WithSeed(d.Seed))
	}
	return app.NewSession()
}

func (d *Draw) topics(ctx context.Context) ([]app.Topic, error) {
	if len(d.Topics) == 0 {
		all, err := d.Service.Topics(ctx)
		if err != nil {
			return nil, err
		}
		if len(all) == 0 {
			return nil, fmt.Errorf("draw: no datasets found")
		}
		return all, nil
	}
	out := make([]app.Topic, 0, len(d.Topics))
	seen := make(map[string]bool, len(d.Topics))
	for _, q := range d.Topics {
		t, err := d.Service.Resolve(ctx, q)
		if err != nil {
			return nil, err
		}
		if seen[t.Key] {
			continue
		}
		seen[t.Key] = true
		out = append(out, t)
	}
	return out, nil
}

func headersFor(s *app.Session, key string) []string {
	for _, ds := range s.Datasets() {
		if ds.Key == key {
			return ds.Headers
		}
	}
	return nil
}

func toDrawn(c navigator.Cell, name string, headers []string, withRow bool) drawnCell {
	out := drawnCell{Dataset: c.DatasetKey, DisplayName: name, Column: c.Column, Value: c.Value}
	if withRow {
		out.Row = make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(c.Row) {
				out.Row[h] = c.Row[i]
			}
		}
	}
	return out
}
