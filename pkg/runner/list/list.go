// Package list prints the available datasets.
package list

import (
	"context"
	"errors"

	"tableflip.dev/flashq/pkg/app"
	"tableflip.dev/flashq/pkg/printers"
)

// List prints topics with their display names.
type List struct {
	Service *app.Service
	JSON    bool
	Printer *printers.PrettyPrint
}

func (l *List) Do(ctx context.Context) error {
	if l.Service == nil {
		return errors.New("list: no service configured")
	}
	pp := l.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if l.JSON {
		list, err := l.Service.Descriptors(ctx)
		if err != nil {
			return err
		}
		return printers.JSON(pp.Out, list)
	}
	topics, err := l.Service.Topics(ctx)
	if err != nil {
		return err
	}
	pp.Title("Datasets")
	pp.Topics(topics)
	return nil
}
