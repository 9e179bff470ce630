package options

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/flashq/pkg/dataset"
	"tableflip.dev/flashq/pkg/manifest"
	"tableflip.dev/flashq/pkg/navigator"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// HandleError prints err as a JSON object when --json is set, so scripts
// can tell configuration and load problems apart.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		if kind := errorKind(err); kind != "" {
			out["kind"] = kind
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}

func errorKind(err error) string {
	var (
		ce *navigator.ConfigurationError
		le *dataset.LoadError
		ue *manifest.UnknownError
		oe *navigator.IndexOutOfRangeError
	)
	switch {
	case errors.As(err, &ce):
		return "configuration"
	case errors.As(err, &le):
		return "load"
	case errors.As(err, &ue):
		return "unknown-dataset"
	case errors.As(err, &oe):
		return "internal"
	}
	return ""
}
