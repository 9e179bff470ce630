package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/flashq/pkg/commands/options"
	"tableflip.dev/flashq/pkg/printers"
	"tableflip.dev/flashq/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the available datasets",
		Example: `
flashq list
flashq list --data https://cards.example.com/data --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				Service: svc,
				JSON:    oo.JSON,
				Printer: &printers.PrettyPrint{Out: cmd.OutOrStdout()},
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
