package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/flashq/pkg/commands/options"
	"tableflip.dev/flashq/pkg/runner/rename"
)

func addRename(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "rename TOPIC [NAME...]",
		Short: "Set the display name of a dataset",
		Long: `Set the name a dataset is shown under. The name is remembered across
sessions. Leave NAME out to restore the default name.`,
		Example: `
flashq rename math Arithmetic
flashq rename "world history.csv" World History
flashq rename math
`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: topicCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			r := rename.Rename{
				Service: svc,
				Query:   args[0],
				Name:    strings.Join(args[1:], " "),
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
