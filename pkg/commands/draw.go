package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/flashq/pkg/commands/options"
	"tableflip.dev/flashq/pkg/printers"
	"tableflip.dev/flashq/pkg/runner/draw"
)

func addDraw(topLevel *cobra.Command) {
	qo := &options.QuizOptions{}
	do := &options.DrawOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "draw [TOPIC...]",
		Short: "Print quiz cells without the interactive UI",
		Example: `
flashq draw math -n 5
flashq draw --mode random --seed 42 -n 10 --json
`,
		ValidArgsFunction: topicCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			mode, seed, err := qo.Resolve(cfg)
			if err != nil {
				return oo.HandleError(err)
			}
			out := cmd.OutOrStdout()
			if !printers.IsTerminal(out) {
				color.NoColor = true
			}
			d := draw.Draw{
				Service: svc,
				Topics:  args,
				Mode:    mode,
				Seed:    seed,
				Columns: qo.Columns,
				Count:   do.Count,
				ShowRow: do.ShowRow,
				JSON:    oo.JSON,
				Printer: &printers.PrettyPrint{Out: out},
			}
			return oo.HandleError(d.Do(cmd.Context()))
		},
	}
	options.AddQuizArgs(cmd, qo)
	options.AddDrawArgs(cmd, do)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
