package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/flashq/pkg/commands/options"
	"tableflip.dev/flashq/pkg/runner/quiz"
	teaui "tableflip.dev/flashq/pkg/tui/app"
)

func addQuiz(topLevel *cobra.Command) {
	qo := &options.QuizOptions{}
	uo := &options.UIOptions{}

	cmd := &cobra.Command{
		Use:   "quiz [TOPIC...]",
		Short: "Open the interactive quiz",
		Example: `
flashq quiz
flashq quiz math history --mode random
flashq quiz math --columns "math.csv=A"
`,
		ValidArgsFunction: topicCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			mode, seed, err := qo.Resolve(cfg)
			if err != nil {
				return err
			}
			threshold := uo.SwipeThreshold
			if threshold <= 0 {
				threshold = cfg.SwipeThreshold
			}
			var debug io.Writer
			if uo.DebugLog != "" {
				f, err := os.OpenFile(uo.DebugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open debug log: %w", err)
				}
				defer f.Close()
				debug = f
			}
			q := quiz.Quiz{
				Service: svc,
				Options: teaui.Options{
					Mode:           mode,
					Seed:           seed,
					Columns:        qo.Columns,
					Preselect:      args,
					SwipeThreshold: threshold,
					Debug:          debug,
				},
			}
			return q.Do(cmd.Context())
		},
	}
	options.AddQuizArgs(cmd, qo)
	options.AddUIArgs(cmd, uo)

	topLevel.AddCommand(cmd)
}
