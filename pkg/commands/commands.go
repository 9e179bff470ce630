package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/flashq/pkg/app"
	"tableflip.dev/flashq/pkg/commands/options"
	"tableflip.dev/flashq/pkg/store"
)

var (
	source = &options.SourceOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "flashq",
		Short: base.Wrap80("Flashcard quizzes from CSV files, in the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddSourceArgs(cmd, source)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addQuiz(topLevel)
	addDraw(topLevel)
	addList(topLevel)
	addRename(topLevel)
	addManifest(topLevel)
	addServe(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func newService() (*app.Service, *store.Config, error) {
	cfg, err := source.Config()
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.NewService(cfg)
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

// topicCompletions offers dataset file names for shell completion.
func topicCompletions(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	svc, _, err := newService()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	topics, err := svc.Topics(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		out = append(out, strconv.Quote(t.Key))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
