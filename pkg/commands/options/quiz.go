package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/flashq/pkg/navigator"
	"tableflip.dev/flashq/pkg/store"
)

// QuizOptions select how cells are drawn.
type QuizOptions struct {
	Mode    string
	Seed    int64
	Columns string
}

func AddQuizArgs(cmd *cobra.Command, o *QuizOptions) {
	cmd.Flags().StringVarP(&o.Mode, "mode", "m", "",
		"Quiz mode, sequential or random. Defaults to the config file.")
	cmd.Flags().Int64Var(&o.Seed, "seed", 0,
		"Seed for random mode; 0 picks one from the clock.")
	cmd.Flags().StringVarP(&o.Columns, "columns", "c", "",
		`Quizzable columns per dataset, e.g. "math.csv=Q,A;history.csv=Year".`)
}

// Resolve merges the flags with cfg.
func (o *QuizOptions) Resolve(cfg *store.Config) (navigator.Mode, int64, error) {
	mode := o.Mode
	if mode == "" {
		mode = cfg.Mode
	}
	m, err := navigator.ParseMode(mode)
	if err != nil {
		return navigator.Sequential, 0, err
	}
	seed := o.Seed
	if seed == 0 {
		seed = cfg.Seed
	}
	return m, seed, nil
}

// DrawOptions
type DrawOptions struct {
	Count   int
	ShowRow bool
}

func AddDrawArgs(cmd *cobra.Command, o *DrawOptions) {
	cmd.Flags().IntVarP(&o.Count, "count", "n", 1,
		"Number of cells to print.")
	cmd.Flags().BoolVar(&o.ShowRow, "row", false,
		"Print the whole row under each cell.")
}

// UIOptions tune the interactive quiz.
type UIOptions struct {
	SwipeThreshold int
	DebugLog       string
}

func AddUIArgs(cmd *cobra.Command, o *UIOptions) {
	cmd.Flags().IntVar(&o.SwipeThreshold, "swipe-threshold", 0,
		"Cells a mouse drag must cover to count as a swipe. Defaults to the config file.")
	cmd.Flags().StringVar(&o.DebugLog, "debug-log", "",
		"Append a trace of the session to this file.")
}
