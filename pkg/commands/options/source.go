package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/flashq/pkg/store"
)

// SourceOptions override where datasets and preferences live.
type SourceOptions struct {
	Data     string
	Manifest string
	Prefs    string
}

// AddSourceArgs registers the data location flags on every subcommand.
func AddSourceArgs(cmd *cobra.Command, o *SourceOptions) {
	cmd.PersistentFlags().StringVarP(&o.Data, "data", "d", "",
		"Data directory or http(s) base URL. Overrides the config file.")
	cmd.PersistentFlags().StringVar(&o.Manifest, "manifest", "",
		"Manifest file name inside the data directory.")
	cmd.PersistentFlags().StringVar(&o.Prefs, "prefs", "",
		"Directory holding display-name preferences.")
}

// Config loads configuration and applies any flags that were set.
func (o *SourceOptions) Config() (*store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if o.Data != "" {
		cfg.Data = o.Data
	}
	if o.Manifest != "" {
		cfg.Manifest = o.Manifest
	}
	if o.Prefs != "" {
		cfg.Prefs = o.Prefs
	}
	return cfg, nil
}
