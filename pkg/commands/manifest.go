package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/flashq/pkg/dataset"
	"tableflip.dev/flashq/pkg/runner/manifest"
)

func addManifest(topLevel *cobra.Command) {
	dryRun := false

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Regenerate file-list.json from the data directory",
		Example: `
flashq manifest
flashq manifest --data ./cards --dry-run
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := source.Config()
			if err != nil {
				return err
			}
			if dataset.IsRemote(cfg.Data) {
				return errors.New("manifest: remote data cannot be rescanned")
			}
			m := manifest.Manifest{
				Dir:    cfg.DataLocation(),
				Path:   cfg.ManifestPath(),
				DryRun: dryRun,
				Out:    cmd.OutOrStdout(),
			}
			return m.Do(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the manifest instead of writing it.")

	topLevel.AddCommand(cmd)
}
