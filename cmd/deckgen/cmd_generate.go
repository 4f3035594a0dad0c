package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reactorkit/deckgen/internal/generator"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the scenario input decks and manifest",
		Long: `Generate enumerates the scenario matrix, renders one input deck per
scenario under the output root, and writes the manifest listing every run
directory in generation order.

Generation is fail-fast: any error aborts the run and no manifest is
written. Re-running with identical configuration reproduces every deck and
the manifest byte for byte.

Examples:
  deckgen generate                                  # built-in PB-FHR reference configuration
  deckgen generate --config deckgen.yaml
  deckgen generate --output-root /tmp/runs --manifest /tmp/manifest.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if v, _ := cmd.Flags().GetString("template"); v != "" {
				cfg.TemplatePath = v
			}
			if v, _ := cmd.Flags().GetString("output-root"); v != "" {
				cfg.OutputRoot = v
			}
			if v, _ := cmd.Flags().GetString("manifest"); v != "" {
				cfg.ManifestPath = v
			}

			summary, err := generator.Run(cmd.Context(), *cfg, newLogger(cmd))
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(summary)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d scenarios.\n", len(summary.Scenarios))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote manifest: %s\n", summary.ManifestPath)
			if summary.IndexPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote run index: %s\n", summary.IndexPath)
			}
			return nil
		},
	}

	cmd.Flags().String("template", "", "Override the template path")
	cmd.Flags().String("output-root", "", "Override the output root directory")
	cmd.Flags().String("manifest", "", "Override the manifest path")
	return cmd
}
