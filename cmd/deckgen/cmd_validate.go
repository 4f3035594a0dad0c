package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reactorkit/deckgen/internal/generator"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every scenario renders against the template",
		Long: `Validate loads the configuration and template, then synthesizes and
renders every scenario in memory. It fails on the first scenario whose
parameters do not match the template's placeholder set, and writes nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			n, err := generator.Validate(*cfg)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"valid":     true,
					"scenarios": n,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration valid: %d scenarios render cleanly.\n", n)
			return nil
		},
	}
}
