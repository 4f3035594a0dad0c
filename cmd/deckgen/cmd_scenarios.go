package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reactorkit/deckgen/internal/scenario"
)

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the scenario matrix without generating anything",
		Long: `Scenarios enumerates the scenario matrix for the current configuration
and prints it in generation order. Nothing is written to disk, which makes
this the quick way to check a configuration before a real run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			scenarios, err := scenario.Enumerate(*cfg)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(scenarios)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-24s %6s %6s %-6s %-8s %10s\n", "RUN", "P0", "P1", "DIR", "BUCKET", "RAMP (s)")
			for _, s := range scenarios {
				fmt.Fprintf(out, "%-24s %6.2f %6.2f %-6s %-8s %10.1f\n",
					s.RunName, s.P0, s.P1, s.Direction, s.Bucket, s.RampSeconds)
			}
			fmt.Fprintf(out, "%d scenarios.\n", len(scenarios))
			return nil
		},
	}
}
