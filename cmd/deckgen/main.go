package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/reactorkit/deckgen/internal/config"
	"github.com/reactorkit/deckgen/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deckgen",
		Short: "Scenario-matrix generator for point-kinetics input decks",
		Long: `deckgen expands a small set of physical rate constants into a matrix of
ready-to-run simulation input decks: one directory per scenario plus a
manifest for downstream tooling.

Scenarios combinatorially vary power level, ramp direction, and an
initial-temperature bucket; all timing and reactivity-ramp parameters are
derived from the configured rates.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for tooling consumption)")
	rootCmd.PersistentFlags().String("config", "", "Path to a deckgen.yaml (built-in defaults when empty)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log verbosity: info or debug")

	rootCmd.AddCommand(
		newVersionCmd(),
		newInitCmd(),
		newGenerateCmd(),
		newScenariosCmd(),
		newValidateCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "deckgen version %s\n", version)
			}
		},
	}
}

// loadConfig resolves the --config flag into a validated configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		cfg := config.Default()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.NewLogger(level, cmd.ErrOrStderr())
}
