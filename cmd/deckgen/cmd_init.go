package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// defaultConfigYAML mirrors config.Default(), written out with comments so a
// fresh project starts from a self-documenting file.
const defaultConfigYAML = `# deckgen configuration
# All values shown are the built-in PB-FHR reference defaults.

# Rated thermal power of the plant (W).
rated_power_watts: 2.36e+08

# Steady-state power fractions to ramp between. Entries must be in (0, 1].
power_ladder: [0.2, 0.5, 1.0]

# Power-fraction step used by the adjacent-pair strategy.
ladder_step: 0.1

# Temperature buckets to enumerate, in order: low, nominal, high.
buckets: [low, nominal, high]

# Enumeration strategy: adjacent-pair or fixed-magnitude.
strategy: adjacent-pair

# Steady baseline before the ramp and settling window after it (s).
pre_ramp_seconds: 80
post_ramp_seconds: 80

# Desired power ramp rate (fraction of rated power per minute).
# Used by the adjacent-pair strategy to derive ramp durations.
power_ramp_rate_per_minute: 0.05

# Ramp duration used by the fixed-magnitude strategy (s).
fixed_ramp_seconds: 300

# Reactivity ramp rate (pcm per minute).
reactivity_ramp_rate_pcm_per_minute: 240

# Initial external reactivity bias (pcm), applied to up ramps only.
# Non-zero to avoid initial power decay.
reactivity_bias_pcm: 200

# When true the template's DELTA_RHO_PCM / RHO_BIAS_PCM placeholders are
# filled; when false a bare DELTA_RHO is emitted instead.
model_bias: true

template_path: examples/pbfhr/input_template.py
output_root: pbfhr_runs
manifest_path: pbfhr_manifest.txt
deck_filename: input.py

# Write a queryable SQLite index at <output_root>/runs.db after generation.
run_index: false
`

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented default deckgen.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("path")
			force, _ := cmd.Flags().GetBool("force")

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}
			if err := os.WriteFile(path, []byte(defaultConfigYAML), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().String("path", "deckgen.yaml", "Where to write the config file")
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}
