// Package config provides configuration loading for deckgen.
// It layers a YAML file and environment variables over built-in defaults.
// The loaded Config is an immutable value handed to the enumerator and
// synthesizer; nothing in the generator reads module-scope state.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reactorkit/deckgen/internal/thermal"
)

// Strategy selects how the scenario matrix is enumerated.
type Strategy string

const (
	// StrategyAdjacentPair walks adjacent pairs of a sorted power ladder
	// extended by LadderStep, deriving each ramp duration from the power
	// ramp rate.
	StrategyAdjacentPair Strategy = "adjacent-pair"

	// StrategyFixedMagnitude emits one up and one down scenario per ladder
	// level, all with the single configured FixedRampSeconds duration.
	StrategyFixedMagnitude Strategy = "fixed-magnitude"
)

// Config holds the full configuration surface of a generation run.
type Config struct {
	// RatedPowerWatts is the rated thermal power of the plant in watts.
	RatedPowerWatts float64 `yaml:"rated_power_watts" json:"rated_power_watts"`

	// PowerLadder lists the steady-state power fractions to ramp between.
	// Every entry must be in (0, 1].
	PowerLadder []float64 `yaml:"power_ladder" json:"power_ladder"`

	// LadderStep is the power-fraction step the adjacent-pair strategy uses
	// to extend each ladder level into a ramp pair.
	LadderStep float64 `yaml:"ladder_step" json:"ladder_step"`

	// Buckets lists the temperature buckets to enumerate, in order.
	Buckets []thermal.Bucket `yaml:"buckets" json:"buckets"`

	// Strategy is "adjacent-pair" or "fixed-magnitude".
	Strategy Strategy `yaml:"strategy" json:"strategy"`

	// PreRampSeconds and PostRampSeconds bracket every ramp with a steady
	// baseline and a settling window.
	PreRampSeconds  float64 `yaml:"pre_ramp_seconds" json:"pre_ramp_seconds"`
	PostRampSeconds float64 `yaml:"post_ramp_seconds" json:"post_ramp_seconds"`

	// PowerRampRatePerMinute is the desired power ramp rate as a fraction of
	// rated power per minute. The adjacent-pair strategy derives each ramp
	// duration from it.
	PowerRampRatePerMinute float64 `yaml:"power_ramp_rate_per_minute" json:"power_ramp_rate_per_minute"`

	// FixedRampSeconds is the ramp duration used by the fixed-magnitude
	// strategy.
	FixedRampSeconds float64 `yaml:"fixed_ramp_seconds" json:"fixed_ramp_seconds"`

	// ReactivityRatePCMPerMinute converts ramp duration into a reactivity
	// delta magnitude, in pcm per minute.
	ReactivityRatePCMPerMinute float64 `yaml:"reactivity_ramp_rate_pcm_per_minute" json:"reactivity_ramp_rate_pcm_per_minute"`

	// ReactivityBiasPCM is the initial external reactivity bias applied to
	// "up" scenarios when ModelBias is set. A non-zero bias keeps initial
	// power from decaying before the ramp starts.
	ReactivityBiasPCM float64 `yaml:"reactivity_bias_pcm" json:"reactivity_bias_pcm"`

	// ModelBias selects the template variant: when true the synthesizer
	// emits DELTA_RHO_PCM and RHO_BIAS_PCM, when false a bare DELTA_RHO.
	ModelBias bool `yaml:"model_bias" json:"model_bias"`

	// TemplatePath locates the input-deck template on disk.
	TemplatePath string `yaml:"template_path" json:"template_path"`

	// OutputRoot is the directory that receives one subdirectory per run.
	OutputRoot string `yaml:"output_root" json:"output_root"`

	// ManifestPath is where the newline-separated list of run directories
	// is written after a fully successful generation.
	ManifestPath string `yaml:"manifest_path" json:"manifest_path"`

	// DeckFilename names the rendered deck inside each run directory.
	DeckFilename string `yaml:"deck_filename" json:"deck_filename"`

	// RunIndex enables the SQLite run index at <output_root>/runs.db.
	RunIndex bool `yaml:"run_index" json:"run_index"`
}

// Default returns the reference PB-FHR configuration.
func Default() *Config {
	return &Config{
		RatedPowerWatts:            236e6,
		PowerLadder:                []float64{0.2, 0.5, 1.0},
		LadderStep:                 0.1,
		Buckets:                    thermal.Buckets(),
		Strategy:                   StrategyAdjacentPair,
		PreRampSeconds:             80,
		PostRampSeconds:            80,
		PowerRampRatePerMinute:     0.05,
		FixedRampSeconds:           300,
		ReactivityRatePCMPerMinute: 240,
		ReactivityBiasPCM:          200,
		ModelBias:                  true,
		TemplatePath:               "examples/pbfhr/input_template.py",
		OutputRoot:                 "pbfhr_runs",
		ManifestPath:               "pbfhr_manifest.txt",
		DeckFilename:               "input.py",
		RunIndex:                   false,
	}
}

// Load reads a YAML file at path layered over defaults, applies environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.RatedPowerWatts <= 0 {
		return fmt.Errorf("rated_power_watts must be positive, got %v", c.RatedPowerWatts)
	}
	if len(c.PowerLadder) == 0 {
		return fmt.Errorf("power_ladder must not be empty")
	}
	for _, p := range c.PowerLadder {
		if p <= 0 || p > 1 {
			return fmt.Errorf("power_ladder entries must be in (0, 1], got %v", p)
		}
	}
	if len(c.Buckets) == 0 {
		return fmt.Errorf("buckets must not be empty")
	}
	for _, b := range c.Buckets {
		if !thermal.Valid(b) {
			return fmt.Errorf("%w: %q", thermal.ErrInvalidBucket, b)
		}
	}
	switch c.Strategy {
	case StrategyAdjacentPair:
		if c.LadderStep <= 0 {
			return fmt.Errorf("ladder_step must be positive for the adjacent-pair strategy, got %v", c.LadderStep)
		}
		if c.PowerRampRatePerMinute <= 0 {
			return fmt.Errorf("power_ramp_rate_per_minute must be positive, got %v", c.PowerRampRatePerMinute)
		}
	case StrategyFixedMagnitude:
		if c.FixedRampSeconds < 0 {
			return fmt.Errorf("fixed_ramp_seconds must be non-negative, got %v", c.FixedRampSeconds)
		}
	default:
		return fmt.Errorf("invalid strategy: %q (valid: adjacent-pair, fixed-magnitude)", c.Strategy)
	}
	if c.ReactivityRatePCMPerMinute <= 0 {
		return fmt.Errorf("reactivity_ramp_rate_pcm_per_minute must be positive, got %v", c.ReactivityRatePCMPerMinute)
	}
	if c.PreRampSeconds < 0 || c.PostRampSeconds < 0 {
		return fmt.Errorf("pre/post ramp durations must be non-negative, got %v/%v", c.PreRampSeconds, c.PostRampSeconds)
	}
	if c.TemplatePath == "" {
		return fmt.Errorf("template_path must not be empty")
	}
	if c.OutputRoot == "" {
		return fmt.Errorf("output_root must not be empty")
	}
	if c.ManifestPath == "" {
		return fmt.Errorf("manifest_path must not be empty")
	}
	if c.DeckFilename == "" {
		return fmt.Errorf("deck_filename must not be empty")
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DECKGEN_TEMPLATE_PATH"); v != "" {
		cfg.TemplatePath = v
	}
	if v := os.Getenv("DECKGEN_OUTPUT_ROOT"); v != "" {
		cfg.OutputRoot = v
	}
	if v := os.Getenv("DECKGEN_MANIFEST_PATH"); v != "" {
		cfg.ManifestPath = v
	}
	if v := os.Getenv("DECKGEN_RUN_INDEX"); v != "" {
		cfg.RunIndex = v == "true" || v == "1"
	}
	if v := os.Getenv("DECKGEN_RATED_POWER_WATTS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RatedPowerWatts = f
		}
	}
}
