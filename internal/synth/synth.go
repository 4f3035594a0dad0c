// Package synth computes the templated parameter values for one scenario.
// All derivations are pure; given the same scenario and configuration the
// formatted output is byte-identical, which is what makes regenerated decks
// reproducible.
package synth

import (
	"strconv"

	"github.com/reactorkit/deckgen/internal/config"
	"github.com/reactorkit/deckgen/internal/rates"
	"github.com/reactorkit/deckgen/internal/scenario"
	"github.com/reactorkit/deckgen/internal/thermal"
)

// Params is the flat placeholder-to-formatted-value mapping consumed by the
// template renderer.
type Params map[string]string

// Synthesize derives every templated value for s under cfg.
//
// When cfg.ModelBias is set the reactivity keys are DELTA_RHO_PCM and
// RHO_BIAS_PCM (bias applies to up ramps only); otherwise a bare DELTA_RHO
// is emitted. The renderer fails on whichever variant the template does not
// match.
func Synthesize(s scenario.Scenario, cfg config.Config) (Params, error) {
	temps, err := thermal.Lookup(s.Bucket)
	if err != nil {
		return nil, err
	}

	totalTime := cfg.PreRampSeconds + s.RampSeconds + cfg.PostRampSeconds
	rampStart := cfg.PreRampSeconds
	rampEnd := rampStart + s.RampSeconds
	deltaRho := rates.ReactivityDelta(s.RampSeconds, cfg.ReactivityRatePCMPerMinute, s.Direction)

	// The deck starts at the scenario's initial power level, so thermal
	// power scales with P0, not P1.
	powerTot := s.P0 * cfg.RatedPowerWatts

	p := Params{
		"TF":           formatLinear(totalTime),
		"T_RAMP_START": formatLinear(rampStart),
		"T_RAMP_END":   formatLinear(rampEnd),
		"POWER_TOT":    formatPower(powerTot),
		"T_FUEL0":      formatKelvin(temps.Fuel),
		"T_MOD0":       formatKelvin(temps.Moderator),
		"T_SHELL0":     formatKelvin(temps.Shell),
		"T_COOL0":      formatKelvin(temps.Coolant),
	}

	if cfg.ModelBias {
		bias := cfg.ReactivityBiasPCM
		if s.Direction == rates.Down {
			bias = 0
		}
		p["DELTA_RHO_PCM"] = formatLinear(deltaRho)
		p["RHO_BIAS_PCM"] = formatLinear(bias)
	} else {
		p["DELTA_RHO"] = formatLinear(deltaRho)
	}
	return p, nil
}

// formatLinear renders linear quantities (times, temperatures, reactivity)
// with six decimal digits.
func formatLinear(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// formatPower renders thermal power in scientific notation with six
// significant digits after the point.
func formatPower(v float64) string {
	return strconv.FormatFloat(v, 'e', 6, 64)
}

// formatKelvin renders a temperature with the unit annotation the solver's
// deck syntax expects.
func formatKelvin(v float64) string {
	return formatLinear(v) + " * units.kelvin"
}
