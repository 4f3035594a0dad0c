// Package rates derives ramp timing and reactivity magnitudes from the
// configured physical rate constants. All functions are pure; validation of
// the rate constants themselves happens at configuration load time.
package rates

import "math"

// Direction indicates which way a power ramp moves.
type Direction string

const (
	// Up raises power; the reactivity insertion is positive.
	Up Direction = "up"

	// Down lowers power; the reactivity insertion is negated.
	Down Direction = "down"
)

// RampDuration returns the elapsed seconds needed to move between two power
// fractions at ratePerMinute (fraction of rated power per minute).
// ratePerMinute must be positive. Equal endpoints yield zero, which is a
// legal degenerate ramp rather than an error.
func RampDuration(pInitial, pFinal, ratePerMinute float64) float64 {
	return math.Abs(pFinal-pInitial) / ratePerMinute * 60.0
}

// ReactivityDelta returns the signed reactivity insertion in pcm accumulated
// over durationSeconds at ratePCMPerMinute. Down ramps negate the result.
// The magnitude is not clamped; physical plausibility is the caller's
// concern.
func ReactivityDelta(durationSeconds, ratePCMPerMinute float64, dir Direction) float64 {
	delta := ratePCMPerMinute * durationSeconds / 60.0
	if dir == Down {
		return -delta
	}
	return delta
}
