// Package scenario enumerates the simulation scenario matrix. A Scenario is
// constructed once by Enumerate, never mutated, and consumed exactly once by
// the parameter synthesizer.
package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/reactorkit/deckgen/internal/rates"
	"github.com/reactorkit/deckgen/internal/thermal"
)

// ErrDuplicateRunName indicates the enumerator produced two scenarios with
// the same run name. The naming rule makes this impossible for any valid
// configuration, so a collision is a defect and aborts the run.
var ErrDuplicateRunName = errors.New("duplicate run name")

// Scenario is one fully-specified simulation configuration.
type Scenario struct {
	// P0 and P1 are the initial and final power fractions of rated thermal
	// power. Under the fixed-magnitude strategy P1 equals P0; the ramp
	// magnitude is carried by RampSeconds alone.
	P0 float64 `json:"p0"`
	P1 float64 `json:"p1"`

	// Direction is the sign of the ramp: up or down.
	Direction rates.Direction `json:"direction"`

	// Bucket selects the initial temperatures.
	Bucket thermal.Bucket `json:"bucket"`

	// RampSeconds is the elapsed time over which reactivity is ramped.
	RampSeconds float64 `json:"ramp_seconds"`

	// RunName uniquely identifies the scenario within a run. It doubles as
	// the output directory name, so it contains only digits, bucket labels,
	// and hyphens.
	RunName string `json:"run_name"`
}

// percent encodes a power fraction as an integer percentage for run names.
// Rounding (rather than truncation) keeps names stable when ladder
// arithmetic lands a hair under a whole percent.
func percent(p float64) int {
	return int(math.Round(p * 100))
}

func pairRunName(p0, p1 float64, bucket thermal.Bucket, dir rates.Direction) string {
	return fmt.Sprintf("%d-%d-%s-%s", percent(p0), percent(p1), bucket, dir)
}

func levelRunName(p float64, bucket thermal.Bucket, dir rates.Direction) string {
	return fmt.Sprintf("%d-%s-%s", percent(p), bucket, dir)
}
