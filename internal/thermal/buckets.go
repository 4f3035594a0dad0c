// Package thermal provides the initial-temperature bucket table. Each bucket
// labels an operating-condition regime and maps to four component
// temperatures (fuel, moderator, shell, coolant). Temperatures are stored as
// degrees Celsius and converted to kelvin at lookup time.
package thermal

import (
	"errors"
	"fmt"
)

// Bucket labels a preset of initial temperatures.
type Bucket string

const (
	Low     Bucket = "low"
	Nominal Bucket = "nominal"
	High    Bucket = "high"
)

// ErrInvalidBucket is returned by Lookup for an unrecognized bucket label.
// There is deliberately no default bucket: a typo in configuration must not
// silently generate nominal-temperature decks.
var ErrInvalidBucket = errors.New("invalid temperature bucket")

// kelvinOffset converts °C to K. The conversion is exact by definition.
const kelvinOffset = 273.15

// Temperatures holds the four initial temperatures of a scenario, in kelvin.
type Temperatures struct {
	Fuel      float64
	Moderator float64
	Shell     float64
	Coolant   float64
}

type entry struct {
	fuel, moderator, shell, coolant float64 // °C
}

var table = map[Bucket]entry{
	Low:     {fuel: 750, moderator: 740, shell: 730, coolant: 620},
	Nominal: {fuel: 800, moderator: 800, shell: 770, coolant: 650},
	High:    {fuel: 850, moderator: 840, shell: 820, coolant: 680},
}

// Buckets returns the recognized bucket labels in canonical table order.
func Buckets() []Bucket {
	return []Bucket{Low, Nominal, High}
}

// Valid reports whether label is a recognized bucket.
func Valid(label Bucket) bool {
	_, ok := table[label]
	return ok
}

// Lookup returns the initial temperatures for bucket, converted to kelvin.
func Lookup(bucket Bucket) (Temperatures, error) {
	e, ok := table[bucket]
	if !ok {
		return Temperatures{}, fmt.Errorf("%w: %q", ErrInvalidBucket, bucket)
	}
	return Temperatures{
		Fuel:      e.fuel + kelvinOffset,
		Moderator: e.moderator + kelvinOffset,
		Shell:     e.shell + kelvinOffset,
		Coolant:   e.coolant + kelvinOffset,
	}, nil
}
