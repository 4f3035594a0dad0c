package scenario

import (
	"fmt"
	"slices"

	"github.com/reactorkit/deckgen/internal/config"
	"github.com/reactorkit/deckgen/internal/rates"
)

// Enumerate produces the ordered scenario sequence for cfg. Ordering is
// deterministic: buckets in configured order on the outside, ladder levels
// in ladder order on the inside, up before down within a level, so repeated
// runs with identical configuration yield identical manifests.
func Enumerate(cfg config.Config) ([]Scenario, error) {
	var scenarios []Scenario
	switch cfg.Strategy {
	case config.StrategyAdjacentPair:
		scenarios = enumerateAdjacentPairs(cfg)
	case config.StrategyFixedMagnitude:
		scenarios = enumerateFixedMagnitude(cfg)
	default:
		return nil, fmt.Errorf("invalid strategy: %q", cfg.Strategy)
	}

	seen := make(map[string]bool, len(scenarios))
	for _, s := range scenarios {
		if seen[s.RunName] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRunName, s.RunName)
		}
		seen[s.RunName] = true
	}
	return scenarios, nil
}

// enumerateAdjacentPairs walks each ladder level as the lower end of an up
// pair and the upper end of a down pair, one step apart. Up pairs are
// skipped at the ladder maximum and down pairs are skipped when the lower
// end would fall below the ladder minimum, so boundary levels contribute a
// single scenario each.
func enumerateAdjacentPairs(cfg config.Config) []Scenario {
	ladder := slices.Clone(cfg.PowerLadder)
	slices.Sort(ladder)
	ladderMin := ladder[0]
	ladderMax := ladder[len(ladder)-1]

	var out []Scenario
	for _, bucket := range cfg.Buckets {
		for _, level := range ladder {
			if pLo, pHi := level, level+cfg.LadderStep; pLo < ladderMax {
				out = append(out, Scenario{
					P0:          pLo,
					P1:          pHi,
					Direction:   rates.Up,
					Bucket:      bucket,
					RampSeconds: rates.RampDuration(pLo, pHi, cfg.PowerRampRatePerMinute),
					RunName:     pairRunName(pLo, pHi, bucket, rates.Up),
				})
			}
			if pLo, pHi := level-cfg.LadderStep, level; pLo > ladderMin {
				out = append(out, Scenario{
					P0:          pHi,
					P1:          pLo,
					Direction:   rates.Down,
					Bucket:      bucket,
					RampSeconds: rates.RampDuration(pHi, pLo, cfg.PowerRampRatePerMinute),
					RunName:     pairRunName(pHi, pLo, bucket, rates.Down),
				})
			}
		}
	}
	return out
}

// enumerateFixedMagnitude emits exactly one up and one down scenario per
// ladder level per bucket, all sharing the configured fixed ramp duration.
func enumerateFixedMagnitude(cfg config.Config) []Scenario {
	out := make([]Scenario, 0, 2*len(cfg.PowerLadder)*len(cfg.Buckets))
	for _, bucket := range cfg.Buckets {
		for _, level := range cfg.PowerLadder {
			for _, dir := range []rates.Direction{rates.Up, rates.Down} {
				out = append(out, Scenario{
					P0:          level,
					P1:          level,
					Direction:   dir,
					Bucket:      bucket,
					RampSeconds: cfg.FixedRampSeconds,
					RunName:     levelRunName(level, bucket, dir),
				})
			}
		}
	}
	return out
}
