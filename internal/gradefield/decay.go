package gradefield

import (
	"fmt"
	"math"
)

// DecayFunction shapes how interpolated values fade towards zero with
// normalized distance from the nearest sample, keeping the field from
// ballooning far away from any data.
type DecayFunction int

const (
	// NoDecay leaves the interpolated values untouched.
	NoDecay DecayFunction = iota
	// LinearDecay fades proportionally with normalized distance.
	LinearDecay
	// SmoothstepDecay fades with the cubic smoothstep, flat at both ends.
	SmoothstepDecay
	// GaussianDecay fades with exp(-3n²), near zero at the cutoff.
	GaussianDecay
)

// String returns the selector name used by callers and config files.
func (d DecayFunction) String() string {
	switch d {
	case NoDecay:
		return "none"
	case LinearDecay:
		return "linear"
	case SmoothstepDecay:
		return "smoothstep"
	case GaussianDecay:
		return "gaussian"
	default:
		return fmt.Sprintf("DecayFunction(%d)", int(d))
	}
}

// ParseDecayFunction maps a selector string to its DecayFunction. The
// empty string maps to NoDecay.
func ParseDecayFunction(s string) (DecayFunction, error) {
	switch s {
	case "none", "":
		return NoDecay, nil
	case "linear":
		return LinearDecay, nil
	case "smoothstep":
		return SmoothstepDecay, nil
	case "gaussian":
		return GaussianDecay, nil
	}
	return 0, fmt.Errorf("gradefield: unknown decay function %q", s)
}

// factor returns the multiplier for a normalized distance n, clamped to
// [0, 1] before shaping.
func (d DecayFunction) factor(n float64) float64 {
	if n < 0 {
		n = 0
	} else if n > 1 {
		n = 1
	}
	switch d {
	case LinearDecay:
		return 1 - n
	case SmoothstepDecay:
		return 1 - (3*n*n - 2*n*n*n)
	case GaussianDecay:
		return math.Exp(-3 * n * n)
	}
	return 1
}

// ApplyDistanceDecay scales values in place by the decay factor of each
// point's distance to its nearest sample, normalized by maxDistance.
// values and distances are index-aligned; maxDistance must be positive
// unless the decay is NoDecay.
func ApplyDistanceDecay(values, distances []float64, maxDistance float64, decay DecayFunction) error {
	if decay == NoDecay {
		return nil
	}
	if maxDistance <= 0 {
		return fmt.Errorf("gradefield: decay max distance %v <= 0", maxDistance)
	}
	if len(values) != len(distances) {
		return fmt.Errorf("gradefield: %d values but %d distances", len(values), len(distances))
	}
	for i, dist := range distances {
		values[i] *= decay.factor(dist / maxDistance)
	}
	return nil
}
