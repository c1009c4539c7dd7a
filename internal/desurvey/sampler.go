package desurvey

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Evaluate resolves a batch of measured depths into absolute coordinates
// under the given method. Depths may arrive in any order and the result
// keeps the input order. The whole batch is validated before any point is
// computed, so a failed call returns no partial output.
//
// Evaluate is safe for concurrent use; it only reads the trajectory's
// precomputed arrays.
func (t *Trajectory) Evaluate(depths []float64, method Method) ([]r3.Vec, error) {
	if !method.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
	for _, d := range depths {
		if math.IsNaN(d) || d < 0 || d > t.collar.TotalDepth {
			return nil, fmt.Errorf("%w: %v not in [0, %v]",
				ErrDepthOutOfRange, d, t.collar.TotalDepth)
		}
	}

	origin := t.collar.Position()
	out := make([]r3.Vec, len(depths))
	for j, d := range depths {
		i, beta := t.bracket(d)
		disp := t.partialDisplacement(method, i, beta)
		if i > 0 {
			disp = r3.Add(t.cum[method][i-1], disp)
		}
		p := r3.Add(origin, disp)
		if !isFinite(p) {
			return nil, fmt.Errorf("%w: depth %v method %s",
				ErrNumericDegeneracy, d, method)
		}
		out[j] = p
	}
	return out, nil
}

// EvaluateAt resolves a single measured depth. It is a convenience wrapper
// over Evaluate with identical semantics.
func (t *Trajectory) EvaluateAt(depth float64, method Method) (r3.Vec, error) {
	pts, err := t.Evaluate([]float64{depth}, method)
	if err != nil {
		return r3.Vec{}, err
	}
	return pts[0], nil
}

// bracket locates the segment containing measured depth d and the fraction
// of the segment traversed. A depth landing exactly on a station boundary
// resolves to the segment ending there with beta == 1, so boundary points
// are computed from completed intervals, never from a zero-length partial.
// Depths beyond the deepest station extrapolate the last segment (beta > 1).
func (t *Trajectory) bracket(d float64) (seg int, beta float64) {
	segs := len(t.lengths)
	// First station at or below d, shifted down one to the segment start,
	// so a boundary depth lands on the segment it completes.
	i := sort.Search(len(t.depths), func(k int) bool { return t.depths[k] >= d }) - 1
	if i < 0 {
		i = 0
	}
	if i > segs-1 {
		i = segs - 1
	}
	return i, (d - t.depths[i]) / t.lengths[i]
}

// partialDisplacement is the displacement from station i to fraction beta
// along segment i under the given method.
func (t *Trajectory) partialDisplacement(m Method, i int, beta float64) r3.Vec {
	switch m {
	case MinimumCurvature:
		// The full-interval ratio factor scales the partial step; beta
		// alone shortens the chord.
		disp := beta * t.lengths[i] * t.rf[i] / 2.0
		return r3.Scale(disp, r3.Add(t.dirs[i], t.dirs[i+1]))
	case Tangential:
		return r3.Scale(beta*t.lengths[i], t.dirs[i])
	case AverageAngle:
		return r3.Scale(beta*t.lengths[i], t.avgDirs[i])
	case RadiusOfCurvature:
		dPolar := t.polars[i+1] - t.polars[i]
		if math.Abs(dPolar) <= radiusEps {
			return r3.Scale(beta*t.lengths[i], t.dirs[i])
		}
		radius := t.lengths[i] / dPolar
		p2 := t.polars[i] + beta*dPolar
		return arcDisplacement(radius, t.polars[i], p2, t.azimuths[i])
	}
	return r3.Vec{}
}

func isFinite(v r3.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
