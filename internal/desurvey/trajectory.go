package desurvey

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Trajectory is the desurveyed model of a single borehole. It owns the
// collar, the normalised station list and every derived quantity needed to
// resolve measured depths into coordinates: unit directions, dogleg angles,
// ratio factors and per-method cumulative displacement prefixes.
//
// A Trajectory is immutable once New returns, so it can be shared freely
// across concurrent Evaluate calls without locking.
type Trajectory struct {
	collar Collar

	// stations is the input list with a materialised depth-0 station
	// duplicating the first measurement's orientation, so no downstream
	// code special-cases the collar interval.
	stations []Station

	depths   []float64 // stations[i].Depth
	azimuths []float64 // azimuth per station (radians)
	polars   []float64 // polar angle from vertical-down per station (radians)
	dirs     []r3.Vec  // unit direction per station

	lengths []float64 // per segment: depths[i+1] - depths[i]
	doglegs []float64 // per segment: angle between bounding directions (radians)
	rf      []float64 // per segment: minimum-curvature ratio factor
	avgDirs []r3.Vec  // per segment: direction from independently averaged angles

	// cum[m][i] is the displacement from the collar through segments
	// [0, i] under method m, so whole prior intervals cost O(1) per query.
	cum [4][]r3.Vec
}

// New validates the collar and stations and builds the immutable trajectory
// model. All trigonometry happens here, once, in double precision; Evaluate
// only reads the cached arrays afterwards.
//
// A single-station hole is permitted: the virtual depth-0 station duplicates
// its orientation, producing a straight-line trajectory.
func New(collar Collar, stations []Station) (*Trajectory, error) {
	if len(stations) == 0 {
		return nil, fmt.Errorf("%w: no survey stations", ErrInvalidSurveyOrder)
	}

	// Materialise the implicit depth-0 station sharing the first
	// measurement's orientation.
	norm := make([]Station, 0, len(stations)+1)
	norm = append(norm, Station{Azimuth: stations[0].Azimuth, Dip: stations[0].Dip, Depth: 0})
	norm = append(norm, stations...)

	for i := 1; i < len(norm); i++ {
		if !(norm[i].Depth > norm[i-1].Depth) {
			return nil, fmt.Errorf("%w: depth %v follows %v",
				ErrInvalidSurveyOrder, norm[i].Depth, norm[i-1].Depth)
		}
	}
	if deepest := norm[len(norm)-1].Depth; collar.TotalDepth < deepest {
		return nil, fmt.Errorf("%w: total depth %v < deepest survey %v",
			ErrDepthExceedsCollar, collar.TotalDepth, deepest)
	}

	n := len(norm)
	t := &Trajectory{
		collar:   collar,
		stations: norm,
		depths:   make([]float64, n),
		azimuths: make([]float64, n),
		polars:   make([]float64, n),
		dirs:     make([]r3.Vec, n),
	}
	for i, s := range norm {
		t.depths[i] = s.Depth
		t.azimuths[i] = s.Azimuth * math.Pi / 180.0
		t.polars[i] = (90.0 + s.Dip) * math.Pi / 180.0
		t.dirs[i] = s.Direction()
	}

	segs := n - 1
	t.lengths = make([]float64, segs)
	t.doglegs = make([]float64, segs)
	t.rf = make([]float64, segs)
	t.avgDirs = make([]r3.Vec, segs)
	for i := 0; i < segs; i++ {
		t.lengths[i] = t.depths[i+1] - t.depths[i]
		dl := angleBetween(t.dirs[i], t.dirs[i+1])
		t.doglegs[i] = dl
		t.rf[i] = ratioFactor(dl)
		t.avgDirs[i] = directionFromAngles(
			(t.azimuths[i]+t.azimuths[i+1])/2.0,
			(t.polars[i]+t.polars[i+1])/2.0,
		)
	}

	for m := MinimumCurvature; m <= RadiusOfCurvature; m++ {
		prefix := make([]r3.Vec, segs)
		var acc r3.Vec
		for i := 0; i < segs; i++ {
			acc = r3.Add(acc, t.segmentDisplacement(m, i))
			prefix[i] = acc
		}
		t.cum[m] = prefix
	}
	return t, nil
}

// Collar returns the hole's collar record.
func (t *Trajectory) Collar() Collar { return t.collar }

// TotalDepth returns the hole's measured total depth.
func (t *Trajectory) TotalDepth() float64 { return t.collar.TotalDepth }

// Stations returns a copy of the normalised station list, including the
// materialised depth-0 station.
func (t *Trajectory) Stations() []Station {
	return append([]Station(nil), t.stations...)
}

// Directions returns a copy of the per-station unit direction vectors.
func (t *Trajectory) Directions() []r3.Vec {
	return append([]r3.Vec(nil), t.dirs...)
}

// Doglegs returns a copy of the per-segment dogleg angles in radians.
func (t *Trajectory) Doglegs() []float64 {
	return append([]float64(nil), t.doglegs...)
}

// RatioFactors returns a copy of the per-segment minimum-curvature ratio
// factors.
func (t *Trajectory) RatioFactors() []float64 {
	return append([]float64(nil), t.rf...)
}

// segmentDisplacement is the spatial displacement across the whole of
// segment i under method m.
func (t *Trajectory) segmentDisplacement(m Method, i int) r3.Vec {
	switch m {
	case MinimumCurvature:
		disp := t.lengths[i] * t.rf[i] / 2.0
		return r3.Scale(disp, r3.Add(t.dirs[i], t.dirs[i+1]))
	case Tangential:
		return r3.Scale(t.lengths[i], t.dirs[i])
	case AverageAngle:
		return r3.Scale(t.lengths[i], t.avgDirs[i])
	case RadiusOfCurvature:
		dPolar := t.polars[i+1] - t.polars[i]
		if math.Abs(dPolar) <= radiusEps {
			return r3.Scale(t.lengths[i], t.dirs[i])
		}
		radius := t.lengths[i] / dPolar
		return arcDisplacement(radius, t.polars[i], t.polars[i+1], t.azimuths[i])
	}
	return r3.Vec{}
}

// arcDisplacement integrates the direction vector along a circular arc of
// the given signed radius from polar angle p1 to p2, holding azimuth fixed.
func arcDisplacement(radius, p1, p2, az float64) r3.Vec {
	horiz := radius * (math.Cos(p1) - math.Cos(p2))
	return r3.Vec{
		X: horiz * math.Sin(az),
		Y: horiz * math.Cos(az),
		Z: -radius * (math.Sin(p2) - math.Sin(p1)),
	}
}

// angleBetween returns the angle between two unit vectors. The dot product
// is clamped to [-1, 1] to tolerate floating-point overshoot before acos.
func angleBetween(a, b r3.Vec) float64 {
	dot := r3.Dot(a, b)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return math.Acos(dot)
}

// ratioFactor returns the minimum-curvature ratio factor for a dogleg
// angle. The zero-dogleg case is an explicit branch, not a division: the
// rf -> 1 limit must never be computed as 0/0.
func ratioFactor(dogleg float64) float64 {
	if dogleg == 0 {
		return 1.0
	}
	return 2.0 * math.Tan(dogleg/2.0) / dogleg
}
