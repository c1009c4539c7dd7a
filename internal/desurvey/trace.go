package desurvey

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultPointsPerMeter is the sampling density used for interval
// coordinates when the caller does not override it.
const DefaultPointsPerMeter = 10.0

// Trace samples the full hole at count evenly spaced depths from the collar
// to total depth, inclusive of both ends. count must be at least 2. The
// returned depths and coordinates are index-aligned.
func (t *Trajectory) Trace(count int, method Method) ([]float64, []r3.Vec, error) {
	if count < 2 {
		return nil, nil, fmt.Errorf("trace: count %d < 2", count)
	}
	depths := floats.Span(make([]float64, count), 0, t.collar.TotalDepth)
	coords, err := t.Evaluate(depths, method)
	if err != nil {
		return nil, nil, err
	}
	return depths, coords, nil
}

// SampleInterval is a depth range down a hole, typically an assay or
// lithology interval.
type SampleInterval struct {
	DepthFrom float64
	DepthTo   float64
}

// Length returns the interval's downhole length.
func (s SampleInterval) Length() float64 { return s.DepthTo - s.DepthFrom }

// IntervalCoords samples an interval at roughly pointsPerMeter density,
// never fewer than two points, so even millimetre intervals get distinct
// endpoints. Pass DefaultPointsPerMeter unless a caller needs coarser or
// finer geometry.
func (t *Trajectory) IntervalCoords(iv SampleInterval, pointsPerMeter float64, method Method) ([]float64, []r3.Vec, error) {
	if iv.DepthTo <= iv.DepthFrom {
		return nil, nil, fmt.Errorf("interval: depth_to %v <= depth_from %v", iv.DepthTo, iv.DepthFrom)
	}
	count := int(iv.Length() * pointsPerMeter)
	if count < 2 {
		count = 2
	}
	depths := floats.Span(make([]float64, count), iv.DepthFrom, iv.DepthTo)
	coords, err := t.Evaluate(depths, method)
	if err != nil {
		return nil, nil, err
	}
	return depths, coords, nil
}

// PositionOnTrace linearly interpolates a position at the target measured
// depth along an already-sampled trace. depths must be ascending and
// index-aligned with coords. The second return is false when the target
// lies outside the trace's depth range.
func PositionOnTrace(depths []float64, coords []r3.Vec, target float64) (r3.Vec, bool) {
	n := len(depths)
	if n == 0 || n != len(coords) {
		return r3.Vec{}, false
	}
	if target < depths[0] || target > depths[n-1] {
		return r3.Vec{}, false
	}
	for i := 0; i < n-1; i++ {
		if target > depths[i+1] {
			continue
		}
		span := depths[i+1] - depths[i]
		if span == 0 {
			return coords[i], true
		}
		f := (target - depths[i]) / span
		return lerp(coords[i], coords[i+1], f), true
	}
	return coords[n-1], true
}

// TraceSegment extracts the part of a sampled trace between two measured
// depths. Endpoints are interpolated exactly; interior trace points inside
// the range are kept as-is. Returns nil when the range misses the trace or
// is inverted.
func TraceSegment(depths []float64, coords []r3.Vec, from, to float64) []r3.Vec {
	if to <= from {
		return nil
	}
	start, ok := PositionOnTrace(depths, coords, from)
	if !ok {
		return nil
	}
	end, ok := PositionOnTrace(depths, coords, to)
	if !ok {
		return nil
	}
	seg := []r3.Vec{start}
	for i, d := range depths {
		if d > from && d < to {
			seg = append(seg, coords[i])
		}
	}
	return append(seg, end)
}

// TraceLength returns the polyline length of a sampled trace, a cheap
// curved-length estimate that converges on the true arc length as the
// sample count grows.
func TraceLength(coords []r3.Vec) float64 {
	var total float64
	for i := 1; i < len(coords); i++ {
		total += r3.Norm(r3.Sub(coords[i], coords[i-1]))
	}
	return total
}

func lerp(a, b r3.Vec, f float64) r3.Vec {
	return r3.Add(a, r3.Scale(f, r3.Sub(b, a)))
}
