package gradefield

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/redrock-data/drillpath/internal/desurvey"
)

// Sample is a located assay value: the 3D midpoint of a downhole interval
// paired with its measured value. Samples from any number of holes feed a
// single Interpolator.
type Sample struct {
	HoleID   string
	Depth    float64 // interval midpoint, measured depth (m)
	Position r3.Vec
	Value    float64
}

// MidpointSamples desurveys each interval's midpoint depth into a located
// sample. intervals and values are index-aligned; out-of-hole intervals
// surface the trajectory's own depth error.
func MidpointSamples(holeID string, tr *desurvey.Trajectory, intervals []desurvey.SampleInterval, values []float64, method desurvey.Method) ([]Sample, error) {
	if len(intervals) != len(values) {
		return nil, fmt.Errorf("gradefield: %d intervals but %d values for hole %s",
			len(intervals), len(values), holeID)
	}
	depths := make([]float64, len(intervals))
	for i, iv := range intervals {
		depths[i] = (iv.DepthFrom + iv.DepthTo) / 2
	}
	coords, err := tr.Evaluate(depths, method)
	if err != nil {
		return nil, fmt.Errorf("gradefield: locating samples for hole %s: %w", holeID, err)
	}
	out := make([]Sample, len(intervals))
	for i := range intervals {
		out[i] = Sample{HoleID: holeID, Depth: depths[i], Position: coords[i], Value: values[i]}
	}
	return out, nil
}

// Positions extracts the sample positions, index-aligned with the input.
func Positions(samples []Sample) []r3.Vec {
	out := make([]r3.Vec, len(samples))
	for i, s := range samples {
		out[i] = s.Position
	}
	return out
}

// Values extracts the sample values, index-aligned with the input.
func Values(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Value
	}
	return out
}
