package gradefield

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

func toKDPoints(pts []r3.Vec) kdtree.Points {
	out := make(kdtree.Points, len(pts))
	for i, p := range pts {
		out[i] = kdtree.Point{p.X, p.Y, p.Z}
	}
	return out
}

func euclidean(a kdtree.Point, b r3.Vec) float64 {
	dx := a[0] - b.X
	dy := a[1] - b.Y
	dz := a[2] - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// NearestSampleDistances returns, for each query point, the Euclidean
// distance to its closest sample. Used to drive distance decay and masking
// over interpolation grids.
func NearestSampleDistances(samples, queries []r3.Vec) []float64 {
	tree := kdtree.New(toKDPoints(samples), false)
	out := make([]float64, len(queries))
	for i, q := range queries {
		got, _ := tree.Nearest(kdtree.Point{q.X, q.Y, q.Z})
		out[i] = euclidean(got.(kdtree.Point), q)
	}
	return out
}

// AverageSpacing returns the mean distance from each sample to its nearest
// other sample. Returns 0 for fewer than two samples.
func AverageSpacing(samples []r3.Vec) float64 {
	if len(samples) < 2 {
		return 0
	}
	tree := kdtree.New(toKDPoints(samples), false)
	var total float64
	for _, s := range samples {
		// Two nearest including the sample itself; the non-zero one is
		// its true neighbour.
		keep := kdtree.NewNKeeper(2)
		tree.NearestSet(keep, kdtree.Point{s.X, s.Y, s.Z})
		nearest := math.Inf(1)
		for _, cd := range keep.Heap {
			if cd.Comparable == nil {
				continue
			}
			if d := euclidean(cd.Comparable.(kdtree.Point), s); d > 0 && d < nearest {
				nearest = d
			}
		}
		if !math.IsInf(nearest, 1) {
			total += nearest
		}
	}
	return total / float64(len(samples))
}

// AutoInfluenceDistance derives a masking/decay radius from the data's own
// density: three times the average nearest-neighbour spacing.
func AutoInfluenceDistance(samples []r3.Vec) float64 {
	return 3 * AverageSpacing(samples)
}

// ApplyDistanceMask sets values to NaN wherever the matching distance
// exceeds maxDistance, and returns how many were masked. values and
// distances are index-aligned.
func ApplyDistanceMask(values, distances []float64, maxDistance float64) int {
	masked := 0
	for i, d := range distances {
		if d > maxDistance {
			values[i] = math.NaN()
			masked++
		}
	}
	return masked
}

// Centroid returns the arithmetic mean of the points, or the zero vector
// for an empty set.
func Centroid(points []r3.Vec) r3.Vec {
	if len(points) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, p := range points {
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1/float64(len(points)), sum)
}

// ApplyEllipsoidMask sets values to NaN wherever the matching point falls
// outside the search ellipsoid centred at center, and returns how many
// were masked. values and points are index-aligned.
func ApplyEllipsoidMask(values []float64, points []r3.Vec, center r3.Vec, e SearchEllipsoid) int {
	masked := 0
	for i, nd := range e.NormalizedDistances(center, points) {
		if nd > 1 {
			values[i] = math.NaN()
			masked++
		}
	}
	return masked
}
