package gradefield

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds is an axis-aligned box around a point set.
type Bounds struct {
	Min r3.Vec
	Max r3.Vec
}

// BoundsOf returns the tight axis-aligned bounds of the points. The second
// return is false for an empty set.
func BoundsOf(points []r3.Vec) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Min.Z = min(b.Min.Z, p.Z)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
		b.Max.Z = max(b.Max.Z, p.Z)
	}
	return b, true
}

// Padded grows the bounds by the given fraction of each axis extent on
// every side, so an interpolated shell has room to close around the
// outermost samples.
func (b Bounds) Padded(fraction float64) Bounds {
	pad := r3.Scale(fraction, b.Size())
	return Bounds{Min: r3.Sub(b.Min, pad), Max: r3.Add(b.Max, pad)}
}

// Size returns the axis extents of the bounds.
func (b Bounds) Size() r3.Vec { return r3.Sub(b.Max, b.Min) }

// Grid samples the bounds on a regular lattice with resolution points per
// axis, ordered with X varying slowest and Z fastest. resolution must be
// at least 2.
func (b Bounds) Grid(resolution int) ([]r3.Vec, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("gradefield: grid resolution %d < 2", resolution)
	}
	xs := floats.Span(make([]float64, resolution), b.Min.X, b.Max.X)
	ys := floats.Span(make([]float64, resolution), b.Min.Y, b.Max.Y)
	zs := floats.Span(make([]float64, resolution), b.Min.Z, b.Max.Z)

	pts := make([]r3.Vec, 0, resolution*resolution*resolution)
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				pts = append(pts, r3.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	return pts, nil
}
