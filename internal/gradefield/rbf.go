package gradefield

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNoSamples reports an attempt to fit an interpolator with no input
// points.
var ErrNoSamples = errors.New("gradefield: no sample points")

// Interpolator is a global radial basis function interpolator over
// scattered 3D sample values. Configure the fields, call Fit once, then
// Predict any number of times. A fitted Interpolator is read-only and safe
// for concurrent Predict calls.
type Interpolator struct {
	// Kernel is the radial basis; zero value is ThinPlateSpline.
	Kernel Kernel
	// Epsilon is the shape parameter for the scale-sensitive kernels.
	// Zero means 1.
	Epsilon float64
	// Smoothing is added to the system diagonal; zero gives exact
	// interpolation at the samples, larger values trade exactness for a
	// smoother field over noisy assays.
	Smoothing float64

	points  []r3.Vec
	weights *mat.VecDense
}

// Fit solves for the kernel weights over the sample set. points and values
// must be index-aligned. Duplicate sample positions make the system
// singular unless Smoothing is positive; the error from the factorisation
// is returned as-is.
func (in *Interpolator) Fit(points []r3.Vec, values []float64) error {
	if len(points) == 0 {
		return ErrNoSamples
	}
	if len(points) != len(values) {
		return fmt.Errorf("gradefield: %d points but %d values", len(points), len(values))
	}

	n := len(points)
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r := r3.Norm(r3.Sub(points[i], points[j]))
			v := in.Kernel.value(r, in.eps())
			if i == j {
				v += in.Smoothing
			}
			a.Set(i, j, v)
		}
	}

	var lu mat.LU
	lu.Factorize(a)
	w := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(w, false, mat.NewVecDense(n, values)); err != nil {
		return fmt.Errorf("gradefield: solving RBF system: %w", err)
	}

	in.points = append([]r3.Vec(nil), points...)
	in.weights = w
	return nil
}

// Predict evaluates the fitted field at p. It panics if Fit has not
// succeeded.
func (in *Interpolator) Predict(p r3.Vec) float64 {
	var sum float64
	for i, q := range in.points {
		r := r3.Norm(r3.Sub(p, q))
		sum += in.weights.AtVec(i) * in.Kernel.value(r, in.eps())
	}
	return sum
}

// PredictAll evaluates the fitted field at every point, index-aligned with
// the input.
func (in *Interpolator) PredictAll(pts []r3.Vec) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = in.Predict(p)
	}
	return out
}

// DataRange returns the minimum and maximum of the fitted sample values'
// field at the sample points themselves; with zero smoothing this is the
// input value range.
func (in *Interpolator) DataRange() (min, max float64) {
	vals := in.PredictAll(in.points)
	min, max = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func (in *Interpolator) eps() float64 {
	if in.Epsilon == 0 {
		return 1
	}
	return in.Epsilon
}
