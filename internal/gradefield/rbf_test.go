package gradefield

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func assaySamples() ([]r3.Vec, []float64) {
	// Midpoints from a small two-hole pattern, deliberately irregular.
	pts := []r3.Vec{
		{X: 0.3, Y: 1.1, Z: -4.9},
		{X: 9.7, Y: 0.4, Z: -1.2},
		{X: 1.5, Y: 10.2, Z: -0.8},
		{X: 0.9, Y: 2.3, Z: -10.6},
		{X: 10.8, Y: 9.1, Z: -2.4},
		{X: 9.2, Y: 1.7, Z: -11.3},
		{X: 2.1, Y: 11.4, Z: -9.8},
		{X: 11.6, Y: 10.9, Z: -12.1},
	}
	vals := []float64{1.0, 2.5, 0.4, 3.1, 1.8, 2.2, 0.9, 4.0}
	return pts, vals
}

func TestFitRejectsBadInput(t *testing.T) {
	var in Interpolator
	if err := in.Fit(nil, nil); !errors.Is(err, ErrNoSamples) {
		t.Errorf("Fit(empty) error = %v, want ErrNoSamples", err)
	}
	if err := in.Fit([]r3.Vec{{}}, []float64{1, 2}); err == nil {
		t.Error("Fit(mismatched lengths) error = nil, want error")
	}
}

func TestInterpolatorIsExactAtSamples(t *testing.T) {
	pts, vals := assaySamples()
	for _, k := range []Kernel{ThinPlateSpline, Linear, Cubic, Multiquadric, InverseMultiquadric} {
		in := Interpolator{Kernel: k}
		if err := in.Fit(pts, vals); err != nil {
			t.Fatalf("Fit(%s) error = %v", k, err)
		}
		for i, p := range pts {
			if got := in.Predict(p); math.Abs(got-vals[i]) > 1e-6 {
				t.Errorf("%s: Predict(sample %d) = %v, want %v", k, i, got, vals[i])
			}
		}
	}
}

func TestSmoothingRelaxesExactness(t *testing.T) {
	pts, vals := assaySamples()
	exact := Interpolator{Kernel: ThinPlateSpline}
	if err := exact.Fit(pts, vals); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	smooth := Interpolator{Kernel: ThinPlateSpline, Smoothing: 5}
	if err := smooth.Fit(pts, vals); err != nil {
		t.Fatalf("Fit(smoothing) error = %v", err)
	}

	var residual float64
	for i, p := range pts {
		residual += math.Abs(smooth.Predict(p) - vals[i])
	}
	if residual < 1e-6 {
		t.Errorf("smoothed residual = %v, want > 0 (field should no longer pass through samples)", residual)
	}
	for i, p := range pts {
		if got := exact.Predict(p); math.Abs(got-vals[i]) > 1e-6 {
			t.Errorf("exact Predict(sample %d) = %v, want %v", i, got, vals[i])
		}
	}
}

func TestPredictAllAlignsWithInput(t *testing.T) {
	pts, vals := assaySamples()
	in := Interpolator{Kernel: Gaussian, Epsilon: 0.2}
	if err := in.Fit(pts, vals); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	queries := []r3.Vec{{X: 5, Y: 5, Z: 5}, {X: 1, Y: 1, Z: 1}}
	got := in.PredictAll(queries)
	if len(got) != len(queries) {
		t.Fatalf("len(PredictAll()) = %d, want %d", len(got), len(queries))
	}
	for i, q := range queries {
		if got[i] != in.Predict(q) {
			t.Errorf("PredictAll()[%d] = %v, Predict = %v", i, got[i], in.Predict(q))
		}
	}
}

func TestDataRange(t *testing.T) {
	pts, vals := assaySamples()
	in := Interpolator{Kernel: ThinPlateSpline}
	if err := in.Fit(pts, vals); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	lo, hi := in.DataRange()
	if math.Abs(lo-0.4) > 1e-6 || math.Abs(hi-4.0) > 1e-6 {
		t.Errorf("DataRange() = %v, %v, want 0.4, 4.0", lo, hi)
	}
}

func TestParseKernel(t *testing.T) {
	for _, k := range []Kernel{ThinPlateSpline, Linear, Cubic, Gaussian, Multiquadric, InverseMultiquadric} {
		got, err := ParseKernel(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKernel(%q) = %v, %v, want %v, nil", k.String(), got, err, k)
		}
	}
	if got, err := ParseKernel(""); err != nil || got != ThinPlateSpline {
		t.Errorf("ParseKernel(\"\") = %v, %v, want ThinPlateSpline, nil", got, err)
	}
	if _, err := ParseKernel("kriging"); err == nil {
		t.Error("ParseKernel(unknown) error = nil, want error")
	}
}
