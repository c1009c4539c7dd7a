package gradefield

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/redrock-data/drillpath/internal/desurvey"
)

func TestNearestSampleDistances(t *testing.T) {
	samples := []r3.Vec{{X: 0}, {X: 10}, {X: 30}}
	queries := []r3.Vec{{X: 1}, {X: 12}, {X: 30}, {X: 100}}
	got := NearestSampleDistances(samples, queries)
	want := []float64{1, 2, 0, 70}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("NearestSampleDistances()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAverageSpacing(t *testing.T) {
	if got := AverageSpacing(nil); got != 0 {
		t.Errorf("AverageSpacing(nil) = %v, want 0", got)
	}
	if got := AverageSpacing([]r3.Vec{{X: 5}}); got != 0 {
		t.Errorf("AverageSpacing(single) = %v, want 0", got)
	}

	// Nearest-neighbour distances: 0→10 is 10, 10→0 is 10, 25→10 is 15.
	samples := []r3.Vec{{X: 0}, {X: 10}, {X: 25}}
	want := (10.0 + 10.0 + 15.0) / 3.0
	if got := AverageSpacing(samples); math.Abs(got-want) > 1e-9 {
		t.Errorf("AverageSpacing() = %v, want %v", got, want)
	}

	if got := AutoInfluenceDistance(samples); math.Abs(got-3*want) > 1e-9 {
		t.Errorf("AutoInfluenceDistance() = %v, want %v", got, 3*want)
	}
}

func TestApplyDistanceMask(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	distances := []float64{5, 15, 10, 40}
	masked := ApplyDistanceMask(values, distances, 10)
	if masked != 2 {
		t.Errorf("masked = %d, want 2", masked)
	}
	if values[0] != 1 || values[2] != 3 {
		t.Errorf("in-range values changed: %v", values)
	}
	if !math.IsNaN(values[1]) || !math.IsNaN(values[3]) {
		t.Errorf("out-of-range values = %v, %v, want NaN", values[1], values[3])
	}
}

func TestApplyDistanceDecay(t *testing.T) {
	values := []float64{10, 10, 10}
	distances := []float64{0, 50, 100}
	if err := ApplyDistanceDecay(values, distances, 100, LinearDecay); err != nil {
		t.Fatalf("ApplyDistanceDecay() error = %v", err)
	}
	want := []float64{10, 5, 0}
	for i := range want {
		if math.Abs(values[i]-want[i]) > 1e-9 {
			t.Errorf("values[%d] = %v, want %v", i, values[i], want[i])
		}
	}

	values = []float64{10}
	if err := ApplyDistanceDecay(values, []float64{50}, 100, NoDecay); err != nil || values[0] != 10 {
		t.Errorf("NoDecay changed value to %v (err %v), want untouched", values[0], err)
	}
	if err := ApplyDistanceDecay(values, []float64{50}, 0, LinearDecay); err == nil {
		t.Error("ApplyDistanceDecay(max 0) error = nil, want error")
	}
	if err := ApplyDistanceDecay(values, []float64{1, 2}, 100, LinearDecay); err == nil {
		t.Error("ApplyDistanceDecay(mismatched lengths) error = nil, want error")
	}
}

func TestDecayFactorShapes(t *testing.T) {
	for _, d := range []DecayFunction{LinearDecay, SmoothstepDecay, GaussianDecay} {
		if f := d.factor(0); math.Abs(f-1) > 1e-12 {
			t.Errorf("%s.factor(0) = %v, want 1", d, f)
		}
		if f := d.factor(2); f > 0.05 {
			t.Errorf("%s.factor(beyond cutoff) = %v, want near 0", d, f)
		}
	}
	// Smoothstep is flat at both ends; its midpoint factor is exactly 1/2.
	if f := SmoothstepDecay.factor(0.5); math.Abs(f-0.5) > 1e-12 {
		t.Errorf("SmoothstepDecay.factor(0.5) = %v, want 0.5", f)
	}
	if f := GaussianDecay.factor(1); math.Abs(f-math.Exp(-3)) > 1e-12 {
		t.Errorf("GaussianDecay.factor(1) = %v, want e^-3", f)
	}
}

func TestApplyEllipsoidMask(t *testing.T) {
	e := SearchEllipsoid{Major: 100, SemiMajor: 50, Minor: 20}
	center := r3.Vec{}
	pts := []r3.Vec{{Y: 50}, {Y: 150}, {Z: 10}, {Z: 30}}
	values := []float64{1, 2, 3, 4}
	masked := ApplyEllipsoidMask(values, pts, center, e)
	if masked != 2 {
		t.Errorf("masked = %d, want 2", masked)
	}
	if values[0] != 1 || values[2] != 3 {
		t.Errorf("inside values changed: %v", values)
	}
	if !math.IsNaN(values[1]) || !math.IsNaN(values[3]) {
		t.Errorf("outside values = %v, %v, want NaN", values[1], values[3])
	}
}

func TestCentroid(t *testing.T) {
	if got := Centroid(nil); got != (r3.Vec{}) {
		t.Errorf("Centroid(nil) = %v, want zero", got)
	}
	got := Centroid([]r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 20, Z: -30}})
	want := r3.Vec{X: 5, Y: 10, Z: -15}
	if r3.Norm(r3.Sub(got, want)) > 1e-12 {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}

func TestMidpointSamples(t *testing.T) {
	tr, err := desurvey.New(desurvey.Collar{TotalDepth: 100}, []desurvey.Station{
		{Azimuth: 0, Dip: -90, Depth: 100},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	intervals := []desurvey.SampleInterval{
		{DepthFrom: 10, DepthTo: 12},
		{DepthFrom: 40, DepthTo: 50},
	}
	values := []float64{1.5, 0.8}
	samples, err := MidpointSamples("DDH-001", tr, intervals, values, desurvey.MinimumCurvature)
	if err != nil {
		t.Fatalf("MidpointSamples() error = %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("len(samples) = %d, want 2", len(samples))
	}
	if samples[0].Depth != 11 || samples[1].Depth != 45 {
		t.Errorf("midpoint depths = %v, %v, want 11, 45", samples[0].Depth, samples[1].Depth)
	}
	if r3.Norm(r3.Sub(samples[0].Position, r3.Vec{Z: -11})) > 1e-9 {
		t.Errorf("samples[0].Position = %v, want (0,0,-11)", samples[0].Position)
	}
	if samples[1].HoleID != "DDH-001" || samples[1].Value != 0.8 {
		t.Errorf("samples[1] = %+v, want hole DDH-001 value 0.8", samples[1])
	}

	if _, err := MidpointSamples("DDH-001", tr, intervals, values[:1], desurvey.MinimumCurvature); err == nil {
		t.Error("MidpointSamples(mismatched lengths) error = nil, want error")
	}
	bad := []desurvey.SampleInterval{{DepthFrom: 90, DepthTo: 120}}
	if _, err := MidpointSamples("DDH-001", tr, bad, []float64{1}, desurvey.MinimumCurvature); err == nil {
		t.Error("MidpointSamples(out-of-hole interval) error = nil, want error")
	}
}
