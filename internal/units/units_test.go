package units

import (
	"math"
	"testing"
)

func TestIsValid(t *testing.T) {
	for _, u := range ValidUnits {
		if !IsValid(u) {
			t.Errorf("IsValid(%q) = false, want true", u)
		}
	}
	for _, u := range []string{"", "meters", "M", "yards"} {
		if IsValid(u) {
			t.Errorf("IsValid(%q) = true, want false", u)
		}
	}
}

func TestToMeters(t *testing.T) {
	if got := ToMeters(100, Meters); got != 100 {
		t.Errorf("ToMeters(100, m) = %v, want 100", got)
	}
	if got := ToMeters(100, Feet); math.Abs(got-30.48) > 1e-9 {
		t.Errorf("ToMeters(100, ft) = %v, want 30.48", got)
	}
	// Unknown units pass the value through.
	if got := ToMeters(100, "furlongs"); got != 100 {
		t.Errorf("ToMeters(100, furlongs) = %v, want 100", got)
	}
}

func TestFromMeters(t *testing.T) {
	if got := FromMeters(30.48, Feet); math.Abs(got-100) > 1e-9 {
		t.Errorf("FromMeters(30.48, ft) = %v, want 100", got)
	}
	if got := FromMeters(42, Meters); got != 42 {
		t.Errorf("FromMeters(42, m) = %v, want 42", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1.5, 123.456} {
		if got := FromMeters(ToMeters(v, Feet), Feet); math.Abs(got-v) > 1e-9 {
			t.Errorf("round trip %v ft = %v, want %v", v, got, v)
		}
	}
}
