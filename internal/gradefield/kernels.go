// Package gradefield interpolates scattered downhole sample values into a
// continuous 3D field using radial basis functions, with the anisotropic
// search, distance decay and masking controls used when shelling assay
// grades around drillholes.
//
// Like the desurvey package it performs no I/O and never logs.
package gradefield

import (
	"fmt"
	"math"
)

// Kernel selects the radial basis function used by the interpolator.
type Kernel int

const (
	// ThinPlateSpline is r²·ln(r), the default for grade shells: smooth
	// away from samples and exact at them without tuning epsilon.
	ThinPlateSpline Kernel = iota
	Linear
	Cubic
	Gaussian
	Multiquadric
	InverseMultiquadric
)

// String returns the selector name used by callers and config files.
func (k Kernel) String() string {
	switch k {
	case ThinPlateSpline:
		return "thin_plate_spline"
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	case Gaussian:
		return "gaussian"
	case Multiquadric:
		return "multiquadric"
	case InverseMultiquadric:
		return "inverse_multiquadric"
	default:
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
}

// ParseKernel maps a selector string to its Kernel. The empty string maps
// to ThinPlateSpline.
func ParseKernel(s string) (Kernel, error) {
	switch s {
	case "thin_plate_spline", "":
		return ThinPlateSpline, nil
	case "linear":
		return Linear, nil
	case "cubic":
		return Cubic, nil
	case "gaussian":
		return Gaussian, nil
	case "multiquadric":
		return Multiquadric, nil
	case "inverse_multiquadric":
		return InverseMultiquadric, nil
	}
	return 0, fmt.Errorf("gradefield: unknown kernel %q", s)
}

// value evaluates the basis function at distance r with shape parameter
// eps. The thin plate spline's r→0 limit is 0, handled explicitly so the
// log never sees zero.
func (k Kernel) value(r, eps float64) float64 {
	switch k {
	case ThinPlateSpline:
		if r == 0 {
			return 0
		}
		return r * r * math.Log(r)
	case Linear:
		return r
	case Cubic:
		return r * r * r
	case Gaussian:
		er := eps * r
		return math.Exp(-er * er)
	case Multiquadric:
		er := eps * r
		return math.Sqrt(1 + er*er)
	case InverseMultiquadric:
		er := eps * r
		return 1 / math.Sqrt(1+er*er)
	}
	return 0
}
