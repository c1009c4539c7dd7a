package desurvey

import "fmt"

// Method selects the displacement rule used to integrate the trajectory
// between survey stations.
type Method int

const (
	// MinimumCurvature fits a circular arc between the bounding station
	// directions using the dogleg ratio factor. Industry standard: exact
	// for constant-curvature arcs, and it degrades to a straight line as
	// the dogleg approaches zero.
	MinimumCurvature Method = iota

	// Tangential applies the interval's start direction over its whole
	// length with no curvature correction. Cheap and inaccurate on curved
	// holes; kept for comparison with vendor tools that still use it.
	Tangential

	// AverageAngle averages azimuth and polar angle independently between
	// the bounding stations and applies the resulting direction linearly.
	AverageAngle

	// RadiusOfCurvature sweeps a circular arc parameterised by dip while
	// holding azimuth at the interval's start value. Falls back to the
	// tangential rule when the dip change is below radiusEps.
	RadiusOfCurvature
)

// radiusEps is the dip-change threshold (radians) below which the
// radius-of-curvature method treats an interval as straight instead of
// dividing by a near-zero angle.
const radiusEps = 1e-6

// String returns the selector name used by callers and config files.
func (m Method) String() string {
	switch m {
	case MinimumCurvature:
		return "minimum_curvature"
	case Tangential:
		return "tangential"
	case AverageAngle:
		return "average_angle"
	case RadiusOfCurvature:
		return "radius_of_curvature"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a selector string to its Method. The empty string maps
// to MinimumCurvature so config files may omit it; any other unknown
// selector fails with ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "minimum_curvature", "":
		return MinimumCurvature, nil
	case "tangential":
		return Tangential, nil
	case "average_angle":
		return AverageAngle, nil
	case "radius_of_curvature":
		return RadiusOfCurvature, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

func (m Method) valid() bool {
	return m >= MinimumCurvature && m <= RadiusOfCurvature
}
