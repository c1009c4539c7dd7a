// Package desurvey converts downhole directional surveys into 3D borehole
// trajectories and resolves measured depths along a hole into spatial
// coordinates.
//
// Coordinate convention: X = local grid east, Y = local grid north, Z = up
// (elevation), all in metres. Measured depth increases down the hole, so a
// vertical hole produces decreasing Z. A stored dip of -90° is straight
// down; internally dips are converted to a polar angle from vertical-down
// via polar = 90° + dip.
//
// The package performs no I/O and never logs; all failures are returned as
// typed errors to the caller.
package desurvey

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Collar is the surveyed origin of a borehole in the local grid frame.
type Collar struct {
	X          float64 // easting (m)
	Y          float64 // northing (m)
	Z          float64 // elevation (m)
	TotalDepth float64 // measured depth along the hole (m), > 0
}

// Position returns the collar coordinates as a vector.
func (c Collar) Position() r3.Vec {
	return r3.Vec{X: c.X, Y: c.Y, Z: c.Z}
}

// Station is a single directional measurement taken down the hole.
type Station struct {
	Azimuth float64 // degrees, [0,360), 0 = grid north, clockwise
	Dip     float64 // degrees, [-90,90], 0 = horizontal, -90 = straight down
	Depth   float64 // measured depth (m), strictly increasing per hole
}

// Direction returns the unit vector the hole is heading in at the station.
// The vertical component is -cos(polar) so drilling down yields negative Z.
func (s Station) Direction() r3.Vec {
	az := s.Azimuth * math.Pi / 180.0
	polar := (90.0 + s.Dip) * math.Pi / 180.0
	return directionFromAngles(az, polar)
}

// directionFromAngles builds a unit direction from an azimuth and a polar
// angle from vertical-down, both in radians.
func directionFromAngles(az, polar float64) r3.Vec {
	sinP := math.Sin(polar)
	return r3.Vec{
		X: sinP * math.Sin(az),
		Y: sinP * math.Cos(az),
		Z: -math.Cos(polar),
	}
}
