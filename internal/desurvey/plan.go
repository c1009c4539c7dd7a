package desurvey

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// HoleGeometry is the straight-line drilling geometry from a collar towards
// a target: the inverse of desurveying a single-station hole.
type HoleGeometry struct {
	Azimuth float64 // degrees, [0,360)
	Dip     float64 // degrees, <= 0 (holes drill down or flat, never up)
	Length  float64 // metres
}

// HoleGeometryFromPoints derives the azimuth, dip and length needed to
// drill a straight hole from collar to target. A target above the collar
// yields a flat (dip 0) geometry pointed at the target's horizontal
// position; a target directly above or below yields azimuth 0.
func HoleGeometryFromPoints(collar, target r3.Vec) HoleGeometry {
	d := r3.Sub(target, collar)
	horiz := math.Hypot(d.X, d.Y)

	az := 0.0
	if horiz > 0 {
		az = math.Atan2(d.X, d.Y) * 180.0 / math.Pi
		if az < 0 {
			az += 360.0
		}
	}

	dip := 0.0
	if horiz > 0 {
		dip = math.Atan2(d.Z, horiz) * 180.0 / math.Pi
	} else if d.Z < 0 {
		dip = -90.0
	}
	if dip > 0 {
		dip = 0
	}

	return HoleGeometry{Azimuth: az, Dip: dip, Length: r3.Norm(d)}
}

// Endpoint returns where a straight hole with this geometry, collared at
// the given point, bottoms out.
func (g HoleGeometry) Endpoint(collar r3.Vec) r3.Vec {
	az := g.Azimuth * math.Pi / 180.0
	dip := g.Dip * math.Pi / 180.0
	h := g.Length * math.Cos(dip)
	return r3.Vec{
		X: collar.X + h*math.Sin(az),
		Y: collar.Y + h*math.Cos(az),
		Z: collar.Z + g.Length*math.Sin(dip),
	}
}

// PlannedHole is a proposed straight hole, identified for round-tripping
// through planning tools before any survey data exists.
type PlannedHole struct {
	ID       string
	Name     string
	Collar   Collar
	Geometry HoleGeometry
}

// NewPlannedHole plans a straight hole from a collar position to a target.
func NewPlannedHole(name string, collar, target r3.Vec) (PlannedHole, error) {
	geom := HoleGeometryFromPoints(collar, target)
	if geom.Length <= 0 {
		return PlannedHole{}, fmt.Errorf("planned hole %q: target coincides with collar", name)
	}
	return PlannedHole{
		ID:   uuid.NewString(),
		Name: name,
		Collar: Collar{
			X: collar.X, Y: collar.Y, Z: collar.Z,
			TotalDepth: geom.Length,
		},
		Geometry: geom,
	}, nil
}

// Trajectory builds the hole's straight-line trajectory model from its
// planned geometry, usable with the full evaluation API.
func (p PlannedHole) Trajectory() (*Trajectory, error) {
	return New(p.Collar, []Station{{
		Azimuth: p.Geometry.Azimuth,
		Dip:     p.Geometry.Dip,
		Depth:   p.Geometry.Length,
	}})
}

// Endpoint returns the planned bottom-of-hole position.
func (p PlannedHole) Endpoint() r3.Vec {
	return p.Geometry.Endpoint(p.Collar.Position())
}
