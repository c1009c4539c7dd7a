package gradefield

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// SearchEllipsoid is an oriented anisotropy model. Distances measured
// through it are scaled per axis, so samples along the major axis count as
// closer than samples the same metric distance away across the minor axis.
//
// Before rotation the major axis lies along grid north (Y), the semi-major
// along east (X) and the minor vertically (Z). Azimuth rotates about Z,
// dip about X, plunge about Y, applied in that order.
type SearchEllipsoid struct {
	Major     float64 // range along the major axis (m)
	SemiMajor float64 // range along the semi-major axis (m)
	Minor     float64 // range along the minor axis (m)

	Azimuth float64 // degrees clockwise from north
	Dip     float64 // degrees
	Plunge  float64 // degrees
}

// Validate checks the ranges are positive and ordered.
func (e SearchEllipsoid) Validate() error {
	if e.Major <= 0 || e.SemiMajor <= 0 || e.Minor <= 0 {
		return fmt.Errorf("gradefield: ellipsoid ranges must be positive, got %v/%v/%v",
			e.Major, e.SemiMajor, e.Minor)
	}
	if e.Major < e.SemiMajor || e.SemiMajor < e.Minor {
		return fmt.Errorf("gradefield: ellipsoid ranges must satisfy major >= semi-major >= minor, got %v/%v/%v",
			e.Major, e.SemiMajor, e.Minor)
	}
	return nil
}

// RotationMatrix returns the local-to-world rotation Ry(plunge) · Rx(dip) ·
// Rz(azimuth).
func (e SearchEllipsoid) RotationMatrix() *mat.Dense {
	az := e.Azimuth * math.Pi / 180.0
	dip := e.Dip * math.Pi / 180.0
	pl := e.Plunge * math.Pi / 180.0

	// Clockwise about Z, so azimuth 90 carries the major axis from north
	// to east.
	rz := mat.NewDense(3, 3, []float64{
		math.Cos(az), math.Sin(az), 0,
		-math.Sin(az), math.Cos(az), 0,
		0, 0, 1,
	})
	rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, math.Cos(dip), -math.Sin(dip),
		0, math.Sin(dip), math.Cos(dip),
	})
	ry := mat.NewDense(3, 3, []float64{
		math.Cos(pl), 0, math.Sin(pl),
		0, 1, 0,
		-math.Sin(pl), 0, math.Cos(pl),
	})

	out := mat.NewDense(3, 3, nil)
	out.Mul(rx, rz)
	out.Mul(ry, out)
	return out
}

// NormalizedDistance measures from center to p through the ellipsoid:
// values below 1 are inside, exactly 1 on the surface. The delta is
// rotated into the ellipsoid frame with the transpose (the rotation's
// inverse) and scaled per axis.
func (e SearchEllipsoid) NormalizedDistance(center, p r3.Vec) float64 {
	rot := e.RotationMatrix()
	d := r3.Sub(p, center)

	world := mat.NewVecDense(3, []float64{d.X, d.Y, d.Z})
	local := mat.NewVecDense(3, nil)
	local.MulVec(rot.T(), world)

	sx := local.AtVec(0) / e.SemiMajor
	sy := local.AtVec(1) / e.Major
	sz := local.AtVec(2) / e.Minor
	return math.Sqrt(sx*sx + sy*sy + sz*sz)
}

// NormalizedDistances is the batch form of NormalizedDistance with the
// rotation built once.
func (e SearchEllipsoid) NormalizedDistances(center r3.Vec, pts []r3.Vec) []float64 {
	rot := e.RotationMatrix()
	world := mat.NewVecDense(3, nil)
	local := mat.NewVecDense(3, nil)

	out := make([]float64, len(pts))
	for i, p := range pts {
		d := r3.Sub(p, center)
		world.SetVec(0, d.X)
		world.SetVec(1, d.Y)
		world.SetVec(2, d.Z)
		local.MulVec(rot.T(), world)
		sx := local.AtVec(0) / e.SemiMajor
		sy := local.AtVec(1) / e.Major
		sz := local.AtVec(2) / e.Minor
		out[i] = math.Sqrt(sx*sx + sy*sy + sz*sz)
	}
	return out
}

// Contains reports whether p lies inside or on the ellipsoid centred at
// center.
func (e SearchEllipsoid) Contains(center, p r3.Vec) bool {
	return e.NormalizedDistance(center, p) <= 1
}
