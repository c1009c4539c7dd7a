package deposit

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// GoldVein models a tabular gold-silver vein: grades fall off as a gaussian
// across the vein thickness, taper beyond the strike extent, and carry a
// nugget effect producing occasional bonanza intercepts inside the vein.
type GoldVein struct {
	Center    r3.Vec
	Strike    float64 // degrees clockwise from north
	Dip       float64 // degrees below horizontal
	Thickness float64 // meters
	Length    float64 // along-strike extent, meters

	AuMax        float64 // ppm
	AuBackground float64
	AgMax        float64 // ppm
	AgBackground float64
	Noise        float64 // relative assay noise, 0-1
}

// DefaultGoldVein centers a northeast-striking, steeply dipping vein in the
// exploration area at a third of the maximum hole depth.
func DefaultGoldVein(cfg Config) *GoldVein {
	cfg = cfg.withDefaults()
	return &GoldVein{
		Center:       r3.Vec{X: cfg.AreaSize / 2, Y: cfg.AreaSize / 2, Z: -cfg.MaxDepth / 3},
		Strike:       45,
		Dip:          70,
		Thickness:    5,
		Length:       300,
		AuMax:        20,
		AuBackground: 0.01,
		AgMax:        50,
		AgBackground: 0.05,
		Noise:        0.3,
	}
}

// Elements returns the element columns: gold and silver, both in ppm.
func (v *GoldVein) Elements() []string { return []string{"Au_ppm", "Ag_ppm"} }

// Vertical reports false: veins are drilled at an angle to cross the plane.
func (v *GoldVein) Vertical() bool { return false }

// frame returns the unit strike vector and the unit normal of the vein
// plane. Strike follows the azimuth convention (clockwise from north); the
// dip vector points down the plane perpendicular to strike.
func (v *GoldVein) frame() (strike, normal r3.Vec) {
	sr := v.Strike * math.Pi / 180
	dr := v.Dip * math.Pi / 180
	strike = r3.Vec{X: math.Sin(sr), Y: math.Cos(sr)}
	dipVec := r3.Vec{
		X: math.Cos(sr) * math.Cos(dr),
		Y: -math.Sin(sr) * math.Cos(dr),
		Z: -math.Sin(dr),
	}
	return strike, r3.Cross(strike, dipVec)
}

// veinDistance decomposes the offset from the vein center into the
// perpendicular distance off the plane and the signed distance along strike.
func (v *GoldVein) veinDistance(p r3.Vec) (perp, along float64) {
	strike, normal := v.frame()
	d := r3.Sub(p, v.Center)
	return math.Abs(r3.Dot(d, normal)), r3.Dot(d, strike)
}

// GradesAt returns the Au and Ag grades at pos.
func (v *GoldVein) GradesAt(pos r3.Vec, rng *rand.Rand) []float64 {
	perp, along := v.veinDistance(pos)

	half := v.Thickness / 2
	factor := math.Exp(-(perp / half) * (perp / half))
	// Taper off beyond the strike extent.
	if excess := math.Abs(along) - v.Length/2; excess > 0 {
		q := v.Length / 4
		factor *= math.Exp(-(excess / q) * (excess / q))
	}

	au := grade(v.AuBackground, v.AuMax, factor, v.Noise, rng)
	ag := grade(v.AgBackground, v.AgMax, factor, v.Noise, rng)

	// Nugget effect: bonanza grades inside the vein.
	if factor > 0.3 && rng.Float64() < 0.05 {
		au *= 3 + 12*rng.Float64()
		ag *= 2 + 6*rng.Float64()
	}
	return []float64{au, ag}
}
