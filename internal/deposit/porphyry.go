package deposit

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Porphyry models a porphyry copper-gold deposit: grades fall off as a
// gaussian shell around the intrusive center, gold in a slightly wider halo
// than copper, with occasional stockwork intercepts boosting both near the
// core.
type Porphyry struct {
	Center r3.Vec  // orebody center
	Size   float64 // shell radius, meters

	CuMax        float64 // percent
	CuBackground float64
	AuMax        float64 // ppm
	AuBackground float64
	Noise        float64 // relative assay noise, 0-1
}

// DefaultPorphyry centers a porphyry body in the exploration area at a
// third of the maximum hole depth, so typical holes intersect it mid-hole.
func DefaultPorphyry(cfg Config) *Porphyry {
	cfg = cfg.withDefaults()
	return &Porphyry{
		Center:       r3.Vec{X: cfg.AreaSize / 2, Y: cfg.AreaSize / 2, Z: -cfg.MaxDepth / 3},
		Size:         200,
		CuMax:        1.5,
		CuBackground: 0.01,
		AuMax:        0.5,
		AuBackground: 0.005,
		Noise:        0.2,
	}
}

// Elements returns the element columns: copper in percent, gold in ppm.
func (p *Porphyry) Elements() []string { return []string{"Cu_pct", "Au_ppm"} }

// Vertical reports true: porphyry bodies are tested with near-vertical holes.
func (p *Porphyry) Vertical() bool { return true }

// GradesAt returns the Cu and Au grades at pos.
func (p *Porphyry) GradesAt(pos r3.Vec, rng *rand.Rand) []float64 {
	d := r3.Norm(r3.Sub(pos, p.Center))
	cuShell := math.Exp(-(d / p.Size) * (d / p.Size))
	// Gold halo is ~20% wider and more erratic than copper.
	auSize := p.Size * 1.2
	auShell := math.Exp(-(d / auSize) * (d / auSize))

	cu := grade(p.CuBackground, p.CuMax, cuShell, p.Noise, rng)
	au := grade(p.AuBackground, p.AuMax, auShell, p.Noise*1.5, rng)

	// Stockwork veining: occasional high-grade intercepts inside the shell.
	if cuShell > 0.5 && rng.Float64() < 0.08 {
		cu *= 1.3 + 0.7*rng.Float64()
		au *= 1.5 + 1.5*rng.Float64()
	}
	return []float64{cu, au}
}
