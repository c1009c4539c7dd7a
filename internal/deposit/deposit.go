// Package deposit generates synthetic drillhole datasets over parametric
// orebody models: randomized collars and survey stations, and graded sample
// intervals whose values follow the model's spatial structure. The output
// feeds the same pipeline as real data, which makes it useful for demos and
// for exercising the interpolation tooling at scale.
package deposit

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/redrock-data/drillpath/internal/desurvey"
)

// Model assigns element grades to points in space.
type Model interface {
	// Elements lists the element columns the model produces, e.g. Cu_pct.
	Elements() []string
	// GradesAt returns one grade per element, in Elements order, at
	// position p. rng supplies the model's sampling noise.
	GradesAt(p r3.Vec, rng *rand.Rand) []float64
	// Vertical reports whether holes targeting this deposit are collared
	// near vertical. Vein deposits are drilled at an angle to cross the
	// structure.
	Vertical() bool
}

// Config controls the size and shape of a generated dataset. Zero fields
// take the defaults below.
type Config struct {
	Seed           int64
	Holes          int     // number of holes (default 10)
	AreaSize       float64 // square exploration area side, meters (default 500)
	MaxDepth       float64 // deepest possible hole, meters (default 300)
	SamplesPerHole int     // graded intervals per hole (default 50)
}

func (c Config) withDefaults() Config {
	if c.Holes <= 0 {
		c.Holes = 10
	}
	if c.AreaSize <= 0 {
		c.AreaSize = 500
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = 300
	}
	if c.SamplesPerHole <= 0 {
		c.SamplesPerHole = 50
	}
	return c
}

// Sample is one graded downhole interval. Grades align with the generating
// model's Elements.
type Sample struct {
	DepthFrom float64
	DepthTo   float64
	Grades    []float64
}

// Hole is one generated drillhole: collar, survey stations, and contiguous
// graded intervals from surface to total depth.
type Hole struct {
	ID       string
	Collar   desurvey.Collar
	Stations []desurvey.Station
	Samples  []Sample
}

// Generate builds a reproducible synthetic dataset for the given model.
// Collars land uniformly in the exploration area, holes drill to 70-100% of
// the configured maximum depth, and interval grades are evaluated at the
// desurveyed interval midpoints so they track the curved hole path.
func Generate(m Model, cfg Config) ([]Hole, error) {
	cfg = cfg.withDefaults()
	rng := rand.New(rand.NewSource(cfg.Seed))

	holes := make([]Hole, 0, cfg.Holes)
	for n := 0; n < cfg.Holes; n++ {
		id := fmt.Sprintf("DH%03d", n)

		collar := desurvey.Collar{
			X:          rng.Float64() * cfg.AreaSize,
			Y:          rng.Float64() * cfg.AreaSize,
			Z:          0,
			TotalDepth: cfg.MaxDepth * (0.7 + 0.3*rng.Float64()),
		}
		stations := surveyStations(rng, collar.TotalDepth, m.Vertical())

		tr, err := desurvey.New(collar, stations)
		if err != nil {
			return nil, fmt.Errorf("hole %s: %w", id, err)
		}

		count := cfg.SamplesPerHole
		samples := make([]Sample, count)
		mids := make([]float64, count)
		for i := range samples {
			from := float64(i) * collar.TotalDepth / float64(count)
			to := min(float64(i+1)*collar.TotalDepth/float64(count), collar.TotalDepth)
			samples[i].DepthFrom = from
			samples[i].DepthTo = to
			mids[i] = (from + to) / 2
		}
		pts, err := tr.Evaluate(mids, desurvey.MinimumCurvature)
		if err != nil {
			return nil, fmt.Errorf("hole %s: %w", id, err)
		}
		for i, p := range pts {
			samples[i].Grades = m.GradesAt(p, rng)
		}

		holes = append(holes, Hole{ID: id, Collar: collar, Stations: stations, Samples: samples})
	}
	return holes, nil
}

// surveyStations lays out stations every ~50 m with a wandering orientation
// around a per-hole heading. Vertical holes start within 15 degrees of
// plumb; angled holes start between -90 and -45 dip.
func surveyStations(rng *rand.Rand, depth float64, vertical bool) []desurvey.Station {
	azimuth := rng.Float64() * 360
	var dip float64
	if vertical {
		dip = -90 + (rng.Float64()*30 - 15)
	} else {
		dip = -90 + rng.Float64()*45
	}

	n := max(3, int(depth/50))
	stations := make([]desurvey.Station, n)
	for i := range stations {
		stationDip := dip + (rng.Float64()*10 - 5)
		if stationDip < -90 {
			stationDip = -90
		}
		stations[i] = desurvey.Station{
			Azimuth: azimuth + (rng.Float64()*20 - 10),
			Dip:     stationDip,
			Depth:   min(float64(i+1)*depth/float64(n), depth),
		}
	}
	return stations
}

// grade maps a spatial falloff factor in [0, 1] into a noisy grade between
// background and maxGrade, floored at a tenth of background so assays never
// go to zero or negative.
func grade(background, maxGrade, factor, noise float64, rng *rand.Rand) float64 {
	g := background + (maxGrade-background)*factor
	g += rng.NormFloat64() * noise * g
	if floor := background * 0.1; g < floor {
		g = floor
	}
	return g
}
