// Package main interpolates assay values from interval midpoints into a
// regular 3D grid using radial basis functions and writes the grid as CSV.
// Distance decay and masking keep the field honest away from the data.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/redrock-data/drillpath/internal/config"
	"github.com/redrock-data/drillpath/internal/desurvey"
	"github.com/redrock-data/drillpath/internal/drillcsv"
	"github.com/redrock-data/drillpath/internal/gradefield"
	"github.com/redrock-data/drillpath/internal/units"
)

// Config holds configuration for the interpolation run.
type Config struct {
	CollarsFile   string
	SurveysFile   string
	IntervalsFile string
	Method        string
	Kernel        string
	Epsilon       float64
	Smoothing     float64
	Resolution    int
	Padding       float64
	Decay         string
	MaxDistance   float64
	OutputFile    string
	Units         string
	ConfigFile    string
}

func main() {
	cfg := parseFlags()

	if cfg.CollarsFile == "" || cfg.SurveysFile == "" || cfg.IntervalsFile == "" {
		log.Fatal("-collars, -surveys and -intervals are all required")
	}

	if cfg.ConfigFile != "" {
		params, err := config.LoadParams(cfg.ConfigFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Kernel == "" {
			cfg.Kernel = params.GetRBFKernel()
		}
		if cfg.Epsilon == 0 {
			cfg.Epsilon = params.GetRBFEpsilon()
		}
		if cfg.Smoothing == 0 {
			cfg.Smoothing = params.GetRBFSmoothing()
		}
		if cfg.Resolution == 0 {
			cfg.Resolution = params.GetGridResolution()
		}
		if cfg.Decay == "" {
			cfg.Decay = params.GetDecayFunction()
		}
		if cfg.MaxDistance == 0 {
			cfg.MaxDistance = params.GetMaxInfluenceDistance()
		}
	}
	if cfg.Resolution == 0 {
		cfg.Resolution = 30
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Interpolation failed: %v", err)
	}
}

func parseFlags() Config {
	cfg := Config{}

	flag.StringVar(&cfg.CollarsFile, "collars", "", "Path to collars CSV (hole_id,x,y,z,total_depth)")
	flag.StringVar(&cfg.SurveysFile, "surveys", "", "Path to surveys CSV (hole_id,azimuth_deg,dip_deg,depth)")
	flag.StringVar(&cfg.IntervalsFile, "intervals", "", "Path to intervals CSV (hole_id,depth_from,depth_to,value)")
	flag.StringVar(&cfg.Method, "method", "", "Desurvey method (default minimum_curvature)")
	flag.StringVar(&cfg.Kernel, "kernel", "", "RBF kernel (default thin_plate_spline)")
	flag.Float64Var(&cfg.Epsilon, "epsilon", 0, "RBF shape parameter (default 1)")
	flag.Float64Var(&cfg.Smoothing, "smoothing", 0, "RBF smoothing (default 0, exact)")
	flag.IntVar(&cfg.Resolution, "resolution", 0, "Grid points per axis (default 30)")
	flag.Float64Var(&cfg.Padding, "padding", 0.1, "Bounds padding fraction")
	flag.StringVar(&cfg.Decay, "decay", "", "Distance decay: none, linear, smoothstep, gaussian")
	flag.Float64Var(&cfg.MaxDistance, "max-distance", 0, "Mask grid beyond this distance from samples (0 = 3x average spacing)")
	flag.StringVar(&cfg.OutputFile, "out", "grade_grid.csv", "Output CSV file (x,y,z,value)")
	flag.StringVar(&cfg.Units, "units", units.Meters, "Units of the input files: m or ft")
	flag.StringVar(&cfg.ConfigFile, "config", "", "Optional JSON parameter file")

	flag.Parse()

	return cfg
}

func run(cfg Config) error {
	method, err := desurvey.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}
	kernel, err := gradefield.ParseKernel(cfg.Kernel)
	if err != nil {
		return err
	}
	decay, err := gradefield.ParseDecayFunction(cfg.Decay)
	if err != nil {
		return err
	}

	samples, err := loadSamples(cfg, method)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d located samples", len(samples))

	positions := gradefield.Positions(samples)
	values := gradefield.Values(samples)

	in := gradefield.Interpolator{Kernel: kernel, Epsilon: cfg.Epsilon, Smoothing: cfg.Smoothing}
	if err := in.Fit(positions, values); err != nil {
		return err
	}

	bounds, ok := gradefield.BoundsOf(positions)
	if !ok {
		return fmt.Errorf("no sample positions")
	}
	grid, err := bounds.Padded(cfg.Padding).Grid(cfg.Resolution)
	if err != nil {
		return err
	}

	predicted := in.PredictAll(grid)

	maxDistance := cfg.MaxDistance
	if maxDistance == 0 {
		maxDistance = gradefield.AutoInfluenceDistance(positions)
		log.Printf("Derived max influence distance %.2f m from sample spacing", maxDistance)
	}
	distances := gradefield.NearestSampleDistances(positions, grid)
	if err := gradefield.ApplyDistanceDecay(predicted, distances, maxDistance, decay); err != nil {
		return err
	}
	masked := gradefield.ApplyDistanceMask(predicted, distances, maxDistance)
	log.Printf("Masked %d of %d grid points beyond %.2f m", masked, len(grid), maxDistance)

	if err := writeGrid(cfg.OutputFile, grid, predicted); err != nil {
		return err
	}
	log.Printf("Wrote %d grid points to %s", len(grid)-masked, cfg.OutputFile)
	return nil
}

// loadSamples desurveys every valued interval's midpoint into a located
// sample across all holes.
func loadSamples(cfg Config, method desurvey.Method) ([]gradefield.Sample, error) {
	cf, err := os.Open(cfg.CollarsFile)
	if err != nil {
		return nil, fmt.Errorf("opening collars: %w", err)
	}
	defer cf.Close()
	collars, err := drillcsv.ReadCollars(cf, cfg.Units)
	if err != nil {
		return nil, err
	}

	sf, err := os.Open(cfg.SurveysFile)
	if err != nil {
		return nil, fmt.Errorf("opening surveys: %w", err)
	}
	defer sf.Close()
	surveys, err := drillcsv.ReadSurveys(sf, cfg.Units)
	if err != nil {
		return nil, err
	}

	inf, err := os.Open(cfg.IntervalsFile)
	if err != nil {
		return nil, fmt.Errorf("opening intervals: %w", err)
	}
	defer inf.Close()
	intervals, err := drillcsv.ReadIntervals(inf, cfg.Units)
	if err != nil {
		return nil, err
	}

	var samples []gradefield.Sample
	for _, rec := range collars {
		recs := intervals[rec.HoleID]
		if len(recs) == 0 {
			continue
		}
		stations, ok := surveys[rec.HoleID]
		if !ok {
			log.Printf("Warning: no surveys for hole %s, skipping", rec.HoleID)
			continue
		}
		sort.Slice(stations, func(a, b int) bool { return stations[a].Depth < stations[b].Depth })
		tr, err := desurvey.New(rec.Collar, stations)
		if err != nil {
			return nil, fmt.Errorf("hole %s: %w", rec.HoleID, err)
		}

		var ivs []desurvey.SampleInterval
		var vals []float64
		for _, ir := range recs {
			if !ir.HasValue {
				continue
			}
			ivs = append(ivs, ir.Interval)
			vals = append(vals, ir.Value)
		}
		located, err := gradefield.MidpointSamples(rec.HoleID, tr, ivs, vals, method)
		if err != nil {
			return nil, err
		}
		samples = append(samples, located...)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("no valued intervals found")
	}
	return samples, nil
}

// writeGrid writes the unmasked grid points as x,y,z,value rows.
func writeGrid(path string, grid []r3.Vec, values []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "y", "z", "value"}); err != nil {
		return err
	}
	for i, p := range grid {
		if math.IsNaN(values[i]) {
			continue
		}
		row := []string{
			strconv.FormatFloat(p.X, 'f', -1, 64),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
			strconv.FormatFloat(p.Z, 'f', -1, 64),
			strconv.FormatFloat(values[i], 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
