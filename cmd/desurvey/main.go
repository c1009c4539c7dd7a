// Package main provides the desurvey command-line tool. It reads collar
// and survey CSV files, desurveys every hole, and writes trace coordinates
// as CSV or JSON.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/redrock-data/drillpath/internal/config"
	"github.com/redrock-data/drillpath/internal/desurvey"
	"github.com/redrock-data/drillpath/internal/drillcsv"
	"github.com/redrock-data/drillpath/internal/units"
)

// Config holds configuration for the desurvey run.
type Config struct {
	CollarsFile   string
	SurveysFile   string
	IntervalsFile string
	Hole          string
	Method        string
	Segments      int
	Format        string
	OutputFile    string
	Units         string
	ConfigFile    string
}

// TracePoint is one output row: a measured depth resolved to coordinates.
type TracePoint struct {
	HoleID string  `json:"hole_id"`
	Depth  float64 `json:"depth"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
}

func main() {
	cfg := parseFlags()

	if cfg.CollarsFile == "" || cfg.SurveysFile == "" {
		log.Fatal("both -collars and -surveys are required")
	}
	if cfg.Format != "csv" && cfg.Format != "json" {
		log.Fatalf("unknown output format %q (csv or json)", cfg.Format)
	}
	if !units.IsValid(cfg.Units) {
		log.Fatalf("invalid units %q (valid: %s)", cfg.Units, units.GetValidUnitsString())
	}

	// File config fills in anything the flags left at their defaults.
	if cfg.ConfigFile != "" {
		params, err := config.LoadParams(cfg.ConfigFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Method == "" {
			cfg.Method = params.GetMethod()
		}
		if cfg.Segments == 0 {
			cfg.Segments = params.GetTraceSegments()
		}
	}
	if cfg.Segments == 0 {
		cfg.Segments = 100
	}

	method, err := desurvey.ParseMethod(cfg.Method)
	if err != nil {
		log.Fatalf("Invalid method: %v", err)
	}

	points, err := run(cfg, method)
	if err != nil {
		log.Fatalf("Desurvey failed: %v", err)
	}

	out := os.Stdout
	if cfg.OutputFile != "" {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	switch cfg.Format {
	case "csv":
		err = writeCSV(out, points)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(points)
	}
	if err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	if cfg.OutputFile != "" {
		log.Printf("Wrote %d trace points to %s", len(points), cfg.OutputFile)
	}
}

func parseFlags() Config {
	cfg := Config{}

	flag.StringVar(&cfg.CollarsFile, "collars", "", "Path to collars CSV (hole_id,x,y,z,total_depth)")
	flag.StringVar(&cfg.SurveysFile, "surveys", "", "Path to surveys CSV (hole_id,azimuth_deg,dip_deg,depth)")
	flag.StringVar(&cfg.IntervalsFile, "intervals", "", "Optional intervals CSV (hole_id,depth_from,depth_to); output midpoints instead of traces")
	flag.StringVar(&cfg.Hole, "hole", "", "Process only this hole ID")
	flag.StringVar(&cfg.Method, "method", "", "Desurvey method (default minimum_curvature)")
	flag.IntVar(&cfg.Segments, "segments", 0, "Trace points per hole (default 100)")
	flag.StringVar(&cfg.Format, "format", "csv", "Output format: csv or json")
	flag.StringVar(&cfg.OutputFile, "out", "", "Output file (default stdout)")
	flag.StringVar(&cfg.Units, "units", units.Meters, "Units of the input files: m or ft")
	flag.StringVar(&cfg.ConfigFile, "config", "", "Optional JSON parameter file")

	flag.Parse()

	return cfg
}

func run(cfg Config, method desurvey.Method) ([]TracePoint, error) {
	trajectories, holeIDs, err := loadTrajectories(cfg)
	if err != nil {
		return nil, err
	}

	var intervals map[string][]drillcsv.IntervalRecord
	if cfg.IntervalsFile != "" {
		f, err := os.Open(cfg.IntervalsFile)
		if err != nil {
			return nil, fmt.Errorf("opening intervals: %w", err)
		}
		defer f.Close()
		intervals, err = drillcsv.ReadIntervals(f, cfg.Units)
		if err != nil {
			return nil, err
		}
	}

	var points []TracePoint
	for _, holeID := range holeIDs {
		tr := trajectories[holeID]
		if intervals != nil {
			for _, rec := range intervals[holeID] {
				mid := (rec.Interval.DepthFrom + rec.Interval.DepthTo) / 2
				p, err := tr.EvaluateAt(mid, method)
				if err != nil {
					return nil, fmt.Errorf("hole %s: %w", holeID, err)
				}
				points = append(points, TracePoint{HoleID: holeID, Depth: mid, X: p.X, Y: p.Y, Z: p.Z})
			}
			continue
		}
		depths, coords, err := tr.Trace(cfg.Segments, method)
		if err != nil {
			return nil, fmt.Errorf("hole %s: %w", holeID, err)
		}
		for i := range depths {
			points = append(points, TracePoint{
				HoleID: holeID, Depth: depths[i],
				X: coords[i].X, Y: coords[i].Y, Z: coords[i].Z,
			})
		}
	}
	return points, nil
}

// loadTrajectories reads the collar and survey files and builds a
// trajectory per hole, returning hole IDs in collar-file order.
func loadTrajectories(cfg Config) (map[string]*desurvey.Trajectory, []string, error) {
	cf, err := os.Open(cfg.CollarsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening collars: %w", err)
	}
	defer cf.Close()
	collars, err := drillcsv.ReadCollars(cf, cfg.Units)
	if err != nil {
		return nil, nil, err
	}

	sf, err := os.Open(cfg.SurveysFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening surveys: %w", err)
	}
	defer sf.Close()
	surveys, err := drillcsv.ReadSurveys(sf, cfg.Units)
	if err != nil {
		return nil, nil, err
	}

	trajectories := make(map[string]*desurvey.Trajectory)
	var holeIDs []string
	for _, rec := range collars {
		if cfg.Hole != "" && rec.HoleID != cfg.Hole {
			continue
		}
		stations, ok := surveys[rec.HoleID]
		if !ok {
			log.Printf("Warning: no surveys for hole %s, skipping", rec.HoleID)
			continue
		}
		// Station order in the file is not guaranteed.
		sort.Slice(stations, func(a, b int) bool { return stations[a].Depth < stations[b].Depth })
		tr, err := desurvey.New(rec.Collar, stations)
		if err != nil {
			return nil, nil, fmt.Errorf("hole %s: %w", rec.HoleID, err)
		}
		trajectories[rec.HoleID] = tr
		holeIDs = append(holeIDs, rec.HoleID)
	}
	if len(holeIDs) == 0 {
		return nil, nil, fmt.Errorf("no holes to process")
	}
	return trajectories, holeIDs, nil
}

func writeCSV(f *os.File, points []TracePoint) error {
	w := csv.NewWriter(f)
	if err := w.Write([]string{"hole_id", "depth", "x", "y", "z"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			p.HoleID,
			strconv.FormatFloat(p.Depth, 'f', -1, 64),
			strconv.FormatFloat(p.X, 'f', -1, 64),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
			strconv.FormatFloat(p.Z, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
