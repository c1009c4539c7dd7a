// Package main renders plan and section PNG plots for a set of drillholes
// from collar and survey CSV files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/redrock-data/drillpath/internal/desurvey"
	"github.com/redrock-data/drillpath/internal/drillcsv"
	"github.com/redrock-data/drillpath/internal/sections"
	"github.com/redrock-data/drillpath/internal/units"
)

// Config holds configuration for the plot run.
type Config struct {
	CollarsFile string
	SurveysFile string
	Method      string
	Segments    int
	OutputDir   string
	Units       string
}

func main() {
	cfg := parseFlags()

	if cfg.CollarsFile == "" || cfg.SurveysFile == "" {
		log.Fatal("both -collars and -surveys are required")
	}

	method, err := desurvey.ParseMethod(cfg.Method)
	if err != nil {
		log.Fatalf("Invalid method: %v", err)
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = sections.MakePlotOutputDir("plots", cfg.CollarsFile)
	}

	plotter, err := sections.NewPlotter(outputDir)
	if err != nil {
		log.Fatalf("Failed to create plotter: %v", err)
	}

	if err := addTraces(cfg, method, plotter); err != nil {
		log.Fatalf("Failed to build traces: %v", err)
	}

	n, err := plotter.GeneratePlots()
	if err != nil {
		log.Fatalf("Failed to generate plots: %v", err)
	}
	log.Printf("Wrote %d plots for %d holes to %s", n, plotter.TraceCount(), outputDir)
}

func parseFlags() Config {
	cfg := Config{}

	flag.StringVar(&cfg.CollarsFile, "collars", "", "Path to collars CSV (hole_id,x,y,z,total_depth)")
	flag.StringVar(&cfg.SurveysFile, "surveys", "", "Path to surveys CSV (hole_id,azimuth_deg,dip_deg,depth)")
	flag.StringVar(&cfg.Method, "method", "", "Desurvey method (default minimum_curvature)")
	flag.IntVar(&cfg.Segments, "segments", 100, "Trace points per hole")
	flag.StringVar(&cfg.OutputDir, "output", "", "Output directory (default plots/<collars basename>/<timestamp>)")
	flag.StringVar(&cfg.Units, "units", units.Meters, "Units of the input files: m or ft")

	flag.Parse()

	return cfg
}

func addTraces(cfg Config, method desurvey.Method, plotter *sections.Plotter) error {
	cf, err := os.Open(cfg.CollarsFile)
	if err != nil {
		return fmt.Errorf("opening collars: %w", err)
	}
	defer cf.Close()
	collars, err := drillcsv.ReadCollars(cf, cfg.Units)
	if err != nil {
		return err
	}

	sf, err := os.Open(cfg.SurveysFile)
	if err != nil {
		return fmt.Errorf("opening surveys: %w", err)
	}
	defer sf.Close()
	surveys, err := drillcsv.ReadSurveys(sf, cfg.Units)
	if err != nil {
		return err
	}

	for _, rec := range collars {
		stations, ok := surveys[rec.HoleID]
		if !ok {
			log.Printf("Warning: no surveys for hole %s, skipping", rec.HoleID)
			continue
		}
		sort.Slice(stations, func(a, b int) bool { return stations[a].Depth < stations[b].Depth })
		tr, err := desurvey.New(rec.Collar, stations)
		if err != nil {
			return fmt.Errorf("hole %s: %w", rec.HoleID, err)
		}
		depths, coords, err := tr.Trace(cfg.Segments, method)
		if err != nil {
			return fmt.Errorf("hole %s: %w", rec.HoleID, err)
		}
		plotter.Add(sections.Trace{HoleID: rec.HoleID, Depths: depths, Coords: coords})
	}
	return nil
}
