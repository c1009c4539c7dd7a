// Package main generates a synthetic drillhole dataset over a parametric
// deposit model and writes collar, survey, and assay interval CSV files
// ready for the desurvey and interpolation tools.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/redrock-data/drillpath/internal/deposit"
)

// Config holds configuration for the generation run.
type Config struct {
	Deposit        string
	Holes          int
	AreaSize       float64
	MaxDepth       float64
	SamplesPerHole int
	Seed           int64
	OutputDir      string
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		log.Fatalf("Failed to generate dataset: %v", err)
	}
}

func parseFlags() Config {
	cfg := Config{}

	flag.StringVar(&cfg.Deposit, "deposit", "porphyry", "Deposit model: porphyry or vein")
	flag.IntVar(&cfg.Holes, "holes", 12, "Number of drillholes")
	flag.Float64Var(&cfg.AreaSize, "area", 600, "Exploration area side length in meters")
	flag.Float64Var(&cfg.MaxDepth, "max-depth", 350, "Maximum hole depth in meters")
	flag.IntVar(&cfg.SamplesPerHole, "samples", 60, "Assay intervals per hole")
	flag.Int64Var(&cfg.Seed, "seed", 42, "Random seed")
	flag.StringVar(&cfg.OutputDir, "out", "simdata", "Output directory for CSV files")

	flag.Parse()

	return cfg
}

func run(cfg Config) error {
	gen := deposit.Config{
		Seed:           cfg.Seed,
		Holes:          cfg.Holes,
		AreaSize:       cfg.AreaSize,
		MaxDepth:       cfg.MaxDepth,
		SamplesPerHole: cfg.SamplesPerHole,
	}

	var model deposit.Model
	switch cfg.Deposit {
	case "porphyry":
		model = deposit.DefaultPorphyry(gen)
	case "vein":
		model = deposit.DefaultGoldVein(gen)
	default:
		return fmt.Errorf("unknown deposit model %q (want porphyry or vein)", cfg.Deposit)
	}

	holes, err := deposit.Generate(model, gen)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	if err := writeCollars(filepath.Join(cfg.OutputDir, "collars.csv"), holes); err != nil {
		return err
	}
	if err := writeSurveys(filepath.Join(cfg.OutputDir, "surveys.csv"), holes); err != nil {
		return err
	}
	for i, element := range model.Elements() {
		name := fmt.Sprintf("intervals_%s.csv", element)
		if err := writeIntervals(filepath.Join(cfg.OutputDir, name), holes, i); err != nil {
			return err
		}
	}

	log.Printf("Wrote %d %s holes to %s", len(holes), cfg.Deposit, cfg.OutputDir)
	return nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

func writeCollars(path string, holes []deposit.Hole) error {
	rows := make([][]string, 0, len(holes))
	for _, h := range holes {
		rows = append(rows, []string{
			h.ID,
			ftoa(h.Collar.X), ftoa(h.Collar.Y), ftoa(h.Collar.Z),
			ftoa(h.Collar.TotalDepth),
		})
	}
	return writeCSV(path, []string{"hole_id", "x", "y", "z", "total_depth"}, rows)
}

func writeSurveys(path string, holes []deposit.Hole) error {
	var rows [][]string
	for _, h := range holes {
		for _, s := range h.Stations {
			rows = append(rows, []string{
				h.ID, ftoa(s.Azimuth), ftoa(s.Dip), ftoa(s.Depth),
			})
		}
	}
	return writeCSV(path, []string{"hole_id", "azimuth_deg", "dip_deg", "depth"}, rows)
}

func writeIntervals(path string, holes []deposit.Hole, element int) error {
	var rows [][]string
	for _, h := range holes {
		for _, s := range h.Samples {
			rows = append(rows, []string{
				h.ID, ftoa(s.DepthFrom), ftoa(s.DepthTo), ftoa(s.Grades[element]),
			})
		}
	}
	return writeCSV(path, []string{"hole_id", "depth_from", "depth_to", "value"}, rows)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
