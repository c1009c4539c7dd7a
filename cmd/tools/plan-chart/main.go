// Package main renders an interactive HTML plan chart of drillhole traces
// using go-echarts, with trace points coloured by measured depth.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/redrock-data/drillpath/internal/desurvey"
	"github.com/redrock-data/drillpath/internal/drillcsv"
	"github.com/redrock-data/drillpath/internal/units"
)

// Config holds configuration for the chart run.
type Config struct {
	CollarsFile string
	SurveysFile string
	Method      string
	Segments    int
	OutputFile  string
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

	if err := renderChart(cfg, method); err != nil {
		log.Fatalf("Chart failed: %v", err)
	}
	log.Printf("Wrote chart to %s", cfg.OutputFile)
}

func parseFlags() Config {
	cfg := Config{}

	flag.StringVar(&cfg.CollarsFile, "collars", "", "Path to collars CSV (hole_id,x,y,z,total_depth)")
	flag.StringVar(&cfg.SurveysFile, "surveys", "", "Path to surveys CSV (hole_id,azimuth_deg,dip_deg,depth)")
	flag.StringVar(&cfg.Method, "method", "", "Desurvey method (default minimum_curvature)")
	flag.IntVar(&cfg.Segments, "segments", 100, "Trace points per hole")
	flag.StringVar(&cfg.OutputFile, "out", "plan_chart.html", "Output HTML file")
	flag.StringVar(&cfg.Units, "units", units.Meters, "Units of the input files: m or ft")

	flag.Parse()

	return cfg
}

func renderChart(cfg Config, method desurvey.Method) error {
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

	scatter := charts.NewScatter()

	maxDepth := 0.0
	holeCount := 0
	pointCount := 0
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

		data := make([]opts.ScatterData, 0, len(coords))
		for i, c := range coords {
			data = append(data, opts.ScatterData{Value: []interface{}{c.X, c.Y, depths[i]}})
		}
		scatter.AddSeries(rec.HoleID, data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))

		maxDepth = math.Max(maxDepth, tr.TotalDepth())
		holeCount++
		pointCount += len(data)
	}
	if holeCount == 0 {
		return fmt.Errorf("no holes to chart")
	}

	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Drillhole Plan", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Drillhole Plan View", Subtitle: fmt.Sprintf("holes=%d points=%d method=%s", holeCount, pointCount, method)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Easting (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Northing (m)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxDepth),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}},
		}),
	)

	f, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	return scatter.Render(f)
}
