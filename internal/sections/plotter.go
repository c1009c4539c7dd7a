// Package sections renders plan-view and section-view plots of desurveyed
// hole traces for quick QA of survey data and planned fans.
package sections

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Trace is one hole's sampled trajectory ready for plotting. Depths and
// Coords are index-aligned.
type Trace struct {
	HoleID string
	Depths []float64
	Coords []r3.Vec
}

// Plotter accumulates hole traces and renders them as PNG files: a plan
// view (easting vs northing) and a section view (horizontal distance from
// each collar vs elevation).
type Plotter struct {
	mu        sync.Mutex
	outputDir string
	traces    []Trace
}

// NewPlotter creates a plotter writing into outputDir, creating the
// directory if needed.
func NewPlotter(outputDir string) (*Plotter, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	return &Plotter{outputDir: outputDir}, nil
}

// Add records a hole trace for the next GeneratePlots call. Traces with
// fewer than two points are ignored.
func (p *Plotter) Add(tr Trace) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(tr.Coords) < 2 {
		return
	}
	p.traces = append(p.traces, tr)
}

// TraceCount returns the number of recorded traces.
func (p *Plotter) TraceCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.traces)
}

// OutputDir returns the directory plots are written to.
func (p *Plotter) OutputDir() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outputDir
}

// GeneratePlots renders plan.png and section.png for the recorded traces.
// Returns the number of files written.
func (p *Plotter) GeneratePlots() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.traces) == 0 {
		return 0, nil
	}

	// Sort by hole ID for a stable legend across runs.
	traces := append([]Trace(nil), p.traces...)
	sort.Slice(traces, func(a, b int) bool { return traces[a].HoleID < traces[b].HoleID })

	colors := generateColors(len(traces))

	pPlan := plot.New()
	pPlan.Title.Text = "Plan View"
	pPlan.X.Label.Text = "Easting (m)"
	pPlan.Y.Label.Text = "Northing (m)"

	pSection := plot.New()
	pSection.Title.Text = "Section View"
	pSection.X.Label.Text = "Horizontal Distance from Collar (m)"
	pSection.Y.Label.Text = "Elevation (m)"

	for i, tr := range traces {
		planPts := make(plotter.XYs, len(tr.Coords))
		sectionPts := make(plotter.XYs, len(tr.Coords))
		collar := tr.Coords[0]
		for j, c := range tr.Coords {
			planPts[j] = plotter.XY{X: c.X, Y: c.Y}
			sectionPts[j] = plotter.XY{
				X: math.Hypot(c.X-collar.X, c.Y-collar.Y),
				Y: c.Z,
			}
		}

		planLine, err := plotter.NewLine(planPts)
		if err != nil {
			return 0, err
		}
		planLine.Color = colors[i]
		planLine.Width = vg.Points(1)
		pPlan.Add(planLine)
		pPlan.Legend.Add(legendLabel(tr), planLine)

		sectionLine, err := plotter.NewLine(sectionPts)
		if err != nil {
			return 0, err
		}
		sectionLine.Color = colors[i]
		sectionLine.Width = vg.Points(1)
		pSection.Add(sectionLine)
		pSection.Legend.Add(legendLabel(tr), sectionLine)
	}

	pPlan.Legend.Top = true
	pPlan.Legend.Left = false
	pPlan.Legend.XOffs = -10
	pPlan.Legend.YOffs = -10

	pSection.Legend.Top = true
	pSection.Legend.Left = false
	pSection.Legend.XOffs = -10
	pSection.Legend.YOffs = -10

	planFile := filepath.Join(p.outputDir, "plan.png")
	if err := pPlan.Save(10*vg.Inch, 10*vg.Inch, planFile); err != nil {
		return 0, fmt.Errorf("save plan plot: %w", err)
	}

	sectionFile := filepath.Join(p.outputDir, "section.png")
	if err := pSection.Save(14*vg.Inch, 8*vg.Inch, sectionFile); err != nil {
		return 1, fmt.Errorf("save section plot: %w", err)
	}

	return 2, nil
}

// legendLabel names a trace in the legend, appending the end-of-hole depth
// when the trace carries aligned depths.
func legendLabel(tr Trace) string {
	if len(tr.Depths) > 0 && len(tr.Depths) == len(tr.Coords) {
		return fmt.Sprintf("%s (EOH %.0f m)", tr.HoleID, tr.Depths[len(tr.Depths)-1])
	}
	return tr.HoleID
}

// generateColors creates a palette of distinct colors for hole traces
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// FormatTimestamp generates a timestamp string for directory naming.
func FormatTimestamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// MakePlotOutputDir builds a timestamped output directory under baseDir,
// named after the source file when one is given.
func MakePlotOutputDir(baseDir, sourceFile string) string {
	ts := FormatTimestamp(time.Now())
	if sourceFile != "" {
		base := filepath.Base(sourceFile)
		ext := filepath.Ext(base)
		name := base[:len(base)-len(ext)]
		return filepath.Join(baseDir, name, ts)
	}
	return filepath.Join(baseDir, ts)
}
