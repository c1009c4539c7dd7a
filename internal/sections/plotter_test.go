package sections

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/redrock-data/drillpath/internal/desurvey"
)

func traceFor(t *testing.T, holeID string, collar desurvey.Collar, stations []desurvey.Station) Trace {
	t.Helper()
	tr, err := desurvey.New(collar, stations)
	require.NoError(t, err)
	depths, coords, err := tr.Trace(50, desurvey.MinimumCurvature)
	require.NoError(t, err)
	return Trace{HoleID: holeID, Depths: depths, Coords: coords}
}

func TestGeneratePlotsWritesFiles(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPlotter(dir)
	require.NoError(t, err)

	p.Add(traceFor(t, "DDH-001", desurvey.Collar{TotalDepth: 100}, []desurvey.Station{
		{Azimuth: 0, Dip: -60, Depth: 100},
	}))
	p.Add(traceFor(t, "DDH-002", desurvey.Collar{X: 50, TotalDepth: 120}, []desurvey.Station{
		{Azimuth: 90, Dip: -45, Depth: 60},
		{Azimuth: 100, Dip: -50, Depth: 120},
	}))
	require.Equal(t, 2, p.TraceCount())

	n, err := p.GeneratePlots()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	for _, name := range []string{"plan.png", "section.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "missing %s", name)
		require.NotZero(t, info.Size(), "%s is empty", name)
	}
}

func TestGeneratePlotsWithoutTraces(t *testing.T) {
	p, err := NewPlotter(t.TempDir())
	require.NoError(t, err)
	n, err := p.GeneratePlots()
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestAddIgnoresDegenerateTraces(t *testing.T) {
	p, err := NewPlotter(t.TempDir())
	require.NoError(t, err)
	p.Add(Trace{HoleID: "short", Coords: []r3.Vec{{}}})
	require.Equal(t, 0, p.TraceCount())
}

func TestLegendLabelCarriesEndOfHoleDepth(t *testing.T) {
	tr := traceFor(t, "DDH-007", desurvey.Collar{TotalDepth: 120}, []desurvey.Station{
		{Azimuth: 45, Dip: -60, Depth: 120},
	})
	require.Equal(t, "DDH-007 (EOH 120 m)", legendLabel(tr))

	// Without aligned depths the label falls back to the bare hole ID.
	require.Equal(t, "DDH-008", legendLabel(Trace{HoleID: "DDH-008", Coords: tr.Coords}))
}

func TestMakePlotOutputDir(t *testing.T) {
	got := MakePlotOutputDir("plots", "data/site_a.csv")
	if filepath.Dir(filepath.Dir(got)) != "plots" || filepath.Base(filepath.Dir(got)) != "site_a" {
		t.Errorf("MakePlotOutputDir() = %q, want plots/site_a/<timestamp>", got)
	}
}
