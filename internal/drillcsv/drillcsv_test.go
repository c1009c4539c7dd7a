package drillcsv

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/redrock-data/drillpath/internal/desurvey"
	"github.com/redrock-data/drillpath/internal/units"
)

func TestReadCollars(t *testing.T) {
	in := `hole_id,x,y,z,total_depth
DDH-001,5000.0,8000.0,420.5,150.0
DDH-002,5050.0,7990.0,418.2,200.0
`
	got, err := ReadCollars(strings.NewReader(in), units.Meters)
	if err != nil {
		t.Fatalf("ReadCollars() error = %v", err)
	}
	want := []CollarRecord{
		{HoleID: "DDH-001", Collar: desurvey.Collar{X: 5000, Y: 8000, Z: 420.5, TotalDepth: 150}},
		{HoleID: "DDH-002", Collar: desurvey.Collar{X: 5050, Y: 7990, Z: 418.2, TotalDepth: 200}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadCollars() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCollarsConvertsFeet(t *testing.T) {
	in := `hole_id,x,y,z,total_depth
DDH-001,100,0,0,100
`
	got, err := ReadCollars(strings.NewReader(in), units.Feet)
	if err != nil {
		t.Fatalf("ReadCollars() error = %v", err)
	}
	if math.Abs(got[0].Collar.X-30.48) > 1e-9 || math.Abs(got[0].Collar.TotalDepth-30.48) > 1e-9 {
		t.Errorf("collar = %+v, want 100 ft converted to 30.48 m", got[0].Collar)
	}
}

func TestReadCollarsColumnOrderIsFree(t *testing.T) {
	in := `total_depth,hole_id,z,y,x,comment
150,DDH-001,420.5,8000,5000,first hole
`
	got, err := ReadCollars(strings.NewReader(in), units.Meters)
	if err != nil {
		t.Fatalf("ReadCollars() error = %v", err)
	}
	want := []CollarRecord{
		{HoleID: "DDH-001", Collar: desurvey.Collar{X: 5000, Y: 8000, Z: 420.5, TotalDepth: 150}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadCollars() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCollarsErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"missing column", "hole_id,x,y,z\nDDH-001,0,0,0\n"},
		{"empty hole id", "hole_id,x,y,z,total_depth\n,0,0,0,100\n"},
		{"bad number", "hole_id,x,y,z,total_depth\nDDH-001,abc,0,0,100\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadCollars(strings.NewReader(tc.in), units.Meters); err == nil {
				t.Error("ReadCollars() error = nil, want error")
			}
		})
	}
	if _, err := ReadCollars(strings.NewReader("hole_id,x,y,z,total_depth\n"), "yards"); err == nil {
		t.Error("ReadCollars(bad units) error = nil, want error")
	}
}

func TestReadSurveys(t *testing.T) {
	in := `hole_id,azimuth_deg,dip_deg,depth
DDH-001,45.0,-60.0,30.0
DDH-001,46.5,-59.0,60.0
DDH-002,0.0,-90.0,50.0
`
	got, err := ReadSurveys(strings.NewReader(in), units.Meters)
	if err != nil {
		t.Fatalf("ReadSurveys() error = %v", err)
	}
	want := map[string][]desurvey.Station{
		"DDH-001": {
			{Azimuth: 45, Dip: -60, Depth: 30},
			{Azimuth: 46.5, Dip: -59, Depth: 60},
		},
		"DDH-002": {
			{Azimuth: 0, Dip: -90, Depth: 50},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadSurveys() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadSurveysConvertsDepthOnly(t *testing.T) {
	in := `hole_id,azimuth_deg,dip_deg,depth
DDH-001,45.0,-60.0,100.0
`
	got, err := ReadSurveys(strings.NewReader(in), units.Feet)
	if err != nil {
		t.Fatalf("ReadSurveys() error = %v", err)
	}
	st := got["DDH-001"][0]
	if st.Azimuth != 45 || st.Dip != -60 {
		t.Errorf("angles = %v/%v, want unconverted 45/-60", st.Azimuth, st.Dip)
	}
	if math.Abs(st.Depth-30.48) > 1e-9 {
		t.Errorf("depth = %v, want 30.48", st.Depth)
	}
}

func TestReadIntervals(t *testing.T) {
	in := `hole_id,depth_from,depth_to,value
DDH-001,10.0,12.0,1.53
DDH-001,12.0,14.0,
DDH-002,40.0,50.0,0.8
`
	got, err := ReadIntervals(strings.NewReader(in), units.Meters)
	if err != nil {
		t.Fatalf("ReadIntervals() error = %v", err)
	}
	want := map[string][]IntervalRecord{
		"DDH-001": {
			{HoleID: "DDH-001", Interval: desurvey.SampleInterval{DepthFrom: 10, DepthTo: 12}, Value: 1.53, HasValue: true},
			{HoleID: "DDH-001", Interval: desurvey.SampleInterval{DepthFrom: 12, DepthTo: 14}},
		},
		"DDH-002": {
			{HoleID: "DDH-002", Interval: desurvey.SampleInterval{DepthFrom: 40, DepthTo: 50}, Value: 0.8, HasValue: true},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadIntervals() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadIntervalsWithoutValueColumn(t *testing.T) {
	in := `hole_id,depth_from,depth_to
DDH-001,10.0,12.0
`
	got, err := ReadIntervals(strings.NewReader(in), units.Meters)
	if err != nil {
		t.Fatalf("ReadIntervals() error = %v", err)
	}
	if got["DDH-001"][0].HasValue {
		t.Error("HasValue = true, want false without a value column")
	}
}

func TestReadIntervalsRejectsInvertedRange(t *testing.T) {
	in := `hole_id,depth_from,depth_to
DDH-001,12.0,10.0
`
	if _, err := ReadIntervals(strings.NewReader(in), units.Meters); err == nil {
		t.Error("ReadIntervals(inverted) error = nil, want error")
	}
}
