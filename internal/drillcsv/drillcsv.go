// Package drillcsv reads collar, survey and interval tables from CSV files
// into the desurvey package's types, converting lengths to metres on the
// way in.
//
// Each reader expects a header row naming its columns; column order is
// free and extra columns are ignored.
package drillcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/redrock-data/drillpath/internal/desurvey"
	"github.com/redrock-data/drillpath/internal/units"
)

// CollarRecord is one row of a collar table.
type CollarRecord struct {
	HoleID string
	Collar desurvey.Collar
}

// IntervalRecord is one row of an interval table. Value is only meaningful
// when HasValue is set; lithology-style tables carry no value column.
type IntervalRecord struct {
	HoleID   string
	Interval desurvey.SampleInterval
	Value    float64
	HasValue bool
}

// header maps lower-cased column names to their index.
type header map[string]int

func readHeader(r *csv.Reader) (header, error) {
	row, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	h := make(header, len(row))
	for i, name := range row {
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return h, nil
}

func (h header) require(cols ...string) error {
	for _, c := range cols {
		if _, ok := h[c]; !ok {
			return fmt.Errorf("missing required column %q", c)
		}
	}
	return nil
}

func (h header) str(row []string, col string) string {
	return strings.TrimSpace(row[h[col]])
}

func (h header) float(row []string, col string) (float64, error) {
	v, err := strconv.ParseFloat(h.str(row, col), 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", col, err)
	}
	return v, nil
}

// ReadCollars parses a collar table with columns hole_id, x, y, z,
// total_depth. Coordinates and depths are converted from sourceUnits to
// metres.
func ReadCollars(r io.Reader, sourceUnits string) ([]CollarRecord, error) {
	if !units.IsValid(sourceUnits) {
		return nil, fmt.Errorf("drillcsv: invalid units %q (valid: %s)", sourceUnits, units.GetValidUnitsString())
	}
	cr := csv.NewReader(r)
	h, err := readHeader(cr)
	if err != nil {
		return nil, err
	}
	if err := h.require("hole_id", "x", "y", "z", "total_depth"); err != nil {
		return nil, fmt.Errorf("drillcsv: collars: %w", err)
	}

	var out []CollarRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("drillcsv: collars line %d: %w", line, err)
		}
		rec := CollarRecord{HoleID: h.str(row, "hole_id")}
		if rec.HoleID == "" {
			return nil, fmt.Errorf("drillcsv: collars line %d: empty hole_id", line)
		}
		fields := []struct {
			col string
			dst *float64
		}{
			{"x", &rec.Collar.X},
			{"y", &rec.Collar.Y},
			{"z", &rec.Collar.Z},
			{"total_depth", &rec.Collar.TotalDepth},
		}
		for _, f := range fields {
			v, err := h.float(row, f.col)
			if err != nil {
				return nil, fmt.Errorf("drillcsv: collars line %d: %w", line, err)
			}
			*f.dst = units.ToMeters(v, sourceUnits)
		}
		out = append(out, rec)
	}
	return out, nil
}

// ReadSurveys parses a survey table with columns hole_id, azimuth_deg,
// dip_deg, depth, grouped by hole in input order. Depths are converted
// from sourceUnits to metres; angles stay in degrees.
func ReadSurveys(r io.Reader, sourceUnits string) (map[string][]desurvey.Station, error) {
	if !units.IsValid(sourceUnits) {
		return nil, fmt.Errorf("drillcsv: invalid units %q (valid: %s)", sourceUnits, units.GetValidUnitsString())
	}
	cr := csv.NewReader(r)
	h, err := readHeader(cr)
	if err != nil {
		return nil, err
	}
	if err := h.require("hole_id", "azimuth_deg", "dip_deg", "depth"); err != nil {
		return nil, fmt.Errorf("drillcsv: surveys: %w", err)
	}

	out := make(map[string][]desurvey.Station)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("drillcsv: surveys line %d: %w", line, err)
		}
		holeID := h.str(row, "hole_id")
		if holeID == "" {
			return nil, fmt.Errorf("drillcsv: surveys line %d: empty hole_id", line)
		}
		az, err := h.float(row, "azimuth_deg")
		if err != nil {
			return nil, fmt.Errorf("drillcsv: surveys line %d: %w", line, err)
		}
		dip, err := h.float(row, "dip_deg")
		if err != nil {
			return nil, fmt.Errorf("drillcsv: surveys line %d: %w", line, err)
		}
		depth, err := h.float(row, "depth")
		if err != nil {
			return nil, fmt.Errorf("drillcsv: surveys line %d: %w", line, err)
		}
		out[holeID] = append(out[holeID], desurvey.Station{
			Azimuth: az,
			Dip:     dip,
			Depth:   units.ToMeters(depth, sourceUnits),
		})
	}
	return out, nil
}

// ReadIntervals parses an interval table with columns hole_id, depth_from,
// depth_to and an optional value column, grouped by hole in input order.
func ReadIntervals(r io.Reader, sourceUnits string) (map[string][]IntervalRecord, error) {
	if !units.IsValid(sourceUnits) {
		return nil, fmt.Errorf("drillcsv: invalid units %q (valid: %s)", sourceUnits, units.GetValidUnitsString())
	}
	cr := csv.NewReader(r)
	h, err := readHeader(cr)
	if err != nil {
		return nil, err
	}
	if err := h.require("hole_id", "depth_from", "depth_to"); err != nil {
		return nil, fmt.Errorf("drillcsv: intervals: %w", err)
	}
	_, hasValue := h["value"]

	out := make(map[string][]IntervalRecord)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("drillcsv: intervals line %d: %w", line, err)
		}
		rec := IntervalRecord{HoleID: h.str(row, "hole_id")}
		if rec.HoleID == "" {
			return nil, fmt.Errorf("drillcsv: intervals line %d: empty hole_id", line)
		}
		from, err := h.float(row, "depth_from")
		if err != nil {
			return nil, fmt.Errorf("drillcsv: intervals line %d: %w", line, err)
		}
		to, err := h.float(row, "depth_to")
		if err != nil {
			return nil, fmt.Errorf("drillcsv: intervals line %d: %w", line, err)
		}
		rec.Interval = desurvey.SampleInterval{
			DepthFrom: units.ToMeters(from, sourceUnits),
			DepthTo:   units.ToMeters(to, sourceUnits),
		}
		if rec.Interval.DepthTo <= rec.Interval.DepthFrom {
			return nil, fmt.Errorf("drillcsv: intervals line %d: depth_to %v <= depth_from %v",
				line, rec.Interval.DepthTo, rec.Interval.DepthFrom)
		}
		if hasValue {
			if s := h.str(row, "value"); s != "" {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return nil, fmt.Errorf("drillcsv: intervals line %d: column \"value\": %w", line, err)
				}
				rec.Value = v
				rec.HasValue = true
			}
		}
		out[rec.HoleID] = append(out[rec.HoleID], rec)
	}
	return out, nil
}
