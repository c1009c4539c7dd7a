package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmptyParamsDefaults(t *testing.T) {
	cfg := EmptyParams()

	if cfg.GetMethod() != "minimum_curvature" {
		t.Errorf("GetMethod() = %q, want minimum_curvature", cfg.GetMethod())
	}
	if cfg.GetTraceSegments() != 100 {
		t.Errorf("GetTraceSegments() = %d, want 100", cfg.GetTraceSegments())
	}
	if cfg.GetPointsPerMeter() != 10.0 {
		t.Errorf("GetPointsPerMeter() = %f, want 10.0", cfg.GetPointsPerMeter())
	}
	if cfg.GetUnits() != "m" {
		t.Errorf("GetUnits() = %q, want m", cfg.GetUnits())
	}
	if cfg.GetRBFKernel() != "thin_plate_spline" {
		t.Errorf("GetRBFKernel() = %q, want thin_plate_spline", cfg.GetRBFKernel())
	}
	if cfg.GetRBFEpsilon() != 1.0 {
		t.Errorf("GetRBFEpsilon() = %f, want 1.0", cfg.GetRBFEpsilon())
	}
	if cfg.GetGridResolution() != 30 {
		t.Errorf("GetGridResolution() = %d, want 30", cfg.GetGridResolution())
	}
	if cfg.GetGridPadding() != 0.1 {
		t.Errorf("GetGridPadding() = %f, want 0.1", cfg.GetGridPadding())
	}
	if cfg.GetDecayFunction() != "none" {
		t.Errorf("GetDecayFunction() = %q, want none", cfg.GetDecayFunction())
	}
	if cfg.GetMaxInfluenceDistance() != 0 {
		t.Errorf("GetMaxInfluenceDistance() = %f, want 0", cfg.GetMaxInfluenceDistance())
	}
}

func TestLoadParams(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.json")

	// Partial config: unnamed fields keep their defaults.
	testJSON := `{
  "method": "average_angle",
  "trace_segments": 250,
  "units": "ft",
  "rbf_kernel": "gaussian",
  "rbf_epsilon": 0.05,
  "decay_function": "smoothstep"
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadParams(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Method == nil || *cfg.Method != "average_angle" {
		t.Errorf("Expected Method 'average_angle', got %v", cfg.Method)
	}
	if cfg.GetTraceSegments() != 250 {
		t.Errorf("GetTraceSegments() = %d, want 250", cfg.GetTraceSegments())
	}
	if cfg.GetUnits() != "ft" {
		t.Errorf("GetUnits() = %q, want ft", cfg.GetUnits())
	}
	if cfg.GetRBFEpsilon() != 0.05 {
		t.Errorf("GetRBFEpsilon() = %f, want 0.05", cfg.GetRBFEpsilon())
	}
	// Defaults for omitted fields.
	if cfg.GetPointsPerMeter() != 10.0 {
		t.Errorf("GetPointsPerMeter() = %f, want default 10.0", cfg.GetPointsPerMeter())
	}
	if cfg.GetGridResolution() != 30 {
		t.Errorf("GetGridResolution() = %d, want default 30", cfg.GetGridResolution())
	}
}

func TestLoadParamsRejectsBadFiles(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadParams(filepath.Join(tmpDir, "config.yaml")); err == nil {
		t.Error("Expected error for non-json extension")
	}
	if _, err := LoadParams(filepath.Join(tmpDir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	badPath := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(badPath, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write bad config: %v", err)
	}
	if _, err := LoadParams(badPath); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Params
		wantErr bool
	}{
		{"empty is valid", Params{}, false},
		{"valid values", Params{
			Method:         ptrString("tangential"),
			TraceSegments:  ptrInt(50),
			PointsPerMeter: ptrFloat64(5),
			GridResolution: ptrInt(10),
		}, false},
		{"trace_segments too small", Params{TraceSegments: ptrInt(1)}, true},
		{"negative points_per_meter", Params{PointsPerMeter: ptrFloat64(-1)}, true},
		{"negative smoothing", Params{RBFSmoothing: ptrFloat64(-0.5)}, true},
		{"grid_resolution too small", Params{GridResolution: ptrInt(1)}, true},
		{"negative padding", Params{GridPadding: ptrFloat64(-0.1)}, true},
		{"negative influence distance", Params{MaxInfluenceDistance: ptrFloat64(-2)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
