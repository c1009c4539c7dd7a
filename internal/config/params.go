package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the path to the canonical parameter defaults file.
// This is the single source of truth for all default processing values.
const DefaultConfigPath = "config/drillpath.defaults.json"

// Params represents the root configuration for desurvey and interpolation
// parameters. All fields are pointers so a partial JSON file overrides only
// what it names; the Get* methods supply defaults for the rest.
type Params struct {
	// Desurvey params
	Method         *string  `json:"method,omitempty"` // "minimum_curvature", "tangential", ...
	TraceSegments  *int     `json:"trace_segments,omitempty"`
	PointsPerMeter *float64 `json:"points_per_meter,omitempty"`
	Units          *string  `json:"units,omitempty"` // "m" or "ft" for input files

	// Grade field params
	RBFKernel            *string  `json:"rbf_kernel,omitempty"`
	RBFEpsilon           *float64 `json:"rbf_epsilon,omitempty"`
	RBFSmoothing         *float64 `json:"rbf_smoothing,omitempty"`
	GridResolution       *int     `json:"grid_resolution,omitempty"`
	GridPadding          *float64 `json:"grid_padding,omitempty"`
	DecayFunction        *string  `json:"decay_function,omitempty"`
	MaxInfluenceDistance *float64 `json:"max_influence_distance,omitempty"` // 0 = derive from data spacing
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyParams returns a Params with all fields set to nil.
// Use LoadParams to load actual values from a defaults file.
func EmptyParams() *Params {
	return &Params{}
}

// LoadParams loads a Params from a JSON file.
// The file is validated to ensure it has a .json extension and is under the max file size.
// Fields omitted from the JSON file retain their default values, so
// partial configs are safe.
func LoadParams(path string) (*Params, error) {
	// Validate the config file path.
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse JSON into empty config. The Get* methods provide fallback
	// defaults for any fields not specified in the JSON.
	cfg := EmptyParams()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *Params) Validate() error {
	if c.TraceSegments != nil {
		if *c.TraceSegments < 2 {
			return fmt.Errorf("trace_segments must be at least 2, got %d", *c.TraceSegments)
		}
	}

	if c.PointsPerMeter != nil {
		if *c.PointsPerMeter <= 0 {
			return fmt.Errorf("points_per_meter must be positive, got %f", *c.PointsPerMeter)
		}
	}

	if c.RBFSmoothing != nil {
		if *c.RBFSmoothing < 0 {
			return fmt.Errorf("rbf_smoothing must be non-negative, got %f", *c.RBFSmoothing)
		}
	}

	if c.GridResolution != nil {
		if *c.GridResolution < 2 {
			return fmt.Errorf("grid_resolution must be at least 2, got %d", *c.GridResolution)
		}
	}

	if c.GridPadding != nil {
		if *c.GridPadding < 0 {
			return fmt.Errorf("grid_padding must be non-negative, got %f", *c.GridPadding)
		}
	}

	if c.MaxInfluenceDistance != nil {
		if *c.MaxInfluenceDistance < 0 {
			return fmt.Errorf("max_influence_distance must be non-negative, got %f", *c.MaxInfluenceDistance)
		}
	}

	return nil
}

// GetMethod returns the method selector or the default.
func (c *Params) GetMethod() string {
	if c.Method == nil || *c.Method == "" {
		return "minimum_curvature" // default
	}
	return *c.Method
}

// GetTraceSegments returns the trace_segments value or the default.
func (c *Params) GetTraceSegments() int {
	if c.TraceSegments == nil {
		return 100 // default
	}
	return *c.TraceSegments
}

// GetPointsPerMeter returns the points_per_meter value or the default.
func (c *Params) GetPointsPerMeter() float64 {
	if c.PointsPerMeter == nil {
		return 10.0 // default
	}
	return *c.PointsPerMeter
}

// GetUnits returns the units value or the default.
func (c *Params) GetUnits() string {
	if c.Units == nil || *c.Units == "" {
		return "m" // default
	}
	return *c.Units
}

// GetRBFKernel returns the rbf_kernel value or the default.
func (c *Params) GetRBFKernel() string {
	if c.RBFKernel == nil || *c.RBFKernel == "" {
		return "thin_plate_spline" // default
	}
	return *c.RBFKernel
}

// GetRBFEpsilon returns the rbf_epsilon value or the default.
func (c *Params) GetRBFEpsilon() float64 {
	if c.RBFEpsilon == nil {
		return 1.0
	}
	return *c.RBFEpsilon
}

// GetRBFSmoothing returns the rbf_smoothing value or the default.
func (c *Params) GetRBFSmoothing() float64 {
	if c.RBFSmoothing == nil {
		return 0
	}
	return *c.RBFSmoothing
}

// GetGridResolution returns the grid_resolution value or the default.
func (c *Params) GetGridResolution() int {
	if c.GridResolution == nil {
		return 30
	}
	return *c.GridResolution
}

// GetGridPadding returns the grid_padding value or the default.
func (c *Params) GetGridPadding() float64 {
	if c.GridPadding == nil {
		return 0.1
	}
	return *c.GridPadding
}

// GetDecayFunction returns the decay_function value or the default.
func (c *Params) GetDecayFunction() string {
	if c.DecayFunction == nil || *c.DecayFunction == "" {
		return "none"
	}
	return *c.DecayFunction
}

// GetMaxInfluenceDistance returns the max_influence_distance value or the
// default. Zero means the caller should derive a distance from the sample
// spacing.
func (c *Params) GetMaxInfluenceDistance() float64 {
	if c.MaxInfluenceDistance == nil {
		return 0
	}
	return *c.MaxInfluenceDistance
}
