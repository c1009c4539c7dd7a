// Package units provides shared constants and validation for length units
package units

// Unit constants
const (
	Meters = "m"
	Feet   = "ft"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{Meters, Feet}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "m, ft"
}

// ToMeters converts a length in the given units to metres.
// All internal computation happens in metres.
func ToMeters(length float64, sourceUnits string) float64 {
	switch sourceUnits {
	case Feet:
		return length * 0.3048 // ft to m
	case Meters:
		return length // no conversion needed
	default:
		return length // default to metres if unknown unit
	}
}

// FromMeters converts a length in metres to the target units.
func FromMeters(length float64, targetUnits string) float64 {
	switch targetUnits {
	case Feet:
		return length / 0.3048 // m to ft
	case Meters:
		return length
	default:
		return length
	}
}
