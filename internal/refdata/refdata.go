// Package refdata holds the static emission-factor tables, unit-conversion
// constants, and energy-intensity profiles used by every calculator.
//
// All values are a versioned snapshot of published figures. They are audited
// constants, not tunable parameters: swapping in a new year's factors must be
// a data-only change, never a calculator change.
package refdata

const (
	// Version identifies the factor snapshot echoed in calculation metadata.
	Version = "4.2.9"

	// SourceDEFRA is the citation for fuel, transport, and heating factors.
	SourceDEFRA = "DEFRA 2023 Greenhouse Gas Reporting Conversion Factors"

	// SourceIEA is the citation for country electricity grid factors.
	SourceIEA = "IEA 2023 Emission Factors"
)

// EmissionFactor is one published conversion constant: kg CO2e emitted per
// physical unit of activity.
type EmissionFactor struct {
	ID          string
	Category    string
	Subcategory string
	Unit        string
	Value       float64 // kg CO2e per Unit, always >= 0
	Source      string
	Year        int
	Notes       string
}
