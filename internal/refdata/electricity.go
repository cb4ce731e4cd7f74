package refdata

import (
	_ "embed"
	"encoding/csv"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// CountryUnitedStates is the fallback country for electricity factor lookups
// and the country the utilities calculator is currently pinned to.
const CountryUnitedStates = "United States"

//go:embed data/iea_electricity_factors.csv
var electricityFactorsCSV string

var (
	electricityFactors     map[string]float64
	electricityFactorsOnce sync.Once
)

// parseElectricityFactors parses the embedded IEA country table into the
// package-level lookup map. Rows with a missing country or a negative or
// unparseable factor are skipped.
func parseElectricityFactors() {
	electricityFactors = make(map[string]float64)

	reader := csv.NewReader(strings.NewReader(electricityFactorsCSV))

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return
	}

	for {
		row, err := reader.Read()
		if err != nil {
			break
		}
		if len(row) < 2 {
			continue
		}

		country := strings.TrimSpace(row[0])
		if country == "" {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil || value < 0 {
			continue
		}

		electricityFactors[country] = value
	}
}

// GetElectricityEmissionFactor returns the grid emission factor for a country
// in kg CO2e per kWh. Unknown countries fall back to the United States
// figure, matching the reference tool's permissive default.
func GetElectricityEmissionFactor(country string) float64 {
	electricityFactorsOnce.Do(parseElectricityFactors)

	if factor, ok := electricityFactors[country]; ok {
		return factor
	}
	return electricityFactors[CountryUnitedStates]
}

// ElectricityCountries returns the countries present in the grid factor
// table, sorted alphabetically.
func ElectricityCountries() []string {
	electricityFactorsOnce.Do(parseElectricityFactors)

	countries := make([]string, 0, len(electricityFactors))
	for country := range electricityFactors {
		countries = append(countries, country)
	}
	sort.Strings(countries)
	return countries
}
