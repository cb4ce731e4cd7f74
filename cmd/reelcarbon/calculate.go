package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reelcarbon/reelcarbon/internal/calc"
	"github.com/reelcarbon/reelcarbon/internal/engine"
)

func newCalculateCmd() *cobra.Command {
	var (
		module string
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate emissions for a module's entries",
		Long: "Read a JSON array of entries for one module, recompute results and totals, " +
			"and write the full report to stdout.",
		Example: `  reelcarbon calculate --module road_vehicles --input entries.json
  reelcarbon calculate --module hotels --input stays.json --output yaml`,
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("reading entries: %w", err)
			}

			report, err := runModule(module, data)
			if err != nil {
				return err
			}

			return writeReport(report, output)
		},
	}

	cmd.Flags().StringVar(&module, "module", "", "module to calculate (road_vehicles, air_travel, rail_travel, transport, utilities, fuel, ev_charging, hotels, commercial_travel, charter_flights)")
	cmd.Flags().StringVar(&input, "input", "", "path to a JSON array of entries")
	cmd.Flags().StringVar(&output, "output", "json", "output format: json or yaml")
	_ = cmd.MarkFlagRequired("module")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// runModule decodes the entry array for the named module and recomputes it.
func runModule(module string, data []byte) (any, error) {
	eng := engine.New(logger)

	switch module {
	case engine.ModuleRoadVehicles:
		var entries []calc.RoadVehicleEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decoding %s entries: %w", module, err)
		}
		return eng.RecalculateRoadVehicles(entries), nil
	case engine.ModuleAirTravel:
		var entries []calc.AirTravelEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decoding %s entries: %w", module, err)
		}
		return eng.RecalculateAirTravel(entries), nil
	case engine.ModuleRailTravel:
		var entries []calc.RailTravelEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decoding %s entries: %w", module, err)
		}
		return eng.RecalculateRailTravel(entries), nil
	case engine.ModuleUtilities:
		var entries []calc.UtilitiesEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decoding %s entries: %w", module, err)
		}
		return eng.RecalculateUtilities(entries), nil
	case engine.ModuleFuel:
		var entries []calc.FuelEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decoding %s entries: %w", module, err)
		}
		return eng.RecalculateFuel(entries), nil
	case engine.ModuleEVCharging:
		var entries []calc.EVChargingEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decoding %s entries: %w", module, err)
		}
		return eng.RecalculateEVCharging(entries), nil
	case engine.ModuleHotels:
		var entries []calc.HotelsEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decoding %s entries: %w", module, err)
		}
		return eng.RecalculateHotels(entries), nil
	case engine.ModuleCommercialTravel:
		var entries []calc.CommercialTravelEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decoding %s entries: %w", module, err)
		}
		return eng.RecalculateCommercialTravel(entries), nil
	case engine.ModuleCharterFlights:
		var entries []calc.CharterFlightsEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decoding %s entries: %w", module, err)
		}
		return eng.RecalculateCharterFlights(entries), nil
	case engine.ModuleTransport:
		// Transport takes an object with the three per-mode entry arrays
		// rather than a single array.
		var in engine.TransportInput
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("decoding %s entries: %w", module, err)
		}
		return eng.RecalculateTransport(in), nil
	default:
		return nil, fmt.Errorf("unknown module %q", module)
	}
}

// writeReport marshals a report to stdout in the requested format.
func writeReport(report any, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
