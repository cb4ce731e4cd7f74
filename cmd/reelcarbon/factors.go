package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reelcarbon/reelcarbon/internal/refdata"
)

// factorsDump is the serializable view of the reference-data snapshot.
type factorsDump struct {
	Version string   `json:"version" yaml:"version"`
	Sources []string `json:"sources" yaml:"sources"`

	RoadFuel          map[string]float64 `json:"roadFuelPerGallon" yaml:"roadFuelPerGallon"`
	TransportFlights  map[string]float64 `json:"transportFlightsPerPassengerMile" yaml:"transportFlightsPerPassengerMile"`
	CommercialFlights map[string]float64 `json:"commercialFlightsPerPassengerMile" yaml:"commercialFlightsPerPassengerMile"`
	Rail              map[string]float64 `json:"railPerPassengerMile" yaml:"railPerPassengerMile"`
	FuelPerGallon     map[string]float64 `json:"fuelPerGallon" yaml:"fuelPerGallon"`

	NaturalGasPerCubicFoot float64 `json:"naturalGasPerCubicFoot" yaml:"naturalGasPerCubicFoot"`
	FuelOilPerLiter        float64 `json:"fuelOilPerLiter" yaml:"fuelOilPerLiter"`
	FerryPerPassengerMile  float64 `json:"ferryPerPassengerMile" yaml:"ferryPerPassengerMile"`

	ElectricityCountries []string                        `json:"electricityCountries" yaml:"electricityCountries"`
	HotelRoomAnnualKWh   map[string]float64              `json:"hotelRoomAnnualKwh" yaml:"hotelRoomAnnualKwh"`
	Aircraft             map[string]refdata.AircraftData `json:"aircraft" yaml:"aircraft"`
}

func newFactorsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Dump the emission-factor snapshot with provenance",
		RunE: func(_ *cobra.Command, _ []string) error {
			dump := factorsDump{
				Version:                refdata.Version,
				Sources:                []string{refdata.SourceDEFRA, refdata.SourceIEA},
				RoadFuel:               refdata.RoadFuelFactors,
				TransportFlights:       refdata.TransportFlightFactors,
				CommercialFlights:      refdata.CommercialFlightFactors,
				Rail:                   refdata.RailFactors,
				FuelPerGallon:          refdata.FuelGallonFactors,
				NaturalGasPerCubicFoot: refdata.NaturalGasPerCubicFootFactor,
				FuelOilPerLiter:        refdata.FuelOilPerLiterFactor,
				FerryPerPassengerMile:  refdata.FerryFactor,
				ElectricityCountries:   refdata.ElectricityCountries(),
				HotelRoomAnnualKWh:     refdata.HotelRoomAnnualKWh,
				Aircraft:               refdata.AircraftProfiles,
			}

			switch output {
			case "json":
				data, err := json.MarshalIndent(dump, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
			case "yaml":
				data, err := yaml.Marshal(dump)
				if err != nil {
					return err
				}
				fmt.Print(string(data))
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "yaml", "output format: json or yaml")

	return cmd
}
