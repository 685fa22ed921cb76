package regional

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/snakesafe/snakeid-go/internal/conf"
	"github.com/snakesafe/snakeid-go/internal/geocoding"
	"github.com/snakesafe/snakeid-go/internal/region"
	"github.com/spf13/cobra"
)

// Command creates the regional command listing species for a location.
func Command(settings *conf.Settings) *cobra.Command {
	var country string
	var state string
	var lat float64
	var lon float64

	cmd := &cobra.Command{
		Use:   "regional",
		Short: "List snake species for a region",
		Long: `List the snake species relevant for a region. Give --country directly,
or --lat and --lon to resolve the region through reverse geocoding.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if country == "" {
				if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
					return fmt.Errorf("either --country or both --lat and --lon are required")
				}

				geocoder, err := geocoding.NewClient(settings)
				if err != nil {
					return err
				}
				defer geocoder.Close()

				place, err := geocoder.ReverseGeocodeDetailed(cmd.Context(), lat, lon)
				if err != nil {
					return err
				}
				country = place.CountryCode
				state = place.State
				fmt.Fprintf(os.Stderr, "resolved to %s, %s\n", place.State, place.Country)
			}

			records := region.Species(country, state)
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(records)
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "Country code, e.g. us, in, au")
	cmd.Flags().StringVar(&state, "state", "", "State or province name")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude to resolve via reverse geocoding")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude to resolve via reverse geocoding")

	return cmd
}
