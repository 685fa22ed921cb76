package geocoding

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/snakesafe/snakeid-go/internal/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nominatimSuccessResponse = `{
	"display_name": "Everglades National Park, Miami-Dade County, Florida, United States",
	"address": {
		"county": "Miami-Dade County",
		"state": "Florida",
		"country": "United States",
		"country_code": "us"
	}
}`

func newTestClient(t *testing.T) *Client {
	t.Helper()

	settings := conf.GetDefaultSettings()
	client, err := NewClient(settings)
	require.NoError(t, err)

	httpmock.ActivateNonDefault(client.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	return client
}

func TestReverseGeocodeReturnsDisplayName(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", `=~^https://nominatim\.openstreetmap\.org/reverse`,
		httpmock.NewStringResponder(http.StatusOK, nominatimSuccessResponse))

	loc, err := client.ReverseGeocode(context.Background(), 25.3, -80.9)
	require.NoError(t, err)
	assert.Equal(t, "Everglades National Park, Miami-Dade County, Florida, United States", loc.Address)
	assert.InDelta(t, 25.3, loc.Latitude, 1e-9)
	assert.InDelta(t, -80.9, loc.Longitude, 1e-9)
}

func TestReverseGeocodeDetailedExtractsAdministrativeLevels(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", `=~^https://nominatim\.openstreetmap\.org/reverse`,
		httpmock.NewStringResponder(http.StatusOK, nominatimSuccessResponse))

	place, err := client.ReverseGeocodeDetailed(context.Background(), 25.3, -80.9)
	require.NoError(t, err)
	assert.Equal(t, "United States", place.Country)
	assert.Equal(t, "us", place.CountryCode)
	assert.Equal(t, "Florida", place.State)
	// No city, town, or village present so locality falls back to the county.
	assert.Equal(t, "Miami-Dade County", place.Locality)
}

func TestReverseGeocodeLocalityPreference(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", `=~^https://nominatim\.openstreetmap\.org/reverse`,
		httpmock.NewStringResponder(http.StatusOK, `{
			"display_name": "Mumbai, Maharashtra, India",
			"address": {
				"city": "Mumbai",
				"town": "ignored",
				"state": "Maharashtra",
				"country": "India",
				"country_code": "in"
			}
		}`))

	place, err := client.ReverseGeocodeDetailed(context.Background(), 19.07, 72.87)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", place.Locality)
}

func TestReverseGeocodeSendsUserAgent(t *testing.T) {
	client := newTestClient(t)

	var gotUserAgent string
	httpmock.RegisterResponder("GET", `=~^https://nominatim\.openstreetmap\.org/reverse`,
		func(req *http.Request) (*http.Response, error) {
			gotUserAgent = req.Header.Get("User-Agent")
			return httpmock.NewStringResponse(http.StatusOK, nominatimSuccessResponse), nil
		})

	_, err := client.ReverseGeocode(context.Background(), 25.3, -80.9)
	require.NoError(t, err)
	assert.Equal(t, "SnakeID-Go/1.0", gotUserAgent)
}

func TestReverseGeocodeNoResultError(t *testing.T) {
	client := newTestClient(t)

	// Nominatim reports lookup failures with status 200 and an error field.
	httpmock.RegisterResponder("GET", `=~^https://nominatim\.openstreetmap\.org/reverse`,
		httpmock.NewStringResponder(http.StatusOK, `{"error": "Unable to geocode"}`))

	_, err := client.ReverseGeocode(context.Background(), 0, 0)
	assert.ErrorContains(t, err, "no address found")
}

func TestReverseGeocodeServerError(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", `=~^https://nominatim\.openstreetmap\.org/reverse`,
		httpmock.NewStringResponder(http.StatusServiceUnavailable, "overloaded"))

	_, err := client.ReverseGeocode(context.Background(), 25.3, -80.9)
	assert.ErrorContains(t, err, "status 503")
}

func TestReverseGeocodePassesCoordinatesThrough(t *testing.T) {
	client := newTestClient(t)

	// The client does no range validation of its own; the upstream service
	// is authoritative and answers nonsense coordinates with its error field.
	httpmock.RegisterResponder("GET", `=~^https://nominatim\.openstreetmap\.org/reverse`,
		httpmock.NewStringResponder(http.StatusOK, `{"error": "Unable to geocode"}`))

	_, err := client.ReverseGeocode(context.Background(), 91, -181)
	assert.ErrorContains(t, err, "no address found")
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestNewClientRequiresUserAgent(t *testing.T) {
	settings := conf.GetDefaultSettings()
	settings.Geocoding.UserAgent = ""

	_, err := NewClient(settings)
	assert.Error(t, err)
}
