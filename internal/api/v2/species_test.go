// species_test.go: tests for species catalog endpoints.
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/snakesafe/snakeid-go/internal/species"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSpeciesReturnsFullCatalog(t *testing.T) {
	e, controller := setupTestEnvironment(t, &fakeIdentifier{}, &fakeGeocoder{})

	req := httptest.NewRequest(http.MethodGet, "/api/v2/species", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, controller.GetSpecies(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response SpeciesListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, len(species.Catalog()), response.Count)
	assert.Equal(t, species.Catalog()[0].Name, response.Species[0].Name)
}

func TestGetSpeciesByName(t *testing.T) {
	e, controller := setupTestEnvironment(t, &fakeIdentifier{}, &fakeGeocoder{})

	tests := []struct {
		name  string
		param string
		want  string
	}{
		{"display name", "Copperhead", "Copperhead"},
		{"case-insensitive", "king cobra", "King Cobra"},
		{"scientific name", "Micrurus fulvius", "Eastern Coral Snake"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v2/species/"+tt.param, http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/api/v2/species/:name")
			c.SetParamNames("name")
			c.SetParamValues(tt.param)

			require.NoError(t, controller.GetSpeciesByName(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var rec2 species.Record
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rec2))
			assert.Equal(t, tt.want, rec2.Name)
		})
	}
}

func TestGetSpeciesByNameNotFound(t *testing.T) {
	e, controller := setupTestEnvironment(t, &fakeIdentifier{}, &fakeGeocoder{})

	req := httptest.NewRequest(http.MethodGet, "/api/v2/species/Basilisk", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v2/species/:name")
	c.SetParamNames("name")
	c.SetParamValues("Basilisk")

	require.NoError(t, controller.GetSpeciesByName(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
