// regional.go: location-based species listing endpoint
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"github.com/snakesafe/snakeid-go/internal/region"
	"github.com/snakesafe/snakeid-go/internal/species"
)

// initRegionalRoutes registers regional species endpoints
func (c *Controller) initRegionalRoutes() {
	c.Group.GET("/regional", c.GetRegionalSpecies)
}

// RegionalSpeciesResponse lists species relevant to a resolved location.
type RegionalSpeciesResponse struct {
	Country  string           `json:"country,omitempty"`
	State    string           `json:"state,omitempty"`
	Locality string           `json:"locality,omitempty"`
	Species  []species.Record `json:"species"`
	Count    int              `json:"count"`
}

// GetRegionalSpecies handles GET /api/v2/regional. An explicit country query
// parameter short-circuits geocoding; otherwise lat and lon are reverse
// geocoded to determine the region. Geocoded results are cached briefly to
// respect the upstream usage policy.
func (c *Controller) GetRegionalSpecies(ctx echo.Context) error {
	if country := ctx.QueryParam("country"); country != "" {
		records := region.Species(country, ctx.QueryParam("state"))
		return ctx.JSON(http.StatusOK, RegionalSpeciesResponse{
			Country: country,
			State:   ctx.QueryParam("state"),
			Species: records,
			Count:   len(records),
		})
	}

	latStr := ctx.QueryParam("lat")
	lonStr := ctx.QueryParam("lon")
	if latStr == "" || lonStr == "" {
		return c.HandleError(ctx, nil, "Either country or lat and lon are required", http.StatusBadRequest)
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid latitude", http.StatusBadRequest)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid longitude", http.StatusBadRequest)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return c.HandleError(ctx, nil, "Coordinates out of range", http.StatusBadRequest)
	}

	// Round the cache key so nearby requests share an entry.
	cacheKey := fmt.Sprintf("regional:%.2f:%.2f", lat, lon)
	if cached, found := c.regionalCache.Get(cacheKey); found {
		if response, ok := cached.(*RegionalSpeciesResponse); ok {
			c.Debug("regional cache hit for %s", cacheKey)
			return ctx.JSON(http.StatusOK, response)
		}
	}

	place, err := c.reverseGeocode(ctx, lat, lon)
	if err != nil {
		return c.HandleError(ctx, err, "Reverse geocoding failed", http.StatusBadGateway)
	}

	records := region.Species(place.CountryCode, place.State)
	response := &RegionalSpeciesResponse{
		Country:  place.Country,
		State:    place.State,
		Locality: place.Locality,
		Species:  records,
		Count:    len(records),
	}

	c.regionalCache.Set(cacheKey, response, cache.DefaultExpiration)

	return ctx.JSON(http.StatusOK, response)
}
