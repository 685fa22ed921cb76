// species.go: species catalog endpoints
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/snakesafe/snakeid-go/internal/species"
)

// initSpeciesRoutes registers species catalog endpoints
func (c *Controller) initSpeciesRoutes() {
	c.Group.GET("/species", c.GetSpecies)
	c.Group.GET("/species/:name", c.GetSpeciesByName)
}

// SpeciesListResponse wraps the catalog listing.
type SpeciesListResponse struct {
	Species []species.Record `json:"species"`
	Count   int              `json:"count"`
}

// GetSpecies handles GET /api/v2/species and returns the full catalog.
func (c *Controller) GetSpecies(ctx echo.Context) error {
	catalog := species.Catalog()
	return ctx.JSON(http.StatusOK, SpeciesListResponse{
		Species: catalog,
		Count:   len(catalog),
	})
}

// GetSpeciesByName handles GET /api/v2/species/:name. The name matches the
// display name or the scientific name, case-insensitively.
func (c *Controller) GetSpeciesByName(ctx echo.Context) error {
	name := ctx.Param("name")
	if name == "" {
		return c.HandleError(ctx, nil, "Species name is required", http.StatusBadRequest)
	}

	rec := species.ByName(name)
	if rec == nil {
		rec = species.ByScientificName(name)
	}
	if rec == nil {
		return c.HandleError(ctx, nil, "Species not found", http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, rec)
}
