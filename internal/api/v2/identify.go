// identify.go: image and description identification endpoints
package api

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/snakesafe/snakeid-go/internal/describe"
	"github.com/snakesafe/snakeid-go/internal/errors"
	"github.com/snakesafe/snakeid-go/internal/geocoding"
	"github.com/snakesafe/snakeid-go/internal/notify"
	"github.com/snakesafe/snakeid-go/internal/region"
	"github.com/snakesafe/snakeid-go/internal/snakenet"
	"github.com/snakesafe/snakeid-go/internal/species"
)

// initIdentifyRoutes registers identification endpoints
func (c *Controller) initIdentifyRoutes() {
	c.Group.POST("/identify/image", c.IdentifyImage)
	c.Group.POST("/identify/description", c.IdentifyDescription)
}

// IdentificationResponse is the wire format for identification results. A
// null species means no snake was detected in the input.
type IdentificationResponse struct {
	Species     *species.Record       `json:"species"`
	Predictions []snakenet.Prediction `json:"predictions,omitempty"`
	Degraded    bool                  `json:"degraded"`
}

// DescriptionRequest is the payload for description-based identification.
type DescriptionRequest struct {
	Description string `json:"description"`
	Location    string `json:"location"`
}

// IdentifyImage handles POST /api/v2/identify/image. The image is sent as a
// multipart form file named "image"; optional lat and lon form fields narrow
// the candidate catalog to the corresponding region.
func (c *Controller) IdentifyImage(ctx echo.Context) error {
	file, err := ctx.FormFile("image")
	if err != nil {
		return c.HandleError(ctx, err, "Missing image file", http.StatusBadRequest)
	}

	src, err := file.Open()
	if err != nil {
		return c.HandleError(ctx, err, "Failed to open uploaded image", http.StatusBadRequest)
	}
	defer func() {
		_ = src.Close()
	}()

	imageData, err := io.ReadAll(src)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to read uploaded image", http.StatusBadRequest)
	}
	if len(imageData) == 0 {
		return c.HandleError(ctx, nil, "Uploaded image is empty", http.StatusBadRequest)
	}
	// Validation failure, not a classifier error: a non-image payload must
	// never reach the matcher, where a decode failure would be treated as a
	// degraded classification.
	if contentType := http.DetectContentType(imageData); !strings.HasPrefix(contentType, "image/") {
		return c.HandleError(ctx, nil, "Uploaded file is not an image", http.StatusBadRequest)
	}

	catalog, err := c.candidateCatalog(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid coordinates", http.StatusBadRequest)
	}

	start := time.Now()
	result, err := c.Identifier.Identify(ctx.Request().Context(), imageData, catalog)
	if err != nil {
		if c.metrics != nil && c.metrics.SnakeNet != nil {
			c.metrics.SnakeNet.IncrementPredictionErrors()
		}
		return c.HandleError(ctx, err, "Image identification failed", http.StatusInternalServerError)
	}
	if c.metrics != nil && c.metrics.SnakeNet != nil {
		c.metrics.SnakeNet.ObservePredictionDuration(time.Since(start).Seconds())
	}

	c.recordIdentification(ctx, "image", result)

	return ctx.JSON(http.StatusOK, IdentificationResponse{
		Species:     result.Record,
		Predictions: result.Predictions,
		Degraded:    result.Degraded,
	})
}

// IdentifyDescription handles POST /api/v2/identify/description.
func (c *Controller) IdentifyDescription(ctx echo.Context) error {
	var req DescriptionRequest
	if err := ctx.Bind(&req); err != nil {
		return c.HandleError(ctx, err, "Invalid request body", http.StatusBadRequest)
	}

	rec, err := describe.Match(req.Description, req.Location)
	if err != nil {
		var enhanced *errors.EnhancedError
		if errors.As(err, &enhanced) && enhanced.Category == errors.CategoryValidation {
			return c.HandleError(ctx, err, "Description and location are required", http.StatusBadRequest)
		}
		return c.HandleError(ctx, err, "Description identification failed", http.StatusInternalServerError)
	}

	c.recordIdentification(ctx, "description", &snakenet.Result{Record: rec})

	return ctx.JSON(http.StatusOK, IdentificationResponse{Species: rec})
}

// candidateCatalog selects the catalog subset for optional lat/lon form
// fields. Without coordinates the full catalog is used. Geocoding failures
// degrade to the full catalog rather than failing the identification.
func (c *Controller) candidateCatalog(ctx echo.Context) ([]species.Record, error) {
	latStr := ctx.FormValue("lat")
	lonStr := ctx.FormValue("lon")
	if latStr == "" || lonStr == "" {
		return species.Catalog(), nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, err
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, err
	}

	place, err := c.reverseGeocode(ctx, lat, lon)
	if err != nil {
		c.Debug("geocoding failed for identify request, using full catalog: %v", err)
		return species.Catalog(), nil
	}
	return region.Species(place.CountryCode, place.State), nil
}

// reverseGeocode wraps the geocoder with request metrics.
func (c *Controller) reverseGeocode(ctx echo.Context, lat, lon float64) (*geocoding.Place, error) {
	start := time.Now()
	place, err := c.Geocoder.ReverseGeocodeDetailed(ctx.Request().Context(), lat, lon)

	if c.metrics != nil && c.metrics.Geocoding != nil {
		c.metrics.Geocoding.IncrementRequests()
		c.metrics.Geocoding.ObserveRequestDuration(time.Since(start).Seconds())
		if err != nil {
			c.metrics.Geocoding.IncrementErrors()
		}
	}
	return place, err
}

// recordIdentification updates metrics and publishes the identification event.
func (c *Controller) recordIdentification(ctx echo.Context, source string, result *snakenet.Result) {
	if c.metrics != nil && c.metrics.SnakeNet != nil {
		switch {
		case result.Record == nil:
			c.metrics.SnakeNet.IncrementNoMatch()
		case result.Degraded:
			c.metrics.SnakeNet.IncrementFallback()
		default:
			c.metrics.SnakeNet.RecordIdentification(result.Record.Name)
		}
	}

	if c.Publisher != nil && result.Record != nil {
		event := notify.NewIdentificationEvent(source, result.Record, result.Degraded)
		if err := c.Publisher.PublishIdentification(ctx.Request().Context(), &event); err != nil {
			c.Debug("failed to publish identification event: %v", err)
		}
	}
}
