// api_test.go: shared test helpers for API v2 endpoint tests.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/snakesafe/snakeid-go/internal/conf"
	"github.com/snakesafe/snakeid-go/internal/geocoding"
	"github.com/snakesafe/snakeid-go/internal/snakenet"
	"github.com/snakesafe/snakeid-go/internal/species"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIdentifier returns a canned identification result.
type fakeIdentifier struct {
	result  *snakenet.Result
	err     error
	catalog []species.Record // records the catalog the handler passed in
}

func (f *fakeIdentifier) Identify(_ context.Context, _ []byte, catalog []species.Record) (*snakenet.Result, error) {
	f.catalog = catalog
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeGeocoder returns a canned place.
type fakeGeocoder struct {
	place *geocoding.Place
	err   error
	calls int
}

func (f *fakeGeocoder) ReverseGeocodeDetailed(_ context.Context, lat, lon float64) (*geocoding.Place, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	place := *f.place
	place.Latitude = lat
	place.Longitude = lon
	return &place, nil
}

// setupTestEnvironment creates an echo instance and controller with fakes.
func setupTestEnvironment(t *testing.T, identifier Identifier, geocoder Geocoder) (*echo.Echo, *Controller) {
	t.Helper()

	e := echo.New()
	settings := conf.GetDefaultSettings()

	controller, err := NewWithOptions(e, settings, identifier, geocoder, nil,
		log.New(io.Discard, "", 0), nil, false)
	require.NoError(t, err)
	t.Cleanup(controller.Shutdown)

	return e, controller
}

// imagePayload carries the PNG signature so content sniffing accepts it as an
// image; handler tests never decode it.
var imagePayload = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)

// newImageUploadRequest builds a multipart request with an image form file.
func newImageUploadRequest(t *testing.T, fields map[string]string, imageData []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if imageData != nil {
		part, err := writer.CreateFormFile("image", "snake.jpg")
		require.NoError(t, err)
		_, err = part.Write(imageData)
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v2/identify/image", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) *ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp
}

func TestHealthCheck(t *testing.T) {
	e, controller := setupTestEnvironment(t, &fakeIdentifier{}, &fakeGeocoder{})

	req := httptest.NewRequest(http.MethodGet, "/api/v2/health", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, controller.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
	assert.Contains(t, response, "uptime_seconds")
}

func TestNewErrorResponseIncludesCorrelationID(t *testing.T) {
	resp := NewErrorResponse(nil, "something failed", http.StatusInternalServerError)
	assert.Equal(t, "something failed", resp.Error)
	assert.Len(t, resp.CorrelationID, 8)
}
