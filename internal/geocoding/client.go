// Package geocoding resolves coordinates to addresses through the Nominatim
// reverse geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"time"

	"github.com/snakesafe/snakeid-go/internal/conf"
	"github.com/snakesafe/snakeid-go/internal/errors"
	"github.com/snakesafe/snakeid-go/internal/logging"
)

// Package-level logger specific to geocoding service
var (
	logger          *slog.Logger
	serviceLevelVar = new(slog.LevelVar)
	closeLogger     func() error
)

func init() {
	var err error
	logFilePath := filepath.Join("logs", "geocoding.log")
	serviceLevelVar.Set(slog.LevelDebug)

	logger, closeLogger, err = logging.NewFileLogger(logFilePath, "geocoding", serviceLevelVar)
	if err != nil {
		log.Printf("FATAL: Failed to initialize geocoding file logger at %s: %v. Service logging disabled.", logFilePath, err)
		fbHandler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: serviceLevelVar})
		logger = slog.New(fbHandler).With("service", "geocoding")
		closeLogger = func() error { return nil }
	}
}

// Client calls the Nominatim reverse geocoding endpoint. Requests are made
// one at a time by callers; the client itself holds no mutable state beyond
// the underlying http.Client, so it is safe for concurrent use.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	debug      bool
}

// NewClient creates a reverse geocoding client from settings. The User-Agent
// is mandatory, Nominatim's usage policy rejects anonymous clients.
func NewClient(settings *conf.Settings) (*Client, error) {
	if settings.Geocoding.UserAgent == "" {
		return nil, errors.Newf("geocoding User-Agent is required").
			Category(errors.CategoryConfiguration).
			Component("geocoding").
			Build()
	}

	endpoint := settings.Geocoding.Endpoint
	if endpoint == "" {
		endpoint = conf.GetDefaultSettings().Geocoding.Endpoint
	}
	timeout := settings.Geocoding.Timeout
	if timeout <= 0 {
		timeout = conf.GetDefaultSettings().Geocoding.Timeout
	}

	client := &Client{
		endpoint:  endpoint,
		userAgent: settings.Geocoding.UserAgent,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		debug: settings.Geocoding.Debug || settings.Debug,
	}

	logger.Info("geocoding client initialized",
		"endpoint", endpoint,
		"timeout_s", timeout,
		"debug", client.debug)

	return client, nil
}

// Close releases client resources.
func (c *Client) Close() {
	if closeLogger != nil {
		if err := closeLogger(); err != nil {
			log.Printf("Error closing geocoding logger: %v", err)
		}
	}
}

// ReverseGeocode resolves coordinates to a single display address.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (*Location, error) {
	resp, err := c.lookup(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	return &Location{
		Address:   resp.DisplayName,
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

// ReverseGeocodeDetailed resolves coordinates to the administrative levels
// used for regional species selection.
func (c *Client) ReverseGeocodeDetailed(ctx context.Context, lat, lon float64) (*Place, error) {
	resp, err := c.lookup(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	return &Place{
		Country:     resp.Address.Country,
		CountryCode: resp.Address.CountryCode,
		State:       resp.Address.State,
		Locality:    resp.locality(),
		Latitude:    lat,
		Longitude:   lon,
	}, nil
}

// lookup performs a single reverse geocoding request. There is no caching and
// no retry; callers see exactly one upstream request per call. Coordinates
// are passed through unvalidated, the upstream service is authoritative and
// callers that want range checks do them before calling.
func (c *Client) lookup(ctx context.Context, lat, lon float64) (*nominatimResponse, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	requestURL := fmt.Sprintf("%s?%s", c.endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryNetwork).
			Component("geocoding").
			Context("url", requestURL).
			Build()
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	if c.debug {
		logger.Debug("reverse geocoding request", "lat", lat, "lon", lon)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("reverse geocoding request failed",
			"error", err, "lat", lat, "lon", lon)
		return nil, errors.New(fmt.Errorf("reverse geocoding request failed: %w", err)).
			Category(errors.CategoryNetwork).
			Component("geocoding").
			NetworkContext(c.endpoint, c.httpClient.Timeout).
			Build()
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New(fmt.Errorf("failed to read response body: %w", err)).
			Category(errors.CategoryNetwork).
			Component("geocoding").
			Context("status_code", resp.StatusCode).
			Build()
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warn("reverse geocoding error response",
			"status_code", resp.StatusCode,
			"lat", lat, "lon", lon)
		return nil, errors.Newf("reverse geocoding failed with status %d", resp.StatusCode).
			Category(errors.CategoryNetwork).
			Component("geocoding").
			Context("status_code", resp.StatusCode).
			Build()
	}

	var parsed nominatimResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, errors.New(fmt.Errorf("failed to parse reverse geocoding response: %w", err)).
			Category(errors.CategoryNetwork).
			Component("geocoding").
			Context("response_size", len(bodyBytes)).
			Build()
	}

	// Nominatim signals "no result" with a 200 and an error field.
	if parsed.Error != "" {
		return nil, errors.Newf("no address found: %s", parsed.Error).
			Category(errors.CategoryNotFound).
			Component("geocoding").
			Context("lat", lat).
			Context("lon", lon).
			Build()
	}

	if c.debug {
		logger.Debug("reverse geocoding response",
			"duration_ms", time.Since(start).Milliseconds(),
			"display_name", parsed.DisplayName)
	}

	return &parsed, nil
}
