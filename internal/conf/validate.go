// conf/validate.go settings validation
package conf

import (
	"fmt"
	"strconv"
)

// ValidateSettings checks loaded settings for values the application cannot
// run with. Validation failures are configuration errors, not runtime errors.
func ValidateSettings(settings *Settings) error {
	if err := validateSnakeNetSettings(&settings.SnakeNet); err != nil {
		return err
	}
	if err := validateGeocodingSettings(&settings.Geocoding); err != nil {
		return err
	}
	if err := validateWebServerSettings(&settings.WebServer); err != nil {
		return err
	}
	return nil
}

func validateSnakeNetSettings(s *SnakeNetSettings) error {
	if s.Sensitivity < 0.0 || s.Sensitivity > 1.5 {
		return fmt.Errorf("snakenet.sensitivity must be between 0.0 and 1.5, got %f", s.Sensitivity)
	}
	if s.TopResults < 1 {
		return fmt.Errorf("snakenet.topresults must be at least 1, got %d", s.TopResults)
	}
	switch s.OnClassifierError {
	case ClassifierErrorFallback, ClassifierErrorPropagate:
	default:
		return fmt.Errorf("snakenet.onclassifiererror must be %q or %q, got %q",
			ClassifierErrorFallback, ClassifierErrorPropagate, s.OnClassifierError)
	}
	return nil
}

func validateGeocodingSettings(s *GeocodingSettings) error {
	if s.Endpoint == "" {
		return fmt.Errorf("geocoding.endpoint must not be empty")
	}
	if s.UserAgent == "" {
		// Nominatim rejects requests without an identifying User-Agent
		return fmt.Errorf("geocoding.useragent must not be empty")
	}
	if s.Timeout < 1 {
		return fmt.Errorf("geocoding.timeout must be at least 1 second, got %d", s.Timeout)
	}
	return nil
}

func validateWebServerSettings(s *WebServerSettings) error {
	if !s.Enabled {
		return nil
	}
	port, err := strconv.Atoi(s.Port)
	if err != nil {
		return fmt.Errorf("webserver.port must be numeric, got %q", s.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("webserver.port must be between 1 and 65535, got %d", port)
	}
	return nil
}
