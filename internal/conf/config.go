// config.go: This file contains the configuration for the SnakeID-Go application.
// It defines the settings struct and functions to load and save the settings.
package conf

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

//go:embed config.yaml
var configFiles embed.FS

// Classifier error policies. The upstream revisions of the identification
// pipeline disagreed on what to do when the classifier itself fails, so the
// policy is explicit configuration rather than hardcoded behavior.
const (
	ClassifierErrorFallback  = "fallback"  // return the first catalog entry, log the failure
	ClassifierErrorPropagate = "propagate" // surface the failure to the caller
)

// SnakeNetSettings contains settings for the image classification model.
type SnakeNetSettings struct {
	ModelPath         string  // path to the TFLite image classification model
	LabelPath         string  // path to the model label file, one label per line
	Sensitivity       float64 // sigmoid sensitivity applied to raw model output
	TopResults        int     // number of ranked labels considered for direct matching
	Threads           int     // interpreter thread count, 0 for automatic
	UseXNNPACK        bool    // use XNNPACK delegate if available
	OnClassifierError string  // "fallback" or "propagate"
	Debug             bool    // true to enable classifier debug logging
}

// GeocodingSettings contains settings for the reverse geocoding client.
type GeocodingSettings struct {
	Endpoint  string // reverse geocoding endpoint URL
	UserAgent string // client-identifying User-Agent header, required by Nominatim
	Timeout   int    // HTTP client timeout in seconds
	Debug     bool   // true to enable geocoding debug logging
}

// WebServerSettings contains settings for the HTTP API server.
type WebServerSettings struct {
	Enabled bool   // true to enable the API server
	Port    string // port to listen on
	Debug   bool   // true to enable web server debug logging
}

// MQTTSettings contains settings for publishing identification events.
type MQTTSettings struct {
	Enabled  bool   // true to enable identification event publishing
	Broker   string // MQTT broker URL, e.g. tcp://localhost:1883
	Topic    string // topic to publish identification events to
	Username string // MQTT username
	Password string // MQTT password
}

// Settings contains all configuration options for the SnakeID-Go application.
type Settings struct {
	Debug bool // true to enable debug log output

	Main struct {
		Name string // name of the node, used as MQTT client id
	}

	SnakeNet  SnakeNetSettings
	Geocoding GeocodingSettings
	WebServer WebServerSettings
	MQTT      MQTTSettings
}

// settingsInstance is the current settings instance
var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file and environment variables into a Settings
// struct and stores it as the package wide instance.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper initializes viper with default values and reads the configuration file.
func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	// Set default values for each configuration parameter
	// function defined in defaults.go
	setDefaultConfig()

	err = viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create config with defaults
			return createDefaultConfig()
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default config file and writes it to the default config path
func createDefaultConfig() error {
	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}
	configPath := filepath.Join(configPaths[0], "config.yaml")
	defaultConfig := getDefaultConfig()

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("error creating directories for config file: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("error writing default config file: %w", err)
	}

	fmt.Println("Created default config file at:", configPath)
	return viper.ReadInConfig()
}

// getDefaultConfig reads the default configuration from the embedded config.yaml file.
func getDefaultConfig() string {
	data, err := fs.ReadFile(configFiles, "config.yaml")
	if err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}
	return string(data)
}

// GetDefaultConfigPaths returns the config search paths in priority order:
// current directory, then the user config directory.
func GetDefaultConfigPaths() ([]string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("error fetching user config directory: %w", err)
	}
	return []string{".", filepath.Join(configDir, "snakeid-go")}, nil
}

// GetSettings returns the current settings instance
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// SetSettings replaces the current settings instance. Intended for tests.
func SetSettings(settings *Settings) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()
	settingsInstance = settings
}
