package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultSettings(t *testing.T) {
	t.Parallel()

	settings := GetDefaultSettings()
	require.NotNil(t, settings)

	assert.Equal(t, "SnakeID-Go", settings.Main.Name)
	assert.Equal(t, ClassifierErrorFallback, settings.SnakeNet.OnClassifierError)
	assert.Equal(t, 5, settings.SnakeNet.TopResults)
	assert.Equal(t, "https://nominatim.openstreetmap.org/reverse", settings.Geocoding.Endpoint)
	assert.NotEmpty(t, settings.Geocoding.UserAgent)
	assert.False(t, settings.MQTT.Enabled)
}

func TestValidateSettingsDefaultsAreValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateSettings(GetDefaultSettings()))
}

func TestValidateSettingsRejectsBadClassifierErrorPolicy(t *testing.T) {
	t.Parallel()

	settings := GetDefaultSettings()
	settings.SnakeNet.OnClassifierError = "ignore"

	err := ValidateSettings(settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "onclassifiererror")
}

func TestValidateSettingsRejectsOutOfRangeSensitivity(t *testing.T) {
	t.Parallel()

	settings := GetDefaultSettings()
	settings.SnakeNet.Sensitivity = 2.0

	require.Error(t, ValidateSettings(settings))
}

func TestValidateSettingsRejectsEmptyUserAgent(t *testing.T) {
	t.Parallel()

	settings := GetDefaultSettings()
	settings.Geocoding.UserAgent = ""

	require.Error(t, ValidateSettings(settings))
}

func TestValidateSettingsRejectsBadPort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		port string
	}{
		{"non-numeric", "http"},
		{"zero", "0"},
		{"too large", "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			settings := GetDefaultSettings()
			settings.WebServer.Port = tt.port
			require.Error(t, ValidateSettings(settings))
		})
	}
}

func TestValidateSettingsSkipsPortWhenServerDisabled(t *testing.T) {
	t.Parallel()

	settings := GetDefaultSettings()
	settings.WebServer.Enabled = false
	settings.WebServer.Port = "not-a-port"

	require.NoError(t, ValidateSettings(settings))
}
