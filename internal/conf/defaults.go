// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "SnakeID-Go")

	viper.SetDefault("snakenet.modelpath", "model/snakenet.tflite")
	viper.SetDefault("snakenet.labelpath", "model/labels.txt")
	viper.SetDefault("snakenet.sensitivity", 1.0)
	viper.SetDefault("snakenet.topresults", 5)
	viper.SetDefault("snakenet.threads", 0)
	viper.SetDefault("snakenet.usexnnpack", true)
	viper.SetDefault("snakenet.onclassifiererror", ClassifierErrorFallback)
	viper.SetDefault("snakenet.debug", false)

	viper.SetDefault("geocoding.endpoint", "https://nominatim.openstreetmap.org/reverse")
	viper.SetDefault("geocoding.useragent", "SnakeID-Go/1.0")
	viper.SetDefault("geocoding.timeout", 15)
	viper.SetDefault("geocoding.debug", false)

	viper.SetDefault("webserver.enabled", true)
	viper.SetDefault("webserver.port", "8080")
	viper.SetDefault("webserver.debug", false)

	viper.SetDefault("mqtt.enabled", false)
	viper.SetDefault("mqtt.broker", "tcp://localhost:1883")
	viper.SetDefault("mqtt.topic", "snakeid/identifications")
	viper.SetDefault("mqtt.username", "")
	viper.SetDefault("mqtt.password", "")
}

// GetDefaultSettings returns a Settings struct populated with default values,
// without touching the viper instance or any config file. Intended for tests
// and one-shot CLI use.
func GetDefaultSettings() *Settings {
	settings := &Settings{}
	settings.Debug = false
	settings.Main.Name = "SnakeID-Go"
	settings.SnakeNet = SnakeNetSettings{
		ModelPath:         "model/snakenet.tflite",
		LabelPath:         "model/labels.txt",
		Sensitivity:       1.0,
		TopResults:        5,
		Threads:           0,
		UseXNNPACK:        true,
		OnClassifierError: ClassifierErrorFallback,
	}
	settings.Geocoding = GeocodingSettings{
		Endpoint:  "https://nominatim.openstreetmap.org/reverse",
		UserAgent: "SnakeID-Go/1.0",
		Timeout:   15,
	}
	settings.WebServer = WebServerSettings{
		Enabled: true,
		Port:    "8080",
	}
	settings.MQTT = MQTTSettings{
		Enabled: false,
		Broker:  "tcp://localhost:1883",
		Topic:   "snakeid/identifications",
	}
	return settings
}
