// Package notify publishes snake identification events to an MQTT broker.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/snakesafe/snakeid-go/internal/logging"
)

// Client defines the interface for MQTT client operations.
type Client interface {
	// Connect attempts to connect to the MQTT broker.
	// It returns an error if the connection fails.
	Connect(ctx context.Context) error

	// Publish sends a message to the specified topic on the MQTT broker.
	// It returns an error if the publish operation fails.
	Publish(ctx context.Context, topic, payload string) error

	// IsConnected returns true if the client is currently connected to the MQTT broker.
	IsConnected() bool

	// Disconnect closes the connection to the MQTT broker.
	Disconnect()
}

// Config holds the configuration for the MQTT client.
type Config struct {
	Broker            string
	ClientID          string
	Username          string
	Password          string
	Topic             string // Default topic for publishing messages
	ReconnectCooldown time.Duration
	ReconnectDelay    time.Duration
	ConnectTimeout    time.Duration
	PublishTimeout    time.Duration
	DisconnectTimeout time.Duration
}

// DefaultConfig returns a Config with reasonable default values
func DefaultConfig() Config {
	return Config{
		ReconnectCooldown: 5 * time.Second,
		ReconnectDelay:    1 * time.Second,
		ConnectTimeout:    30 * time.Second,
		PublishTimeout:    10 * time.Second,
		DisconnectTimeout: 250 * time.Millisecond,
	}
}

// Package-level logger for MQTT related events
var notifyLogger *slog.Logger

func init() {
	var err error
	notifyLogger, _, err = logging.NewFileLogger("logs/notify.log", "notify", slog.LevelInfo)
	if err != nil {
		logging.Error("Failed to initialize notify file logger", "error", err)
		notifyLogger = logging.Structured().With("service", "notify")
		if notifyLogger == nil {
			panic(fmt.Sprintf("Failed to initialize any logger for notify service: %v", err))
		}
	}
}
