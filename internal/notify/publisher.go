package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/snakesafe/snakeid-go/internal/conf"
	"github.com/snakesafe/snakeid-go/internal/errors"
	"github.com/snakesafe/snakeid-go/internal/species"
)

// IdentificationEvent is the payload published for every resolved
// identification.
type IdentificationEvent struct {
	ID             string    `json:"id"`
	Source         string    `json:"source"` // "image" or "description"
	Species        string    `json:"species"`
	ScientificName string    `json:"scientific_name,omitempty"`
	ThreatLevel    string    `json:"threat_level"`
	Degraded       bool      `json:"degraded,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewIdentificationEvent builds an event for a resolved catalog record.
func NewIdentificationEvent(source string, rec *species.Record, degraded bool) IdentificationEvent {
	return IdentificationEvent{
		ID:             uuid.New().String(),
		Source:         source,
		Species:        rec.Name,
		ScientificName: rec.ScientificName,
		ThreatLevel:    rec.ThreatLevel.String(),
		Degraded:       degraded,
		Timestamp:      time.Now().UTC(),
	}
}

// Publisher publishes identification events to the configured topic. A
// disabled publisher silently drops events so callers need no conditionals.
type Publisher struct {
	client  Client
	topic   string
	enabled bool
}

// NewPublisher creates a Publisher from settings and a connected client.
func NewPublisher(settings *conf.Settings, client Client) *Publisher {
	return &Publisher{
		client:  client,
		topic:   settings.MQTT.Topic,
		enabled: settings.MQTT.Enabled,
	}
}

// PublishIdentification publishes a single identification event.
func (p *Publisher) PublishIdentification(ctx context.Context, event *IdentificationEvent) error {
	if !p.enabled {
		return nil
	}

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.New(err).
			Component("notify").
			Category(errors.CategoryMQTTPublish).
			Build()
	}

	if err := p.client.Publish(ctx, p.topic, string(payload)); err != nil {
		notifyLogger.Error("failed to publish identification event",
			"topic", p.topic,
			"species", event.Species,
			"error", err)
		return errors.New(err).
			Component("notify").
			Category(errors.CategoryMQTTPublish).
			Context("topic", p.topic).
			Build()
	}

	notifyLogger.Debug("published identification event",
		"topic", p.topic,
		"species", event.Species,
		"source", event.Source)
	return nil
}
