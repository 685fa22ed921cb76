package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/snakesafe/snakeid-go/internal/conf"
	"github.com/snakesafe/snakeid-go/internal/species"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// The rotating file logger keeps a maintenance goroutine alive for the
	// process lifetime.
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun"))
}

// fakeClient records published payloads.
type fakeClient struct {
	connected bool
	topics    []string
	payloads  []string
	err       error
}

func (f *fakeClient) Connect(_ context.Context) error { f.connected = true; return nil }
func (f *fakeClient) Publish(_ context.Context, topic, payload string) error {
	if f.err != nil {
		return f.err
	}
	f.topics = append(f.topics, topic)
	f.payloads = append(f.payloads, payload)
	return nil
}
func (f *fakeClient) IsConnected() bool { return f.connected }
func (f *fakeClient) Disconnect()       { f.connected = false }

func enabledSettings() *conf.Settings {
	settings := conf.GetDefaultSettings()
	settings.MQTT.Enabled = true
	return settings
}

func TestPublishIdentificationSendsEventJSON(t *testing.T) {
	client := &fakeClient{connected: true}
	pub := NewPublisher(enabledSettings(), client)

	rec := species.ByName("King Cobra")
	require.NotNil(t, rec)

	event := NewIdentificationEvent("image", rec, false)
	require.NoError(t, pub.PublishIdentification(context.Background(), &event))

	require.Len(t, client.payloads, 1)
	assert.Equal(t, "snakeid/identifications", client.topics[0])

	var decoded IdentificationEvent
	require.NoError(t, json.Unmarshal([]byte(client.payloads[0]), &decoded))
	assert.Equal(t, "King Cobra", decoded.Species)
	assert.Equal(t, "image", decoded.Source)
	assert.Equal(t, "deadly", decoded.ThreatLevel)
	assert.NotEmpty(t, decoded.ID)
	assert.False(t, decoded.Timestamp.IsZero())
}

func TestPublishIdentificationFillsMissingIDAndTimestamp(t *testing.T) {
	client := &fakeClient{connected: true}
	pub := NewPublisher(enabledSettings(), client)

	event := &IdentificationEvent{Source: "description", Species: "Copperhead", ThreatLevel: "moderate"}
	require.NoError(t, pub.PublishIdentification(context.Background(), event))

	assert.NotEmpty(t, event.ID)
	assert.False(t, event.Timestamp.IsZero())
}

func TestPublishIdentificationDisabledIsNoOp(t *testing.T) {
	client := &fakeClient{connected: true}
	settings := conf.GetDefaultSettings()
	settings.MQTT.Enabled = false

	pub := NewPublisher(settings, client)
	event := NewIdentificationEvent("image", species.ByName("Copperhead"), false)

	require.NoError(t, pub.PublishIdentification(context.Background(), &event))
	assert.Empty(t, client.payloads)
}

func TestPublishIdentificationPropagatesClientError(t *testing.T) {
	client := &fakeClient{connected: true, err: errors.New("broker unreachable")}
	pub := NewPublisher(enabledSettings(), client)

	event := NewIdentificationEvent("image", species.ByName("Copperhead"), true)
	err := pub.PublishIdentification(context.Background(), &event)
	assert.ErrorContains(t, err, "broker unreachable")
}
