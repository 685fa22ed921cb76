// Package server wires the application components together and runs the
// HTTP API service.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	api "github.com/snakesafe/snakeid-go/internal/api/v2"
	"github.com/snakesafe/snakeid-go/internal/conf"
	"github.com/snakesafe/snakeid-go/internal/geocoding"
	"github.com/snakesafe/snakeid-go/internal/logging"
	"github.com/snakesafe/snakeid-go/internal/notify"
	"github.com/snakesafe/snakeid-go/internal/observability"
	"github.com/snakesafe/snakeid-go/internal/snakenet"
)

// Run starts the API server and blocks until the process receives an
// interrupt or termination signal.
func Run(settings *conf.Settings) error {
	metrics, err := observability.NewMetrics()
	if err != nil {
		return err
	}

	classifier, err := snakenet.GetClassifier(settings)
	if err != nil {
		// The classifier is allowed to be unavailable; the matcher's error
		// policy decides what identifications do in that case.
		logging.Warn("classifier unavailable, running degraded", "error", err)
		metrics.SnakeNet.SetModelLoaded(false)
	} else {
		metrics.SnakeNet.SetModelLoaded(true)
	}

	var identifier api.Identifier
	if classifier != nil {
		identifier = snakenet.NewMatcher(classifier, settings)
	} else {
		identifier = snakenet.NewMatcher(unavailableClassifier{err: err}, settings)
	}

	geocoder, err := geocoding.NewClient(settings)
	if err != nil {
		return err
	}
	defer geocoder.Close()

	var publisher *notify.Publisher
	if settings.MQTT.Enabled {
		mqttClient, err := notify.NewClient(settings, metrics)
		if err != nil {
			return err
		}
		connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := mqttClient.Connect(connectCtx); err != nil {
			logging.Warn("MQTT connect failed, events will not be published", "error", err)
		}
		cancel()
		defer mqttClient.Disconnect()
		publisher = notify.NewPublisher(settings, mqttClient)
	}

	e := echo.New()
	e.HideBanner = true

	controller, err := api.New(e, settings, identifier, geocoder, publisher,
		log.Default(), metrics)
	if err != nil {
		return err
	}
	defer controller.Shutdown()

	go func() {
		addr := ":" + settings.WebServer.Port
		logging.Info("starting API server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("API server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// unavailableClassifier stands in when the model failed to load so the
// matcher's classifier error policy applies uniformly.
type unavailableClassifier struct {
	err error
}

func (u unavailableClassifier) Classify(context.Context, []byte) ([]snakenet.Prediction, error) {
	return nil, u.err
}
