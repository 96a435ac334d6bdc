// Package forward relays ingested locations to a secondary HTTP sink.
package forward

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"canpestre/config"
	"canpestre/internal/domain/entity"
	"canpestre/internal/domain/service"

	"github.com/pkg/errors"
)

// forwardPayload is the wire shape the sink expects. Coordinates go out as
// JSON numbers with their exact decimal text.
type forwardPayload struct {
	Mascota   int64             `json:"mascota"`
	Latitude  entity.Coordinate `json:"latitude"`
	Longitude entity.Coordinate `json:"longitude"`
}

type httpForwarder struct {
	url    string
	client *http.Client
}

// NewHTTPForwarder creates a forwarder posting to the configured endpoint.
// Every request is bounded by the configured timeout so a stalled sink cannot
// wedge the ingest pipeline.
func NewHTTPForwarder(cfg *config.ForwarderConfig) service.LocationForwarder {
	return &httpForwarder{
		url: cfg.URL,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Forward posts one normalized location to the sink.
func (f *httpForwarder) Forward(ctx context.Context, location *entity.NormalizedLocation) error {
	body, err := json.Marshal(forwardPayload{
		Mascota:   location.MascotaID,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal forward payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build forward request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "forward request failed")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("forward sink returned status %d", resp.StatusCode)
	}

	return nil
}
