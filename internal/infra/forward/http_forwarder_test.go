package forward

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"canpestre/config"
	"canpestre/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPForwarder_PostsExactPayload(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	forwarder := NewHTTPForwarder(&config.ForwarderConfig{
		URL:     server.URL,
		Timeout: 5 * time.Second,
	})

	err := forwarder.Forward(context.Background(), &entity.NormalizedLocation{
		MascotaID: 3,
		Latitude:  entity.MustCoordinate("-12.046374"),
		Longitude: entity.MustCoordinate("-77.042793"),
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)

	var decoded map[string]json.Number
	decoder := json.NewDecoder(bytes.NewReader(gotBody))
	decoder.UseNumber()
	require.NoError(t, decoder.Decode(&decoded))

	assert.Equal(t, json.Number("3"), decoded["mascota"])
	// Coordinates travel as bare numbers with their exact decimal text.
	assert.Equal(t, json.Number("-12.046374"), decoded["latitude"])
	assert.Equal(t, json.Number("-77.042793"), decoded["longitude"])
}

func TestHTTPForwarder_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	forwarder := NewHTTPForwarder(&config.ForwarderConfig{
		URL:     server.URL,
		Timeout: 5 * time.Second,
	})

	err := forwarder.Forward(context.Background(), &entity.NormalizedLocation{MascotaID: 1})
	assert.Error(t, err)
}

func TestHTTPForwarder_TimeoutIsBounded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	forwarder := NewHTTPForwarder(&config.ForwarderConfig{
		URL:     server.URL,
		Timeout: 50 * time.Millisecond,
	})

	start := time.Now()
	err := forwarder.Forward(context.Background(), &entity.NormalizedLocation{MascotaID: 1})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}
