// Package mqtt implements the broker subscriber for the location bridge.
// The paho client is confined to this package; everything above it sees a
// blocking Run loop and an ingest callback.
package mqtt

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"sync/atomic"

	"canpestre/config"
	"canpestre/internal/usecase"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
)

// State is the subscriber's connection lifecycle phase.
type State int32

// Subscriber states, in lifecycle order.
const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateSubscribed
	StateFaulted
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateSubscribed:
		return "subscribed"
	case StateFaulted:
		return "faulted"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// ErrConnectionLost is returned by Run when the broker link drops. The
// supervisor reacts by building a fresh subscriber after its backoff.
var ErrConnectionLost = errors.New("mqtt connection lost")

// inboundMessage carries one delivery from the paho callback goroutine into
// the Run loop.
type inboundMessage struct {
	topic   string
	payload []byte
}

// locationSubscriberQoS asks the broker for at-least-once delivery; the
// ingest pipeline tolerates the resulting duplicates.
const locationSubscriberQoS = 1

// inboundBuffer absorbs short bursts; once it fills, the paho router blocks
// in onMessage and backpressure propagates to the broker's inflight window.
const inboundBuffer = 64

// Subscriber owns one broker connection and its topic subscription. A
// Subscriber is single-use: once Run returns, build a new one.
type Subscriber struct {
	cfg    *config.MQTTConfig
	ingest usecase.IngestUsecase
	logger *slog.Logger

	client pahomqtt.Client
	state  atomic.Int32

	messages chan inboundMessage
	lost     chan error
	done     chan struct{}
}

// NewSubscriber creates a subscriber for the configured broker and topic.
func NewSubscriber(cfg *config.MQTTConfig, ingest usecase.IngestUsecase, logger *slog.Logger) *Subscriber {
	s := &Subscriber{
		cfg:      cfg,
		ingest:   ingest,
		logger:   logger,
		messages: make(chan inboundMessage, inboundBuffer),
		lost:     make(chan error, 1),
		done:     make(chan struct{}),
	}
	s.state.Store(int32(StateDisconnected))

	opts := pahomqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("ssl://%s:%d", cfg.Host, cfg.Port)).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetTLSConfig(&tls.Config{InsecureSkipVerify: cfg.TLS.InsecureSkipVerify}).
		// Reconnection is the supervisor's job; a lost link ends this
		// subscriber instead of healing silently.
		SetAutoReconnect(false).
		SetConnectionLostHandler(s.onConnectionLost)

	s.client = pahomqtt.NewClient(opts)

	return s
}

// State returns the current lifecycle phase.
func (s *Subscriber) State() State {
	return State(s.state.Load())
}

// Run connects, subscribes, then pumps messages through the ingest pipeline
// until ctx is cancelled or the connection drops. It always disconnects
// before returning. A cancelled ctx returns ctx.Err(); a dropped link returns
// ErrConnectionLost.
func (s *Subscriber) Run(ctx context.Context) error {
	// Releases any paho router goroutine parked in onMessage once this
	// subscriber is finished.
	defer close(s.done)

	s.state.Store(int32(StateConnecting))
	s.logger.Info("connecting to mqtt broker",
		slog.String("host", s.cfg.Host),
		slog.Int("port", s.cfg.Port),
		slog.String("clientId", s.cfg.ClientID))

	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		s.state.Store(int32(StateFaulted))

		return errors.Wrap(token.Error(), "failed to connect to mqtt broker")
	}
	s.state.Store(int32(StateConnected))

	if token := s.client.Subscribe(s.cfg.Topic, locationSubscriberQoS, s.onMessage); token.Wait() && token.Error() != nil {
		s.state.Store(int32(StateFaulted))
		s.client.Disconnect(disconnectQuiesceMs)

		return errors.Wrapf(token.Error(), "failed to subscribe to topic %q", s.cfg.Topic)
	}
	s.state.Store(int32(StateSubscribed))
	s.logger.Info("subscribed to topic", slog.String("topic", s.cfg.Topic))

	defer func() {
		s.client.Disconnect(disconnectQuiesceMs)
		s.state.Store(int32(StateDisconnected))
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("subscriber stopping", slog.Any("cause", ctx.Err()))

			return ctx.Err()
		case err := <-s.lost:
			s.state.Store(int32(StateFaulted))
			s.logger.Error("mqtt connection lost", slog.Any("error", err))

			return ErrConnectionLost
		case msg := <-s.messages:
			// Ingest absorbs message-local faults; an error here would be
			// a pipeline-level failure, which HandleMessage never returns
			// today.
			if err := s.ingest.HandleMessage(ctx, msg.topic, msg.payload); err != nil {
				s.logger.Error("ingest pipeline failed", slog.Any("error", err))
			}
		}
	}
}

// disconnectQuiesceMs lets in-flight publishes settle before the socket closes.
const disconnectQuiesceMs = 250

// onMessage runs on paho's router goroutine. The payload is copied before the
// handoff because paho reuses its buffer after the callback returns. The send
// blocks when the buffer is full: paho acks only after onMessage returns, so
// blocking here throttles intake instead of losing acked messages. The done
// case only fires once Run has returned and the link is being torn down.
func (s *Subscriber) onMessage(_ pahomqtt.Client, msg pahomqtt.Message) {
	payload := make([]byte, len(msg.Payload()))
	copy(payload, msg.Payload())

	select {
	case s.messages <- inboundMessage{topic: msg.Topic(), payload: payload}:
	case <-s.done:
		s.logger.Warn("discarding message, subscriber stopped",
			slog.String("topic", msg.Topic()))
	}
}

// onConnectionLost runs on a paho goroutine.
func (s *Subscriber) onConnectionLost(_ pahomqtt.Client, err error) {
	select {
	case s.lost <- err:
	default:
	}
}
