package mqtt

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"canpestre/config"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMessage implements the paho Message interface for callback tests.
type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return locationSubscriberQoS }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

var _ pahomqtt.Message = (*fakeMessage)(nil)

func testSubscriber(t *testing.T) *Subscriber {
	t.Helper()

	cfg := &config.MQTTConfig{
		Host:           "broker.local",
		Port:           8883,
		Topic:          "ubicacion",
		ClientID:       "canpestre-test",
		ConnectTimeout: time.Second,
	}

	return NewSubscriber(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSubscriber_StartsDisconnected(t *testing.T) {
	s := testSubscriber(t)
	assert.Equal(t, StateDisconnected, s.State())
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateDisconnected, "disconnected"},
		{StateConnecting, "connecting"},
		{StateConnected, "connected"},
		{StateSubscribed, "subscribed"},
		{StateFaulted, "faulted"},
		{State(42), "state(42)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
}

func TestSubscriber_OnMessageCopiesPayload(t *testing.T) {
	s := testSubscriber(t)

	payload := []byte(`{"mascota":3}`)
	s.onMessage(nil, &fakeMessage{topic: "ubicacion", payload: payload})

	// Mutating the broker's buffer after the callback must not reach the
	// queued copy.
	payload[0] = 'X'

	select {
	case msg := <-s.messages:
		assert.Equal(t, "ubicacion", msg.topic)
		assert.Equal(t, `{"mascota":3}`, string(msg.payload))
	default:
		t.Fatal("message was not queued")
	}
}

func TestSubscriber_OnMessageDeliversEveryMessageUnderBurst(t *testing.T) {
	s := testSubscriber(t)

	// More messages than the buffer holds. The overflow must park the
	// caller until the consumer drains, never vanish: paho acks QoS 1
	// deliveries once onMessage returns.
	const total = inboundBuffer + 10

	sent := make(chan struct{})
	go func() {
		for i := 0; i < total; i++ {
			s.onMessage(nil, &fakeMessage{topic: "ubicacion", payload: []byte("{}")})
		}
		close(sent)
	}()

	received := 0
	for received < total {
		select {
		case <-s.messages:
			received++
		case <-time.After(time.Second):
			t.Fatalf("received %d of %d messages", received, total)
		}
	}

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("onMessage still blocked after the buffer drained")
	}
	assert.Empty(t, s.messages)
}

func TestSubscriber_OnMessageBlocksWhenBufferFull(t *testing.T) {
	s := testSubscriber(t)

	for i := 0; i < inboundBuffer; i++ {
		s.onMessage(nil, &fakeMessage{topic: "ubicacion", payload: []byte("{}")})
	}

	overflowed := make(chan struct{})
	go func() {
		s.onMessage(nil, &fakeMessage{topic: "ubicacion", payload: []byte("{}")})
		close(overflowed)
	}()

	select {
	case <-overflowed:
		t.Fatal("onMessage returned with the buffer full")
	case <-time.After(50 * time.Millisecond):
	}

	// Draining one slot unparks the router.
	<-s.messages
	select {
	case <-overflowed:
	case <-time.After(time.Second):
		t.Fatal("onMessage stayed blocked after a slot freed up")
	}
}

func TestSubscriber_OnMessageReturnsAfterShutdown(t *testing.T) {
	s := testSubscriber(t)

	for i := 0; i < inboundBuffer; i++ {
		s.onMessage(nil, &fakeMessage{topic: "ubicacion", payload: []byte("{}")})
	}
	close(s.done)

	// With the subscriber finished nobody will drain the buffer; the
	// callback must not strand paho's router goroutine.
	returned := make(chan struct{})
	go func() {
		s.onMessage(nil, &fakeMessage{topic: "ubicacion", payload: []byte("{}")})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("onMessage blocked after the subscriber stopped")
	}
}

func TestSubscriber_OnConnectionLostIsNonBlocking(t *testing.T) {
	s := testSubscriber(t)

	// A second loss notification while the first is unconsumed must not
	// block the paho callback goroutine.
	done := make(chan struct{})
	go func() {
		s.onConnectionLost(nil, context.DeadlineExceeded)
		s.onConnectionLost(nil, context.DeadlineExceeded)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("onConnectionLost blocked")
	}

	require.Len(t, s.lost, 1)
}
