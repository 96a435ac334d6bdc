package usecase

import "context"

// IngestUsecase processes raw telemetry messages arriving from the broker.
type IngestUsecase interface {
	// HandleMessage runs one message through decode, normalize, store and
	// forward. Faults local to a single message (malformed payload, unknown
	// pet, sink down) are logged and absorbed; only failures that should
	// stop the pipeline are returned.
	HandleMessage(ctx context.Context, topic string, payload []byte) error
}
