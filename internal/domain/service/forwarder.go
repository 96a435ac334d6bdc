// Package service declares interfaces for infrastructure collaborators.
package service

import (
	"context"

	"canpestre/internal/domain/entity"
)

// LocationForwarder pushes a normalized location to the secondary HTTP sink.
// Forwarding is best-effort: a failure is reported to the caller, which logs
// it and moves on. Nothing is retried and nothing is rolled back.
type LocationForwarder interface {
	Forward(ctx context.Context, location *entity.NormalizedLocation) error
}
