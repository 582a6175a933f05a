// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// NotificationQueue defines the interface for handing notification events to
// the delivery collaborator. The engine only enqueues; channel selection,
// sound and presentation are the consumer's concern.
type NotificationQueue interface {
	// Enqueue appends an event to the user's pending notification queue.
	Enqueue(ctx context.Context, event entity.NotificationEvent) error

	// Drain removes and returns all pending events for a user, oldest first.
	Drain(ctx context.Context, userID uuid.UUID) ([]entity.NotificationEvent, error)
}
