// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUser retrieves all goals for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// ApplyDeposit commits an updated goal together with its paired savings
	// contribution transaction as a single all-or-nothing write. Either both
	// rows are persisted or neither is.
	ApplyDeposit(ctx context.Context, goal *entity.Goal, contribution *entity.Transaction) error
}
