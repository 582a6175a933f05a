// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsOverlapping checks whether the category already has a budget
	// whose period overlaps [start, end]. excludeID, when non-nil, leaves a
	// budget out of the check (used on update).
	ExistsOverlapping(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error)
}
