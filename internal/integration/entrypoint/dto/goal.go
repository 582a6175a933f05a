// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/goal"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name          string           `json:"name" binding:"required,min=1,max=100"`
	Icon          string           `json:"icon,omitempty"`
	TargetAmount  decimal.Decimal  `json:"target_amount" binding:"required"`
	InitialAmount *decimal.Decimal `json:"initial_amount,omitempty"`
	Deadline      string           `json:"deadline" binding:"required,datetime=2006-01-02"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Icon     *string `json:"icon,omitempty"`
	Deadline *string `json:"deadline,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// DepositGoalRequest represents the request body for a goal deposit.
type DepositGoalRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse represents a single goal with its progress projection.
type GoalResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Name            string          `json:"name"`
	Icon            string          `json:"icon"`
	TargetAmount    decimal.Decimal `json:"target_amount"`
	CurrentAmount   decimal.Decimal `json:"current_amount"`
	Deadline        string          `json:"deadline"`
	Status          string          `json:"status"`
	ProgressPercent int             `json:"progress_percent"`
	DaysRemaining   int             `json:"days_remaining"`
	// RequiredDailySavings is omitted when undefined: the goal is complete or
	// its deadline has passed.
	RequiredDailySavings *decimal.Decimal `json:"required_daily_savings,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// DepositGoalResponse represents the response for a goal deposit.
type DepositGoalResponse struct {
	Goal         GoalResponse        `json:"goal"`
	Contribution TransactionResponse `json:"contribution"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO without
// projection figures.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		UserID:        g.UserID.String(),
		Name:          g.Name,
		Icon:          g.Icon,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline.Format("2006-01-02"),
		Status:        string(g.Status),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// ToGoalProjectionResponse converts a GoalProjection to a GoalResponse DTO.
func ToGoalProjectionResponse(projection *goal.GoalProjection) GoalResponse {
	response := ToGoalResponse(projection.Goal)
	response.ProgressPercent = projection.ProgressPercent
	response.DaysRemaining = projection.DaysRemaining
	response.RequiredDailySavings = projection.RequiredDailySavings
	return response
}

// ToGoalListResponse converts goal projections to a GoalListResponse.
func ToGoalListResponse(projections []*goal.GoalProjection) GoalListResponse {
	goals := make([]GoalResponse, len(projections))
	for i, p := range projections {
		goals[i] = ToGoalProjectionResponse(p)
	}
	return GoalListResponse{
		Goals: goals,
	}
}
