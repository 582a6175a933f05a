// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID string          `json:"category_id" binding:"required,uuid"`
	Name       string          `json:"name,omitempty" binding:"omitempty,max=100"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Period     string          `json:"period" binding:"required,oneof=weekly monthly yearly"`
	StartDate  *string         `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate    *string         `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Name      *string          `json:"name,omitempty" binding:"omitempty,max=100"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	StartDate *string          `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string          `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BudgetStatusResponse represents a budget with its derived spending state.
type BudgetStatusResponse struct {
	Budget    BudgetResponse    `json:"budget"`
	Category  *CategoryResponse `json:"category,omitempty"`
	Spent     decimal.Decimal   `json:"spent"`
	Remaining decimal.Decimal   `json:"remaining"`
	Severity  string            `json:"severity"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetStatusResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         budget.ID.String(),
		UserID:     budget.UserID.String(),
		CategoryID: budget.CategoryID.String(),
		Name:       budget.Name,
		Amount:     budget.Amount,
		Period:     string(budget.Period),
		StartDate:  budget.StartDate.Format("2006-01-02"),
		EndDate:    budget.EndDate.Format("2006-01-02"),
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}

// ToBudgetStatusResponse converts a BudgetStatus to a BudgetStatusResponse DTO.
func ToBudgetStatusResponse(status *entity.BudgetStatus) BudgetStatusResponse {
	response := BudgetStatusResponse{
		Budget:    ToBudgetResponse(status.Budget),
		Spent:     status.Spent,
		Remaining: status.Remaining,
		Severity:  string(status.Severity),
	}

	if status.Category != nil {
		catResponse := ToCategoryResponse(status.Category)
		response.Category = &catResponse
	}

	return response
}

// ToBudgetListResponse converts budget statuses to a BudgetListResponse.
func ToBudgetListResponse(statuses []*entity.BudgetStatus) BudgetListResponse {
	budgets := make([]BudgetStatusResponse, len(statuses))
	for i, s := range statuses {
		budgets[i] = ToBudgetStatusResponse(s)
	}
	return BudgetListResponse{
		Budgets: budgets,
	}
}
