// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type          string          `json:"type" binding:"required,oneof=expense income"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	CategoryID    *string         `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Note          string          `json:"note,omitempty" binding:"omitempty,max=500"`
	PaymentMethod string          `json:"payment_method,omitempty" binding:"omitempty,max=50"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// A present-but-null category_id clears the category link.
type UpdateTransactionRequest struct {
	Type          *string          `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	ClearCategory bool             `json:"clear_category,omitempty"`
	Date          *string          `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Note          *string          `json:"note,omitempty" binding:"omitempty,max=500"`
	PaymentMethod *string          `json:"payment_method,omitempty" binding:"omitempty,max=50"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	Type          string            `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	CategoryID    *string           `json:"category_id,omitempty"`
	Category      *CategoryResponse `json:"category,omitempty"`
	Date          string            `json:"date"`
	Note          string            `json:"note,omitempty"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// BalanceResponse represents the derived balance figures.
type BalanceResponse struct {
	Balance      decimal.Decimal `json:"balance"`
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
}

// SuggestCategoryRequest represents the request body for a category suggestion.
type SuggestCategoryRequest struct {
	Description string `json:"description" binding:"required,min=1,max=255"`
	Type        string `json:"type" binding:"required,oneof=expense income"`
}

// SuggestedCategoryResponse represents a proposed new category.
type SuggestedCategoryResponse struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// SuggestCategoryResponse represents the response for a category suggestion.
type SuggestCategoryResponse struct {
	Category    *CategoryResponse          `json:"category,omitempty"`
	NewCategory *SuggestedCategoryResponse `json:"new_category,omitempty"`
	Confidence  float64                    `json:"confidence"`
	Reasoning   string                     `json:"reasoning,omitempty"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:            transaction.ID.String(),
		UserID:        transaction.UserID.String(),
		Type:          string(transaction.Type),
		Amount:        transaction.Amount,
		Date:          transaction.Date.Format("2006-01-02"),
		Note:          transaction.Note,
		PaymentMethod: transaction.PaymentMethod,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}

	if transaction.CategoryID != nil {
		idStr := transaction.CategoryID.String()
		response.CategoryID = &idStr
	}

	return response
}

// ToTransactionListResponse converts transactions with categories to a TransactionListResponse.
func ToTransactionListResponse(items []*entity.TransactionWithCategory) TransactionListResponse {
	transactions := make([]TransactionResponse, len(items))
	for i, item := range items {
		response := ToTransactionResponse(item.Transaction)
		if item.Category != nil {
			catResponse := ToCategoryResponse(item.Category)
			response.Category = &catResponse
		}
		transactions[i] = response
	}
	return TransactionListResponse{
		Transactions: transactions,
	}
}
