// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a single ledger entry in the Pocket Ledger system.
// Amount is always positive; Type carries the direction.
type Transaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          TransactionType
	Amount        decimal.Decimal
	CategoryID    *uuid.UUID // Optional, can be uncategorized
	Date          time.Time  // Calendar date, normalized to midnight UTC
	Note          string
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	categoryID *uuid.UUID,
	date time.Time,
	note string,
	paymentMethod string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		Type:          transactionType,
		Amount:        amount,
		CategoryID:    categoryID,
		Date:          date,
		Note:          note,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Signed returns the amount with its ledger sign applied: positive for
// income, negative for expense.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// BalanceTotals represents aggregated income and expense totals for a user.
type BalanceTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net returns income minus expense.
func (t BalanceTotals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
