// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// NotificationResponse represents a single notification event in API responses.
type NotificationResponse struct {
	Type      string    `json:"type"`
	EmittedAt time.Time `json:"emitted_at"`

	Balance      *decimal.Decimal `json:"balance,omitempty"`
	BudgetID     *string          `json:"budget_id,omitempty"`
	CategoryName string           `json:"category_name,omitempty"`
	Remaining    *decimal.Decimal `json:"remaining,omitempty"`
	GoalID       *string          `json:"goal_id,omitempty"`
	GoalName     string           `json:"goal_name,omitempty"`
	DaysLeft     *int             `json:"days_left,omitempty"`
}

// NotificationListResponse represents the response for draining notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationResponse converts a domain NotificationEvent to a NotificationResponse DTO.
func ToNotificationResponse(event entity.NotificationEvent) NotificationResponse {
	response := NotificationResponse{
		Type:         string(event.Type),
		EmittedAt:    event.EmittedAt,
		Balance:      event.Balance,
		CategoryName: event.CategoryName,
		Remaining:    event.Remaining,
		GoalName:     event.GoalName,
		DaysLeft:     event.DaysLeft,
	}

	if event.BudgetID != nil {
		idStr := event.BudgetID.String()
		response.BudgetID = &idStr
	}
	if event.GoalID != nil {
		idStr := event.GoalID.String()
		response.GoalID = &idStr
	}

	return response
}

// ToNotificationListResponse converts notification events to a NotificationListResponse.
func ToNotificationListResponse(events []entity.NotificationEvent) NotificationListResponse {
	notifications := make([]NotificationResponse, len(events))
	for i, e := range events {
		notifications[i] = ToNotificationResponse(e)
	}
	return NotificationListResponse{
		Notifications: notifications,
	}
}
