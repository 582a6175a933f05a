// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles the notification endpoint.
type NotificationController struct {
	queue adapter.NotificationQueue
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(queue adapter.NotificationQueue) *NotificationController {
	return &NotificationController{
		queue: queue,
	}
}

// List handles GET /notifications requests. Reading the queue consumes it:
// events are removed and will not be returned again.
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	events, err := c.queue.Drain(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Notifications are temporarily unavailable",
			Code:  string(domainerror.ErrCodeQueueUnavailable),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(events))
}
