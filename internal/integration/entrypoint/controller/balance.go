// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/application/usecase/balance"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/middleware"
)

// BalanceController handles the balance endpoint.
type BalanceController struct {
	computeUseCase *balance.ComputeBalanceUseCase
}

// NewBalanceController creates a new balance controller instance.
func NewBalanceController(computeUseCase *balance.ComputeBalanceUseCase) *BalanceController {
	return &BalanceController{
		computeUseCase: computeUseCase,
	}
}

// Get handles GET /balance requests.
func (c *BalanceController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.computeUseCase.Execute(ctx.Request.Context(), balance.ComputeBalanceInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute balance",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.BalanceResponse{
		Balance:      output.Balance,
		IncomeTotal:  output.IncomeTotal,
		ExpenseTotal: output.ExpenseTotal,
	})
}
