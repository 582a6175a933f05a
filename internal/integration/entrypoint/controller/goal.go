// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/goal"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles savings goal endpoints.
type GoalController struct {
	createUseCase  *goal.CreateGoalUseCase
	listUseCase    *goal.ListGoalsUseCase
	getUseCase     *goal.GetGoalUseCase
	updateUseCase  *goal.UpdateGoalUseCase
	depositUseCase *goal.DepositGoalUseCase
	pauseUseCase   *goal.PauseGoalUseCase
	resumeUseCase  *goal.ResumeGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	createUseCase *goal.CreateGoalUseCase,
	listUseCase *goal.ListGoalsUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	depositUseCase *goal.DepositGoalUseCase,
	pauseUseCase *goal.PauseGoalUseCase,
	resumeUseCase *goal.ResumeGoalUseCase,
) *GoalController {
	return &GoalController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		depositUseCase: depositUseCase,
		pauseUseCase:   pauseUseCase,
		resumeUseCase:  resumeUseCase,
	}
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	deadline, err := time.Parse(dateLayout, req.Deadline)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid deadline format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	initialAmount := decimal.Zero
	if req.InitialAmount != nil {
		initialAmount = *req.InitialAmount
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:        userID,
		Name:          req.Name,
		Icon:          req.Icon,
		TargetAmount:  req.TargetAmount,
		InitialAmount: initialAmount,
		Deadline:      deadline,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// List handles GET /goals requests. Goals are returned with their progress
// projections.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalProjectionResponse(output.Projection))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := goal.UpdateGoalInput{
		GoalID: goalID,
		UserID: userID,
		Name:   req.Name,
		Icon:   req.Icon,
	}

	if req.Deadline != nil {
		deadline, err := time.Parse(dateLayout, *req.Deadline)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid deadline format, expected YYYY-MM-DD",
			})
			return
		}
		input.Deadline = &deadline
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Deposit handles POST /goals/:id/deposit requests.
func (c *GoalController) Deposit(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.DepositGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidDepositAmount),
		})
		return
	}

	output, err := c.depositUseCase.Execute(ctx.Request.Context(), goal.DepositGoalInput{
		GoalID: goalID,
		UserID: userID,
		Amount: req.Amount,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	goalResponse := dto.ToGoalResponse(output.Goal)
	goalResponse.ProgressPercent = output.ProgressPercent
	ctx.JSON(http.StatusOK, dto.DepositGoalResponse{
		Goal:         goalResponse,
		Contribution: dto.ToTransactionResponse(output.Contribution),
	})
}

// Pause handles POST /goals/:id/pause requests.
func (c *GoalController) Pause(ctx *gin.Context) {
	c.setStatus(ctx, c.pauseUseCase.Execute)
}

// Resume handles POST /goals/:id/resume requests.
func (c *GoalController) Resume(ctx *gin.Context) {
	c.setStatus(ctx, c.resumeUseCase.Execute)
}

type setGoalStatusFunc func(ctx context.Context, input goal.SetGoalStatusInput) (*goal.SetGoalStatusOutput, error)

func (c *GoalController) setStatus(ctx *gin.Context, execute setGoalStatusFunc) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	output, err := execute(ctx.Request.Context(), goal.SetGoalStatusInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidInitialAmount,
		domainerror.ErrCodeInvalidDeadline,
		domainerror.ErrCodeInvalidDepositAmount,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeGoalNotActive,
		domainerror.ErrCodeInsufficientBalance,
		domainerror.ErrCodeDeadlinePassed,
		domainerror.ErrCodeInvalidStatusTransition:
		return http.StatusConflict
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
