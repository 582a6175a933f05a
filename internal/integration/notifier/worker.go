// Package notifier runs the periodic notification scan and delivers the
// resulting events to the per-user Redis queues.
package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/balance"
	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
	"github.com/pocket-ledger/backend/internal/application/usecase/notification"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/integration/email"
)

// Worker periodically evaluates the dispatch policy for every user and
// enqueues the resulting events. It runs on its own goroutine and never
// blocks request handling.
type Worker struct {
	userRepo       adapter.UserRepository
	goalRepo       adapter.GoalRepository
	queue          adapter.NotificationQueue
	balanceUseCase *balance.ComputeBalanceUseCase
	budgetsUseCase *budget.ListBudgetsUseCase
	emailSender    adapter.EmailSender
	digestRenderer *email.DigestRenderer
	policy         notification.PolicyConfig
	scanInterval   time.Duration
	now            func() time.Time
}

// WorkerConfig holds configuration for the notification worker.
type WorkerConfig struct {
	ScanInterval time.Duration
	Policy       notification.PolicyConfig
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		ScanInterval: 15 * time.Minute,
		Policy:       notification.DefaultPolicyConfig(),
	}
}

// NewWorker creates a new notification worker. emailSender and
// digestRenderer may be nil, in which case no digest emails are sent.
func NewWorker(
	userRepo adapter.UserRepository,
	goalRepo adapter.GoalRepository,
	queue adapter.NotificationQueue,
	balanceUseCase *balance.ComputeBalanceUseCase,
	budgetsUseCase *budget.ListBudgetsUseCase,
	emailSender adapter.EmailSender,
	digestRenderer *email.DigestRenderer,
	config WorkerConfig,
) *Worker {
	return &Worker{
		userRepo:       userRepo,
		goalRepo:       goalRepo,
		queue:          queue,
		balanceUseCase: balanceUseCase,
		budgetsUseCase: budgetsUseCase,
		emailSender:    emailSender,
		digestRenderer: digestRenderer,
		policy:         config.Policy,
		scanInterval:   config.ScanInterval,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Notification worker started",
		"scan_interval", w.scanInterval,
		"low_balance_floor", w.policy.LowBalanceFloor,
		"deadline_window_days", w.policy.DeadlineWindowDays,
	)

	ticker := time.NewTicker(w.scanInterval)
	defer ticker.Stop()

	// Scan immediately on start, then on ticker
	w.Scan(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Notification worker shutting down")
			return
		case <-ticker.C:
			w.Scan(ctx)
		}
	}
}

// Scan evaluates the dispatch policy for every registered user.
func (w *Worker) Scan(ctx context.Context) {
	userIDs, err := w.userRepo.ListIDs(ctx)
	if err != nil {
		slog.Error("Failed to list users for notification scan", "error", err)
		return
	}

	for _, userID := range userIDs {
		select {
		case <-ctx.Done():
			return
		default:
			w.scanUser(ctx, userID)
		}
	}
}

// scanUser gathers the user's ledger state, runs the policy and enqueues the
// resulting events.
func (w *Worker) scanUser(ctx context.Context, userID uuid.UUID) {
	logger := slog.With("user_id", userID)

	balanceOut, err := w.balanceUseCase.Execute(ctx, balance.ComputeBalanceInput{UserID: userID})
	if err != nil {
		logger.Error("Failed to compute balance", "error", err)
		return
	}

	budgetsOut, err := w.budgetsUseCase.Execute(ctx, budget.ListBudgetsInput{UserID: userID})
	if err != nil {
		logger.Error("Failed to compute budget statuses", "error", err)
		return
	}

	goals, err := w.goalRepo.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to load goals", "error", err)
		return
	}

	events := notification.Decide(w.policy, notification.DecideInput{
		UserID:  userID,
		Balance: balanceOut.Balance,
		Budgets: budgetsOut.Statuses,
		Goals:   goals,
		Now:     w.now(),
	})

	if len(events) == 0 {
		return
	}

	enqueued := 0
	for _, event := range events {
		if err := w.queue.Enqueue(ctx, event); err != nil {
			logger.Error("Failed to enqueue notification event", "type", event.Type, "error", err)
			continue
		}
		enqueued++

		// A completion is announced exactly once. The flag is flipped only
		// after the event made it onto the queue.
		if event.Type == entity.NotificationGoalCompleted && event.GoalID != nil {
			w.markCompletionNotified(ctx, goals, *event.GoalID)
		}
	}

	logger.Debug("Notification scan finished", "events", enqueued)

	if enqueued > 0 {
		w.sendDigest(ctx, userID, events)
	}
}

// markCompletionNotified flips the goal's completion-notified flag.
func (w *Worker) markCompletionNotified(ctx context.Context, goals []*entity.Goal, goalID uuid.UUID) {
	for _, goal := range goals {
		if goal.ID != goalID {
			continue
		}
		goal.CompletionNotified = true
		goal.UpdatedAt = w.now()
		if err := w.goalRepo.Update(ctx, goal); err != nil {
			slog.Error("Failed to mark goal completion as notified", "goal_id", goalID, "error", err)
		}
		return
	}
}

// sendDigest emails a summary of the scan's events to users who opted in.
func (w *Worker) sendDigest(ctx context.Context, userID uuid.UUID, events []entity.NotificationEvent) {
	if w.emailSender == nil || w.digestRenderer == nil {
		return
	}

	user, err := w.userRepo.FindByID(ctx, userID)
	if err != nil {
		slog.Error("Failed to load user for digest", "user_id", userID, "error", err)
		return
	}
	if !user.DigestOptIn {
		return
	}

	lines := make([]string, 0, len(events))
	for _, event := range events {
		lines = append(lines, email.DigestLine(event))
	}

	html, text, err := w.digestRenderer.Render(email.DigestData{
		UserName: user.Name,
		Lines:    lines,
	})
	if err != nil {
		slog.Error("Failed to render digest email", "user_id", userID, "error", err)
		return
	}

	result, err := w.emailSender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Name:    user.Name,
		Subject: "Your Pocket Ledger updates",
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		slog.Error("Failed to send digest email", "user_id", userID, "error", err)
		return
	}

	slog.Info("Digest email sent", "user_id", userID, "provider_id", result.ProviderID)
}
