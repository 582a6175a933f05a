// Package notifier runs the periodic notification scan and delivers the
// resulting events to the per-user Redis queues.
package notifier

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

func newTestQueue(t *testing.T) *RedisQueue {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisQueue(client)
}

func lowBalanceEvent(userID uuid.UUID, balance int64, emittedAt time.Time) entity.NotificationEvent {
	amount := decimal.NewFromInt(balance)
	return entity.NotificationEvent{
		Type:      entity.NotificationLowBalance,
		UserID:    userID,
		EmittedAt: emittedAt,
		Balance:   &amount,
	}
}

func TestRedisQueue_EnqueueDrain(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	emittedAt := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)

	t.Run("drains in enqueue order", func(t *testing.T) {
		queue := newTestQueue(t)

		goalID := uuid.New()
		first := lowBalanceEvent(userID, 500, emittedAt)
		second := entity.NotificationEvent{
			Type:      entity.NotificationGoalCompleted,
			UserID:    userID,
			EmittedAt: emittedAt.Add(time.Minute),
			GoalID:    &goalID,
			GoalName:  "Vacation fund",
		}

		if err := queue.Enqueue(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := queue.Enqueue(ctx, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		events, err := queue.Drain(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].Type != entity.NotificationLowBalance {
			t.Errorf("expected oldest event first, got %s", events[0].Type)
		}
		if events[0].Balance == nil || !events[0].Balance.Equal(decimal.NewFromInt(500)) {
			t.Error("expected balance payload to survive the round trip")
		}
		if events[1].GoalID == nil || *events[1].GoalID != goalID {
			t.Error("expected goal ID payload to survive the round trip")
		}
		if events[1].GoalName != "Vacation fund" {
			t.Errorf("expected goal name to survive, got %q", events[1].GoalName)
		}
	})

	t.Run("drain consumes the queue", func(t *testing.T) {
		queue := newTestQueue(t)

		if err := queue.Enqueue(ctx, lowBalanceEvent(userID, 100, emittedAt)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := queue.Drain(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		events, err := queue.Drain(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 0 {
			t.Errorf("expected empty queue after drain, got %d events", len(events))
		}
	})

	t.Run("queues are isolated per user", func(t *testing.T) {
		queue := newTestQueue(t)
		otherUser := uuid.New()

		if err := queue.Enqueue(ctx, lowBalanceEvent(userID, 100, emittedAt)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := queue.Enqueue(ctx, lowBalanceEvent(otherUser, 200, emittedAt)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		events, err := queue.Drain(ctx, otherUser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		if events[0].UserID != otherUser {
			t.Error("expected the other user's event")
		}

		// The first user's queue is untouched.
		events, err = queue.Drain(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 {
			t.Errorf("expected 1 event for the first user, got %d", len(events))
		}
	})

	t.Run("drain of an empty queue is not an error", func(t *testing.T) {
		queue := newTestQueue(t)

		events, err := queue.Drain(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 0 {
			t.Errorf("expected no events, got %d", len(events))
		}
	})
}
