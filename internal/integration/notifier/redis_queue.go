// Package notifier runs the periodic notification scan and delivers the
// resulting events to the per-user Redis queues.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// RedisQueue implements the adapter.NotificationQueue interface on a Redis
// list per user. Events are appended to the tail so a range read returns
// oldest first.
type RedisQueue struct {
	client *redis.Client
}

// NewRedisQueue creates a new Redis-backed notification queue.
func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{
		client: client,
	}
}

// queueKey builds the Redis key for a user's pending notifications.
func queueKey(userID uuid.UUID) string {
	return fmt.Sprintf("notifications:%s", userID)
}

// Enqueue appends an event to the user's pending notification queue.
func (q *RedisQueue) Enqueue(ctx context.Context, event entity.NotificationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeEventEncoding,
			"failed to encode notification event",
			err,
		)
	}

	if err := q.client.RPush(ctx, queueKey(event.UserID), payload).Err(); err != nil {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeQueueUnavailable,
			"failed to enqueue notification event",
			err,
		)
	}

	return nil
}

// Drain removes and returns all pending events for a user, oldest first. The
// read and the delete run in a single transaction so no event is lost to a
// concurrent enqueue.
func (q *RedisQueue) Drain(ctx context.Context, userID uuid.UUID) ([]entity.NotificationEvent, error) {
	key := queueKey(userID)

	var payloads []string
	err := q.client.Watch(ctx, func(tx *redis.Tx) error {
		var err error
		payloads, err = tx.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeQueueUnavailable,
			"failed to drain notification queue",
			err,
		)
	}

	events := make([]entity.NotificationEvent, 0, len(payloads))
	for _, payload := range payloads {
		var event entity.NotificationEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			return nil, domainerror.NewNotificationError(
				domainerror.ErrCodeEventEncoding,
				"failed to decode notification event",
				err,
			)
		}
		events = append(events, event)
	}

	return events, nil
}

// Ensure implementation satisfies the interface.
var _ adapter.NotificationQueue = (*RedisQueue)(nil)
