// Package redisqueue is a reliable task queue on Redis lists.
//
// Producers LPUSH onto the queue key. A worker claims a task with BLMOVE into
// "<key>:processing" and records the claim time in the "<key>:leases" hash.
// Ack removes the entry from both. Entries whose lease is older than the
// visibility timeout are pushed back to the queue by RequeueStale.
package redisqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const DefaultKey = "ecofleet:tasks:email"

// requeueScript only pushes the entry back when it was still in flight, so a
// task acknowledged between LRANGE and the script is not run twice.
var requeueScript = redis.NewScript(`
if redis.call('LREM', KEYS[1], 1, ARGV[1]) == 1 then
	redis.call('RPUSH', KEYS[2], ARGV[1])
	redis.call('HDEL', KEYS[3], ARGV[1])
	return 1
end
redis.call('HDEL', KEYS[3], ARGV[1])
return 0
`)

type envelope struct {
	Task       string    `json:"task"`
	OrderID    string    `json:"order_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// Queue implements ports.TaskQueue and ports.TaskConsumer.
type Queue struct {
	rdb *redis.Client
	key string
	now func() time.Time
}

type Option func(*Queue)

// WithClock replaces time.Now for lease bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		q.now = now
	}
}

func NewQueue(rdb *redis.Client, key string, opts ...Option) *Queue {
	if key == "" {
		key = DefaultKey
	}
	q := &Queue{
		rdb: rdb,
		key: key,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *Queue) processingKey() string {
	return q.key + ":processing"
}

func (q *Queue) leasesKey() string {
	return q.key + ":leases"
}

func (q *Queue) EnqueueStatusEmail(ctx context.Context, orderID kernel.UUID) error {
	raw, err := json.Marshal(envelope{
		Task:       ports.TaskSendDeliveryStatusEmail,
		OrderID:    orderID.String(),
		EnqueuedAt: q.now().UTC(),
	})
	if err != nil {
		return err
	}

	if err = q.rdb.LPush(ctx, q.key, raw).Err(); err != nil {
		return fmt.Errorf("enqueue %s: %w", ports.TaskSendDeliveryStatusEmail, err)
	}
	return nil
}

// Claim returns ports.ErrMalformedTask, together with a Task carrying Raw, for an
// entry that cannot be decoded; the caller should Ack it to drop it.
func (q *Queue) Claim(ctx context.Context, wait time.Duration) (ports.Task, error) {
	raw, err := q.rdb.BLMove(ctx, q.key, q.processingKey(), "RIGHT", "LEFT", wait).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.Task{}, ports.ErrNoTask
		}
		return ports.Task{}, err
	}

	lease := strconv.FormatInt(q.now().UnixMilli(), 10)
	if err = q.rdb.HSet(ctx, q.leasesKey(), raw, lease).Err(); err != nil {
		// RequeueStale leases unknown entries on its next run
		return ports.Task{}, err
	}

	return decode(raw)
}

func (q *Queue) Ack(ctx context.Context, task ports.Task) error {
	_, err := q.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, q.processingKey(), 1, task.Raw)
		pipe.HDel(ctx, q.leasesKey(), task.Raw)
		return nil
	})
	return err
}

func (q *Queue) RequeueStale(ctx context.Context, visibility time.Duration) (int, error) {
	inFlight, err := q.rdb.LRange(ctx, q.processingKey(), 0, -1).Result()
	if err != nil {
		return 0, err
	}
	if len(inFlight) == 0 {
		return 0, nil
	}

	leases, err := q.rdb.HGetAll(ctx, q.leasesKey()).Result()
	if err != nil {
		return 0, err
	}

	now := q.now()
	moved := 0
	for _, raw := range inFlight {
		leasedAt, ok := parseLease(leases[raw])
		if !ok {
			// claimed by a worker that died before writing its lease
			if err = q.rdb.HSetNX(ctx, q.leasesKey(), raw, strconv.FormatInt(now.UnixMilli(), 10)).Err(); err != nil {
				return moved, err
			}
			continue
		}
		if now.Sub(leasedAt) < visibility {
			continue
		}

		n, err := requeueScript.Run(ctx, q.rdb,
			[]string{q.processingKey(), q.key, q.leasesKey()}, raw).Int()
		if err != nil {
			return moved, err
		}
		moved += n
	}

	return moved, nil
}

// Len reports the pending and in-flight task counts.
func (q *Queue) Len(ctx context.Context) (pending, inFlight int64, err error) {
	pending, err = q.rdb.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, 0, err
	}
	inFlight, err = q.rdb.LLen(ctx, q.processingKey()).Result()
	return pending, inFlight, err
}

func parseLease(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

func decode(raw string) (ports.Task, error) {
	task := ports.Task{Raw: raw}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return task, fmt.Errorf("%w: %w", ports.ErrMalformedTask, err)
	}

	orderID, err := kernel.UUIDFromString(env.OrderID)
	if err != nil {
		return task, fmt.Errorf("%w: %w", ports.ErrMalformedTask, err)
	}

	task.Name = env.Task
	task.OrderID = orderID
	task.EnqueuedAt = env.EnqueuedAt
	return task, nil
}
