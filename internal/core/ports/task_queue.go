package ports

import (
	"context"
	"errors"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
)

// TaskSendDeliveryStatusEmail is the only task kind produced by the dispatch flow.
const TaskSendDeliveryStatusEmail = "send_delivery_status_email"

var (
	// ErrNoTask is returned by TaskConsumer.Claim when the wait timed out without work.
	ErrNoTask = errors.New("no task available")

	// ErrMalformedTask is returned by TaskConsumer.Claim for an entry that
	// cannot be decoded. The returned Task still carries Raw so it can be acked.
	ErrMalformedTask = errors.New("malformed task envelope")
)

// Task is a queued unit of deferred work. Raw is the exact queued encoding
// and is what Ack removes.
type Task struct {
	Name       string
	OrderID    kernel.UUID
	EnqueuedAt time.Time
	Raw        string
}

// TaskQueue is the producer side of the deferred-work queue.
type TaskQueue interface {
	EnqueueStatusEmail(ctx context.Context, orderID kernel.UUID) error
}

// TaskConsumer is the worker side. Delivery is at-least-once: a claimed task
// that is never acknowledged is handed out again after the visibility timeout.
type TaskConsumer interface {
	// Claim blocks up to wait for a task. It returns ErrNoTask on timeout.
	Claim(ctx context.Context, wait time.Duration) (Task, error)

	// Ack removes a finished task from the in-flight list.
	Ack(ctx context.Context, task Task) error

	// RequeueStale moves tasks claimed longer than visibility ago back to the
	// queue and returns how many were moved.
	RequeueStale(ctx context.Context, visibility time.Duration) (int, error)
}
