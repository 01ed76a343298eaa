package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"ecofleet/internal/core/application/usecases/commands"
	"ecofleet/internal/core/ports"
)

const (
	DefaultEmailWorkers = 2
	DefaultClaimWait    = 5 * time.Second
	claimErrorBackoff   = time.Second
)

type StatusEmailHandler interface {
	Handle(ctx context.Context, cmd commands.SendDeliveryStatusEmailCommand) (commands.EmailResult, error)
}

// EmailWorkerPool consumes status email tasks. A task is acknowledged once the
// handler returns without error; a storage failure leaves it in flight so the
// recovery job hands it out again.
type EmailWorkerPool struct {
	consumer  ports.TaskConsumer
	handler   StatusEmailHandler
	workers   int
	claimWait time.Duration
	logger    *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewEmailWorkerPool(
	consumer ports.TaskConsumer,
	handler StatusEmailHandler,
	workers int,
	claimWait time.Duration,
	logger *slog.Logger,
) *EmailWorkerPool {
	if workers <= 0 {
		workers = DefaultEmailWorkers
	}
	if claimWait <= 0 {
		claimWait = DefaultClaimWait
	}
	return &EmailWorkerPool{
		consumer:  consumer,
		handler:   handler,
		workers:   workers,
		claimWait: claimWait,
		logger:    logger.With("component", "email_worker_pool"),
	}
}

func (p *EmailWorkerPool) Start(ctx context.Context) error {
	if p.cancel != nil {
		return errors.New("email worker pool already started")
	}

	ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.workers; i++ {
		i := i
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.run(ctx, i)
		}()
	}

	p.logger.InfoContext(ctx, "Email worker pool started", "workers", p.workers)
	return nil
}

// Stop cancels pending claims and waits for in-progress tasks to finish.
func (p *EmailWorkerPool) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.wg.Wait()
	p.cancel = nil
	p.logger.InfoContext(context.Background(), "Email worker pool stopped")
}

func (p *EmailWorkerPool) run(ctx context.Context, worker int) {
	logger := p.logger.With("worker", worker)

	for ctx.Err() == nil {
		task, err := p.consumer.Claim(ctx, p.claimWait)
		switch {
		case err == nil:
			p.process(ctx, logger, task)
		case errors.Is(err, ports.ErrNoTask):
		case errors.Is(err, ports.ErrMalformedTask):
			logger.ErrorContext(ctx, "Dropping malformed task", "raw", task.Raw, "error", err)
			p.ack(ctx, logger, task)
		case ctx.Err() != nil:
			return
		default:
			logger.ErrorContext(ctx, "Failed to claim task", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(claimErrorBackoff):
			}
		}
	}
}

func (p *EmailWorkerPool) process(ctx context.Context, logger *slog.Logger, task ports.Task) {
	if task.Name != ports.TaskSendDeliveryStatusEmail {
		logger.ErrorContext(ctx, "Dropping task of unknown kind", "task", task.Name)
		p.ack(ctx, logger, task)
		return
	}

	cmd, err := commands.NewSendDeliveryStatusEmailCommand(task.OrderID)
	if err != nil {
		logger.ErrorContext(ctx, "Dropping invalid task", "raw", task.Raw, "error", err)
		p.ack(ctx, logger, task)
		return
	}

	// A task that was claimed runs to completion even while stopping.
	runCtx := context.WithoutCancel(ctx)
	result, err := p.handler.Handle(runCtx, cmd)
	if err != nil {
		logger.ErrorContext(ctx, "Status email task failed, leaving it for redelivery",
			"order_id", task.OrderID.String(), "error", err)
		return
	}

	logger.DebugContext(ctx, "Status email task done", "order_id", task.OrderID.String(), "result", string(result))
	p.ack(runCtx, logger, task)
}

func (p *EmailWorkerPool) ack(ctx context.Context, logger *slog.Logger, task ports.Task) {
	if err := p.consumer.Ack(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to acknowledge task", "order_id", task.OrderID.String(), "error", err)
	}
}
