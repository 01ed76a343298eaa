package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	StaleTaskRecoverySchedule = "*/30 * * * * *"
	DefaultVisibilityTimeout  = 5 * time.Minute
)

// StaleRequeuer moves tasks whose claim outlived the visibility timeout back to the queue.
type StaleRequeuer interface {
	RequeueStale(ctx context.Context, visibility time.Duration) (int, error)
}

// StaleTaskRecoveryJob hands tasks abandoned by crashed workers out again.
// Runs every 30 seconds.
type StaleTaskRecoveryJob struct {
	queue      StaleRequeuer
	visibility time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

func NewStaleTaskRecoveryJob(queue StaleRequeuer, visibility time.Duration, logger *slog.Logger) *StaleTaskRecoveryJob {
	if visibility <= 0 {
		visibility = DefaultVisibilityTimeout
	}
	return &StaleTaskRecoveryJob{
		queue:      queue,
		visibility: visibility,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stale_task_recovery_job"),
	}
}

func (j *StaleTaskRecoveryJob) Start() error {
	if _, err := j.cron.AddFunc(StaleTaskRecoverySchedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale task recovery job started",
		"schedule", StaleTaskRecoverySchedule, "visibility", j.visibility.String())
	return nil
}

// RunOnce performs a single recovery pass and returns how many tasks were requeued.
func (j *StaleTaskRecoveryJob) RunOnce(ctx context.Context) int {
	moved, err := j.queue.RequeueStale(ctx, j.visibility)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale task recovery failed", "error", err)
		return 0
	}
	if moved > 0 {
		j.logger.WarnContext(ctx, "Requeued stale tasks", "count", moved)
	}
	return moved
}

// Stop waits for a running pass to finish.
func (j *StaleTaskRecoveryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale task recovery job stopped")
}
