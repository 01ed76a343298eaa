package jobs

import (
	"context"
	"fmt"
)

// JobManager starts and stops the background workers of the process.
type JobManager struct {
	emailWorkers *EmailWorkerPool
	recovery     *StaleTaskRecoveryJob
}

func NewJobManager(emailWorkers *EmailWorkerPool, recovery *StaleTaskRecoveryJob) *JobManager {
	return &JobManager{
		emailWorkers: emailWorkers,
		recovery:     recovery,
	}
}

// StartAll starts every job. A failure stops the jobs already running.
func (jm *JobManager) StartAll(ctx context.Context) error {
	if err := jm.recovery.Start(); err != nil {
		return fmt.Errorf("failed to start stale task recovery job: %w", err)
	}

	if err := jm.emailWorkers.Start(ctx); err != nil {
		jm.recovery.Stop()
		return fmt.Errorf("failed to start email worker pool: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.emailWorkers.Stop()
	jm.recovery.Stop()
}
