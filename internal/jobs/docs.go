// Package jobs runs the background work of the dispatch service.
//
// # Available Jobs
//
// 1. EmailWorkerPool - a fixed number of goroutines claiming status email tasks from the queue
// 2. StaleTaskRecoveryJob - a github.com/robfig/cron/v3 job that every 30 seconds requeues tasks
// whose worker never acknowledged them
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewEmailWorkerPool(queue, emailHandler, cfg.EmailWorkers, 0, logger),
//		jobs.NewStaleTaskRecoveryJob(queue, 0, logger),
//	)
//	if err := jobManager.StartAll(ctx); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Delivery
//
// Tasks are delivered at least once. The email handler re-fetches the order
// by id, so running a task twice sends the current state.
package jobs
