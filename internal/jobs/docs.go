// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Runs every minute to cancel pending orders
// that were never confirmed within the configured time-to-live.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, staleOrderTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The cancellation job logs every failure; an empty sweep is a normal
// outcome, not an error.
package jobs
