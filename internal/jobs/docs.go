// Package jobs runs the scheduled background work of the order service on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderExpiryJob sweeps the pending pool and drops orders that waited longer than the
// admission timeout without being paid. Payment attempts apply the same rule lazily; the
// sweep keeps abandoned orders from piling up.
//
// # Usage
//
//	expiry, err := jobs.NewOrderExpiryJob(registry, "@every 30s", logger)
//	if err != nil {
//		return err
//	}
//	manager := jobs.NewJobManager(expiry)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// Schedules use the standard five-field cron syntax or descriptors such as "@every 30s".
package jobs
