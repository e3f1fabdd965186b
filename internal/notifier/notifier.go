package notifier

import "context"

type Client interface {
	// ScheduleDigest sets up the recurring job that sends the upcoming
	// posts digest. The job runs until the context is cancelled.
	ScheduleDigest(ctx context.Context) error

	// Shutdown stops the digest scheduler and waits for a running job
	// to finish.
	Shutdown() error
}
