package concurrency

import (
	"context"
	"errors"
	"time"
)

type ThrottledWorker struct {
	interval    time.Duration
	jobCallback func(ctx context.Context, arg string) error
}

func NewThrottledWorker(interval time.Duration, jobCallback func(ctx context.Context, arg string) error) ThrottledWorker {
	return ThrottledWorker{interval: interval, jobCallback: jobCallback}
}

// Run calls the job for each arg in order, waiting for the interval before each call.
// Every job runs even if an earlier one fails; the errors are joined.
func (w *ThrottledWorker) Run(ctx context.Context, jobArgs []string) error {

	jobArgsChannel := make(chan string, len(jobArgs))

	for _, arg := range jobArgs {
		jobArgsChannel <- arg
	}
	close(jobArgsChannel)
	limiter := time.NewTicker(w.interval)
	defer limiter.Stop()

	var errs []error
	for arg := range jobArgsChannel {
		select {
		case <-ctx.Done():
			return errors.Join(append(errs, ctx.Err())...)
		case <-limiter.C:
		}
		if err := w.jobCallback(ctx, arg); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
