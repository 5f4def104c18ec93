package work_queue

import "time"

// WorkQueueBuilderOption is a functional option for configuring a WorkQueue.
type WorkQueueBuilderOption func(*workQueue)

// WithWorkers sets the number of pooled worker goroutines. The calling goroutine is an
// additional slot, so NumThreads() is n+1. Zero disables the pool and runs everything inline.
//
// Parameters:
//   - n: the number of pooled workers (negative values are treated as 0)
//
// Returns:
//   - WorkQueueBuilderOption: option function to apply
func WithWorkers(n int) WorkQueueBuilderOption {
	return func(wq *workQueue) {
		wq.workers = max(n, 0)
	}
}

// WithQueueSize sets the capacity of the pool's task channel. It is raised to at least the
// worker count so a full fan-out never blocks on submission.
//
// Parameters:
//   - size: task channel capacity
//
// Returns:
//   - WorkQueueBuilderOption: option function to apply
func WithQueueSize(size int) WorkQueueBuilderOption {
	return func(wq *workQueue) {
		wq.queueSize = size
	}
}

// WithIdleTimeout sets the idle timeout passed to the underlying worker pool.
//
// Parameters:
//   - d: idle timeout
//
// Returns:
//   - WorkQueueBuilderOption: option function to apply
func WithIdleTimeout(d time.Duration) WorkQueueBuilderOption {
	return func(wq *workQueue) {
		wq.idleTimeout = d
	}
}

// WithMinBatchSize sets the minimum number of indices per chunk. Ranges smaller than this
// run on the calling goroutine alone. Default is 16.
//
// Parameters:
//   - n: minimum chunk size (minimum 1)
//
// Returns:
//   - WorkQueueBuilderOption: option function to apply
func WithMinBatchSize(n int) WorkQueueBuilderOption {
	return func(wq *workQueue) {
		wq.minBatchSize = max(n, 1)
	}
}
