package work_queue

import (
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

type workQueue struct {
	// pool runs every chunk except the first, which the calling goroutine executes itself.
	pool worker.DynamicWorkerPool

	workers      int
	queueSize    int
	idleTimeout  time.Duration
	minBatchSize int

	nextTaskID atomic.Int64
	stopped    atomic.Bool
}

// WorkQueue distributes index ranges across a fixed set of worker slots.
//
// Slot 0 is always the calling goroutine; slots 1..NumThreads()-1 are pooled workers that
// persist across frames. Each call to ParallelFor hands every index to exactly one slot and
// blocks until all slots have finished, so per-slot buffers indexed by threadIndex can be
// written without locks and read safely once the call returns.
type WorkQueue interface {
	// NumThreads returns the number of worker slots, including the calling goroutine.
	//
	// Returns:
	//   - int: the slot count; thread indices passed to callbacks are always below it
	NumThreads() int

	// ParallelFor partitions [0, count) into contiguous chunks, at most one per slot, and runs
	// fn for each chunk. Chunk i always runs with threadIndex i. Blocks until every chunk returns.
	// A panic inside fn is recovered and logged; the remaining indices of that chunk are skipped.
	// Not reentrant: fn must not call ParallelFor on the same queue.
	//
	// Parameters:
	//   - count: the number of indices to distribute
	//   - fn: callback receiving the slot index and the half-open index range [begin, end)
	ParallelFor(count int, fn func(threadIndex, begin, end int))

	// Stop shuts down the pooled workers. Subsequent ParallelFor calls run inline on slot 0.
	Stop()
}

var _ WorkQueue = &workQueue{}

// NewWorkQueue creates a WorkQueue backed by a worker.DynamicWorkerPool.
// Defaults to runtime.NumCPU()-1 pooled workers (minimum 1) plus the calling goroutine.
//
// Parameters:
//   - options: functional options to configure the queue
//
// Returns:
//   - WorkQueue: the new queue
func NewWorkQueue(options ...WorkQueueBuilderOption) WorkQueue {
	wq := &workQueue{
		workers:      max(runtime.NumCPU()-1, 1),
		queueSize:    256,
		idleTimeout:  1 * time.Second,
		minBatchSize: 16,
	}
	for _, option := range options {
		option(wq)
	}

	if wq.workers > 0 {
		wq.pool = worker.NewDynamicWorkerPool(wq.workers, max(wq.queueSize, wq.workers), wq.idleTimeout)
	}
	return wq
}

func (wq *workQueue) NumThreads() int {
	return wq.workers + 1
}

func (wq *workQueue) Stop() {
	if wq.stopped.Swap(true) {
		return
	}
	if wq.pool != nil {
		wq.pool.Stop()
	}
}

func (wq *workQueue) ParallelFor(count int, fn func(threadIndex, begin, end int)) {
	if count <= 0 {
		return
	}

	numChunks := 1
	if wq.pool != nil && !wq.stopped.Load() {
		numChunks = min(wq.NumThreads(), (count+wq.minBatchSize-1)/max(wq.minBatchSize, 1))
		numChunks = max(numChunks, 1)
	}
	if numChunks == 1 {
		runChunk(fn, 0, 0, count)
		return
	}

	chunkSize := (count + numChunks - 1) / numChunks

	// Per-call barrier; pool.Wait() tracks pool-wide state and would also wait on other callers.
	var wg sync.WaitGroup
	for chunk := 1; chunk < numChunks; chunk++ {
		begin := chunk * chunkSize
		end := min(begin+chunkSize, count)
		if begin >= end {
			continue
		}
		wg.Add(1)
		threadIndex := chunk
		wq.pool.SubmitTask(worker.Task{
			ID: int(wq.nextTaskID.Add(1)),
			Do: func() (any, error) {
				defer wg.Done()
				runChunk(fn, threadIndex, begin, end)
				return nil, nil
			},
		})
	}

	runChunk(fn, 0, 0, min(chunkSize, count))
	wg.Wait()
}

// runChunk invokes fn and recovers from panics so one bad chunk cannot deadlock the barrier
// or take down a pooled worker.
func runChunk(fn func(threadIndex, begin, end int), threadIndex, begin, end int) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[WorkQueue] recovered from panic in slot %d, range [%d, %d): %v", threadIndex, begin, end, r)
		}
	}()
	fn(threadIndex, begin, end)
}

// ForEachParallel calls fn once for every element of items, spread across the queue's slots.
// Blocks until all elements have been visited.
//
// Parameters:
//   - wq: the queue to distribute work on
//   - items: the elements to visit
//   - fn: callback receiving the slot index, the element index, and the element
func ForEachParallel[T any](wq WorkQueue, items []T, fn func(threadIndex, index int, item T)) {
	wq.ParallelFor(len(items), func(threadIndex, begin, end int) {
		for i := begin; i < end; i++ {
			fn(threadIndex, i, items[i])
		}
	})
}
