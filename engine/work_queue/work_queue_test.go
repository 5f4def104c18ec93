package work_queue

import (
	"sync/atomic"
	"testing"
)

func TestParallelFor_VisitsEachIndexOnce(t *testing.T) {
	wq := NewWorkQueue(WithWorkers(3), WithMinBatchSize(1))
	defer wq.Stop()

	if wq.NumThreads() != 4 {
		t.Fatalf("expected 4 slots, got %d", wq.NumThreads())
	}

	const count = 1000
	visits := make([]atomic.Int32, count)
	var badSlot atomic.Bool

	for frame := 0; frame < 5; frame++ {
		wq.ParallelFor(count, func(threadIndex, begin, end int) {
			if threadIndex < 0 || threadIndex >= wq.NumThreads() {
				badSlot.Store(true)
			}
			for i := begin; i < end; i++ {
				visits[i].Add(1)
			}
		})
	}

	if badSlot.Load() {
		t.Fatal("callback received a thread index outside [0, NumThreads)")
	}
	for i := range visits {
		if n := visits[i].Load(); n != 5 {
			t.Fatalf("index %d: expected 5 visits over 5 frames, got %d", i, n)
		}
	}
}

func TestParallelFor_ChunkOwnershipIsDeterministic(t *testing.T) {
	wq := NewWorkQueue(WithWorkers(2), WithMinBatchSize(1))
	defer wq.Stop()

	const count = 30
	run := func() []int {
		owner := make([]int, count)
		wq.ParallelFor(count, func(threadIndex, begin, end int) {
			for i := begin; i < end; i++ {
				owner[i] = threadIndex
			}
		})
		return owner
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("index %d moved from slot %d to slot %d between calls", i, first[i], second[i])
		}
		if i > 0 && first[i] < first[i-1] {
			t.Fatalf("expected contiguous ascending chunks, got %v", first)
		}
	}
}

func TestParallelFor_SmallRangeRunsInline(t *testing.T) {
	wq := NewWorkQueue(WithWorkers(4), WithMinBatchSize(64))
	defer wq.Stop()

	var slots atomic.Int32
	wq.ParallelFor(10, func(threadIndex, begin, end int) {
		if threadIndex != 0 || begin != 0 || end != 10 {
			t.Errorf("expected single inline chunk, got slot %d [%d, %d)", threadIndex, begin, end)
		}
		slots.Add(1)
	})
	if slots.Load() != 1 {
		t.Fatalf("expected one chunk, got %d", slots.Load())
	}
}

func TestParallelFor_RecoversPanics(t *testing.T) {
	wq := NewWorkQueue(WithWorkers(2), WithMinBatchSize(1))
	defer wq.Stop()

	var done atomic.Int32
	wq.ParallelFor(3, func(threadIndex, begin, end int) {
		if threadIndex == 1 {
			panic("boom")
		}
		done.Add(int32(end - begin))
	})
	if done.Load() != 2 {
		t.Fatalf("expected the two healthy chunks to finish, got %d indices", done.Load())
	}
}

func TestForEachParallel_NoPool(t *testing.T) {
	wq := NewWorkQueue(WithWorkers(0))
	defer wq.Stop()

	items := []string{"a", "b", "c"}
	var out [3]string
	ForEachParallel(wq, items, func(threadIndex, index int, item string) {
		if threadIndex != 0 {
			t.Errorf("expected slot 0 without a pool, got %d", threadIndex)
		}
		out[index] = item
	})
	if out != [3]string{"a", "b", "c"} {
		t.Fatalf("unexpected output %v", out)
	}
}
