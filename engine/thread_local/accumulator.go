// Package thread_local provides per-worker-slot buffers that are filled during a parallel
// phase without locking and merged afterwards by a single thread.
package thread_local

// Accumulator is an append-only buffer with one ordered slice per worker slot.
//
// A slot is only ever written by the worker that owns it during the parallel phase, so
// PushBack takes no lock. Reads (Size, AppendTo, ForEach) must happen after that phase
// has joined.
type Accumulator[T any] struct {
	threads [][]T
}

// NewAccumulator creates an Accumulator with numThreads empty slots.
//
// Parameters:
//   - numThreads: the number of worker slots
//
// Returns:
//   - *Accumulator[T]: the new accumulator
func NewAccumulator[T any](numThreads int) *Accumulator[T] {
	a := &Accumulator[T]{}
	a.Clear(numThreads)
	return a
}

// Clear empties every slot and resizes the slot list to numThreads. Slot capacity is kept
// so steady-state frames do not allocate.
//
// Parameters:
//   - numThreads: the number of worker slots for the next parallel phase
func (a *Accumulator[T]) Clear(numThreads int) {
	numThreads = max(numThreads, 1)
	if cap(a.threads) < numThreads {
		grown := make([][]T, numThreads)
		copy(grown, a.threads)
		a.threads = grown
	}
	a.threads = a.threads[:numThreads]
	for i := range a.threads {
		clear(a.threads[i])
		a.threads[i] = a.threads[i][:0]
	}
}

// PushBack appends value to the slot owned by threadIndex.
//
// Parameters:
//   - threadIndex: the calling worker's slot
//   - value: the value to append
func (a *Accumulator[T]) PushBack(threadIndex int, value T) {
	a.threads[threadIndex] = append(a.threads[threadIndex], value)
}

// NumThreads returns the number of slots.
//
// Returns:
//   - int: the slot count set by the last Clear
func (a *Accumulator[T]) NumThreads() int {
	return len(a.threads)
}

// Size returns the total number of values across all slots.
//
// Returns:
//   - int: the sum of per-slot lengths
func (a *Accumulator[T]) Size() int {
	n := 0
	for _, t := range a.threads {
		n += len(t)
	}
	return n
}

// Thread returns the values pushed to one slot, in push order. The slice aliases internal
// storage and must not be modified.
//
// Parameters:
//   - threadIndex: the slot to read
//
// Returns:
//   - []T: the slot's values
func (a *Accumulator[T]) Thread(threadIndex int) []T {
	return a.threads[threadIndex]
}

// ForEach calls fn for every value, slot by slot in ascending slot order.
//
// Parameters:
//   - fn: callback receiving the slot index and the value
func (a *Accumulator[T]) ForEach(fn func(threadIndex int, value T)) {
	for i, t := range a.threads {
		for _, v := range t {
			fn(i, v)
		}
	}
}

// AppendTo appends every value to dst in slot-major order and returns the extended slice.
// Given a deterministic partition of work across slots, the merged order is deterministic.
//
// Parameters:
//   - dst: the slice to append to (may be nil)
//
// Returns:
//   - []T: dst with all values appended
func (a *Accumulator[T]) AppendTo(dst []T) []T {
	if need := len(dst) + a.Size(); cap(dst) < need {
		grown := make([]T, len(dst), need)
		copy(grown, dst)
		dst = grown
	}
	for _, t := range a.threads {
		dst = append(dst, t...)
	}
	return dst
}
