package thread_local

// Counter keeps one integer per worker slot. Slots are padded apart so workers bumping
// neighbouring counters do not share a cache line.
type Counter struct {
	slots []paddedCount
}

type paddedCount struct {
	n int
	_ [56]byte
}

// Clear zeroes all slots and resizes to numThreads.
//
// Parameters:
//   - numThreads: the number of worker slots
func (c *Counter) Clear(numThreads int) {
	numThreads = max(numThreads, 1)
	if cap(c.slots) < numThreads {
		c.slots = make([]paddedCount, numThreads)
	}
	c.slots = c.slots[:numThreads]
	for i := range c.slots {
		c.slots[i].n = 0
	}
}

// Add increments the slot owned by threadIndex by delta.
//
// Parameters:
//   - threadIndex: the calling worker's slot
//   - delta: the amount to add
func (c *Counter) Add(threadIndex, delta int) {
	c.slots[threadIndex].n += delta
}

// Total sums all slots.
//
// Returns:
//   - int: the sum across slots
func (c *Counter) Total() int {
	total := 0
	for _, s := range c.slots {
		total += s.n
	}
	return total
}
