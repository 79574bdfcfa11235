package search

// Window is a contiguous run of candidates [Start, Start+Size).
type Window struct {
	Start int64
	Size  int64
}

// End is the first candidate after the window.
func (w Window) End() int64 {
	return w.Start + w.Size
}

// Next returns the window of the same size that follows w.
func (w Window) Next() Window {
	return Window{Start: w.Start + w.Size, Size: w.Size}
}

// Clip shrinks w so that it does not reach past limit.
func (w Window) Clip(limit int64) Window {
	if w.Start >= limit {
		w.Size = 0
	} else if w.Size > limit-w.Start {
		w.Size = limit - w.Start
	}
	return w
}

// ScratchBuffer holds one entry per candidate of a window. A matching
// candidate c is stored as c+1 so that zero always means "no match", even for
// the candidate zero itself.
type ScratchBuffer []uint64

// NewScratchBuffer allocates a buffer for windows of up to size candidates.
func NewScratchBuffer(size int64) ScratchBuffer {
	return make(ScratchBuffer, size)
}

// Match decodes entry i.
func (s ScratchBuffer) Match(i int) (uint64, bool) {
	if s[i] == 0 {
		return 0, false
	}
	return s[i] - 1, true
}

// ResultBuffer is the fixed-size readback of one batch's matches, in candidate
// order. Slots past the count returned by Collector.Fill are zero.
type ResultBuffer []uint64

// NewResultBuffer allocates a readback buffer for capacity matches.
func NewResultBuffer(capacity int) ResultBuffer {
	return make(ResultBuffer, capacity)
}

// Collector is the bounded result buffer. It keeps the first Cap() values
// pushed into it, in order, and counts the rest as dropped.
type Collector struct {
	values  []uint64
	dropped int64
}

// NewCollector returns an empty collector that holds up to capacity values.
func NewCollector(capacity int) *Collector {
	return &Collector{values: make([]uint64, 0, capacity)}
}

// Push appends v and reports true, or reports false and counts a drop if the
// collector is already full.
func (c *Collector) Push(v uint64) bool {
	if c.Full() {
		c.dropped++
		return false
	}
	c.values = append(c.values, v)
	return true
}

// Merge pushes every value held by other, in order, and carries over its drops.
func (c *Collector) Merge(other *Collector) {
	for _, v := range other.values {
		c.Push(v)
	}
	c.dropped += other.dropped
}

// Reset empties the collector without releasing its storage.
func (c *Collector) Reset() {
	c.values = c.values[:0]
	c.dropped = 0
}

func (c *Collector) Len() int       { return len(c.values) }
func (c *Collector) Cap() int       { return cap(c.values) }
func (c *Collector) Full() bool     { return len(c.values) == cap(c.values) }
func (c *Collector) Dropped() int64 { return c.dropped }

// Values returns the collected values. The slice is reused by the next Reset.
func (c *Collector) Values() []uint64 {
	return c.values
}

// Fill copies the collected values into rb and zeroes the remaining slots. It
// returns the number of values copied, which is at most len(rb).
func (c *Collector) Fill(rb ResultBuffer) int {
	n := copy(rb, c.values)
	clear(rb[n:])
	return n
}
