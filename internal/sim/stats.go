package sim

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Stats collects scenario counters in a lock-free manner.
type Stats struct {
	inserted   atomic.Uint64
	outOfOrder atomic.Uint64
	evicted    atomic.Uint64
	startTime  time.Time
}

// NewStats creates a new statistics collector.
func NewStats() *Stats {
	return &Stats{startTime: time.Now()}
}

// RecordInsert increments the inserted-entry counter.
func (s *Stats) RecordInsert() {
	s.inserted.Add(1)
}

// RecordOutOfOrder increments the out-of-order arrival counter.
func (s *Stats) RecordOutOfOrder() {
	s.outOfOrder.Add(1)
}

// RecordEvicted adds n to the evicted-entry counter.
func (s *Stats) RecordEvicted(n int) {
	if n > 0 {
		s.evicted.Add(uint64(n))
	}
}

// Inserted returns the total number of inserted entries.
func (s *Stats) Inserted() uint64 { return s.inserted.Load() }

// OutOfOrder returns the number of entries that arrived out of order.
func (s *Stats) OutOfOrder() uint64 { return s.outOfOrder.Load() }

// Evicted returns the total number of evicted entries.
func (s *Stats) Evicted() uint64 { return s.evicted.Load() }

// Elapsed returns the time since collection started.
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.startTime)
}

// Summary returns a formatted summary string.
func (s *Stats) Summary() string {
	return fmt.Sprintf(
		"── Summary ──\n"+
			"  Inserted:     %d\n"+
			"  Out of order: %d\n"+
			"  Evicted:      %d\n"+
			"  Duration:     %s\n"+
			"─────────────",
		s.Inserted(), s.OutOfOrder(), s.Evicted(),
		s.Elapsed().Round(time.Millisecond),
	)
}
