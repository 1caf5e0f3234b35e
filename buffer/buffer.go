package buffer

import (
	"fmt"
	"io"
	"strings"

	"github.com/statefuse/statefuse/clock"
	"github.com/statefuse/statefuse/sensor"
)

// DefaultMaxSize is the capacity used when the buffer is constructed
// with a size of zero.
const DefaultMaxSize = 300

// Buffer is an ordered, bounded collection of entries. Entries are kept in
// non-decreasing timestamp order at all times; equal timestamps preserve
// insertion order. The buffer may transiently grow beyond its configured
// maximum to avoid evicting the sole remaining state of a sensor, which
// would make that sensor's filter chain unrecoverable.
//
// All operations are synchronous and run to completion without blocking.
// The buffer defines no internal locking; concurrent producers must
// serialize access externally. Entries returned by queries are copies whose
// payload slots alias shared payload objects and must be treated as
// read-only snapshots.
type Buffer struct {
	entries []Entry
	maxSize int
}

// New creates a buffer holding at most maxSize entries. A negative size is
// interpreted by absolute value; zero selects DefaultMaxSize.
func New(maxSize int) *Buffer {
	if maxSize < 0 {
		maxSize = -maxSize
	}
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}
	return &Buffer{
		entries: make([]Entry, 0, maxSize),
		maxSize: maxSize,
	}
}

// MaxSize returns the configured maximum number of entries.
func (b *Buffer) MaxSize() int { return b.maxSize }

// SetMaxSize changes the configured maximum. Non-positive values are
// ignored and the previous maximum is retained.
func (b *Buffer) SetMaxSize(n int) {
	if n > 0 {
		b.maxSize = n
	}
}

// Len returns the current number of entries.
func (b *Buffer) Len() int { return len(b.entries) }

// IsEmpty reports whether the buffer holds no entries.
func (b *Buffer) IsEmpty() bool { return len(b.entries) == 0 }

// Reset removes every entry from the buffer.
func (b *Buffer) Reset() {
	b.entries = b.entries[:0]
}

// IsSorted re-verifies the ordering invariant. Diagnostic only; the
// insertion operations maintain the invariant themselves.
func (b *Buffer) IsSorted() bool {
	for i := 1; i < len(b.entries); i++ {
		if b.entries[i].timestamp.Before(b.entries[i-1].timestamp) {
			return false
		}
	}
	return true
}

// AddEntrySorted inserts e at its sorted position and returns the index at
// which it now resides. An entry whose timestamp matches existing entries
// is placed after the last of them. Eviction is not triggered; callers run
// RemoveOverflowEntries after insertion as part of the standard flow.
func (b *Buffer) AddEntrySorted(e Entry) int {
	return b.InsertDataAtTimestamp(e)
}

// InsertDataAtTimestamp inserts e at its sorted position and returns the
// resulting index. The contract is identical to AddEntrySorted; the
// returned index tells the filter core from which point forward state
// re-propagation must be redone when e arrived out of order.
func (b *Buffer) InsertDataAtTimestamp(e Entry) int {
	idx := b.upperBound(e.timestamp)
	b.insertAt(idx, e)
	return idx
}

// InsertIntermediateData inserts a synthetic (measurement, state) pair that
// bridges a gap caused by an out-of-order insertion, so a sensor's
// propagation chain stays unbroken. Exactly one argument must be a
// measurement-kind entry and the other a state-kind entry, both for the
// same timestamp; otherwise no mutation happens and false is returned. On
// success both entries are retagged as auto-added and inserted adjacently,
// measurement first.
func (b *Buffer) InsertIntermediateData(meas, state Entry) bool {
	if meas.meta.IsStateKind() && state.meta.IsMeasurementKind() {
		meas, state = state, meas
	}
	if !meas.meta.IsMeasurementKind() || !state.meta.IsStateKind() {
		return false
	}
	if !meas.timestamp.Equal(state.timestamp) {
		return false
	}

	meas.meta = MetaMeasurementAuto
	state.meta = MetaCoreStateAuto

	idx := b.InsertDataAtTimestamp(meas)
	b.insertAt(idx+1, state)
	return true
}

// RemoveOverflowEntries removes oldest entries while the buffer exceeds its
// configured maximum. An entry is skipped if it is the newest state-bearing
// entry of its sensor handle, since removing it would leave that sensor
// without a state to resume propagation from. When only protected entries
// remain the buffer stabilizes above its maximum. Auto-added entries carry
// no protection.
func (b *Buffer) RemoveOverflowEntries() {
	for len(b.entries) > b.maxSize {
		idx := b.oldestEvictable()
		if idx < 0 {
			return
		}
		b.removeAt(idx)
	}
}

// ClearStatesFrom strips the core and sensor states of every entry at or
// after idx, keeping measurements. Auto-added entries in that range are
// removed outright: once their state is cleared they carry no value.
func (b *Buffer) ClearStatesFrom(idx int) {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(b.entries) {
		return
	}
	kept := b.entries[:idx]
	for i := idx; i < len(b.entries); i++ {
		e := b.entries[i]
		if e.meta.IsAuto() {
			continue
		}
		e.data.ClearStates()
		kept = append(kept, e)
	}
	b.entries = kept
}

// RemoveSensor removes every entry belonging to h, regardless of role.
// Explicit removal overrides the last-state protection.
func (b *Buffer) RemoveSensor(h *sensor.Handle) {
	kept := b.entries[:0]
	for _, e := range b.entries {
		if e.sensor.Same(h) {
			continue
		}
		kept = append(kept, e)
	}
	b.entries = kept
}

// LatestEntry returns the newest entry of any role.
func (b *Buffer) LatestEntry() (Entry, bool) {
	if len(b.entries) == 0 {
		return Entry{}, false
	}
	return b.entries[len(b.entries)-1], true
}

// OldestState returns the oldest state-bearing entry.
func (b *Buffer) OldestState() (Entry, bool) {
	for _, e := range b.entries {
		if e.HasStates() {
			return e, true
		}
	}
	return Entry{}, false
}

// LatestState returns the newest state-bearing entry.
func (b *Buffer) LatestState() (Entry, bool) {
	for i := len(b.entries) - 1; i >= 0; i-- {
		if b.entries[i].HasStates() {
			return b.entries[i], true
		}
	}
	return Entry{}, false
}

// OldestCoreState returns the oldest entry carrying a core filter state.
func (b *Buffer) OldestCoreState() (Entry, bool) {
	for _, e := range b.entries {
		if e.data.HasCoreState() {
			return e, true
		}
	}
	return Entry{}, false
}

// LatestInitState returns the newest entry tagged as an init state.
func (b *Buffer) LatestInitState() (Entry, bool) {
	for i := len(b.entries) - 1; i >= 0; i-- {
		if b.entries[i].meta == MetaInitState {
			return b.entries[i], true
		}
	}
	return Entry{}, false
}

// LatestHandleState returns the newest state-bearing entry of h together
// with its index. The index is -1 when no such entry exists.
func (b *Buffer) LatestHandleState(h *sensor.Handle) (Entry, int, bool) {
	for i := len(b.entries) - 1; i >= 0; i-- {
		e := b.entries[i]
		if e.HasStates() && e.sensor.Same(h) {
			return e, i, true
		}
	}
	return Entry{}, -1, false
}

// LatestHandleMeasurement returns the newest entry of any role belonging
// to h that carries a measurement. Selection is by payload presence, not
// by role tag: a measurement-tagged entry with an empty envelope is
// skipped, and a state-tagged entry that also carries a measurement
// qualifies.
func (b *Buffer) LatestHandleMeasurement(h *sensor.Handle) (Entry, bool) {
	for i := len(b.entries) - 1; i >= 0; i-- {
		e := b.entries[i]
		if e.HasMeasurement() && e.sensor.Same(h) {
			return e, true
		}
	}
	return Entry{}, false
}

// EntryAt returns the entry at index idx.
func (b *Buffer) EntryAt(idx int) (Entry, bool) {
	if idx < 0 || idx >= len(b.entries) {
		return Entry{}, false
	}
	return b.entries[idx], true
}

// ClosestState returns the state-bearing entry whose timestamp is nearest
// ts, together with its index (-1 on failure). An exact timestamp match
// wins; on an exact tie in distance the newer entry is preferred. A query
// outside the span of available states returns the nearest bound.
func (b *Buffer) ClosestState(ts clock.Time) (Entry, int, bool) {
	best := -1
	var bestDist clock.Time
	for i, e := range b.entries {
		if !e.HasStates() {
			continue
		}
		d := e.timestamp.Dist(ts)
		if best < 0 || d <= bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Entry{}, -1, false
	}
	return b.entries[best], best, true
}

// HasSoleState reports whether exactly one state-bearing entry of h remains
// in the buffer. Removing that entry would leave the sensor without a state
// to resume propagation from; once a second state for h exists the older
// one is expendable again.
func (b *Buffer) HasSoleState(h *sensor.Handle) bool {
	n := 0
	for _, e := range b.entries {
		if e.HasStates() && e.sensor.Same(h) {
			n++
			if n > 1 {
				return false
			}
		}
	}
	return n == 1
}

// IntermediatePair retrieves the auto-added state inserted directly before
// h's newest state together with that state, in that order. It fails when
// no intermediate pair is associated with h's latest propagation step.
func (b *Buffer) IntermediatePair(h *sensor.Handle) (Entry, Entry, bool) {
	state, idx, ok := b.LatestHandleState(h)
	if !ok || idx < 1 {
		return Entry{}, Entry{}, false
	}
	prev := b.entries[idx-1]
	if prev.meta != MetaCoreStateAuto || !prev.timestamp.Equal(state.timestamp) {
		return Entry{}, Entry{}, false
	}
	return prev, state, true
}

// Dump writes every entry in order to w, one line each. Diagnostic only.
func (b *Buffer) Dump(w io.Writer) error {
	for i, e := range b.entries {
		if _, err := fmt.Fprintf(w, "%4d %s\n", i, e); err != nil {
			return err
		}
	}
	return nil
}

// String renders the buffer contents for debugging.
func (b *Buffer) String() string {
	var sb strings.Builder
	_ = b.Dump(&sb)
	return sb.String()
}

// upperBound returns the index of the first entry with a timestamp later
// than ts, scanning from the back since insertions are usually in order.
func (b *Buffer) upperBound(ts clock.Time) int {
	i := len(b.entries)
	for i > 0 && b.entries[i-1].timestamp.After(ts) {
		i--
	}
	return i
}

func (b *Buffer) insertAt(idx int, e Entry) {
	b.entries = append(b.entries, Entry{})
	copy(b.entries[idx+1:], b.entries[idx:])
	b.entries[idx] = e
}

func (b *Buffer) removeAt(idx int) {
	b.entries = append(b.entries[:idx], b.entries[idx+1:]...)
}

// oldestEvictable returns the index of the oldest entry that may be
// removed, or -1 when every entry is a protected last state.
func (b *Buffer) oldestEvictable() int {
	for i := range b.entries {
		if !b.isProtected(i) {
			return i
		}
	}
	return -1
}

// isProtected reports whether the entry at index i is the newest
// state-bearing entry of its sensor handle.
func (b *Buffer) isProtected(i int) bool {
	e := b.entries[i]
	if !e.HasStates() {
		return false
	}
	for j := len(b.entries) - 1; j > i; j-- {
		if b.entries[j].HasStates() && b.entries[j].sensor.Same(e.sensor) {
			return false
		}
	}
	return true
}
