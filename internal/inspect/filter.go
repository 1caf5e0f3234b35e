// Package inspect renders diagnostic views of buffer contents: entry
// filters and text/JSON writers used by the CLI dump.
package inspect

import (
	"fmt"

	"github.com/statefuse/statefuse/buffer"
	"github.com/statefuse/statefuse/clock"
	"github.com/statefuse/statefuse/sensor"
)

// Filter determines whether an entry is included in a dump.
type Filter interface {
	// Match returns true if the entry passes this filter.
	Match(e buffer.Entry) bool

	// Name returns a human-readable description of this filter.
	Name() string
}

// MatchMode controls how multiple filters are combined.
type MatchMode int

const (
	// MatchAny passes if ANY filter matches (OR logic).
	MatchAny MatchMode = iota
	// MatchAll passes only if ALL filters match (AND logic).
	MatchAll
)

// Chain combines multiple filters with a configurable match mode.
type Chain struct {
	filters []Filter
	mode    MatchMode
}

// NewChain creates a filter chain with the given mode.
func NewChain(mode MatchMode, filters ...Filter) *Chain {
	return &Chain{filters: filters, mode: mode}
}

// Add appends a filter to the chain.
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Match evaluates the chain against an entry.
// Returns true if no filters are configured (pass-through).
func (c *Chain) Match(e buffer.Entry) bool {
	if len(c.filters) == 0 {
		return true
	}

	switch c.mode {
	case MatchAll:
		for _, f := range c.filters {
			if !f.Match(e) {
				return false
			}
		}
		return true
	default: // MatchAny
		for _, f := range c.filters {
			if f.Match(e) {
				return true
			}
		}
		return false
	}
}

// Name returns a description of the chain.
func (c *Chain) Name() string {
	if c.mode == MatchAll {
		return "Chain(AND)"
	}
	return "Chain(OR)"
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int {
	return len(c.filters)
}

// SensorFilter matches entries belonging to one sensor handle.
type SensorFilter struct {
	Handle *sensor.Handle
}

// Match returns true if the entry belongs to the configured handle.
func (f *SensorFilter) Match(e buffer.Entry) bool {
	return e.Sensor().Same(f.Handle)
}

// Name returns the filter identifier.
func (f *SensorFilter) Name() string {
	return fmt.Sprintf("sensor(%s)", f.Handle)
}

// MetadataFilter matches entries with a given role tag.
type MetadataFilter struct {
	Meta buffer.Metadata
}

// Match returns true if the entry carries the configured role.
func (f *MetadataFilter) Match(e buffer.Entry) bool {
	return e.Metadata() == f.Meta
}

// Name returns the filter identifier.
func (f *MetadataFilter) Name() string {
	return fmt.Sprintf("meta(%s)", f.Meta)
}

// StatesOnly matches entries that carry both filter states.
type StatesOnly struct{}

// Match returns true if the entry is state-bearing.
func (StatesOnly) Match(e buffer.Entry) bool {
	return e.HasStates()
}

// Name returns the filter identifier.
func (StatesOnly) Name() string { return "states-only" }

// TimeRange matches entries with From <= timestamp <= To.
type TimeRange struct {
	From, To clock.Time
}

// Match returns true if the entry's timestamp lies in the range.
func (f *TimeRange) Match(e buffer.Entry) bool {
	ts := e.Timestamp()
	return !ts.Before(f.From) && !ts.After(f.To)
}

// Name returns the filter identifier.
func (f *TimeRange) Name() string {
	return fmt.Sprintf("range(%s..%s)", f.From, f.To)
}
