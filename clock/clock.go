// Package clock defines the timestamp type shared by all history entries.
package clock

import "fmt"

// Time is a point in time measured in fractional seconds.
//
// Comparison and equality use exact float semantics: two timestamps are
// equal only when their values are bit-identical. Tie detection in the
// buffer depends on this, so no epsilon tolerance is applied.
type Time float64

// Add returns t shifted forward by d.
func (t Time) Add(d Time) Time { return t + d }

// Sub returns the signed offset from o to t.
func (t Time) Sub(o Time) Time { return t - o }

// Dist returns the absolute distance between t and o.
func (t Time) Dist(o Time) Time {
	if t < o {
		return o - t
	}
	return t - o
}

// Before reports whether t is strictly earlier than o.
func (t Time) Before(o Time) bool { return t < o }

// After reports whether t is strictly later than o.
func (t Time) After(o Time) bool { return t > o }

// Equal reports whether t and o are exactly equal.
func (t Time) Equal(o Time) bool { return t == o }

// Seconds returns t as a float64 second count.
func (t Time) Seconds() float64 { return float64(t) }

// String returns t with nanosecond print resolution.
func (t Time) String() string {
	return fmt.Sprintf("%.9f", float64(t))
}
