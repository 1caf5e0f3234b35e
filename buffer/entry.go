// Package buffer implements the time-ordered history store used by a
// multi-sensor state-estimation loop: a bounded, sorted collection of
// timestamped filter states, sensor states, and raw measurements.
package buffer

import (
	"fmt"

	"github.com/statefuse/statefuse/clock"
	"github.com/statefuse/statefuse/sensor"
)

// Entry is one timestamped record in the buffer. The timestamp and the
// sensor handle are fixed at construction; the payload envelope and the
// metadata tag describe what the record carries and why it exists.
type Entry struct {
	timestamp clock.Time
	data      Data
	sensor    *sensor.Handle
	meta      Metadata
}

// NewEntry builds an entry. The handle is held as a non-owning reference.
func NewEntry(ts clock.Time, data Data, h *sensor.Handle, meta Metadata) Entry {
	return Entry{timestamp: ts, data: data, sensor: h, meta: meta}
}

// Timestamp returns the entry's timestamp.
func (e Entry) Timestamp() clock.Time { return e.timestamp }

// Data returns the payload envelope. The returned envelope aliases the
// entry's payloads; callers must treat them as read-only.
func (e Entry) Data() Data { return e.data }

// Sensor returns the handle of the sensor this entry belongs to.
func (e Entry) Sensor() *sensor.Handle { return e.sensor }

// Metadata returns the entry's role tag.
func (e Entry) Metadata() Metadata { return e.meta }

// HasStates reports whether the envelope carries both a core and a
// sensor state.
func (e Entry) HasStates() bool { return e.data.HasStates() }

// HasMeasurement reports whether the envelope carries a measurement.
func (e Entry) HasMeasurement() bool { return e.data.HasMeasurement() }

// String renders the entry for diagnostic output.
func (e Entry) String() string {
	return fmt.Sprintf("[%s][%s][%s] states=%t measurement=%t",
		e.timestamp, e.meta, e.sensor, e.HasStates(), e.HasMeasurement())
}
