package inspect

import (
	"encoding/json"
	"io"
	"os"

	"github.com/statefuse/statefuse/buffer"
)

// jsonEntry is the serialization format for JSON Lines output.
type jsonEntry struct {
	Timestamp      float64 `json:"timestamp"`
	Role           string  `json:"role"`
	Sensor         string  `json:"sensor"`
	HasStates      bool    `json:"hasStates"`
	HasMeasurement bool    `json:"hasMeasurement"`
}

// JSONWriter writes entries as JSON Lines (one JSON object per line).
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a JSON Lines writer targeting w.
// A nil writer defaults to stdout.
func NewJSONWriter(w io.Writer) *JSONWriter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONWriter{enc: json.NewEncoder(w)}
}

// Write serializes one entry as a single JSON line.
func (j *JSONWriter) Write(e buffer.Entry) error {
	return j.enc.Encode(jsonEntry{
		Timestamp:      e.Timestamp().Seconds(),
		Role:           e.Metadata().String(),
		Sensor:         e.Sensor().String(),
		HasStates:      e.HasStates(),
		HasMeasurement: e.HasMeasurement(),
	})
}

// Flush is a no-op for JSON output.
func (j *JSONWriter) Flush() error { return nil }

// Close is a no-op for JSON output.
func (j *JSONWriter) Close() error { return nil }

// Name returns the writer identifier.
func (j *JSONWriter) Name() string { return "json" }
