package inspect

import (
	"github.com/statefuse/statefuse/buffer"
)

// Writer receives filtered entries and renders them to an output.
type Writer interface {
	// Write outputs a single entry.
	Write(e buffer.Entry) error

	// Flush ensures all buffered output is written.
	Flush() error

	// Close releases resources held by the writer.
	Close() error

	// Name returns a human-readable identifier for this writer.
	Name() string
}

// DumpBuffer renders every entry of b that passes the chain through w.
// A nil chain passes everything.
func DumpBuffer(b *buffer.Buffer, c *Chain, w Writer) error {
	for i := 0; i < b.Len(); i++ {
		e, ok := b.EntryAt(i)
		if !ok {
			break
		}
		if c != nil && !c.Match(e) {
			continue
		}
		if err := w.Write(e); err != nil {
			return err
		}
	}
	return w.Flush()
}
