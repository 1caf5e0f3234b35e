package inspect

import (
	"fmt"
	"io"
	"os"

	"github.com/statefuse/statefuse/buffer"
)

// TextWriter writes entries as aligned text lines.
type TextWriter struct {
	w   io.Writer
	row int
}

// NewTextWriter creates a text writer targeting w.
// A nil writer defaults to stdout.
func NewTextWriter(w io.Writer) *TextWriter {
	if w == nil {
		w = os.Stdout
	}
	return &TextWriter{w: w}
}

// Write outputs one formatted entry line.
func (t *TextWriter) Write(e buffer.Entry) error {
	_, err := fmt.Fprintf(t.w, "%4d %s\n", t.row, e)
	t.row++
	return err
}

// Flush is a no-op for text output.
func (t *TextWriter) Flush() error { return nil }

// Close is a no-op for text output.
func (t *TextWriter) Close() error { return nil }

// Name returns the writer identifier.
func (t *TextWriter) Name() string { return "text" }
