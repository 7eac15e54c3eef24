package cfmt

import (
	"fmt"
	"io"
	"strings"
)

// Sink is the destination for rendered text. Writes are fallible and a
// failed write aborts the render immediately.
type Sink interface {
	WriteString(s string) error
}

// Buffer is an in-memory Sink whose writes never fail.
type Buffer struct {
	b strings.Builder
}

func (b *Buffer) WriteString(s string) error {
	b.b.WriteString(s)
	return nil
}

// String returns the text written so far.
func (b *Buffer) String() string { return b.b.String() }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return b.b.Len() }

// WriterSink adapts an io.Writer into a Sink.
func WriterSink(w io.Writer) Sink { return writerSink{w: w} }

type writerSink struct {
	w io.Writer
}

func (s writerSink) WriteString(text string) error {
	_, err := io.WriteString(s.w, text)
	return err
}

// write pushes s into out, tagging any failure as a sink error.
func write(out Sink, s string) error {
	if err := out.WriteString(s); err != nil {
		return fmt.Errorf("%w: %v", ErrSink, err)
	}
	return nil
}

// writeRepeat emits n copies of ch; n <= 0 writes nothing.
func writeRepeat(out Sink, ch byte, n int) error {
	if n <= 0 {
		return nil
	}
	return write(out, strings.Repeat(string(ch), n))
}
