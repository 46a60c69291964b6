package desensitize

import "io"

// Writer redacts everything written through it
type Writer struct {
	writer io.Writer
	hook   *Hook
}

// NewWriter wraps writer with hook. Both must be non-nil.
func NewWriter(writer io.Writer, hook *Hook) *Writer {
	if writer == nil {
		panic("writer cannot be nil")
	}
	if hook == nil {
		panic("hook cannot be nil")
	}
	return &Writer{writer: writer, hook: hook}
}

// Write reports len(p) on success even when the redacted line differs in length
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 || w.hook.Len() == 0 {
		return w.writer.Write(p)
	}

	text := string(p)
	redacted := w.hook.Desensitize(text)
	if redacted == text {
		return w.writer.Write(p)
	}

	if _, err := io.WriteString(w.writer, redacted); err != nil {
		return 0, err
	}
	return len(p), nil
}
