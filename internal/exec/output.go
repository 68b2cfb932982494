package exec

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StreamingWriter prefixes and colors each complete line written to it.
type StreamingWriter struct {
	prefix string
	style  lipgloss.Style
	writer io.Writer
	// Buffer for incomplete lines
	buffer []byte
}

// NewStreamingWriter creates a formatted output writer
func NewStreamingWriter(writer io.Writer, prefix string, color lipgloss.Color) *StreamingWriter {
	return &StreamingWriter{
		prefix: prefix,
		style:  lipgloss.NewStyle().Foreground(color),
		writer: writer,
		buffer: make([]byte, 0),
	}
}

// Write formats and writes output line by line
func (s *StreamingWriter) Write(p []byte) (n int, err error) {
	s.buffer = append(s.buffer, p...)

	lines := strings.Split(string(s.buffer), "\n")

	// Keep the last incomplete line in buffer
	s.buffer = []byte(lines[len(lines)-1])
	lines = lines[:len(lines)-1]

	for _, line := range lines {
		if _, err := io.WriteString(s.writer, s.formatLine(line)+"\n"); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}

// Flush writes any remaining buffered content
func (s *StreamingWriter) Flush() error {
	if len(s.buffer) > 0 {
		_, err := io.WriteString(s.writer, s.formatLine(string(s.buffer))+"\n")
		s.buffer = s.buffer[:0]
		return err
	}
	return nil
}

func (s *StreamingWriter) formatLine(line string) string {
	if s.prefix != "" {
		line = s.prefix + line
	}
	return s.style.Render(line)
}

// TeeWriter writes to multiple writers simultaneously
type TeeWriter struct {
	writers []io.Writer
}

// NewTeeWriter creates a writer that duplicates output to multiple writers.
// Nil writers are ignored.
func NewTeeWriter(writers ...io.Writer) *TeeWriter {
	t := &TeeWriter{}
	for _, w := range writers {
		if w != nil && w != io.Discard {
			t.writers = append(t.writers, w)
		}
	}
	return t
}

// Write writes to all underlying writers
func (t *TeeWriter) Write(p []byte) (n int, err error) {
	for _, w := range t.writers {
		n, err = w.Write(p)
		if err != nil {
			return n, err
		}
	}
	return len(p), nil
}
