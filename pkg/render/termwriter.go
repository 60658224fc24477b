package render

import (
	"fmt"
	"io"
	"strings"
)

// termWriter is the single point of terminal output while rendering.
// Every frame is built in memory and handed to the underlying writer in
// one Write call, so an interrupt never leaves half a frame on screen.
type termWriter struct {
	out    io.Writer
	frames int
	sb     strings.Builder
}

func newTermWriter(out io.Writer) *termWriter {
	return &termWriter{out: out}
}

// WriteFrame writes lead, text, trail and terminator as one frame.
func (w *termWriter) WriteFrame(lead, text, trail, end string) error {
	w.sb.Reset()
	w.sb.Grow(len(lead) + len(text) + len(trail) + len(end))
	w.sb.WriteString(lead)
	w.sb.WriteString(text)
	w.sb.WriteString(trail)
	w.sb.WriteString(end)

	if _, err := io.WriteString(w.out, w.sb.String()); err != nil {
		return fmt.Errorf("write frame %d: %w", w.frames, err)
	}
	w.frames++
	return nil
}

// Frames returns how many frames were written successfully.
func (w *termWriter) Frames() int {
	return w.frames
}

// ClearScreen erases the display and homes the cursor.
func ClearScreen(out io.Writer) error {
	_, err := fmt.Fprint(out, "\033[2J\033[H")
	return err
}
