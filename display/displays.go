package display

import (
	"fmt"
	"io"
	"sync"
)

// WriterDisplay prints display updates to an io.Writer, one line per write.
type WriterDisplay struct {
	w      io.Writer
	prefix string
}

// NewWriterDisplay creates a WriterDisplay. The prefix is printed in front of
// every line.
func NewWriterDisplay(w io.Writer, prefix string) *WriterDisplay {
	return &WriterDisplay{w: w, prefix: prefix}
}

// Clear does nothing; every write prints a fresh line.
func (d *WriterDisplay) Clear() error {
	return nil
}

// WriteString prints s.
func (d *WriterDisplay) WriteString(line int, s string) error {
	_, err := fmt.Fprintf(d.w, "%s[%d] %s\n", d.prefix, line, s)
	return err
}

// RecordingDisplay keeps the screen content in memory.
type RecordingDisplay struct {
	lock    sync.Mutex
	lines   map[int]string
	clears  int
	redraws int
}

// NewRecordingDisplay creates a blank RecordingDisplay.
func NewRecordingDisplay() *RecordingDisplay {
	return &RecordingDisplay{lines: make(map[int]string)}
}

// Clear blanks every line.
func (d *RecordingDisplay) Clear() error {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.lines = make(map[int]string)
	d.clears++

	return nil
}

// WriteString puts s on line.
func (d *RecordingDisplay) WriteString(line int, s string) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.lines[line] = s
	d.redraws++

	return nil
}

// Line returns the content of line.
func (d *RecordingDisplay) Line(line int) string {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.lines[line]
}

// Clears returns how many times the screen was cleared.
func (d *RecordingDisplay) Clears() int {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.clears
}

// Redraws returns how many strings were written.
func (d *RecordingDisplay) Redraws() int {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.redraws
}

var (
	_ Display = (*WriterDisplay)(nil)
	_ Display = (*RecordingDisplay)(nil)
)
