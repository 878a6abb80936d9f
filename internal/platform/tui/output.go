package tui

import (
	"io"
	"os"
	"sync"
)

// syncOutput serializes writes to the terminal. The renderer flushes each
// frame in one write, so a bell rung through the same output lands between
// frames, never inside an escape sequence.
type syncOutput struct {
	mu sync.Mutex
	w  io.Writer
}

func (o *syncOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

// fileOutput keeps the file methods Bubble Tea uses to detect a terminal,
// query its size and restore it on exit.
type fileOutput struct {
	*syncOutput
	f *os.File
}

func (o fileOutput) Read(p []byte) (int, error) { return o.f.Read(p) }
func (o fileOutput) Close() error               { return o.f.Close() }
func (o fileOutput) Fd() uintptr                { return o.f.Fd() }

// NewOutput wraps w so the program and the bell backend can share it.
// Pass the result to tea.WithOutput and as the bell's writer.
func NewOutput(w io.Writer) io.Writer {
	so := &syncOutput{w: w}
	if f, ok := w.(*os.File); ok {
		return fileOutput{syncOutput: so, f: f}
	}
	return so
}
