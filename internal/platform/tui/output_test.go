package tui

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vovakirdan/water-sort/internal/audio"
)

// overlapWriter flags writes that run concurrently on the underlying writer.
type overlapWriter struct {
	inFlight   atomic.Int32
	overlapped atomic.Bool
	writes     atomic.Int32
}

func (w *overlapWriter) Write(p []byte) (int, error) {
	if w.inFlight.Add(1) > 1 {
		w.overlapped.Store(true)
	}
	time.Sleep(50 * time.Microsecond)
	w.inFlight.Add(-1)
	w.writes.Add(1)
	return len(p), nil
}

func TestOutputSerializesFramesAndBell(t *testing.T) {
	under := &overlapWriter{}
	out := NewOutput(under)
	bell := audio.NewBell(out)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			out.Write([]byte("\x1b[2J frame \x1b[0m"))
		}()
		go func() {
			defer wg.Done()
			bell.Play("pour")
		}()
	}
	wg.Wait()

	if under.overlapped.Load() {
		t.Error("bell and frame writes overlapped on the terminal")
	}
	if got := under.writes.Load(); got != 20 {
		t.Errorf("writes = %d, expected 20", got)
	}
}

func TestOutputKeepsFileDescriptor(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer f.Close()

	out := NewOutput(f)
	fd, ok := out.(interface{ Fd() uintptr })
	if !ok {
		t.Fatal("NewOutput(*os.File) should expose Fd")
	}
	if fd.Fd() != f.Fd() {
		t.Errorf("Fd() = %d, expected %d", fd.Fd(), f.Fd())
	}

	if _, ok := NewOutput(&overlapWriter{}).(interface{ Fd() uintptr }); ok {
		t.Error("non-file output should not claim a descriptor")
	}
}
