package audio

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

func init() {
	Register("bell", func(opts Options) Player { return NewBell(opts.Out) })
	Register("log", func(opts Options) Player { return NewLog(opts.Logger) })
	Register("none", func(Options) Player { return None{} })
}

// bells maps each sound to how many times the terminal bell rings.
var bells = map[string]int{
	"pour":  1,
	"bravo": 3,
}

// Bell rings the terminal bell.
type Bell struct {
	mu  sync.Mutex
	out io.Writer
}

// NewBell returns a bell backend writing to out. A nil out discards.
func NewBell(out io.Writer) *Bell {
	if out == nil {
		out = io.Discard
	}
	return &Bell{out: out}
}

// Play rings the bell for name. Unknown names are an error.
func (b *Bell) Play(name string) error {
	n, ok := bells[name]
	if !ok {
		return fmt.Errorf("audio: unknown sound %q", name)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.out, strings.Repeat("\a", n)); err != nil {
		return fmt.Errorf("audio: bell: %w", err)
	}
	return nil
}

// Log records each sound as a debug entry.
type Log struct {
	logger *log.Logger
}

// NewLog returns a backend logging to logger, or to the default logger if
// nil.
func NewLog(logger *log.Logger) *Log {
	if logger == nil {
		logger = log.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) Play(name string) error {
	if _, ok := bells[name]; !ok {
		return fmt.Errorf("audio: unknown sound %q", name)
	}
	l.logger.Debug("sound", "name", name)
	return nil
}

// None discards every sound.
type None struct{}

func (None) Play(string) error { return nil }
