// Package audio plays the named sound effects requested by the game.
// Backends register themselves in init() functions, so the command line
// can pick one by name without hardcoded dependencies.
package audio

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Player plays named sound effects. Implementations must be safe for
// concurrent use: sounds are played from Bubble Tea commands.
type Player interface {
	Play(name string) error
}

// Options configure a backend when it is created.
type Options struct {
	// Out is the terminal the bell backend rings.
	Out io.Writer
	// Logger receives events from the log backend.
	Logger *log.Logger
}

// Factory creates a backend.
type Factory func(opts Options) Player

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a backend factory.
// Panics if a backend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("audio: backend %q already registered", name))
	}
	factories[name] = f
}

// List returns the registered backend names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	return listLocked()
}

// Create instantiates a backend by name.
// Returns an error if the name is not registered.
func Create(name string, opts Options) (Player, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("audio: unknown backend %q (available: %v)", name, listLocked())
	}
	return f(opts), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

func listLocked() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
