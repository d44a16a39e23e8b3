// Package registry holds the factories of the games the port can run. Games
// register themselves from init so the host can find them by id.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"cruiser/internal/console"
)

// Game is what a handheld game looks like to the host.
type Game interface {
	// ID is the unique identifier used on the command line.
	ID() string
	// Title is the human-readable name shown in the window title.
	Title() string
	// Setup runs once before the first frame.
	Setup(c *console.Console)
	// Frame runs one admitted frame: read controls, move, draw the scene.
	Frame(c *console.Console)
}

// Info describes a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
	titles    = map[string]string{}
)

// Register adds a factory under id. It panics when id is already taken.
func Register(id string, f Factory) {
	if id == "" || f == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns the registered games sorted by id.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Info, 0, len(factories))
	for id := range factories {
		out = append(out, Info{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[id]
	return ok
}
