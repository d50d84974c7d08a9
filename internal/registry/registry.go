// Package registry maps game IDs to factories. Game packages register from
// init, so frontends only need a blank import to make a game available.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Game is a fixed-tick simulation driven by a frontend.
// Implementations hold no frontend state; input arrives as core actions.
type Game interface {
	// ID is the registry key, also used in logs.
	ID() string
	Title() string

	// Reset starts a new run. The seed in cfg fully determines the run
	// together with the input sequence.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick. Ended is true only on the tick the game ends.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a character screen of any size.
	Render(dst *core.Screen)

	State() core.GameState

	// Details returns key/value pairs describing the run, for logs.
	Details() []any
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, not yet Reset, game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. The ID and title are read from one probe
// instance, so a factory must be cheap to call. Registering an ID twice panics.
func Register(f Factory) {
	probe := f()
	info := GameInfo{ID: probe.ID(), Title: probe.Title()}

	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[info.ID]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered games ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
