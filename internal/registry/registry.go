// Package registry is the global catalogue of game factories.
// Games register themselves in init(), so the platform can list and create
// them without importing any game by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is implemented by every arcade game.
// Games are pure simulations: the platform owns input mapping, timing and
// terminal output.
type Game interface {
	// ID returns the unique identifier used on the command line and in
	// score storage (e.g. "connectfour").
	ID() string

	// Title returns the display name (e.g. "Connect Four").
	Title() string

	// Reset starts a fresh round. Called once at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Opponent is implemented by board games that can be played against the
// built-in CPU or hot-seat between two humans.
type Opponent interface {
	SetCPU(enabled bool)
	CPU() bool
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
	Mode  core.MatchMode
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	games = make(map[string]entry)
	order []string
	mu    sync.RWMutex
)

// Register adds a game factory. Registration order is kept and is the
// order games appear in the launcher. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title(), Mode: core.MatchModeSolo}
	if o, ok := g.(Opponent); ok {
		info.Mode = core.MatchModeHotseat
		if o.CPU() {
			info.Mode = core.MatchModeVsCPU
		}
	}

	games[id] = entry{factory: f, info: info}
	order = append(order, id)
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(games))
	for _, e := range games {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Ordered returns all registered games in registration order.
func Ordered() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(order))
	for _, id := range order {
		result = append(result, games[id].info)
	}
	return result
}

// Lookup returns the metadata for a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := games[id]
	return e.info, ok
}

// Create instantiates a new game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := games[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}
