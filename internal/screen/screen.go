// Package screen runs the demo's screens: exactly one is active at a time,
// its state lives in a single arena, and a fixed per-frame sequence drives
// it.
//
// Screens register themselves in init() functions, allowing the platform
// to discover them without hardcoded dependencies.
package screen

import (
	"fmt"
	"sort"
	"sync"
)

// ID names a screen.
type ID string

// The screens of the demo.
const (
	MainMenu  ID = "mainmenu"
	SoundTest ID = "soundtest"
)

// Screen is a stateless descriptor. All mutable data lives in the state
// value returned by Load, which the machine passes back to every other
// call.
type Screen interface {
	// ID returns the unique identifier used by Change and the CLI.
	ID() ID

	// Title returns a human-readable name.
	Title() string

	// Load allocates the state from m.Arena() and prepares it. Missing
	// assets are logged and skipped; any returned error aborts the
	// activation.
	Load(m *Machine) (any, error)

	// Unload releases resources held outside the arena.
	Unload(m *Machine, state any)

	// Update advances the state by one frame. It may call m.Change.
	Update(m *Machine, state any)

	// Draw commits the frame's primitives to m.Surface().
	Draw(m *Machine, state any) error
}

// Info contains metadata about a registered screen.
type Info struct {
	ID    ID
	Title string
}

var (
	screens = make(map[ID]Screen)
	mu      sync.RWMutex
)

// Register adds a screen to the registry.
// Typically called from the screen's init() function.
// Panics if a screen with the same ID is already registered.
func Register(s Screen) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := screens[s.ID()]; exists {
		panic(fmt.Sprintf("screen: %q already registered", s.ID()))
	}
	screens[s.ID()] = s
}

// List returns information about all registered screens, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(screens))
	for id, s := range screens {
		result = append(result, Info{ID: id, Title: s.Title()})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the screen registered under id.
func Lookup(id ID) (Screen, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := screens[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScreen, id)
	}
	return s, nil
}

// Exists checks if a screen with the given ID is registered.
func Exists(id ID) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := screens[id]
	return ok
}

// All returns every registered screen, sorted by ID.
func All() []Screen {
	infos := List()

	mu.RLock()
	defer mu.RUnlock()

	result := make([]Screen, 0, len(infos))
	for _, info := range infos {
		result = append(result, screens[info.ID])
	}
	return result
}
