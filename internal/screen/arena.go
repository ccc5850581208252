package screen

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrArenaMisuse means a state was allocated while another one was
	// still live. It is a programming error.
	ErrArenaMisuse = errors.New("screen: arena already holds a live state")

	// ErrCapacityExceeded means a state does not fit the arena.
	ErrCapacityExceeded = errors.New("screen: state exceeds arena capacity")
)

// Arena is the single memory region owned by the active screen. It holds
// at most one live state, constructed by Alloc and dropped by Release.
type Arena struct {
	capacity int
	used     int
	owner    ID
	state    any
	debug    bool
}

// NewArena creates an arena of capacity bytes. In debug mode misuse panics
// instead of returning ErrArenaMisuse.
func NewArena(capacity int, debug bool) *Arena {
	return &Arena{capacity: capacity, debug: debug}
}

// Cap returns the arena size in bytes.
func (a *Arena) Cap() int { return a.capacity }

// Used returns the footprint of the live state, or 0.
func (a *Arena) Used() int { return a.used }

// Live reports whether a state is allocated.
func (a *Arena) Live() bool { return a.state != nil }

// Owner returns the screen that owns the live state.
func (a *Arena) Owner() ID { return a.owner }

// Release drops the live state. Releasing an empty arena is a no-op.
func (a *Arena) Release() {
	a.state = nil
	a.used = 0
	a.owner = ""
}

// Alloc constructs a zero T in the arena for owner. extra is the size of
// the buffers T owns beyond its own struct (grids, palettes), counted
// against the capacity.
func Alloc[T any](a *Arena, owner ID, extra int) (*T, error) {
	if a.state != nil {
		err := fmt.Errorf("%w: %s requested while %s is live", ErrArenaMisuse, owner, a.owner)
		if a.debug {
			panic(err)
		}
		return nil, err
	}
	var zero T
	size := int(unsafe.Sizeof(zero)) + extra
	if size > a.capacity {
		return nil, fmt.Errorf("%w: %s needs %d bytes, arena has %d", ErrCapacityExceeded, owner, size, a.capacity)
	}
	v := new(T)
	a.state = v
	a.used = size
	a.owner = owner
	return v, nil
}
