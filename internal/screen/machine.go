package screen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/firescreen/internal/audio"
	"github.com/vovakirdan/firescreen/internal/config"
	"github.com/vovakirdan/firescreen/internal/core"
	"github.com/vovakirdan/firescreen/internal/render"
)

var (
	// ErrUnknownScreen is returned by Change for an unregistered ID.
	ErrUnknownScreen = errors.New("screen: unknown screen")

	// ErrReentrantChange is returned by Change when called from inside a
	// Load or Unload.
	ErrReentrantChange = errors.New("screen: change requested during load or unload")
)

type phase uint8

const (
	phaseIdle phase = iota
	phaseUpdate
	phaseLoad
	phaseUnload
)

// Machine owns the active screen and drives it one frame at a time. It is
// not safe for concurrent use; input arrives through Host.Input.
type Machine struct {
	host  Host
	arena *Arena
	pad   core.Pad

	active Screen
	state  any
	phase  phase

	pending    ID
	hasPending bool
}

// NewMachine creates an unloaded machine with an arena of arenaBytes.
func NewMachine(h Host, arenaBytes int) *Machine {
	h.setDefaults()
	return &Machine{
		host:  h,
		arena: NewArena(arenaBytes, h.Debug),
	}
}

// Change makes id the active screen: the current screen is unloaded, the
// arena released and id loaded. Changing to the screen that is already
// active reloads it.
//
// Called from Update, the change is deferred until Update returns. Called
// from Load or Unload it fails with ErrReentrantChange.
func (m *Machine) Change(id ID) error {
	switch m.phase {
	case phaseLoad, phaseUnload:
		return fmt.Errorf("%w: %s", ErrReentrantChange, id)
	case phaseUpdate:
		if !Exists(id) {
			return fmt.Errorf("%w %q", ErrUnknownScreen, id)
		}
		m.pending = id
		m.hasPending = true
		return nil
	}
	return m.apply(id)
}

func (m *Machine) apply(id ID) error {
	next, err := Lookup(id)
	if err != nil {
		return err
	}

	m.unloadActive()

	m.phase = phaseLoad
	state, err := next.Load(m)
	m.phase = phaseIdle
	if err != nil {
		m.arena.Release()
		m.host.Logger.Error("screen load failed", "screen", id, "err", err)
		return fmt.Errorf("screen: load %s: %w", id, err)
	}

	m.active = next
	m.state = state
	m.host.Logger.Info("screen active", "screen", id, "arena", m.arena.Used())
	return nil
}

func (m *Machine) unloadActive() {
	if m.active == nil {
		return
	}
	m.phase = phaseUnload
	m.active.Unload(m, m.state)
	m.phase = phaseIdle

	m.host.Logger.Debug("screen unloaded", "screen", m.active.ID())
	m.active = nil
	m.state = nil
	m.arena.Release()
}

// Unload deactivates the current screen, leaving the machine unloaded.
func (m *Machine) Unload() {
	m.unloadActive()
	m.hasPending = false
}

// Frame runs one frame: poll input, update, apply a pending change, draw,
// present and tick the clock. With no active screen only the present and
// the clock tick run.
func (m *Machine) Frame() error {
	m.pad.Poll(m.host.Input)

	if m.active != nil {
		m.phase = phaseUpdate
		m.active.Update(m, m.state)
		m.phase = phaseIdle

		if m.hasPending {
			id := m.pending
			m.hasPending = false
			if err := m.apply(id); err != nil {
				return err
			}
		}
	}

	if m.active != nil {
		if err := m.active.Draw(m, m.state); err != nil {
			return fmt.Errorf("screen: draw %s: %w", m.active.ID(), err)
		}
	}

	if m.host.Surface != nil {
		if err := m.host.Surface.Present(); err != nil {
			return err
		}
	}
	m.host.Clock.Tick(m.host.Now())
	return nil
}

// Run calls Frame hz times per second until ctx is done or a frame fails.
func (m *Machine) Run(ctx context.Context, hz int) error {
	if hz <= 0 {
		hz = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(hz))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := m.Frame(); err != nil {
				return err
			}
		}
	}
}

// Active returns the active screen and its state, or nil, nil when
// unloaded.
func (m *Machine) Active() (Screen, any) { return m.active, m.state }

// ActiveID returns the active screen ID, or "" when unloaded.
func (m *Machine) ActiveID() ID {
	if m.active == nil {
		return ""
	}
	return m.active.ID()
}

// Arena returns the arena screens allocate their state from.
func (m *Machine) Arena() *Arena { return m.arena }

// Pad returns the input edges of the current frame.
func (m *Machine) Pad() *core.Pad { return &m.pad }

// Surface returns the render surface.
func (m *Machine) Surface() render.Surface { return m.host.Surface }

// Audio returns the audio player.
func (m *Machine) Audio() audio.Player { return m.host.Audio }

// Files returns the asset file system. It may be nil.
func (m *Machine) Files() fs.FS { return m.host.Files }

// Clock returns the frame clock.
func (m *Machine) Clock() *core.FrameClock { return m.host.Clock }

// Config returns the runtime configuration.
func (m *Machine) Config() config.Config { return m.host.Config }

// Logger returns the machine logger.
func (m *Machine) Logger() *log.Logger { return m.host.Logger }

// BuildID returns the build identifier shown in the HUD.
func (m *Machine) BuildID() string { return m.host.BuildID }

// Debug reports whether invariant violations panic.
func (m *Machine) Debug() bool { return m.host.Debug }
