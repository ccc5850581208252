package core

import "sync"

// Button is a controller button. Values are bit positions in a ButtonSet.
type Button uint8

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonCross
	ButtonCircle
	ButtonSquare
	ButtonTriangle
	ButtonStart
	ButtonSelect
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonCross:
		return "Cross"
	case ButtonCircle:
		return "Circle"
	case ButtonSquare:
		return "Square"
	case ButtonTriangle:
		return "Triangle"
	case ButtonStart:
		return "Start"
	case ButtonSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// ButtonSet is a bitmask of buttons held during one poll.
type ButtonSet uint16

// With returns the set with b added.
func (s ButtonSet) With(b Button) ButtonSet {
	return s | 1<<b
}

// Has reports whether b is in the set.
func (s ButtonSet) Has(b Button) bool {
	return s&(1<<b) != 0
}

// ButtonSource reports which buttons are currently held.
// Presenters implement it on top of their keyboard backend.
type ButtonSource interface {
	Buttons() ButtonSet
}

// EdgeSource is a ButtonSource that reports discrete presses instead of
// held state. Every button in a Presses set is a new press, even when the
// same button was pressed on the previous poll.
type EdgeSource interface {
	ButtonSource
	Presses() ButtonSet
}

// Pad tracks the held buttons between polls and derives press edges.
type Pad struct {
	prev ButtonSet
	cur  ButtonSet
}

// Poll samples src once. Call exactly once per frame before update.
// A nil source releases every button.
func (p *Pad) Poll(src ButtonSource) {
	p.prev = p.cur
	switch src := src.(type) {
	case nil:
		p.cur = 0
	case EdgeSource:
		p.prev = 0
		p.cur = src.Presses()
	default:
		p.cur = src.Buttons()
	}
}

// Held reports whether b is down this frame.
func (p *Pad) Held(b Button) bool {
	return p.cur.Has(b)
}

// JustPressed reports whether b went down between the last two polls.
func (p *Pad) JustPressed(b Button) bool {
	return p.cur.Has(b) && !p.prev.Has(b)
}

// KeyLatch collects button presses from event-driven keyboards (terminals
// report presses but not releases). Each latched press is reported as held
// for exactly one poll and always as a new JustPressed edge, so presses on
// consecutive polls are not merged into one hold.
type KeyLatch struct {
	mu      sync.Mutex
	pending ButtonSet
}

// Press latches b until the next Buttons call. Safe for concurrent use.
func (l *KeyLatch) Press(b Button) {
	l.mu.Lock()
	l.pending = l.pending.With(b)
	l.mu.Unlock()
}

// Presses returns and clears the latched presses.
func (l *KeyLatch) Presses() ButtonSet {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.pending
	l.pending = 0
	return s
}

// Buttons is Presses; a latched press is held for one poll.
func (l *KeyLatch) Buttons() ButtonSet { return l.Presses() }
