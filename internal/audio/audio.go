// Package audio defines the track player the screens use and a silent
// implementation. The beep-backed player lives in audio/beepaudio.
package audio

import (
	"errors"
	"fmt"
)

// ErrNoTrack is returned when a track index is out of range.
var ErrNoTrack = errors.New("audio: no such track")

// Player plays one track at a time.
type Player interface {
	// PlayTrack starts track i from the beginning, replacing the current one.
	PlayTrack(i int) error
	// Stop silences playback. Stopping twice is harmless.
	Stop()
	// Tracks returns the number of playable tracks.
	Tracks() int
	// Current returns the playing track, or -1.
	Current() int
	// Name returns the display name of track i, or "" out of range.
	Name(i int) string
}

// Nop is a silent Player with a fixed number of tracks. It remembers the
// last request so tests can observe it.
type Nop struct {
	N       int
	Playing int // -1 when stopped
	Plays   int
}

// NewNop returns a silent player with n tracks.
func NewNop(n int) *Nop {
	return &Nop{N: n, Playing: -1}
}

// PlayTrack records i as playing.
func (n *Nop) PlayTrack(i int) error {
	if err := CheckTrack(i, n.N); err != nil {
		return err
	}
	n.Playing = i
	n.Plays++
	return nil
}

// Stop records that nothing is playing.
func (n *Nop) Stop() { n.Playing = -1 }

// Tracks returns N.
func (n *Nop) Tracks() int { return n.N }

// Current returns Playing.
func (n *Nop) Current() int { return n.Playing }

// Name returns "Track NN" for valid indices.
func (n *Nop) Name(i int) string {
	if CheckTrack(i, n.N) != nil {
		return ""
	}
	return fmt.Sprintf("Track %02d", i)
}

// CheckTrack returns ErrNoTrack unless 0 <= i < n.
func CheckTrack(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d of %d", ErrNoTrack, i, n)
	}
	return nil
}
