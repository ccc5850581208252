package screen

import (
	"io"
	"io/fs"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/firescreen/internal/audio"
	"github.com/vovakirdan/firescreen/internal/config"
	"github.com/vovakirdan/firescreen/internal/core"
	"github.com/vovakirdan/firescreen/internal/render"
)

// Host bundles the collaborators a machine and its screens use.
type Host struct {
	Surface render.Surface
	Input   core.ButtonSource // polled once per frame; nil means no buttons
	Audio   audio.Player
	Files   fs.FS // asset files, read whole with fs.ReadFile
	Clock   *core.FrameClock
	Config  config.Config
	Logger  *log.Logger
	BuildID string
	Debug   bool

	// Now returns the current time for the frame clock. Defaults to
	// time.Now.
	Now func() time.Time
}

func (h *Host) setDefaults() {
	if h.Audio == nil {
		h.Audio = audio.NewNop(0)
	}
	if h.Clock == nil {
		h.Clock = &core.FrameClock{}
	}
	if h.Logger == nil {
		h.Logger = log.New(io.Discard)
	}
	if h.Now == nil {
		h.Now = time.Now
	}
	if h.BuildID == "" {
		h.BuildID = "dev"
	}
}
