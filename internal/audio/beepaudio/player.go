// Package beepaudio plays tracks through a gopxl/beep mixer and speaker.
package beepaudio

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/firescreen/internal/audio"
)

// Player is an audio.Player that loops tracks through a beep mixer. Tracks
// are decoded fully into memory when the player is created.
type Player struct {
	mu      sync.Mutex
	sr      beep.SampleRate
	tracks  []*beep.Buffer
	names   []string
	mixer   *beep.Mixer
	ctrl    *beep.Ctrl
	current int
	started bool
	logger  *log.Logger
}

var _ audio.Player = (*Player)(nil)

// Options configures New.
type Options struct {
	SampleRate int
	Dir        string // directory in Files holding trackNN.wav
	Synth      int    // tracks to synthesise when Dir holds none
}

// New loads dir/track*.wav from files in name order. When no file can
// be decoded it synthesises opts.Synth tone sequences instead. files may
// be nil.
func New(files fs.FS, opts Options, logger *log.Logger) (*Player, error) {
	if opts.SampleRate <= 0 {
		opts.SampleRate = 44100
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		sr:      beep.SampleRate(opts.SampleRate),
		mixer:   &beep.Mixer{},
		current: -1,
		logger:  logger,
	}

	if files != nil {
		p.loadDir(files, opts.Dir)
	}
	if len(p.tracks) == 0 {
		for i := 0; i < opts.Synth; i++ {
			buf, err := synthTrack(p.sr, i)
			if err != nil {
				return nil, fmt.Errorf("audio: synthesise track %d: %w", i, err)
			}
			p.tracks = append(p.tracks, buf)
			p.names = append(p.names, fmt.Sprintf("synth %02d", i))
		}
		logger.Debug("synthesised tracks", "count", len(p.tracks))
	}
	return p, nil
}

func (p *Player) loadDir(files fs.FS, dir string) {
	if dir == "" {
		dir = "."
	}
	matches, err := fs.Glob(files, path.Join(dir, "track*.wav"))
	if err != nil {
		p.logger.Warn("track glob failed", "dir", dir, "err", err)
		return
	}
	sort.Strings(matches)
	for _, name := range matches {
		buf, err := p.decode(files, name)
		if err != nil {
			p.logger.Warn("skipping track", "file", name, "err", err)
			continue
		}
		p.tracks = append(p.tracks, buf)
		p.names = append(p.names, path.Base(name))
		p.logger.Debug("track loaded", "file", name, "samples", buf.Len())
	}
}

func (p *Player) decode(files fs.FS, name string) (*beep.Buffer, error) {
	f, err := files.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, format, err := wav.Decode(f)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != p.sr {
		src = beep.Resample(4, format.SampleRate, p.sr, s)
	}
	format.SampleRate = p.sr
	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := s.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// Start opens the audio device and begins mixing. Without Start the player
// still accepts commands but nothing is heard.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// PlayTrack loops track i, replacing whatever is playing.
func (p *Player) PlayTrack(i int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := audio.CheckTrack(i, len(p.tracks)); err != nil {
		return err
	}
	buf := p.tracks[i]
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}

	p.withSpeaker(func() {
		if p.ctrl != nil {
			p.ctrl.Paused = true
		}
		p.mixer.Clear()
		p.mixer.Add(ctrl)
	})
	p.ctrl = ctrl
	p.current = i
	p.logger.Debug("playing track", "index", i, "name", p.names[i])
	return nil
}

// Stop silences playback.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.withSpeaker(func() {
		if p.ctrl != nil {
			p.ctrl.Paused = true
		}
		p.mixer.Clear()
	})
	p.ctrl = nil
	p.current = -1
}

// Tracks returns the number of loaded tracks.
func (p *Player) Tracks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tracks)
}

// Current returns the playing track, or -1.
func (p *Player) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Name returns the display name of track i.
func (p *Player) Name(i int) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.names) {
		return ""
	}
	return p.names[i]
}

// withSpeaker runs fn holding the speaker lock once the device is running.
func (p *Player) withSpeaker(fn func()) {
	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
