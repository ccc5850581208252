package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"

	"github.com/vovakirdan/firescreen/internal/audio"
	"github.com/vovakirdan/firescreen/internal/audio/beepaudio"
	"github.com/vovakirdan/firescreen/internal/config"
	"github.com/vovakirdan/firescreen/internal/core"
	"github.com/vovakirdan/firescreen/internal/pipeline"
	"github.com/vovakirdan/firescreen/internal/render"
	"github.com/vovakirdan/firescreen/internal/screen"
)

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, cfg.Validate()
}

// newLogger creates the process logger. Interactive backends pass
// interactive=true so that, without --log-file, nothing is written over the
// screen.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		if dir := filepath.Dir(flagLogFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, err
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q", flagLogLevel)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "firescreen",
		Level:           level,
	})
	return logger, closeFn, nil
}

// app wires a surface, audio and the screen machine around a presenter.
type app struct {
	cfg     config.Config
	rt      core.RuntimeConfig
	logger  *log.Logger
	surface *render.SoftSurface
	machine *screen.Machine
}

type appOptions struct {
	presenter render.Presenter
	input     core.ButtonSource
	audio     bool
}

func newApp(cfg config.Config, logger *log.Logger, opts appOptions) (*app, error) {
	rt := cfg.Runtime(buildID, flagDebug)
	files := os.DirFS(cfg.AssetsDir)

	surface, err := render.NewSoftSurface(render.Options{
		Width:      rt.ScreenW,
		Height:     rt.ScreenH,
		Background: cfg.Background(),
		Depth:      pipeline.Depth,
		Capacity:   pipeline.Capacity(cfg.Fire.Width, cfg.Fire.Height, cfg.Fire.Width*cfg.Fire.Block, cfg.PaletteLen()),
		Face:       hudFace(cfg, files, logger),
	}, opts.presenter, logger.WithPrefix("render"))
	if err != nil {
		return nil, err
	}

	var player audio.Player = audio.NewNop(cfg.Audio.Tracks)
	if opts.audio && cfg.Audio.Enabled {
		player = startAudio(cfg, files, logger.WithPrefix("audio"))
	}

	m := screen.NewMachine(screen.Host{
		Surface: surface,
		Input:   opts.input,
		Audio:   player,
		Files:   files,
		Config:  cfg,
		Logger:  logger.WithPrefix("screen"),
		BuildID: rt.BuildID,
		Debug:   rt.Debug,
	}, cfg.Screen.ArenaBytes)

	return &app{cfg: cfg, rt: rt, logger: logger, surface: surface, machine: m}, nil
}

// start activates the initial screen, overridden by id when set.
func (a *app) start(id string) error {
	if id == "" {
		id = a.cfg.Screen.Initial
	}
	a.logger.Info("starting", "screen", id, "build", a.rt.BuildID, "size", fmt.Sprintf("%dx%d", a.rt.ScreenW, a.rt.ScreenH))
	return a.machine.Change(screen.ID(id))
}

func (a *app) stop() {
	a.machine.Unload()
}

// hudFace loads hud.font_path from the assets, falling back to the
// built-in face.
func hudFace(cfg config.Config, files fs.FS, logger *log.Logger) font.Face {
	if cfg.HUD.FontPath == "" {
		return nil
	}
	data, err := fs.ReadFile(files, cfg.HUD.FontPath)
	if err != nil {
		logger.Warn("HUD font unavailable", "path", cfg.HUD.FontPath, "err", err)
		return nil
	}
	face, err := render.ParseFace(data, cfg.HUD.FontSize)
	if err != nil {
		logger.Warn("HUD font unusable", "path", cfg.HUD.FontPath, "err", err)
		return nil
	}
	return face
}

func startAudio(cfg config.Config, files fs.FS, logger *log.Logger) audio.Player {
	p, err := beepaudio.New(files, beepaudio.Options{
		SampleRate: cfg.Audio.SampleRate,
		Dir:        cfg.Audio.TracksDir,
		Synth:      cfg.Audio.Tracks,
	}, logger)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return audio.NewNop(cfg.Audio.Tracks)
	}
	if err := p.Start(); err != nil {
		logger.Warn("no audio device, running silent", "err", err)
	}
	return p
}
