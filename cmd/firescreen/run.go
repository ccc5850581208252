package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/firescreen/internal/config"
	"github.com/vovakirdan/firescreen/internal/core"
	"github.com/vovakirdan/firescreen/internal/platform/fbdev"
	termp "github.com/vovakirdan/firescreen/internal/platform/term"
	"github.com/vovakirdan/firescreen/internal/platform/tui"
	"github.com/vovakirdan/firescreen/internal/platform/window"
	"github.com/vovakirdan/firescreen/internal/screen"
)

var (
	flagBackend string
	flagScreen  string
	flagScale   int
	flagDevice  string
	flagNoAudio bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the demo",
	Long: `Run the screen machine on the selected backend.

Backends:
  tea     - Bubble Tea terminal UI with a help footer (default)
  tcell   - Raw tcell terminal output
  window  - Desktop window
  fbdev   - Linux framebuffer, keys from stdin

Controls:
  Up/Down     - Change the counter / select a track
  X/Space     - Toggle ignition / play the track
  Z           - Toggle palette swatches / stop the track
  V           - Toggle the HUD / back to the menu
  Enter       - Sound test / back to the menu
  Q/Esc       - Quit

Examples:
  firescreen run
  firescreen run --backend tcell --fps 30
  firescreen run --backend window --scale 3
  firescreen run --backend fbdev --device /dev/fb1`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Backend: tea, tcell, window, fbdev")
	runCmd.Flags().StringVar(&flagScreen, "screen", "", "Initial screen (default from config)")
	runCmd.Flags().IntVar(&flagScale, "scale", 2, "Window scale factor")
	runCmd.Flags().StringVar(&flagDevice, "device", fbdev.DefaultDevice, "Framebuffer device")
	runCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable audio output")
}

func runRun(cmd *cobra.Command, args []string) error {
	if flagScreen != "" && !screen.Exists(screen.ID(flagScreen)) {
		return fmt.Errorf("unknown screen %q (run 'firescreen list')", flagScreen)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(flagBackend != "window")
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	switch flagBackend {
	case "tea":
		return runTea(cfg, logger)
	case "tcell":
		return runTcell(ctx, cfg, logger)
	case "window":
		return runWindow(cfg, logger)
	case "fbdev":
		return runFbdev(ctx, cfg, logger)
	default:
		return fmt.Errorf("unknown backend %q", flagBackend)
	}
}

func runTea(cfg config.Config, logger *log.Logger) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	latch := &core.KeyLatch{}
	sink := tui.NewSink(width, height-1)
	a, err := newApp(cfg, logger, appOptions{presenter: sink, input: latch, audio: !flagNoAudio})
	if err != nil {
		return err
	}
	if err := a.start(flagScreen); err != nil {
		return err
	}
	defer a.stop()

	return tui.Run(a.machine.Frame, sink, latch, a.rt.TickRate)
}

func runTcell(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	latch := &core.KeyLatch{}
	p, err := termp.New(latch)
	if err != nil {
		return err
	}
	defer p.Close()

	a, err := newApp(cfg, logger, appOptions{presenter: p, input: latch, audio: !flagNoAudio})
	if err != nil {
		return err
	}
	if err := a.start(flagScreen); err != nil {
		return err
	}
	defer a.stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go p.Listen(ctx, cancel)

	return a.machine.Run(ctx, a.rt.TickRate)
}

func runWindow(cfg config.Config, logger *log.Logger) error {
	g := window.New(cfg.Display.Width, cfg.Display.Height)
	a, err := newApp(cfg, logger, appOptions{presenter: g, input: g, audio: !flagNoAudio})
	if err != nil {
		return err
	}
	if err := a.start(flagScreen); err != nil {
		return err
	}
	defer a.stop()

	g.SetFrame(a.machine.Frame)
	return g.Run("firescreen "+a.rt.BuildID, flagScale, a.rt.TickRate)
}

func runFbdev(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	latch := &core.KeyLatch{}
	p, err := fbdev.Open(flagDevice, latch)
	if err != nil {
		return err
	}
	defer p.Close()

	a, err := newApp(cfg, logger, appOptions{presenter: p, input: latch, audio: !flagNoAudio})
	if err != nil {
		return err
	}
	if err := a.start(flagScreen); err != nil {
		return err
	}
	defer a.stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go p.Listen(ctx, os.Stdin, cancel)

	return a.machine.Run(ctx, a.rt.TickRate)
}
