// firescreen is a fire effect demo built on a small screen state machine.
//
// Usage:
//
//	firescreen run                - Run the demo (default backend: tea)
//	firescreen list               - List registered screens
//	firescreen snapshot           - Render frames headless and save a PNG
//	firescreen palette            - Print or export the fire palette
//	firescreen config             - Print the default configuration
//
// Global flags:
//
//	--config <path>    - Configuration file (default search path otherwise)
//	--fps <rate>       - Override display.fps
//	--seed <value>     - Override the fire seed (0 = from frame counter)
//	--debug            - Panic on arena misuse
//	--log-level <lvl>  - debug, info, warn, error
//	--log-file <path>  - Log destination for interactive backends
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import screens to register them
	_ "github.com/vovakirdan/firescreen/internal/screens"
)

// buildID is set with -ldflags "-X main.buildID=...".
var buildID = "dev"

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDebug    bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "firescreen",
	Short: "Firescreen - a fire effect on a screen state machine",
	Long: `Firescreen renders a cellular-automaton fire through a depth-ordered
primitive pipeline, with a sliding logo, a HUD and a sound test screen.

Available commands:
  run       - Run the demo in a terminal, window or framebuffer
  list      - Show all registered screens
  snapshot  - Render frames without a display and save a PNG
  palette   - Print or export the generated palette
  config    - Print the default configuration

Examples:
  firescreen run
  firescreen run --backend window
  firescreen run --screen soundtest
  firescreen snapshot --frames 120 --out fire.png
  firescreen palette --out ramp.png`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Fire RNG seed (0 = from config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Panic on arena misuse")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(configCmd)
}
