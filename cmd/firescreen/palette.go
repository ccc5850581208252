package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/firescreen/internal/palette"
)

var (
	flagSwatch     int
	flagPaletteOut string
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Print or export the generated palette",
	Long: `Generates the palette from the configured control colours. Without
--out the entries are printed as hex; with --out a swatch strip is saved
as PNG.

Examples:
  firescreen palette
  firescreen palette --out ramp.png --swatch 16`,
	Args: cobra.NoArgs,
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().StringVar(&flagPaletteOut, "out", "", "Output PNG path (print hex when empty)")
	paletteCmd.Flags().IntVar(&flagSwatch, "swatch", 16, "Swatch size in pixels")
}

func runPalette(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pal := palette.Generate(cfg.Colors(), cfg.Palette.Steps)

	if flagPaletteOut == "" {
		return palette.WriteHex(os.Stdout, pal)
	}

	dc, err := palette.Strip(pal, flagSwatch, flagSwatch)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(flagPaletteOut); err != nil {
		return fmt.Errorf("save palette: %w", err)
	}
	fmt.Printf("%s (%d entries)\n", flagPaletteOut, len(pal))
	return nil
}
