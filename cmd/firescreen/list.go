package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/firescreen/internal/screen"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered screens",
	Long:  `Shows a list of all screens registered with the screen machine.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	screens := screen.List()

	if len(screens) == 0 {
		fmt.Println("No screens registered.")
		return
	}

	fmt.Println("Available screens:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range screens {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range screens {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'firescreen run --screen <id>' to start on a screen.")
}
