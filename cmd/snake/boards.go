package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List all board presets",
	Long:  `Shows every board preset with its size and whether it fits the current terminal.`,
	Args:  cobra.NoArgs,
	RunE:  runBoards,
}

func runBoards(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	names := cfg.BoardNames()

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No boards configured.")
		return nil
	}

	width, height := terminalSize()
	fits := func(g snake.Grid) bool {
		return snake.Fits(g, width, height-1)
	}

	fmt.Fprintln(out, "Available boards:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, n := range names {
		maxNameLen = max(maxNameLen, len(n))
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %-7s  %-4s  %-7s  %s\n", maxNameLen, "Name", "Cells", "Cell", "Needs", "Fits")
	fmt.Fprintf(out, "  %-*s  %-7s  %-4s  %-7s  %s\n", maxNameLen, "----", "-----", "----", "-----", "----")

	for _, n := range names {
		g := cfg.Boards[n].Grid()
		w, h := snake.RequiredSize(g)
		fit := "no"
		if fits(g) {
			fit = "yes"
		}
		fmt.Fprintf(out, "  %-*s  %-7s  %-4d  %-7s  %s\n", maxNameLen, n,
			fmt.Sprintf("%dx%d", g.Columns, g.Rows), g.CellSize,
			fmt.Sprintf("%dx%d", w, h+1), fit)
	}

	auto, _, err := cfg.ResolveBoard("auto", fits)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Terminal is %dx%d; 'auto' picks %s.\n", width, height, auto)
	fmt.Fprintln(out, "Run 'snake play --board <name>' to play on a board.")
	return nil
}
