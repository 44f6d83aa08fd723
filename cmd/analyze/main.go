// Command analyze prints quick, human-readable heuristics about goose boards.
// For every starting square and two-dice distance it follows the move chain
// and summarizes how many hops moves take, which move is the longest, and
// which moves never settle because geese keep bouncing the player around.
//
// With no arguments it analyzes every board the config manager can load from
// the boards directory (or GOOSE_BOARD_DIR); otherwise it analyzes the given
// board files.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/wricardo/mcp-training/goosegame/game/board"
	"github.com/wricardo/mcp-training/goosegame/game/config"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, files []string) error {
	if len(files) > 0 {
		for _, file := range files {
			fmt.Fprintf(w, "\n=== Analyzing %s ===\n", file)
			b, err := config.LoadFile(file)
			if err != nil {
				fmt.Fprintf(w, "Error loading board: %v\n", err)
				continue
			}
			analyzeBoard(w, b)
		}
		return nil
	}

	manager, err := config.NewManager(os.Getenv("GOOSE_BOARD_DIR"))
	if err != nil {
		return err
	}
	configs, err := manager.ListConfigs()
	if err != nil {
		return err
	}

	for _, c := range configs {
		fmt.Fprintf(w, "\n=== Analyzing %s ===\n", c.Filename)
		b, err := manager.LoadConfig(c.ConfigID)
		if err != nil {
			fmt.Fprintf(w, "Error loading board: %v\n", err)
			continue
		}
		analyzeBoard(w, b)
	}
	return nil
}

func analyzeBoard(w io.Writer, b *board.Board) {
	analysis := b.Analyze()

	fmt.Fprintf(w, "Name: %s\n", b.Name)
	fmt.Fprintf(w, "Squares: 0 to %d\n", b.End)
	fmt.Fprintf(w, "Bridge: %d -> 12\n", b.Bridge)
	fmt.Fprintf(w, "Geese: %v\n", b.Geese)

	hops := make([]int, 0, len(analysis.Hops))
	for h := range analysis.Hops {
		hops = append(hops, h)
	}
	sort.Ints(hops)

	total := 0
	for _, n := range analysis.Hops {
		total += n
	}
	for _, h := range hops {
		n := analysis.Hops[h]
		fmt.Fprintf(w, "  %d hop(s): %4d moves (%.1f%%)\n", h, n, 100*float64(n)/float64(total))
	}

	fmt.Fprintf(w, "Longest chain: %d hop(s), moving %d from %s\n",
		analysis.LongestChain, analysis.Longest.Distance, b.At(analysis.Longest.From).Label())

	if len(analysis.Loops) > 0 {
		fmt.Fprintf(w, "WARNING: %d moves never settle!\n", len(analysis.Loops))
		for i, loop := range analysis.Loops {
			if i < 5 { // Show first 5 looping moves
				fmt.Fprintf(w, "   Loop: moving %d from %d\n", loop.Distance, loop.From)
			}
		}
		if len(analysis.Loops) > 5 {
			fmt.Fprintf(w, "   ... and %d more\n", len(analysis.Loops)-5)
		}
	} else {
		fmt.Fprintf(w, "OK: every move settles within %d hop(s)\n", b.MaxHops())
	}
}
