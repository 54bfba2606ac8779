// Command maptool inspects battle map files from the shell.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/samdwyer/battletested/internal/config"
	"github.com/samdwyer/battletested/internal/grid"
	"github.com/samdwyer/battletested/internal/mapfile"
	"github.com/samdwyer/battletested/internal/mapgen"
	"github.com/samdwyer/battletested/internal/reach"
)

const defaultWidth = 80

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	// Plain output when piped.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Disable()
	}

	ctx := context.Background()
	if cmd == "gen" {
		if err := runGen(ctx, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	m, err := mapfile.Load(ctx, args[0], grid.DefaultWidth, grid.DefaultHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch cmd {
	case "viz":
		runViz(os.Stdout, m, terminalWidth())
	case "stats":
		runStats(os.Stdout, m)
	case "reach":
		if len(args) < 3 || len(args) > 4 {
			fmt.Fprintln(os.Stderr, "Usage: maptool reach <map-file> <row> <col> [range]")
			os.Exit(1)
		}
		start, maxRange, err := parseReachArgs(args[1:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := runReach(ctx, os.Stdout, m, start, maxRange); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: maptool <command> <map-file> [args]

Commands:
  viz   <map-file>                     Render map as coloured ASCII art
  stats <map-file>                     Show tile distribution and floor %
  reach <map-file> <row> <col> [range] Print the movement distance field
  gen   <map-file> [seed]              Write a random map`)
}

// terminalWidth returns the width of stdout, or a default when it is not a
// terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// runGen writes a generated map to args[0], seeded from args[1] or the clock.
func runGen(ctx context.Context, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("usage: maptool gen <map-file> [seed]")
	}
	seed := time.Now().UnixNano()
	if len(args) == 2 {
		var err error
		if seed, err = strconv.ParseInt(args[1], 10, 64); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	gen := mapgen.New(grid.DefaultWidth, grid.DefaultHeight, seed)
	m := gen.Generate(ctx)
	if err := mapfile.Save(ctx, args[0], m); err != nil {
		return err
	}
	fmt.Printf("wrote %s: %d rooms, seed %d\n", args[0], len(gen.Rooms), seed)
	return nil
}

func parseReachArgs(args []string) (grid.Position, int, error) {
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return grid.Position{}, 0, fmt.Errorf("row: %w", err)
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return grid.Position{}, 0, fmt.Errorf("col: %w", err)
	}
	maxRange := reach.DefaultRange
	if len(args) == 3 {
		if maxRange, err = strconv.Atoi(args[2]); err != nil {
			return grid.Position{}, 0, fmt.Errorf("range: %w", err)
		}
	}
	if maxRange > config.MaxRange {
		return grid.Position{}, 0, fmt.Errorf("range %d exceeds the limit of %d", maxRange, config.MaxRange)
	}
	return grid.Pos(row, col), maxRange, nil
}
