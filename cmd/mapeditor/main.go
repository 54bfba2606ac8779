// Package main is the entry point for the Battle Tested map editor.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/samdwyer/battletested/internal/app"
	"github.com/samdwyer/battletested/internal/editor"
	"github.com/samdwyer/battletested/internal/grid"
	"github.com/samdwyer/battletested/internal/mapfile"
	"github.com/samdwyer/battletested/internal/ui"
)

const version = "0.2.0"

func main() {
	configPath := pflag.StringP("config", "c", "", "config file (default ./config.yaml)")
	loadPath := pflag.StringP("load", "l", "", "map file to load")
	savePath := pflag.StringP("save", "s", "", "map file to save to")
	showVersion := pflag.BoolP("version", "v", false, "print version and exit")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: mapeditor [flags] [map file]\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *showVersion {
		fmt.Printf("mapeditor %s (map format %d)\n", version, mapfile.Version)
		return
	}

	load, save := paths(pflag.Arg(0), *loadPath, *savePath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env, err := app.Start(ctx, "editor", *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mapeditor: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := env.Close(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "mapeditor: %v\n", err)
		}
	}()

	m := loadMap(ctx, load)

	screen, err := ui.NewScreen()
	if err != nil {
		log.Error().Err(err).Msg("screen init failed")
		fmt.Fprintf(os.Stderr, "mapeditor: %v\n", err)
		return
	}

	session := editor.NewSession(screen, ui.NewRenderer(screen, env.Styles), editor.New(m))
	if session.Run(ctx) != editor.ActionSaveQuit {
		return
	}
	if save == "" {
		fmt.Fprintln(os.Stderr, "mapeditor: no save file given, changes discarded")
		return
	}
	if err := mapfile.Save(ctx, save, m); err != nil {
		log.Error().Err(err).Msg("save failed")
		fmt.Fprintf(os.Stderr, "mapeditor: %v\n", err)
		return
	}
	log.Info().Str("path", save).Msg("map saved")
}

// paths resolves the load and save paths. A positional argument sets both;
// the flags override it.
func paths(arg, load, save string) (string, string) {
	l, s := arg, arg
	if load != "" {
		l = load
	}
	if save != "" {
		s = save
	}
	return l, s
}

func loadMap(ctx context.Context, path string) *grid.Grid {
	if path != "" {
		m, err := mapfile.Load(ctx, path, grid.DefaultWidth, grid.DefaultHeight)
		if err == nil {
			return m
		}
		log.Warn().Err(err).Str("path", path).Msg("starting from a blank map")
		fmt.Fprintf(os.Stderr, "Failed to load map: %v\n", err)
	}
	return grid.New(grid.DefaultWidth, grid.DefaultHeight)
}
