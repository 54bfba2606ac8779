// Package main is the entry point for the Battle Tested map viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/samdwyer/battletested/internal/app"
	"github.com/samdwyer/battletested/internal/config"
	"github.com/samdwyer/battletested/internal/game"
	"github.com/samdwyer/battletested/internal/grid"
	"github.com/samdwyer/battletested/internal/mapfile"
	"github.com/samdwyer/battletested/internal/ui"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "config file (default ./config.yaml)")
	mapPath := pflag.StringP("map", "m", "", "map file to open")
	moveRange := pflag.IntP("range", "r", -1, "movement range (overrides reach.max_range)")
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env, err := app.Start(ctx, "viewer", *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "battletested: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := env.Close(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "battletested: %v\n", err)
		}
	}()

	store := env.Config
	if *moveRange >= 0 {
		if err := store.Set("reach.max_range", *moveRange); err != nil {
			fmt.Fprintf(os.Stderr, "battletested: --range: %v\n", err)
			return
		}
	}
	if *mapPath != "" {
		if err := store.Set("map.path", *mapPath); err != nil {
			fmt.Fprintf(os.Stderr, "battletested: --map: %v\n", err)
			return
		}
	}
	if *configPath != "" {
		store.Watch(func(c *config.Config) {
			log.Info().Int("reach_range", c.Reach.MaxRange).Msg("config reloaded")
		}, func(err error) {
			log.Warn().Err(err).Msg("config change ignored")
		})
	}

	path := store.Config().Map.Path
	m := openMap(ctx, path)

	screen, err := ui.NewScreen()
	if err != nil {
		log.Error().Err(err).Msg("screen init failed")
		fmt.Fprintf(os.Stderr, "battletested: %v\n", err)
		return
	}

	g := game.New(screen, game.Options{
		Config:  store,
		Styles:  env.Styles,
		Map:     m,
		MapPath: path,
	})
	if err := g.Run(ctx); err != nil {
		log.Error().Err(err).Msg("game error")
	}
}

// openMap loads path, or returns a blank map when there is nothing to load.
func openMap(ctx context.Context, path string) *grid.Grid {
	if path != "" {
		m, err := mapfile.Load(ctx, path, grid.DefaultWidth, grid.DefaultHeight)
		if err == nil {
			return m
		}
		log.Warn().Err(err).Str("path", path).Msg("using blank map")
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	return grid.New(grid.DefaultWidth, grid.DefaultHeight)
}
