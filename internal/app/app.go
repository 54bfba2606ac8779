// Package app wires the ambient setup shared by the interactive binaries:
// .env loading, config, logging, locale and telemetry.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/battletested/internal/config"
	"github.com/samdwyer/battletested/internal/logging"
	"github.com/samdwyer/battletested/internal/telemetry"
	"github.com/samdwyer/battletested/internal/theme"
	"github.com/samdwyer/battletested/internal/ui"
)

// Env is the result of Start.
type Env struct {
	Config *config.Store
	Styles theme.Styles

	logFile  io.Closer
	shutdown func(context.Context) error
}

// Start prepares everything a binary needs before it opens the screen.
// Telemetry failures are logged and otherwise ignored.
func Start(ctx context.Context, component, configPath string) (*Env, error) {
	// Not fatal: variables may be set directly.
	envErr := godotenv.Load()

	store, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg := store.Config()

	// Resolved before logging so a failure leaves the global logger alone.
	styles, err := ResolveStyles(cfg.UI.Theme)
	if err != nil {
		return nil, err
	}

	logFile, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, err
	}
	if envErr != nil {
		log.Debug().Err(envErr).Msg(".env file not loaded")
	}

	if !ui.SetupLocale(cfg.UI.LocalesDir, cfg.UI.Language) {
		log.Debug().Str("dir", cfg.UI.LocalesDir).Msg("no locale catalogue, using built-in strings")
	}

	env := &Env{Config: store, Styles: styles, logFile: logFile}
	if telemetry.ConfigureEnv() {
		shutdown, err := telemetry.Setup(ctx, component)
		if err != nil {
			log.Warn().Err(err).Msg("telemetry setup failed, running without tracing")
		} else {
			env.shutdown = shutdown
		}
	}

	log.Info().
		Str("component", component).
		Str("session", telemetry.SessionID()).
		Int("reach_range", cfg.Reach.MaxRange).
		Msg("starting")
	return env, nil
}

// ResolveStyles looks up a theme by ID in the embedded registry.
func ResolveStyles(id string) (theme.Styles, error) {
	registry, err := theme.LoadRegistry()
	if err != nil {
		return theme.Styles{}, err
	}
	t, err := registry.Resolve(id)
	if err != nil {
		return theme.Styles{}, fmt.Errorf("ui.theme: %w", err)
	}
	return t.Styles(), nil
}

// Close flushes telemetry and closes the log file.
func (e *Env) Close(ctx context.Context) error {
	var errs []error
	if e.shutdown != nil {
		if err := e.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down telemetry: %w", err))
		}
	}
	if err := e.logFile.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
