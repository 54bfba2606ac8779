package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/battletested/internal/theme"
)

func TestResolveStyles(t *testing.T) {
	styles, err := ResolveStyles("paper")
	require.NoError(t, err)
	assert.NotEqual(t, theme.Default(), styles)

	_, err = ResolveStyles("neon")
	assert.ErrorContains(t, err, "ui.theme")
}

func TestStart(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HONEYCOMB_BATTLETESTED_API_KEY", "")
	logPath := filepath.Join(dir, "bt.log")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  file: "+logPath+"\nui:\n  theme: paper\n"), 0644))

	env, err := Start(context.Background(), "test", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "paper", env.Config.Config().UI.Theme)
	require.NoError(t, env.Close(context.Background()))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
}

func TestStartBadTheme(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	dir := t.TempDir()
	t.Chdir(dir)
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  file: bt.log\nui:\n  theme: neon\n"), 0644))

	before := log.Logger
	_, err := Start(context.Background(), "test", cfgPath)
	assert.ErrorContains(t, err, "ui.theme")

	// Logging was never redirected to a file that is now closed.
	assert.Equal(t, before, log.Logger)
	assert.NoFileExists(t, filepath.Join(dir, "bt.log"))
}
