package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/five82/marquee/internal/config"
)

// parse runs the command with a stub action and returns the config after
// flag overlay.
func parse(t *testing.T, args ...string) config.Config {
	t.Helper()

	f := &flags{}
	cmd := newCommand(f)
	cfg := config.Default()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		applyFlags(&cfg, c, f)
		return nil
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"marquee"}, args...)))
	return cfg
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfg := parse(t, "--data", "/tmp/r.csv", "--columns", "2", "--log-level", "DEBUG")

	assert.Equal(t, "/tmp/r.csv", cfg.DataPath)
	assert.Equal(t, 2, cfg.Columns)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.VariantClassified, cfg.Variant)
}

func TestVariantFlagAppliesPreset(t *testing.T) {
	cfg := parse(t, "--variant", "cycling")

	assert.Equal(t, config.VariantCycling, cfg.Variant)
	assert.False(t, cfg.Classification)
	assert.False(t, cfg.FlaggedColumn)
	assert.Equal(t, 400, cfg.ContentLimit)
}

func TestUnsetFlagsKeepConfig(t *testing.T) {
	def := config.Default()
	cfg := parse(t)

	assert.Equal(t, def, cfg)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MARQUEE_COLUMNS", "4")
	t.Setenv("MARQUEE_VARIANT", "cycling")

	cfg := parse(t)
	assert.Equal(t, 4, cfg.Columns)
	assert.Equal(t, config.VariantCycling, cfg.Variant)
}
