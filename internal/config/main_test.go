package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lost.host/meutraa/fret/internal/game"
)

func TestDefaults(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "assets/songs", c.Directory)
	assert.Equal(t, "asdfg", c.Keys)
	assert.Equal(t, game.DefaultSettings(), c.Settings)
	assert.Equal(t, 60.0, c.TickRate)
	assert.Equal(t, "scores.txt", c.ScoreFile)
	assert.Equal(t, "scores.db", c.Database)
	assert.Empty(t, c.LogFile)
}

func TestOverrides(t *testing.T) {
	c, err := Parse([]string{
		"songs",
		"-k", "hjkl;",
		"--speed", "250",
		"--max-speed", "900",
		"--points", "50",
		"--window-start", "470",
		"--db=",
		"--log", "fret.log",
	})
	require.NoError(t, err)

	assert.Equal(t, "songs", c.Directory)
	assert.Equal(t, "hjkl;", c.Keys)
	assert.Equal(t, 250.0, c.Settings.InitialSpeed)
	assert.Equal(t, 900.0, c.Settings.MaxSpeed)
	assert.Equal(t, 50, c.Settings.HitPoints)
	assert.Equal(t, 470.0, c.Settings.WindowStart)
	assert.Empty(t, c.Database)
	assert.Equal(t, "fret.log", c.LogFile)
}

func TestInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"--keys", "asd"},
		{"--tick-rate", "0"},
		{"--speed", "800"},
		{"--window-start", "600"},
		{"--speed", "fast"},
		{"--no-such-flag"},
	} {
		_, err := Parse(args)
		assert.Error(t, err, args)
	}

	_, err := Parse([]string{"--speed=-1"})
	assert.ErrorIs(t, err, game.ErrInvalidSettings)
}
