package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 9, c.BoardWidth)
	assert.Equal(t, 7, c.BoardHeight)
	assert.Equal(t, 5, c.SearchDepth)
	assert.False(t, c.HonorDepthHint)
	assert.Equal(t, 53, c.LateGameTrigger)
	assert.Equal(t, PruningSingleBound, c.Pruning)
	assert.Equal(t, "arcothello", c.PlayerName)
	assert.GreaterOrEqual(t, c.AutoplayThreads, 1)
	assert.NoError(t, c.Validate())
}

func TestLoadFlags(t *testing.T) {
	var c Config
	err := c.Load([]string{"--board-width", "8", "--board-height=8",
		"--search-depth", "3", "--honor-depth-hint", "--pruning", "alpha-beta"})
	require.NoError(t, err)
	assert.Equal(t, 8, c.BoardWidth)
	assert.Equal(t, 8, c.BoardHeight)
	assert.Equal(t, 3, c.SearchDepth)
	assert.True(t, c.HonorDepthHint)
	assert.Equal(t, PruningAlphaBeta, c.Pruning)
	assert.Equal(t, 53, c.LateGameTrigger)
}

func TestLoadExtraFlags(t *testing.T) {
	var c Config
	var games int
	err := c.Load([]string{"--games", "40", "--search-depth", "2"}, func(fs *pflag.FlagSet) {
		fs.IntVar(&games, "games", 100, "number of games")
	})
	require.NoError(t, err)
	assert.Equal(t, 40, games)
	assert.Equal(t, 2, c.SearchDepth)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("ARCOTHELLO_SEARCH_DEPTH", "2")
	var c Config
	require.NoError(t, c.Load(nil))
	assert.Equal(t, 2, c.SearchDepth)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arcothello.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search-depth: 4\nplayer-name: tester\n"), 0o644))
	var c Config
	require.NoError(t, c.Load([]string{"--config", path}))
	assert.Equal(t, 4, c.SearchDepth)
	assert.Equal(t, "tester", c.PlayerName)
}

func TestLoadInvalid(t *testing.T) {
	var c Config
	err := c.Load([]string{"--pruning", "magic"})
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	err = c.Load([]string{"--board-width", "2"})
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	err = c.Load([]string{"--no-such-flag"})
	assert.Error(t, err)
}
