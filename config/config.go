package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigBoardWidth           = "board-width"
	ConfigBoardHeight          = "board-height"
	ConfigSearchDepth          = "search-depth"
	ConfigHonorDepthHint       = "honor-depth-hint"
	ConfigLateGameTrigger      = "late-game-trigger"
	ConfigPruning              = "pruning"
	ConfigLogLevel             = "log-level"
	ConfigPlayerName           = "player-name"
	ConfigAutoplayThreads      = "autoplay-threads"
	ConfigAutoplayOpeningPlies = "autoplay-opening-plies"
	ConfigFile                 = "config"
)

// Pruning policies understood by the search.
const (
	PruningSingleBound = "single-bound"
	PruningAlphaBeta   = "alpha-beta"
	PruningNone        = "none"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	BoardWidth           int    `mapstructure:"board-width"`
	BoardHeight          int    `mapstructure:"board-height"`
	SearchDepth          int    `mapstructure:"search-depth"`
	HonorDepthHint       bool   `mapstructure:"honor-depth-hint"`
	LateGameTrigger      int    `mapstructure:"late-game-trigger"`
	Pruning              string `mapstructure:"pruning"`
	LogLevel             string `mapstructure:"log-level"`
	PlayerName           string `mapstructure:"player-name"`
	AutoplayThreads      int    `mapstructure:"autoplay-threads"`
	AutoplayOpeningPlies int    `mapstructure:"autoplay-opening-plies"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigBoardWidth, 9)
	v.SetDefault(ConfigBoardHeight, 7)
	v.SetDefault(ConfigSearchDepth, 5)
	v.SetDefault(ConfigHonorDepthHint, false)
	v.SetDefault(ConfigLateGameTrigger, 53)
	v.SetDefault(ConfigPruning, PruningSingleBound)
	v.SetDefault(ConfigLogLevel, "info")
	v.SetDefault(ConfigPlayerName, "arcothello")
	v.SetDefault(ConfigAutoplayThreads, max(1, runtime.NumCPU()-1))
	v.SetDefault(ConfigAutoplayOpeningPlies, 2)
}

// DefaultConfig returns the configuration with every key at its default.
func DefaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(err)
	}
	return c
}

// Load fills in the config from, in increasing priority: defaults, an
// optional config file, ARCOTHELLO_* environment variables, and args.
// Commands can register flags of their own with extraFlags; those are parsed
// from the same args but not stored in the config.
func (c *Config) Load(args []string, extraFlags ...func(*pflag.FlagSet)) error {
	v := viper.New()
	setDefaults(v)

	fs := pflag.NewFlagSet("arcothello", pflag.ContinueOnError)
	fs.String(ConfigFile, "", "path to a yaml/json/toml config file")
	fs.Int(ConfigBoardWidth, 9, "number of board columns")
	fs.Int(ConfigBoardHeight, 7, "number of board rows")
	fs.Int(ConfigSearchDepth, 5, "plies searched when choosing a move")
	fs.Bool(ConfigHonorDepthHint, false, "let callers override the search depth")
	fs.Int(ConfigLateGameTrigger, 53, "discs played after which evaluation is disc count only")
	fs.String(ConfigPruning, PruningSingleBound, "search pruning: single-bound, alpha-beta or none")
	fs.String(ConfigLogLevel, "info", "zerolog level")
	fs.String(ConfigPlayerName, "arcothello", "display name of the computer player")
	fs.Int(ConfigAutoplayThreads, max(1, runtime.NumCPU()-1), "self-play worker count")
	fs.Int(ConfigAutoplayOpeningPlies, 2, "random plies played before each self-play game")
	for _, f := range extraFlags {
		f(fs)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	v.SetEnvPrefix("arcothello")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(ConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	if err := v.Unmarshal(c); err != nil {
		return err
	}
	return c.Validate()
}

// Validate checks the values a search and a board can be built from.
func (c *Config) Validate() error {
	if c.BoardWidth < 4 || c.BoardWidth > 26 {
		return fmt.Errorf("%w: board width %d", ErrInvalidConfig, c.BoardWidth)
	}
	if c.BoardHeight < 4 {
		return fmt.Errorf("%w: board height %d", ErrInvalidConfig, c.BoardHeight)
	}
	if c.SearchDepth < 0 {
		return fmt.Errorf("%w: search depth %d", ErrInvalidConfig, c.SearchDepth)
	}
	switch c.Pruning {
	case PruningSingleBound, PruningAlphaBeta, PruningNone:
	default:
		return fmt.Errorf("%w: pruning %q", ErrInvalidConfig, c.Pruning)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.AutoplayThreads < 1 {
		return fmt.Errorf("%w: autoplay threads %d", ErrInvalidConfig, c.AutoplayThreads)
	}
	return nil
}

// ApplyLogLevel sets the global zerolog level from the config.
func (c *Config) ApplyLogLevel() {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
