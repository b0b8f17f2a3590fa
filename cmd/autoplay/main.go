// Command autoplay plays a batch of computer vs computer games and prints
// a summary of the results.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/arcothello/arcothello/automatic"
	"github.com/arcothello/arcothello/config"
)

func main() {
	var numGames int
	var outFile string
	cfg := &config.Config{}
	err := cfg.Load(os.Args[1:], func(fs *pflag.FlagSet) {
		fs.IntVar(&numGames, "games", 100, "number of games to play")
		fs.StringVar(&outFile, "out", "", "file to write YAML game records to")
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	cfg.ApplyLogLevel()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var out io.Writer
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create output file")
		}
		defer f.Close()
		out = f
	}

	summary, err := automatic.StartCompVComp(ctx, cfg, numGames, cfg.AutoplayThreads, out)
	if err != nil {
		log.Fatal().Err(err).Msg("autoplay failed")
	}
	fmt.Print(summary.String())
}
