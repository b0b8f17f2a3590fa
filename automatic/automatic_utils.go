package automatic

// Computer vs computer batches. Games are sharded to workers by game id,
// and every finished game is appended to the output as a YAML record.

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/cespare/xxhash"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/arcothello/arcothello/config"
)

var ErrNoGames = errors.New("number of games must be positive")

// progressInterval is how many finished games pass between progress logs.
const progressInterval = 100

// shardFor picks the worker that plays gameID.
func shardFor(gameID string, threads int) int {
	return int(xxhash.Sum64String(gameID) % uint64(threads))
}

// StartCompVComp plays numGames games on threads workers and blocks until
// they are done. Records go to out when it is non-nil. Canceling ctx stops
// queueing new games and workers drop the games still queued to them;
// games already started are finished and counted.
func StartCompVComp(ctx context.Context, cfg *config.Config, numGames, threads int,
	out io.Writer) (*Summary, error) {
	return startCompVComp(ctx, cfg, numGames, threads, out, newGameRunner)
}

type runnerFactory func(cfg *config.Config, book *openingBook) (*GameRunner, error)

func startCompVComp(ctx context.Context, cfg *config.Config, numGames, threads int,
	out io.Writer, newRunner runnerFactory) (*Summary, error) {

	if numGames < 1 {
		return nil, ErrNoGames
	}
	threads = max(1, threads)
	log.Info().Int("games", numGames).Int("threads", threads).Msg("starting-comp-v-comp")

	book := newOpeningBook(cfg.BoardWidth, cfg.BoardHeight)
	runners := make([]*GameRunner, threads)
	for t := range runners {
		r, err := newRunner(cfg, book)
		if err != nil {
			return nil, err
		}
		runners[t] = r
	}

	jobs := make([]chan string, threads)
	for t := range jobs {
		jobs[t] = make(chan string, 16)
	}
	records := make(chan *GameRecord, threads)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer func() {
			for _, ch := range jobs {
				close(ch)
			}
		}()
		for i := 1; i <= numGames; i++ {
			id := uuid.NewString()
			select {
			case jobs[shardFor(id, threads)] <- id:
			case <-gctx.Done():
				log.Info().Int("queued", i-1).Msg("got stop signal, no more games will be queued")
				return nil
			}
		}
		log.Debug().Msg("finished queueing all games")
		return nil
	})

	for t := range runners {
		t := t
		g.Go(func() error {
			dropped := 0
			for id := range jobs[t] {
				if gctx.Err() != nil {
					dropped++
					continue
				}
				rec, err := runners[t].PlayGame(id)
				if err != nil {
					return err
				}
				records <- rec
			}
			log.Debug().Int("thread", t).Int("dropped", dropped).Msg("worker exiting")
			return nil
		})
	}

	summary := &Summary{}
	writer := errgroup.Group{}
	writer.Go(func() error {
		tstart := time.Now()
		var werr error
		for rec := range records {
			summary.Add(rec)
			if out != nil && werr == nil {
				werr = writeRecord(out, rec)
			}
			if summary.Games%progressInterval == 0 {
				log.Info().
					Int("played", summary.Games).
					Dur("elapsed", time.Since(tstart)).
					Msg("comp-v-comp-progress")
			}
		}
		return werr
	})

	err := g.Wait()
	close(records)
	if werr := writer.Wait(); err == nil {
		err = werr
	}
	if err != nil {
		return summary, err
	}
	log.Info().
		Int("games", summary.Games).
		Int("winsX", summary.WinsX).
		Int("winsO", summary.WinsO).
		Int("draws", summary.Draws).
		Int("openings", book.size()).
		Msg("comp-v-comp-done")
	return summary, nil
}
