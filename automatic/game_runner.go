// Package automatic plays computer vs computer games for testing and
// tuning the search.
package automatic

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/arcothello/arcothello/board"
	"github.com/arcothello/arcothello/config"
	"github.com/arcothello/arcothello/game"
	"github.com/arcothello/arcothello/move"
	"github.com/arcothello/arcothello/turnplayer"
	"github.com/arcothello/arcothello/zobrist"
)

// maxOpeningTries bounds how often a runner redraws an opening that was
// already played.
const maxOpeningTries = 8

// openingBook remembers the positions games started from after their
// random opening plies. It is shared by all runners of one batch.
type openingBook struct {
	sync.Mutex
	z    *zobrist.Zobrist
	seen map[uint64]struct{}
}

func newOpeningBook(width, height int) *openingBook {
	z := &zobrist.Zobrist{}
	z.Initialize(width, height)
	return &openingBook{z: z, seen: make(map[uint64]struct{})}
}

// claim records the position and reports whether it was new.
func (o *openingBook) claim(b *board.Board, onturn board.Cell) bool {
	key := o.z.Hash(b, onturn)
	o.Lock()
	defer o.Unlock()
	if _, ok := o.seen[key]; ok {
		return false
	}
	o.seen[key] = struct{}{}
	return true
}

func (o *openingBook) size() int {
	o.Lock()
	defer o.Unlock()
	return len(o.seen)
}

// GameRunner plays whole games between two players. A runner is not safe
// for concurrent use; each worker owns one.
type GameRunner struct {
	config  *config.Config
	players [2]turnplayer.Player
	book    *openingBook
}

// NewGameRunner builds a runner with two minimax players configured by cfg.
func NewGameRunner(cfg *config.Config) (*GameRunner, error) {
	return newGameRunner(cfg, newOpeningBook(cfg.BoardWidth, cfg.BoardHeight))
}

func newGameRunner(cfg *config.Config, book *openingBook) (*GameRunner, error) {
	r := &GameRunner{config: cfg, book: book}
	for idx := range r.players {
		p, err := turnplayer.NewMinimaxPlayer(cfg)
		if err != nil {
			return nil, err
		}
		p.SetName(fmt.Sprintf("%s-%d", cfg.PlayerName, idx+1))
		r.players[idx] = p
	}
	return r, nil
}

// SetPlayers replaces the two players; the first one plays SideA.
func (r *GameRunner) SetPlayers(a, b turnplayer.Player) {
	r.players = [2]turnplayer.Player{a, b}
}

func (r *GameRunner) playerFor(side board.Cell) turnplayer.Player {
	if side == board.SideB {
		return r.players[1]
	}
	return r.players[0]
}

// rngFor derives the opening generator from the game id, so a game id
// always gets the same opening.
func rngFor(gameID string) *frand.RNG {
	var seed [32]byte
	if u, err := uuid.Parse(gameID); err == nil {
		copy(seed[:], u[:])
	} else {
		copy(seed[:], gameID)
	}
	return frand.NewCustom(seed[:], 1024, 12)
}

// playOpening plays random moves until the configured number of plies is
// reached or the game ends. It returns the moves played.
func (r *GameRunner) playOpening(g *game.Game, rng *frand.RNG) ([]move.Move, error) {
	var played []move.Move
	for i := 0; i < r.config.AutoplayOpeningPlies && g.Playing(); i++ {
		moves := g.Board().LegalMoves(g.PlayerOnTurn())
		m := move.Pass
		if len(moves) > 0 {
			m = moves[rng.Intn(len(moves))]
		}
		if err := g.PlayMove(m); err != nil {
			return nil, err
		}
		played = append(played, m)
	}
	return played, nil
}

// newGame sets up a game with a random opening, redrawing openings that
// another game in the batch already used.
func (r *GameRunner) newGame(gameID string) (*game.Game, error) {
	rng := rngFor(gameID)
	var g *game.Game
	for try := 0; try < maxOpeningTries; try++ {
		g = game.NewGame(r.config)
		g.SetUid(gameID)
		if _, err := r.playOpening(g, rng); err != nil {
			return nil, err
		}
		if r.book == nil || r.book.claim(g.Board(), g.PlayerOnTurn()) {
			return g, nil
		}
		log.Debug().Str("gameID", gameID).Int("try", try).Msg("duplicate-opening")
	}
	return g, nil
}

// PlayGame plays one game to the end and returns its record.
func (r *GameRunner) PlayGame(gameID string) (*GameRecord, error) {
	g, err := r.newGame(gameID)
	if err != nil {
		return nil, err
	}
	openingPlies := g.Turn()
	for g.Playing() {
		if _, err := g.PlayTurn(r.playerFor(g.PlayerOnTurn()), 0); err != nil {
			return nil, fmt.Errorf("game %s: %w", gameID, err)
		}
	}
	rec := newGameRecord(g, openingPlies, []string{r.players[0].Name(), r.players[1].Name()})
	log.Debug().
		Str("gameID", gameID).
		Int("scoreX", rec.ScoreX).
		Int("scoreO", rec.ScoreO).
		Msg("game-over")
	return rec, nil
}
