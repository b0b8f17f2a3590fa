// Package game drives a single match: whose turn it is, passes, the move
// history and the result. A Game doesn't care how it is played; players
// choose moves outside of it.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/arcothello/arcothello/board"
	"github.com/arcothello/arcothello/config"
	"github.com/arcothello/arcothello/move"
	"github.com/arcothello/arcothello/turnplayer"
)

var (
	ErrGameOver       = errors.New("game is over")
	ErrIllegalMove    = errors.New("illegal move")
	ErrPassNotAllowed = errors.New("cannot pass while a legal move exists")
)

// PlayState is the state of the match.
type PlayState int

const (
	PlayStatePlaying PlayState = iota
	PlayStateGameOver
)

func (p PlayState) String() string {
	if p == PlayStatePlaying {
		return "playing"
	}
	return "game over"
}

// Game is the match state. The board is owned by the game; callers that
// want to experiment on it should Copy it first.
type Game struct {
	uid               string
	board             *board.Board
	onturn            board.Cell
	turnnum           int
	consecutivePasses int
	history           []Turn
	playing           PlayState
}

// NewGame starts a match on a freshly seeded board of the configured size.
// SideA moves first.
func NewGame(cfg *config.Config) *Game {
	return NewFromPosition(board.NewGame(cfg.BoardWidth, cfg.BoardHeight), board.SideA)
}

// NewFromPosition starts a match from an arbitrary position, for example
// one loaded from a CGP string.
func NewFromPosition(b *board.Board, onturn board.Cell) *Game {
	g := &Game{
		uid:    uuid.NewString(),
		board:  b,
		onturn: onturn,
	}
	g.updatePlayState()
	return g
}

func (g *Game) Uid() string {
	return g.uid
}

func (g *Game) SetUid(uid string) {
	g.uid = uid
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) PlayerOnTurn() board.Cell {
	return g.onturn
}

// Turn is the number of moves (passes included) played so far.
func (g *Game) Turn() int {
	return g.turnnum
}

func (g *Game) ConsecutivePasses() int {
	return g.consecutivePasses
}

func (g *Game) Playing() bool {
	return g.playing == PlayStatePlaying
}

func (g *Game) PlayState() PlayState {
	return g.playing
}

// History returns a copy of the turns played so far.
func (g *Game) History() []Turn {
	h := make([]Turn, len(g.history))
	copy(h, g.history)
	return h
}

// ValidateMove checks m for the side on turn without playing it.
func (g *Game) ValidateMove(m move.Move) error {
	if !g.Playing() {
		return ErrGameOver
	}
	if m.IsPass() {
		if g.board.HasLegalMove(g.onturn) {
			return ErrPassNotAllowed
		}
		return nil
	}
	if !g.board.IsLegalMove(m, g.onturn) {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, m.ShortDescription(), g.onturn)
	}
	return nil
}

// PlayMove plays m for the side on turn and hands the turn over.
func (g *Game) PlayMove(m move.Move) error {
	if err := g.ValidateMove(m); err != nil {
		return err
	}
	side := g.onturn
	if m.IsPass() {
		g.consecutivePasses++
	} else {
		if !g.board.ApplyMove(m, side) {
			// ValidateMove already vetted it.
			return fmt.Errorf("%w: %s", ErrIllegalMove, m.ShortDescription())
		}
		g.consecutivePasses = 0
	}
	a, b := g.board.Scores()
	g.history = append(g.history, Turn{Side: side, Move: m, ScoreA: a, ScoreB: b})
	g.turnnum++
	g.onturn = side.Opponent()
	g.updatePlayState()
	log.Debug().
		Str("uid", g.uid).
		Int("turn", g.turnnum).
		Str("side", side.String()).
		Str("move", m.ShortDescription()).
		Msg("played-move")
	return nil
}

// PlayTurn asks p for a move for the side on turn and plays it.
func (g *Game) PlayTurn(p turnplayer.Player, depthHint int) (move.Move, error) {
	if !g.Playing() {
		return move.Pass, ErrGameOver
	}
	m := p.ChooseMove(g.board, g.onturn, depthHint)
	if err := g.PlayMove(m); err != nil {
		return m, fmt.Errorf("player %s: %w", p.Name(), err)
	}
	return m, nil
}

func (g *Game) updatePlayState() {
	if g.board.IsFinished() || g.consecutivePasses >= 2 {
		g.playing = PlayStateGameOver
		return
	}
	g.playing = PlayStatePlaying
}

// Winner returns the side with more discs, or board.Empty for a draw.
func (g *Game) Winner() board.Cell {
	a, b := g.board.Scores()
	switch {
	case a > b:
		return board.SideA
	case b > a:
		return board.SideB
	}
	return board.Empty
}

// Spread is SideA's disc count minus SideB's.
func (g *Game) Spread() int {
	a, b := g.board.Scores()
	return a - b
}
