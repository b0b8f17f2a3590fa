package turnplayer

import (
	"github.com/rs/zerolog/log"

	"github.com/arcothello/arcothello/alphabeta"
	"github.com/arcothello/arcothello/board"
	"github.com/arcothello/arcothello/config"
	"github.com/arcothello/arcothello/equity"
	"github.com/arcothello/arcothello/move"
)

// MinimaxPlayer picks moves with the alphabeta solver.
type MinimaxPlayer struct {
	name   string
	solver *alphabeta.Solver
	cfg    *config.Config
}

// NewMinimaxPlayer builds a player with the positional evaluator for the
// configured board size.
func NewMinimaxPlayer(cfg *config.Config) (*MinimaxPlayer, error) {
	e := equity.NewPositionalEvaluator(cfg.BoardWidth, cfg.BoardHeight, cfg.LateGameTrigger)
	return NewMinimaxPlayerWithEvaluator(cfg, e)
}

func NewMinimaxPlayerWithEvaluator(cfg *config.Config, e equity.Evaluator) (*MinimaxPlayer, error) {
	s := &alphabeta.Solver{}
	if err := s.Init(e, cfg); err != nil {
		return nil, err
	}
	return &MinimaxPlayer{name: cfg.PlayerName, solver: s, cfg: cfg}, nil
}

func (p *MinimaxPlayer) Name() string {
	return p.name
}

func (p *MinimaxPlayer) SetName(name string) {
	p.name = name
}

func (p *MinimaxPlayer) Solver() *alphabeta.Solver {
	return p.solver
}

func (p *MinimaxPlayer) ChooseMove(b *board.Board, side board.Cell, depthHint int) move.Move {
	m := p.solver.ChooseMove(b, side, depthHint)
	st := p.solver.Stats()
	log.Debug().
		Str("player", p.name).
		Str("side", side.String()).
		Str("move", m.ShortDescription()).
		Int("nodes", st.Nodes).
		Msg("player-chose-move")
	return m
}
