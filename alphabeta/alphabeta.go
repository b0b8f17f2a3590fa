// Package alphabeta chooses moves with depth-limited minimax over cloned
// boards, scoring leaves with a static evaluator.
package alphabeta

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/arcothello/arcothello/board"
	"github.com/arcothello/arcothello/config"
	"github.com/arcothello/arcothello/equity"
	"github.com/arcothello/arcothello/move"
)

// thanks Wikipedia, minus the alpha window: every node only carries the
// best value found so far by its parent.
/**function search(node, depth, bound, maximizingPlayer) is
    if depth = 0 or node is terminal or node has no moves then
        return the heuristic value of node for the root player
    if maximizingPlayer then
        value := −∞
        for each child of node do
            v := search(child, depth − 1, value, FALSE)
            if v > value then
                value := v
                if value > bound then
                    break
        return value
    else
        value := +∞
        for each child of node do
            v := search(child, depth − 1, value, TRUE)
            if v < value then
                value := v
                if value < bound then
                    break
        return value
(* Initial call *)
search(origin, depth, +∞, TRUE)
**/

const (
	// Infinity and NegInfinity bound every evaluator score.
	Infinity    = math.MaxInt
	NegInfinity = math.MinInt
	// DefaultDepth is the search depth when no config is given.
	DefaultDepth = 5
)

// PruningMode selects how much of the tree the search may skip. All modes
// choose the same root move with the same score.
type PruningMode int

const (
	// SingleBound cuts a node off as soon as it improves past the best
	// value its parent has already found.
	SingleBound PruningMode = iota
	// AlphaBeta carries the full two-sided window.
	AlphaBeta
	// NoPruning is plain minimax.
	NoPruning
)

func (p PruningMode) String() string {
	switch p {
	case SingleBound:
		return config.PruningSingleBound
	case AlphaBeta:
		return config.PruningAlphaBeta
	case NoPruning:
		return config.PruningNone
	}
	return "unknown"
}

// PruningModeFromString parses the config value.
func PruningModeFromString(s string) (PruningMode, error) {
	switch s {
	case config.PruningSingleBound, "":
		return SingleBound, nil
	case config.PruningAlphaBeta:
		return AlphaBeta, nil
	case config.PruningNone:
		return NoPruning, nil
	}
	return SingleBound, fmt.Errorf("unknown pruning mode %q", s)
}

// Stats counts the work done by the last Solve, Search or ChooseMove.
type Stats struct {
	Nodes   int
	Leaves  int
	Clones  int
	Cutoffs int
}

// PVLine is the principal variation: the line of best play found.
type PVLine struct {
	Moves []move.Move
	score int
}

// Clear the principal variation line.
func (pvLine *PVLine) Clear() {
	pvLine.Moves = pvLine.Moves[:0]
}

// Update the principal variation line with a new best move,
// and a new line of best play after the best move.
func (pvLine *PVLine) Update(m move.Move, newPVLine PVLine, score int) {
	pvLine.Clear()
	pvLine.Moves = append(pvLine.Moves, m)
	pvLine.Moves = append(pvLine.Moves, newPVLine.Moves...)
	pvLine.score = score
}

func (pvLine PVLine) Score() int {
	return pvLine.score
}

func (pvLine PVLine) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("PV; val %d\n", pvLine.score))
	for i, m := range pvLine.Moves {
		sb.WriteString(fmt.Sprintf("%d: %s\n", i+1, m.ShortDescription()))
	}
	return sb.String()
}

// NLBString has no line breaks, for logging.
func (pvLine PVLine) NLBString() string {
	descs := make([]string, len(pvLine.Moves))
	for i, m := range pvLine.Moves {
		descs[i] = m.ShortDescription()
	}
	return fmt.Sprintf("PV; val %d; %s", pvLine.score, strings.Join(descs, " "))
}

// Solver implements the minimax search. A Solver is not safe for concurrent
// use; give each goroutine its own.
type Solver struct {
	eval    equity.Evaluator
	config  *config.Config
	pruning PruningMode

	// rootSide is the side the outermost search was called for. Every
	// leaf is scored from its point of view.
	rootSide board.Cell

	// scratch holds one reusable board per ply so that siblings reuse
	// storage while every live branch still owns its own grid.
	scratch []*board.Board

	stats              Stats
	principalVariation PVLine
}

// Init initializes the solver
func (s *Solver) Init(eval equity.Evaluator, cfg *config.Config) error {
	if eval == nil {
		return fmt.Errorf("alphabeta: nil evaluator")
	}
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}
	pruning, err := PruningModeFromString(cfg.Pruning)
	if err != nil {
		return err
	}
	s.eval = eval
	s.config = cfg
	s.pruning = pruning
	s.scratch = nil
	return nil
}

// NewSolver creates a solver with a positional evaluator sized for the
// config's board.
func NewSolver(cfg *config.Config) (*Solver, error) {
	e := equity.NewPositionalEvaluator(cfg.BoardWidth, cfg.BoardHeight, cfg.LateGameTrigger)
	s := &Solver{}
	if err := s.Init(e, cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Solver) SetPruning(p PruningMode) {
	s.pruning = p
}

func (s *Solver) Pruning() PruningMode {
	return s.pruning
}

func (s *Solver) Stats() Stats {
	return s.stats
}

func (s *Solver) PrincipalVariation() PVLine {
	return s.principalVariation
}

// Depth returns the depth ChooseMove searches to for a caller's hint. The
// hint is only used when the config allows it.
func (s *Solver) Depth(depthHint int) int {
	depth := s.config.SearchDepth
	if s.config.HonorDepthHint && depthHint > 0 {
		depth = depthHint
	}
	return max(depth, 1)
}

// ChooseMove returns the best move for side, or move.Pass if side has no
// legal placement.
func (s *Solver) ChooseMove(b *board.Board, side board.Cell, depthHint int) move.Move {
	s.stats = Stats{}
	s.principalVariation.Clear()
	if !b.HasLegalMove(side) {
		log.Debug().Str("side", side.String()).Msg("no-legal-moves-passing")
		return move.Pass
	}
	_, m := s.Solve(b, side, s.Depth(depthHint))
	return m
}

// Solve searches to depth for side and logs what it found.
func (s *Solver) Solve(b *board.Board, side board.Cell, depth int) (int, move.Move) {
	tstart := time.Now()
	score, m := s.Search(b, side, depth)
	log.Debug().
		Str("side", side.String()).
		Int("depth", depth).
		Str("pruning", s.pruning.String()).
		Int("score", score).
		Str("move", m.ShortDescription()).
		Int("nodes", s.stats.Nodes).
		Int("leaves", s.stats.Leaves).
		Int("clones", s.stats.Clones).
		Int("cutoffs", s.stats.Cutoffs).
		Str("pv", s.principalVariation.NLBString()).
		Dur("elapsed", time.Since(tstart)).
		Msg("search-done")
	return score, m
}

// Search runs the root of the search for side. A depth of zero or less
// makes the root a leaf, and the returned move is then move.Pass. The board
// is never modified.
func (s *Solver) Search(b *board.Board, side board.Cell, depth int) (int, move.Move) {
	s.stats = Stats{}
	s.rootSide = side
	s.ensureScratch(b, depth)
	pv := PVLine{}
	var score int
	var m move.Move
	switch s.pruning {
	case AlphaBeta:
		score, m = s.alphabeta(b, side, depth, 0, NegInfinity, Infinity, true, &pv)
	default:
		score, m = s.search(b, side, depth, 0, Infinity, true, &pv)
	}
	pv.score = score
	s.principalVariation = pv
	return score, m
}

func (s *Solver) ensureScratch(b *board.Board, depth int) {
	if len(s.scratch) > 0 {
		first := s.scratch[0]
		if first.Width() != b.Width() || first.Height() != b.Height() {
			s.scratch = nil
		}
	}
	for len(s.scratch) < depth {
		s.scratch = append(s.scratch, board.NewBoard(b.Width(), b.Height()))
	}
}

// child copies b into the scratch board for ply and plays m on it for side.
func (s *Solver) child(b *board.Board, ply int, m move.Move, side board.Cell) *board.Board {
	cb := s.scratch[ply]
	cb.CopyFrom(b)
	s.stats.Clones++
	if !cb.ApplyMove(m, side) {
		panic(fmt.Sprintf("generated move %v is not legal for %v", m, side))
	}
	return cb
}

func (s *Solver) leaf(b *board.Board) int {
	s.stats.Leaves++
	return s.eval.Evaluate(b, s.rootSide)
}

// search is the single-bound minimax. With NoPruning the bound is never
// acted upon.
func (s *Solver) search(b *board.Board, side board.Cell, depth, ply int,
	bound int, maximizing bool, pv *PVLine) (int, move.Move) {

	s.stats.Nodes++
	if depth <= 0 || b.IsFinished() {
		return s.leaf(b), move.Pass
	}
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		return s.leaf(b), move.Pass
	}

	best := NegInfinity
	if !maximizing {
		best = Infinity
	}
	bestMove := move.Pass
	childPV := PVLine{}

	for _, m := range moves {
		cb := s.child(b, ply, m, side)
		childPV.Clear()
		score, _ := s.search(cb, side.Opponent(), depth-1, ply+1, best, !maximizing, &childPV)

		if (maximizing && score > best) || (!maximizing && score < best) {
			best = score
			bestMove = m
			pv.Update(m, childPV, score)
			if s.pruning == NoPruning {
				continue
			}
			if (maximizing && best > bound) || (!maximizing && best < bound) {
				s.stats.Cutoffs++
				break
			}
		}
	}
	return best, bestMove
}

// alphabeta is the fail-soft two-sided version.
func (s *Solver) alphabeta(b *board.Board, side board.Cell, depth, ply int,
	alpha, beta int, maximizing bool, pv *PVLine) (int, move.Move) {

	s.stats.Nodes++
	if depth <= 0 || b.IsFinished() {
		return s.leaf(b), move.Pass
	}
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		return s.leaf(b), move.Pass
	}

	best := NegInfinity
	if !maximizing {
		best = Infinity
	}
	bestMove := move.Pass
	childPV := PVLine{}

	for _, m := range moves {
		cb := s.child(b, ply, m, side)
		childPV.Clear()
		score, _ := s.alphabeta(cb, side.Opponent(), depth-1, ply+1, alpha, beta, !maximizing, &childPV)

		if maximizing {
			if score > best {
				best = score
				bestMove = m
				pv.Update(m, childPV, score)
				alpha = max(alpha, best)
			}
		} else {
			if score < best {
				best = score
				bestMove = m
				pv.Update(m, childPV, score)
				beta = min(beta, best)
			}
		}
		if alpha >= beta {
			s.stats.Cutoffs++
			break
		}
	}
	return best, bestMove
}
