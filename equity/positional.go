package equity

import (
	"errors"
	"fmt"

	"github.com/arcothello/arcothello/board"
)

// LateGameTrigger is the number of discs played (beyond the opening four)
// at which the positional table is dropped in favour of the raw disc count.
const LateGameTrigger = 53

var ErrWeightsSize = errors.New("weight table does not match board size")

// PositionalEvaluator scores a board with a per-cell weight table until the
// late game, and by disc count after that.
type PositionalEvaluator struct {
	width           int
	height          int
	weights         []int
	lateGameTrigger int
}

// NewPositionalEvaluator uses the built-in table for the board size.
func NewPositionalEvaluator(width, height, lateGameTrigger int) *PositionalEvaluator {
	return &PositionalEvaluator{
		width:           width,
		height:          height,
		weights:         WeightsFor(width, height),
		lateGameTrigger: lateGameTrigger,
	}
}

// NewPositionalEvaluatorWithWeights uses a caller-supplied row-major table.
func NewPositionalEvaluatorWithWeights(width, height int, weights []int,
	lateGameTrigger int) (*PositionalEvaluator, error) {

	if len(weights) != width*height {
		return nil, fmt.Errorf("%w: %d entries for %dx%d", ErrWeightsSize,
			len(weights), width, height)
	}
	w := make([]int, len(weights))
	copy(w, weights)
	return &PositionalEvaluator{
		width:           width,
		height:          height,
		weights:         w,
		lateGameTrigger: lateGameTrigger,
	}, nil
}

func (p *PositionalEvaluator) Weight(col, row int) int {
	return p.weights[row*p.width+col]
}

func (p *PositionalEvaluator) LateGameTrigger() int {
	return p.lateGameTrigger
}

// Evaluate implements Evaluator. Each side's total starts at its disc count;
// before the late game every owned cell also adds its weight.
func (p *PositionalEvaluator) Evaluate(b *board.Board, side board.Cell) int {
	if b.Width() != p.width || b.Height() != p.height {
		panic(fmt.Sprintf("evaluator is for %dx%d, board is %dx%d",
			p.width, p.height, b.Width(), b.Height()))
	}
	a, o := b.Scores()
	turn := a + o - 4
	if turn < p.lateGameTrigger {
		for i, c := range b.Cells() {
			switch c {
			case board.SideA:
				a += p.weights[i]
			case board.SideB:
				o += p.weights[i]
			}
		}
	}
	if side == board.SideB {
		return o - a
	}
	return a - o
}
