package equity

import (
	"github.com/arcothello/arcothello/board"
)

// Evaluator scores a position from one side's point of view. Higher is
// better for side, and the score for the other side is its negation.
type Evaluator interface {
	Evaluate(b *board.Board, side board.Cell) int
}
