package turnplayer

import (
	"github.com/arcothello/arcothello/board"
	"github.com/arcothello/arcothello/move"
)

// Player is anything that can pick a move for one side of a board. It
// returns move.Pass when the side has no legal placement, and must not
// modify the board it is given.
type Player interface {
	ChooseMove(b *board.Board, side board.Cell, depthHint int) move.Move
	Name() string
}
