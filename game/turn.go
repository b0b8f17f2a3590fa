package game

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/arcothello/arcothello/board"
	"github.com/arcothello/arcothello/move"
)

// Turn is one entry of the match history, with the disc counts after the
// move was played.
type Turn struct {
	Side   board.Cell
	Move   move.Move
	ScoreA int
	ScoreB int
}

func (t Turn) String() string {
	return fmt.Sprintf("%s %s (%d-%d)", t.Side, t.Move.ShortDescription(), t.ScoreA, t.ScoreB)
}

// MoveList renders the history in notation, e.g. "C4 E3 pass".
func MoveList(turns []Turn) string {
	return strings.Join(lo.Map(turns, func(t Turn, _ int) string {
		if t.Move.IsPass() {
			return "pass"
		}
		return t.Move.ShortDescription()
	}), " ")
}
