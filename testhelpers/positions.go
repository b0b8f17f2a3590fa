// Package testhelpers builds reproducible positions for tests across
// packages.
package testhelpers

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/arcothello/arcothello/board"
)

// SeededRNG returns a deterministic RNG for the given seed.
func SeededRNG(seed uint64) *frand.RNG {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	return frand.NewCustom(s[:], 1024, 12)
}

// RandomPosition plays up to plies random legal moves from the opening,
// alternating sides and passing when a side is stuck. It returns the board
// and the side to move next.
func RandomPosition(width, height, plies int, seed uint64) (*board.Board, board.Cell) {
	rng := SeededRNG(seed)
	b := board.NewGame(width, height)
	side := board.SideA
	passes := 0
	for i := 0; i < plies && passes < 2 && !b.IsFinished(); i++ {
		moves := b.LegalMoves(side)
		if len(moves) == 0 {
			passes++
			side = side.Opponent()
			continue
		}
		passes = 0
		m := moves[rng.Intn(len(moves))]
		if !b.ApplyMove(m, side) {
			panic("legal move rejected: " + m.String())
		}
		side = side.Opponent()
	}
	return b, side
}

// RandomPositions returns n positions with a spread of game lengths.
func RandomPositions(width, height, n int, seed uint64) ([]*board.Board, []board.Cell) {
	rng := SeededRNG(seed)
	boards := make([]*board.Board, 0, n)
	sides := make([]board.Cell, 0, n)
	maxPlies := width*height - 4
	for i := 0; i < n; i++ {
		b, s := RandomPosition(width, height, rng.Intn(maxPlies+1), rng.Uint64n(1<<62))
		boards = append(boards, b)
		sides = append(sides, s)
	}
	return boards, sides
}
