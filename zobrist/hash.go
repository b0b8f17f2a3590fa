// Package zobrist hashes board positions.
// https://en.wikipedia.org/wiki/Zobrist_hashing
package zobrist

import (
	"lukechampine.com/frand"

	"github.com/arcothello/arcothello/board"
	"github.com/arcothello/arcothello/move"
)

const bignum = 1<<63 - 2

// Zobrist holds one random key per (cell, side) plus a key XORed in when
// SideB is to move.
type Zobrist struct {
	width, height int
	posTable      [][2]uint64
	sideBToMove   uint64
}

// Initialize draws fresh keys from the package-level frand generator.
func (z *Zobrist) Initialize(width, height int) {
	z.initialize(width, height, func() uint64 { return frand.Uint64n(bignum) + 1 })
}

// InitializeWithRNG draws keys from rng, so hashes are reproducible for a
// given seed.
func (z *Zobrist) InitializeWithRNG(width, height int, rng *frand.RNG) {
	z.initialize(width, height, func() uint64 { return rng.Uint64n(bignum) + 1 })
}

func (z *Zobrist) initialize(width, height int, next func() uint64) {
	z.width, z.height = width, height
	z.posTable = make([][2]uint64, width*height)
	for i := range z.posTable {
		z.posTable[i][0] = next()
		z.posTable[i][1] = next()
	}
	z.sideBToMove = next()
}

func sideIndex(c board.Cell) int {
	if c == board.SideB {
		return 1
	}
	return 0
}

// Hash computes the key of b with onturn to move from scratch.
func (z *Zobrist) Hash(b *board.Board, onturn board.Cell) uint64 {
	if b.Width() != z.width || b.Height() != z.height {
		panic("zobrist table does not match board dimensions")
	}
	key := uint64(0)
	for i, c := range b.Cells() {
		if !c.IsSide() {
			continue
		}
		key ^= z.posTable[i][sideIndex(c)]
	}
	if onturn == board.SideB {
		key ^= z.sideBToMove
	}
	return key
}

// AddMove updates key for side playing m on before, the position prior to
// the move. It returns the key of the resulting position with the other
// side to move. A pass only flips the side to move.
func (z *Zobrist) AddMove(key uint64, before *board.Board, m move.Move, side board.Cell) uint64 {
	key ^= z.sideBToMove
	if m.IsPass() {
		return key
	}
	own, opp := sideIndex(side), sideIndex(side.Opponent())
	key ^= z.posTable[m.Row*z.width+m.Col][own]
	for _, run := range before.CaptureRuns(m.Col, m.Row, side) {
		c, r := m.Col, m.Row
		for i := 0; i < run.Length; i++ {
			c += run.Dir.DCol
			r += run.Dir.DRow
			idx := r*z.width + c
			key ^= z.posTable[idx][opp]
			key ^= z.posTable[idx][own]
		}
	}
	return key
}
