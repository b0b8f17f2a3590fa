package board

import (
	"github.com/arcothello/arcothello/move"
)

// Direction is a unit step on the board.
type Direction struct {
	DCol int
	DRow int
}

// Directions lists the 8 neighbours in the order they are scanned.
var Directions = [8]Direction{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CaptureRun is the number of opposing discs that flip in one direction.
type CaptureRun struct {
	Dir    Direction
	Length int
}

// runLength walks from (col, row) in direction d and returns how many
// opposing discs are bracketed by a disc of side. It returns 0 if the walk
// hits an empty cell or the edge first.
func (b *Board) runLength(col, row int, d Direction, side Cell) int {
	opp := side.Opponent()
	c, r := col+d.DCol, row+d.DRow
	n := 0
	for b.InBounds(c, r) {
		switch b.cells[b.idx(c, r)] {
		case opp:
			n++
		case side:
			return n
		default:
			return 0
		}
		c += d.DCol
		r += d.DRow
	}
	return 0
}

func (b *Board) placeable(col, row int, side Cell) bool {
	return side.IsSide() && b.InBounds(col, row) &&
		b.cells[b.idx(col, row)] == Empty
}

// CaptureRuns returns every direction in which placing side at (col, row)
// would flip discs. The result is empty for occupied or off-board cells.
func (b *Board) CaptureRuns(col, row int, side Cell) []CaptureRun {
	if !b.placeable(col, row, side) {
		return nil
	}
	var runs []CaptureRun
	for _, d := range Directions {
		if n := b.runLength(col, row, d, side); n > 0 {
			runs = append(runs, CaptureRun{Dir: d, Length: n})
		}
	}
	return runs
}

// IsLegal reports whether side may place a disc at (col, row): the cell must
// be empty and the placement must capture at least one opposing run.
func (b *Board) IsLegal(col, row int, side Cell) bool {
	if !b.placeable(col, row, side) {
		return false
	}
	for _, d := range Directions {
		if b.runLength(col, row, d, side) > 0 {
			return true
		}
	}
	return false
}

// IsLegalMove is IsLegal for a move value. A pass is never a legal placement.
func (b *Board) IsLegalMove(m move.Move, side Cell) bool {
	if m.IsPass() {
		return false
	}
	return b.IsLegal(m.Col, m.Row, side)
}

// Apply places a disc for side at (col, row) and flips every captured run.
// It returns false, leaving the board untouched, if the placement is off the
// board or illegal.
func (b *Board) Apply(col, row int, side Cell) bool {
	runs := b.CaptureRuns(col, row, side)
	if len(runs) == 0 {
		return false
	}
	b.cells[b.idx(col, row)] = side
	for _, run := range runs {
		c, r := col, row
		for i := 0; i < run.Length; i++ {
			c += run.Dir.DCol
			r += run.Dir.DRow
			b.cells[b.idx(c, r)] = side
		}
	}
	b.recompute()
	return true
}

// ApplyMove is Apply for a move value. Passing does not touch the board and
// returns false.
func (b *Board) ApplyMove(m move.Move, side Cell) bool {
	if m.IsPass() {
		return false
	}
	return b.Apply(m.Col, m.Row, side)
}

// LegalMoves returns every legal placement for side. Columns are scanned
// outermost, left to right, and rows top to bottom within each column. The
// result is never nil.
func (b *Board) LegalMoves(side Cell) []move.Move {
	moves := make([]move.Move, 0, 16)
	for col := 0; col < b.width; col++ {
		for row := 0; row < b.height; row++ {
			if b.IsLegal(col, row, side) {
				moves = append(moves, move.NewPlacement(col, row))
			}
		}
	}
	return moves
}

// HasLegalMove is a cheaper check than len(LegalMoves(side)) > 0.
func (b *Board) HasLegalMove(side Cell) bool {
	for col := 0; col < b.width; col++ {
		for row := 0; row < b.height; row++ {
			if b.IsLegal(col, row, side) {
				return true
			}
		}
	}
	return false
}
