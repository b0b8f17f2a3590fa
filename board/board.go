package board

import (
	"fmt"
)

// Cell is the state of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	// SideA moves first and renders as X.
	SideA
	// SideB renders as O.
	SideB
)

const (
	// StandardWidth and StandardHeight describe the 9x7 board this engine
	// was tuned on.
	StandardWidth  = 9
	StandardHeight = 7
)

func (c Cell) String() string {
	switch c {
	case SideA:
		return "X"
	case SideB:
		return "O"
	}
	return "-"
}

// Opponent returns the other side. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case SideA:
		return SideB
	case SideB:
		return SideA
	}
	return Empty
}

// IsSide is true for SideA and SideB.
func (c Cell) IsSide() bool {
	return c == SideA || c == SideB
}

// Board is a rectangular Reversi grid. Cells are stored row-major. The tile
// counts and the finished flag are derived and recomputed after every
// mutation.
type Board struct {
	width  int
	height int
	cells  []Cell

	countA   int
	countB   int
	finished bool
}

// NewBoard returns an empty width x height board.
func NewBoard(width, height int) *Board {
	if width < 2 || height < 2 {
		panic(fmt.Sprintf("board too small: %dx%d", width, height))
	}
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	b.recompute()
	return b
}

// NewGame returns a width x height board with the opening cross in place.
// The cross is anchored at (width/2-1, (height-1)/2), which puts it at (3,3)
// on both the 8x8 and 9x7 boards.
func NewGame(width, height int) *Board {
	b := NewBoard(width, height)
	c, r := width/2-1, (height-1)/2
	b.cells[b.idx(c, r)] = SideB
	b.cells[b.idx(c+1, r+1)] = SideB
	b.cells[b.idx(c, r+1)] = SideA
	b.cells[b.idx(c+1, r)] = SideA
	b.recompute()
	return b
}

// NewStandard returns the opening position on the 9x7 board.
func NewStandard() *Board {
	return NewGame(StandardWidth, StandardHeight)
}

// Copy returns a deep copy; the two boards share no storage.
func (b *Board) Copy() *Board {
	cp := &Board{
		width:    b.width,
		height:   b.height,
		cells:    make([]Cell, len(b.cells)),
		countA:   b.countA,
		countB:   b.countB,
		finished: b.finished,
	}
	copy(cp.cells, b.cells)
	return cp
}

// CopyFrom overwrites b with the contents of o. Both boards must have the
// same dimensions.
func (b *Board) CopyFrom(o *Board) {
	if b.width != o.width || b.height != o.height {
		panic("CopyFrom: dimension mismatch")
	}
	copy(b.cells, o.cells)
	b.countA = o.countA
	b.countB = o.countB
	b.finished = o.finished
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) NumCells() int {
	return len(b.cells)
}

func (b *Board) idx(col, row int) int {
	return row*b.width + col
}

// InBounds reports whether (col, row) is on the board.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

// At returns the cell at (col, row). Out-of-bounds positions read as Empty.
func (b *Board) At(col, row int) Cell {
	if !b.InBounds(col, row) {
		return Empty
	}
	return b.cells[b.idx(col, row)]
}

// Cells returns the row-major cell slice. Callers must not modify it.
func (b *Board) Cells() []Cell {
	return b.cells
}

// SetCell sets a cell directly, bypassing the capture rules. It is meant for
// setting up positions.
func (b *Board) SetCell(col, row int, c Cell) {
	if !b.InBounds(col, row) {
		panic(fmt.Sprintf("SetCell out of bounds: (%d,%d)", col, row))
	}
	b.cells[b.idx(col, row)] = c
	b.recompute()
}

// Scores returns the number of discs owned by SideA and SideB.
func (b *Board) Scores() (int, int) {
	return b.countA, b.countB
}

// ScoreFor returns the disc count of one side.
func (b *Board) ScoreFor(side Cell) int {
	switch side {
	case SideA:
		return b.countA
	case SideB:
		return b.countB
	}
	return 0
}

// NumEmpty returns the number of empty cells.
func (b *Board) NumEmpty() int {
	return len(b.cells) - b.countA - b.countB
}

// IsFinished is true when either side has no discs left, or when all but
// one cell is occupied.
func (b *Board) IsFinished() bool {
	return b.finished
}

// recompute recounts the discs and the finished flag from scratch.
func (b *Board) recompute() {
	b.countA, b.countB = 0, 0
	for _, c := range b.cells {
		switch c {
		case SideA:
			b.countA++
		case SideB:
			b.countB++
		}
	}
	// W*H-1 is kept as the fullness threshold; a completely full board is
	// also caught by the move generator finding no moves.
	b.finished = b.countA == 0 || b.countB == 0 ||
		b.countA+b.countB == len(b.cells)-1
}

// Equals compares dimensions and cells.
func (b *Board) Equals(o *Board) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
