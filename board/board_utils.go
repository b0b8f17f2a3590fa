package board

import (
	"fmt"
	"strings"
)

// ToDisplayText renders the board with column letters across the top and
// 1-based row numbers down the side.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for i := 0; i < b.width; i++ {
		sb.WriteString(fmt.Sprintf("%c ", 'A'+i))
	}
	sb.WriteString("\n")
	sb.WriteString("   " + strings.Repeat("-", b.width*2) + "\n")
	for r := 0; r < b.height; r++ {
		sb.WriteString(fmt.Sprintf("%2d|", r+1))
		for c := 0; c < b.width; c++ {
			sb.WriteString(b.At(c, r).String())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", b.width*2) + "\n")
	sb.WriteString(fmt.Sprintf("X: %d  O: %d\n", b.countA, b.countB))
	return "\n" + sb.String()
}

// SetRow sets a full row from a string of X, O and - characters.
func (b *Board) SetRow(row int, cells string) error {
	if len(cells) != b.width {
		return fmt.Errorf("row %d: expected %d cells, got %d", row+1, b.width, len(cells))
	}
	if row < 0 || row >= b.height {
		return fmt.Errorf("row %d out of range", row+1)
	}
	for c, ch := range cells {
		cell, err := CellFromRune(ch)
		if err != nil {
			return err
		}
		b.cells[b.idx(c, row)] = cell
	}
	b.recompute()
	return nil
}

// CellFromRune maps X, O and - (or .) to cells.
func CellFromRune(ch rune) (Cell, error) {
	switch ch {
	case 'X', 'x':
		return SideA, nil
	case 'O', 'o':
		return SideB, nil
	case '-', '.':
		return Empty, nil
	}
	return Empty, fmt.Errorf("invalid cell character %q", ch)
}
