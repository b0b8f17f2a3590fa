// Package cgp reads and writes compact game positions:
//
//	<row1>/<row2>/.../<rowH> <side-to-move>
//
// Each row lists cells left to right: X for SideA, O for SideB, - for an
// empty cell, and a decimal number for a run of empty cells. The side to
// move is X or O. The 8x8 opening is
//
//	8/8/8/3OX3/3XO3/8/8/8 X
package cgp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/arcothello/arcothello/board"
)

var (
	ErrMissingFields = errors.New("must have a board and a side to move")
	ErrRaggedRows    = errors.New("rows have different widths")
	ErrBadSide       = errors.New("side to move must be X or O")
	ErrRowTooWide    = errors.New("row is wider than the largest board")
)

// MaxBoardDim is the widest board a column letter can address.
const MaxBoardDim = 26

// ParseCGP returns the board and side to move described by cgpstr.
func ParseCGP(cgpstr string) (*board.Board, board.Cell, error) {
	fields := strings.Fields(cgpstr)
	if len(fields) != 2 {
		return nil, board.Empty, ErrMissingFields
	}
	rows := strings.Split(fields[0], "/")
	parsed := make([][]board.Cell, len(rows))
	for i, r := range rows {
		cells, err := parseRow(r)
		if err != nil {
			return nil, board.Empty, fmt.Errorf("row %d: %w", i+1, err)
		}
		if i > 0 && len(cells) != len(parsed[0]) {
			return nil, board.Empty, fmt.Errorf("row %d: %w", i+1, ErrRaggedRows)
		}
		parsed[i] = cells
	}
	width, height := len(parsed[0]), len(parsed)
	if width < 2 || height < 2 || width > MaxBoardDim || height > MaxBoardDim {
		return nil, board.Empty, fmt.Errorf("unsupported board size %dx%d", width, height)
	}

	var side board.Cell
	switch fields[1] {
	case "X", "x":
		side = board.SideA
	case "O", "o":
		side = board.SideB
	default:
		return nil, board.Empty, ErrBadSide
	}

	b := board.NewBoard(width, height)
	for r, cells := range parsed {
		var sb strings.Builder
		for _, c := range cells {
			sb.WriteString(c.String())
		}
		if err := b.SetRow(r, sb.String()); err != nil {
			return nil, board.Empty, err
		}
	}
	log.Debug().Int("width", width).Int("height", height).
		Str("onturn", side.String()).Msg("parsed-cgp")
	return b, side, nil
}

func parseRow(r string) ([]board.Cell, error) {
	var cells []board.Cell
	num := ""
	flush := func() error {
		if num == "" {
			return nil
		}
		if len(num) > 2 {
			return ErrRowTooWide
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return err
		}
		if len(cells)+n > MaxBoardDim {
			return ErrRowTooWide
		}
		for j := 0; j < n; j++ {
			cells = append(cells, board.Empty)
		}
		num = ""
		return nil
	}
	for _, ch := range r {
		if ch >= '0' && ch <= '9' {
			num += string(ch)
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
		c, err := board.CellFromRune(ch)
		if err != nil {
			return nil, err
		}
		if len(cells) >= MaxBoardDim {
			return nil, ErrRowTooWide
		}
		cells = append(cells, c)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, errors.New("empty row")
	}
	return cells, nil
}

// ToCGP writes the board and side to move, compressing runs of empty cells.
func ToCGP(b *board.Board, onturn board.Cell) string {
	var sb strings.Builder
	for r := 0; r < b.Height(); r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empties := 0
		for c := 0; c < b.Width(); c++ {
			cell := b.At(c, r)
			if cell == board.Empty {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			sb.WriteString(cell.String())
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(onturn.String())
	return sb.String()
}
