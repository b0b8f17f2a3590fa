package move

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MoveType is a type of move; a disc placement or a pass.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypePass
)

// Move is a disc placement at (Col, Row), both 0-indexed. The reserved value
// Pass means the side on turn has nothing to play.
type Move struct {
	Col int
	Row int
}

// Pass is the sentinel returned when no placement is legal.
var Pass = Move{Col: -1, Row: -1}

var ErrBadCoords = errors.New("badly formatted coordinates")

var reCoords *regexp.Regexp

func init() {
	reCoords = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
}

// NewPlacement creates a placement move.
func NewPlacement(col, row int) Move {
	return Move{Col: col, Row: row}
}

func (m Move) IsPass() bool {
	return m == Pass
}

func (m Move) Action() MoveType {
	if m.IsPass() {
		return MoveTypePass
	}
	return MoveTypePlay
}

func (m Move) MoveTypeString() string {
	switch m.Action() {
	case MoveTypePlay:
		return "Play"
	case MoveTypePass:
		return "Pass"
	}
	return "UNHANDLED"
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m Move) ShortDescription() string {
	if m.IsPass() {
		return "(Pass)"
	}
	return ToBoardGameCoords(m.Col, m.Row)
}

// String provides a string just for debugging purposes.
func (m Move) String() string {
	if m.IsPass() {
		return "<action: pass>"
	}
	return fmt.Sprintf("<action: play coords: %v (%d,%d)>",
		ToBoardGameCoords(m.Col, m.Row), m.Col, m.Row)
}

// ToBoardGameCoords converts a column and row to a coordinate like C4:
// column letter first, then the 1-based row.
func ToBoardGameCoords(col, row int) string {
	return string(rune('A'+col)) + strconv.Itoa(row+1)
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
func FromBoardGameCoords(c string) (int, int, error) {
	matches := reCoords.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(c)))
	if len(matches) != 3 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCoords, c)
	}
	row, err := strconv.Atoi(matches[2])
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCoords, c)
	}
	return int(matches[1][0] - 'A'), row - 1, nil
}

// FromString parses either board coordinates or the word "pass". It does
// not check the move against any board.
func FromString(s string) (Move, error) {
	if strings.EqualFold(strings.TrimSpace(s), "pass") {
		return Pass, nil
	}
	col, row, err := FromBoardGameCoords(s)
	if err != nil {
		return Pass, err
	}
	return NewPlacement(col, row), nil
}
