package board_test

import (
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"

	"github.com/arcothello/arcothello/board"
	"github.com/arcothello/arcothello/move"
	"github.com/arcothello/arcothello/testhelpers"
)

func checkCounts(is *is.I, b *board.Board) {
	a, o, e := 0, 0, 0
	for _, c := range b.Cells() {
		switch c {
		case board.SideA:
			a++
		case board.SideB:
			o++
		default:
			e++
		}
	}
	ca, co := b.Scores()
	is.Equal(ca, a)
	is.Equal(co, o)
	is.Equal(b.NumEmpty(), e)
	is.Equal(a+o+e, b.Width()*b.Height())
}

func TestCountsInvariantOnRandomGames(t *testing.T) {
	is := is.New(t)
	for seed := uint64(1); seed <= 40; seed++ {
		b, _ := testhelpers.RandomPosition(board.StandardWidth, board.StandardHeight, 80, seed)
		checkCounts(is, b)
		b8, _ := testhelpers.RandomPosition(8, 8, 80, seed)
		checkCounts(is, b8)
	}
}

func TestOracleAgreesWithApplier(t *testing.T) {
	is := is.New(t)
	boards, _ := testhelpers.RandomPositions(board.StandardWidth, board.StandardHeight, 30, 7)
	for _, b := range boards {
		for _, side := range []board.Cell{board.SideA, board.SideB} {
			for col := -1; col <= b.Width(); col++ {
				for row := -1; row <= b.Height(); row++ {
					cp := b.Copy()
					legal := b.IsLegal(col, row, side)
					applied := cp.Apply(col, row, side)
					is.Equal(legal, applied)
					if !applied {
						is.True(cp.Equals(b))
					} else {
						checkCounts(is, cp)
						is.Equal(cp.At(col, row), side)
					}
				}
			}
		}
	}
}

func TestLegalMovesMatchOracle(t *testing.T) {
	is := is.New(t)
	boards, _ := testhelpers.RandomPositions(8, 8, 30, 11)
	for _, b := range boards {
		for _, side := range []board.Cell{board.SideA, board.SideB} {
			moves := b.LegalMoves(side)
			is.Equal(len(lo.Uniq(moves)), len(moves))
			expected := []move.Move{}
			for col := 0; col < b.Width(); col++ {
				for row := 0; row < b.Height(); row++ {
					if b.IsLegal(col, row, side) {
						expected = append(expected, move.NewPlacement(col, row))
					}
				}
			}
			is.Equal(moves, expected)
			is.Equal(b.HasLegalMove(side), len(moves) > 0)
		}
	}
}

func TestApplyOnlyFlipsOpponentDiscs(t *testing.T) {
	is := is.New(t)
	boards, sides := testhelpers.RandomPositions(board.StandardWidth, board.StandardHeight, 20, 3)
	for i, b := range boards {
		side := sides[i]
		for _, m := range b.LegalMoves(side) {
			cp := b.Copy()
			is.True(cp.ApplyMove(m, side))
			before, _ := b.Scores()
			after, _ := cp.Scores()
			if side == board.SideB {
				_, before = b.Scores()
				_, after = cp.Scores()
			}
			// At least one capture plus the placed disc.
			is.True(after >= before+2)
			for col := 0; col < b.Width(); col++ {
				for row := 0; row < b.Height(); row++ {
					if b.At(col, row) == side {
						is.Equal(cp.At(col, row), side)
					}
				}
			}
		}
	}
}
