package equity

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/arcothello/arcothello/board"
	"github.com/arcothello/arcothello/testhelpers"
)

func TestGeneratedWeightsMatchTables(t *testing.T) {
	is := is.New(t)
	is.Equal(GenerateWeights(9, 7), StandardWeights)
	is.Equal(GenerateWeights(8, 8), ClassicWeights)
}

func TestWeightsSymmetric(t *testing.T) {
	is := is.New(t)
	for _, dims := range [][2]int{{9, 7}, {8, 8}, {10, 6}, {6, 6}, {11, 9}} {
		w, h := dims[0], dims[1]
		weights := WeightsFor(w, h)
		is.Equal(len(weights), w*h)
		for r := 0; r < h; r++ {
			for c := 0; c < w; c++ {
				v := weights[r*w+c]
				is.Equal(v, weights[r*w+(w-1-c)])
				is.Equal(v, weights[(h-1-r)*w+c])
			}
		}
		is.Equal(weights[0], 100)
		is.Equal(weights[w*h-1], 100)
		is.Equal(weights[1], -20)
		is.Equal(weights[w+1], -50)
	}
}

func TestWeightsForReturnsCopy(t *testing.T) {
	is := is.New(t)
	w := WeightsFor(9, 7)
	w[0] = 0
	is.Equal(StandardWeights[0], 100)

	g := WeightsFor(6, 6)
	is.Equal(g, GenerateWeights(6, 6))
	g[0] = 0
	is.Equal(WeightsFor(6, 6)[0], 100)
}

func TestOpeningIsEven(t *testing.T) {
	is := is.New(t)
	e := NewPositionalEvaluator(9, 7, LateGameTrigger)
	b := board.NewStandard()
	is.Equal(e.Evaluate(b, board.SideA), 0)
	is.Equal(e.Evaluate(b, board.SideB), 0)
}

func TestCornerIsPrized(t *testing.T) {
	is := is.New(t)
	e := NewPositionalEvaluator(9, 7, LateGameTrigger)
	b := board.NewBoard(9, 7)
	b.SetCell(0, 0, board.SideA)
	b.SetCell(1, 1, board.SideB)
	// A: 1 disc + 100. B: 1 disc - 50.
	is.Equal(e.Evaluate(b, board.SideA), 150)
	is.Equal(e.Evaluate(b, board.SideB), -150)
}

func TestLateGameUsesDiscCount(t *testing.T) {
	is := is.New(t)
	e := NewPositionalEvaluator(9, 7, LateGameTrigger)
	b := board.NewBoard(9, 7)
	// 57 discs: turn 53, which is the trigger.
	for i := 0; i < 57; i++ {
		side := board.SideA
		if i%3 == 0 {
			side = board.SideB
		}
		b.SetCell(i%9, i/9, side)
	}
	a, o := b.Scores()
	is.Equal(a+o, 57)
	is.Equal(e.Evaluate(b, board.SideA), a-o)

	// One disc fewer puts the table back in play.
	b.SetCell(56%9, 56/9, board.Empty)
	a, o = b.Scores()
	is.True(e.Evaluate(b, board.SideA) != a-o)
}

func TestZeroSum(t *testing.T) {
	is := is.New(t)
	for _, dims := range [][2]int{{9, 7}, {8, 8}} {
		e := NewPositionalEvaluator(dims[0], dims[1], LateGameTrigger)
		boards, _ := testhelpers.RandomPositions(dims[0], dims[1], 60, 5)
		for _, b := range boards {
			is.Equal(e.Evaluate(b, board.SideA), -e.Evaluate(b, board.SideB))
		}
	}
}

func TestCustomWeights(t *testing.T) {
	is := is.New(t)
	_, err := NewPositionalEvaluatorWithWeights(4, 4, make([]int, 15), LateGameTrigger)
	is.True(errors.Is(err, ErrWeightsSize))

	weights := make([]int, 16)
	weights[5] = 7
	e, err := NewPositionalEvaluatorWithWeights(4, 4, weights, LateGameTrigger)
	is.NoErr(err)
	is.Equal(e.Weight(1, 1), 7)
	b := board.NewGame(4, 4)
	// (1,1) is SideB in the opening cross.
	is.Equal(e.Evaluate(b, board.SideB), 7)
}
