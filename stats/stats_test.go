package stats

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores []int
		mean   float64
		stdev  float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]int{1}, 1, 0},
		{[]int{}, 0, 0},
		{[]int{1, 1}, 1, 0},
		{[]int{-6, 6}, 0, 8.48528137423857},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, score := range c.scores {
			s.Push(float64(score))
		}
		is.Equal(s.Iterations(), len(c.scores))
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
	}
}

func TestMinMaxLast(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	for _, v := range []float64{3, -2, 9, 4} {
		s.Push(v)
	}
	is.Equal(s.Min(), -2.0)
	is.Equal(s.Max(), 9.0)
	is.Equal(s.Last(), 4.0)
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(math.Abs(ZVal(95)-1.959964) < 1e-5)
	is.True(math.Abs(ZVal(99)-2.575829) < 1e-5)
	is.True(FuzzyEqual(ZVal(0), 0))
}

func TestConfidenceInterval(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	for _, v := range []float64{10, 12, 23, 23, 16, 23, 21, 16} {
		s.Push(v)
	}
	want := ZVal(95) * 5.2372293656638 / math.Sqrt(8)
	is.True(FuzzyEqual(s.ConfidenceInterval(95), want))

	empty := &Statistic{}
	is.True(FuzzyEqual(empty.ConfidenceInterval(95), 0))
}
