package equity

import (
	"fmt"

	"github.com/arcothello/arcothello/cache"
)

// StandardWeights is the positional table for the 9x7 board, row-major.
var StandardWeights = []int{
	100, -20, 10, 5, 5, 5, 10, -20, 100,
	-20, -50, -2, -2, -2, -2, -2, -50, -20,
	10, -2, -1, -1, -1, -1, -1, -2, 10,
	5, -2, -1, -1, -1, -1, -1, -2, 5,
	10, -2, -1, -1, -1, -1, -1, -2, 10,
	-20, -50, -2, -2, -2, -2, -2, -50, -20,
	100, -20, 10, 5, 5, 5, 10, -20, 100,
}

// ClassicWeights is the usual table for the 8x8 board.
var ClassicWeights = []int{
	100, -20, 10, 5, 5, 10, -20, 100,
	-20, -50, -2, -2, -2, -2, -50, -20,
	10, -2, -1, -1, -1, -1, -2, 10,
	5, -2, -1, -1, -1, -1, -2, 5,
	5, -2, -1, -1, -1, -1, -2, 5,
	10, -2, -1, -1, -1, -1, -2, 10,
	-20, -50, -2, -2, -2, -2, -50, -20,
	100, -20, 10, 5, 5, 10, -20, 100,
}

// GenerateWeights builds a table with the same shape as the two above for
// any board size: corners are prized, their neighbours penalized, edges
// mildly favoured and the ring just inside the edge mildly penalized. The
// result is symmetric under horizontal and vertical mirroring.
func GenerateWeights(width, height int) []int {
	w := make([]int, width*height)
	for r := 0; r < height; r++ {
		dr := min(r, height-1-r)
		for c := 0; c < width; c++ {
			dc := min(c, width-1-c)
			w[r*width+c] = cellWeight(dc, dr)
		}
	}
	return w
}

// cellWeight takes the distances to the nearest vertical and horizontal
// edges.
func cellWeight(dc, dr int) int {
	switch {
	case dc == 0 && dr == 0:
		return 100
	case dc+dr == 1:
		return -20
	case dc == 1 && dr == 1:
		return -50
	case dc == 0 || dr == 0:
		if dc+dr == 2 {
			return 10
		}
		return 5
	case dc == 1 || dr == 1:
		return -2
	}
	return -1
}

// WeightsFor returns a copy of the table for a board size. Generated tables
// are built once per size and cached.
func WeightsFor(width, height int) []int {
	var src []int
	switch {
	case width == 9 && height == 7:
		src = StandardWeights
	case width == 8 && height == 8:
		src = ClassicWeights
	default:
		key := fmt.Sprintf("weights:%dx%d", width, height)
		src, _ = cache.Load(key, func() ([]int, error) {
			return GenerateWeights(width, height), nil
		})
	}
	w := make([]int, len(src))
	copy(w, src)
	return w
}
