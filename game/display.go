package game

import (
	"fmt"
	"strings"

	"github.com/arcothello/arcothello/cgp"
)

// ToCGP serializes the board with the side on turn.
func (g *Game) ToCGP() string {
	return cgp.ToCGP(g.board, g.onturn)
}

// ToDisplayText renders the board followed by the match state and the most
// recent turns.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(g.board.ToDisplayText())
	if g.Playing() {
		fmt.Fprintf(&sb, "Turn %d, %s to move\n", g.turnnum+1, g.onturn)
	} else {
		w := g.Winner()
		if w.IsSide() {
			fmt.Fprintf(&sb, "Game over, %s wins by %d\n", w, abs(g.Spread()))
		} else {
			sb.WriteString("Game over, draw\n")
		}
	}
	start := max(0, len(g.history)-5)
	for i := start; i < len(g.history); i++ {
		fmt.Fprintf(&sb, "%3d. %s\n", i+1, g.history[i])
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
