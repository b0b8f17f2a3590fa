package turnplayer

import (
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"

	"github.com/arcothello/arcothello/config"
	"github.com/arcothello/arcothello/testhelpers"
)

func TestMinimaxPlayerIsAPlayer(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.SearchDepth = 2
	p, err := NewMinimaxPlayer(&cfg)
	is.NoErr(err)
	var pl Player = p
	is.Equal(pl.Name(), "arcothello")
	p.SetName("DR & TS")
	is.Equal(pl.Name(), "DR & TS")
}

func TestMinimaxPlayerPlaysLegalMoves(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.SearchDepth = 2
	p, err := NewMinimaxPlayer(&cfg)
	is.NoErr(err)
	boards, sides := testhelpers.RandomPositions(cfg.BoardWidth, cfg.BoardHeight, 15, 8)
	for i, b := range boards {
		m := p.ChooseMove(b, sides[i], 0)
		legal := b.LegalMoves(sides[i])
		if len(legal) == 0 {
			is.True(m.IsPass())
			continue
		}
		is.True(lo.Contains(legal, m))
	}
}

func TestMinimaxPlayerBadConfig(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Pruning = "nope"
	_, err := NewMinimaxPlayer(&cfg)
	is.True(err != nil)
}
