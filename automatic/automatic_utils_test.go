package automatic

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcothello/arcothello/board"
	"github.com/arcothello/arcothello/cgp"
	"github.com/arcothello/arcothello/config"
	"github.com/arcothello/arcothello/move"
	"github.com/arcothello/arcothello/turnplayer"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.BoardWidth = 6
	cfg.BoardHeight = 6
	cfg.SearchDepth = 1
	cfg.AutoplayOpeningPlies = 2
	return &cfg
}

func TestCompVComp(t *testing.T) {
	var buf bytes.Buffer
	summary, err := StartCompVComp(context.Background(), smallConfig(), 12, 3, &buf)
	require.NoError(t, err)
	assert.Equal(t, 12, summary.Games)
	assert.Equal(t, summary.Games, summary.WinsX+summary.WinsO+summary.Draws)

	reread, err := AnalyzeRecords(&buf)
	require.NoError(t, err)
	assert.Equal(t, summary.Games, reread.Games)
	assert.Equal(t, summary.WinsX, reread.WinsX)
	assert.Equal(t, summary.WinsO, reread.WinsO)
	assert.Equal(t, summary.Draws, reread.Draws)
	assert.InDelta(t, summary.MeanSpread(), reread.MeanSpread(), 1e-9)
}

func TestCompVCompNoOutput(t *testing.T) {
	summary, err := StartCompVComp(context.Background(), smallConfig(), 4, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Games)
}

func TestCompVCompCanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	summary, err := StartCompVComp(ctx, smallConfig(), 50, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Games)
}

// cancelingPlayer cancels the batch on its first move and then plays normally.
type cancelingPlayer struct {
	turnplayer.Player
	cancel context.CancelFunc
}

func (p *cancelingPlayer) ChooseMove(b *board.Board, side board.Cell, depthHint int) move.Move {
	p.cancel()
	return p.Player.ChooseMove(b, side, depthHint)
}

func TestCompVCompCanceledMidBatch(t *testing.T) {
	for _, threads := range []int{1, 3} {
		ctx, cancel := context.WithCancel(context.Background())
		factory := func(cfg *config.Config, book *openingBook) (*GameRunner, error) {
			r, err := newGameRunner(cfg, book)
			if err != nil {
				return nil, err
			}
			r.SetPlayers(&cancelingPlayer{r.players[0], cancel}, &cancelingPlayer{r.players[1], cancel})
			return r, nil
		}
		var buf bytes.Buffer
		summary, err := startCompVComp(ctx, smallConfig(), 200, threads, &buf, factory)
		cancel()
		require.NoError(t, err)
		// Each worker has at most one game in flight when the cancel lands.
		assert.GreaterOrEqual(t, summary.Games, 1)
		assert.LessOrEqual(t, summary.Games, threads)
		assert.Equal(t, summary.Games, summary.WinsX+summary.WinsO+summary.Draws)

		reread, err := AnalyzeRecords(&buf)
		require.NoError(t, err)
		assert.Equal(t, summary.Games, reread.Games)
	}
}

func TestCompVCompRejectsZeroGames(t *testing.T) {
	_, err := StartCompVComp(context.Background(), smallConfig(), 0, 2, nil)
	assert.ErrorIs(t, err, ErrNoGames)
}

func TestShardForIsStable(t *testing.T) {
	for _, id := range []string{"a", "game-1", "0b6c3a2e-7f0e-4c55-9d0d-3c1d6f2b9e11"} {
		s := shardFor(id, 5)
		assert.GreaterOrEqual(t, s, 0)
		assert.Less(t, s, 5)
		assert.Equal(t, s, shardFor(id, 5))
	}
	assert.Equal(t, 0, shardFor("anything", 1))
}

func TestAnalyzeEmptyLog(t *testing.T) {
	s, err := AnalyzeRecords(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Games)
}

func TestRecordsHaveFinalPosition(t *testing.T) {
	r, err := NewGameRunner(smallConfig())
	require.NoError(t, err)
	rec, err := r.PlayGame("0b6c3a2e-7f0e-4c55-9d0d-3c1d6f2b9e11")
	require.NoError(t, err)
	assert.Len(t, rec.Opening, 2)
	b, _, err := cgp.ParseCGP(rec.Final)
	require.NoError(t, err)
	x, o := b.Scores()
	assert.Equal(t, rec.ScoreX, x)
	assert.Equal(t, rec.ScoreO, o)
	assert.Equal(t, []string{"arcothello-1", "arcothello-2"}, rec.Players)
}
