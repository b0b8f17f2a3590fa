package automatic

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/arcothello/arcothello/board"
	"github.com/arcothello/arcothello/game"
	"github.com/arcothello/arcothello/stats"
)

// GameRecord is what gets written to the output log for every finished
// game.
type GameRecord struct {
	ID      string   `yaml:"id"`
	Players []string `yaml:"players"`
	Opening []string `yaml:"opening"`
	Moves   []string `yaml:"moves"`
	ScoreX  int      `yaml:"score_x"`
	ScoreO  int      `yaml:"score_o"`
	Winner  string   `yaml:"winner"`
	Final   string   `yaml:"final"`
}

func newGameRecord(g *game.Game, openingPlies int, players []string) *GameRecord {
	notation := lo.Map(g.History(), func(t game.Turn, _ int) string {
		if t.Move.IsPass() {
			return "pass"
		}
		return t.Move.ShortDescription()
	})
	a, b := g.Board().Scores()
	winner := "draw"
	if w := g.Winner(); w.IsSide() {
		winner = w.String()
	}
	return &GameRecord{
		ID:      g.Uid(),
		Players: players,
		Opening: notation[:openingPlies],
		Moves:   notation[openingPlies:],
		ScoreX:  a,
		ScoreO:  b,
		Winner:  winner,
		Final:   g.ToCGP(),
	}
}

// Spread is X's discs minus O's.
func (r *GameRecord) Spread() int {
	return r.ScoreX - r.ScoreO
}

// Summary aggregates the results of a batch of games.
type Summary struct {
	Games  int
	WinsX  int
	WinsO  int
	Draws  int
	spread stats.Statistic
}

func (s *Summary) Add(rec *GameRecord) {
	s.Games++
	switch rec.Winner {
	case board.SideA.String():
		s.WinsX++
	case board.SideB.String():
		s.WinsO++
	default:
		s.Draws++
	}
	s.spread.Push(float64(rec.Spread()))
}

// MeanSpread is X's average disc margin.
func (s *Summary) MeanSpread() float64 {
	return s.spread.Mean()
}

// SpreadInterval is the half-width of the confidence interval around
// MeanSpread, for a confidence in percent.
func (s *Summary) SpreadInterval(confidence float64) float64 {
	return s.spread.ConfidenceInterval(confidence)
}

func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", s.Games)
	fmt.Fprintf(&sb, "X wins: %d  O wins: %d  Draws: %d\n", s.WinsX, s.WinsO, s.Draws)
	if s.Games > 0 {
		fmt.Fprintf(&sb, "X win rate: %.3f\n", (float64(s.WinsX)+float64(s.Draws)/2)/float64(s.Games))
	}
	fmt.Fprintf(&sb, "Mean disc spread (X-O): %.3f ± %.3f (95%%)\n",
		s.MeanSpread(), s.SpreadInterval(95))
	return sb.String()
}

// writeRecord appends rec to w as a one-element YAML sequence, so a log of
// many records is still a single YAML list.
func writeRecord(w io.Writer, rec *GameRecord) error {
	out, err := yaml.Marshal([]*GameRecord{rec})
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// AnalyzeRecords reads a log written by StartCompVComp and summarizes it.
func AnalyzeRecords(r io.Reader) (*Summary, error) {
	var recs []*GameRecord
	if err := yaml.NewDecoder(r).Decode(&recs); err != nil {
		if errors.Is(err, io.EOF) {
			return &Summary{}, nil
		}
		return nil, fmt.Errorf("decoding game records: %w", err)
	}
	s := &Summary{}
	for _, rec := range recs {
		s.Add(rec)
	}
	return s, nil
}
