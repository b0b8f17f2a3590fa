package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/arcothello/arcothello/alphabeta"
	"github.com/arcothello/arcothello/automatic"
	"github.com/arcothello/arcothello/cgp"
	"github.com/arcothello/arcothello/config"
	"github.com/arcothello/arcothello/equity"
	"github.com/arcothello/arcothello/game"
	"github.com/arcothello/arcothello/move"
	"github.com/arcothello/arcothello/turnplayer"
)

type Response struct {
	message string
}

func (r *Response) Message() string {
	return r.message
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	sc.game = game.NewGame(sc.config)
	if err := sc.rebuildPlayer(sc.config); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: load <cgp>")
	}
	b, side, err := cgp.ParseCGP(strings.Join(cmd.args, " "))
	if err != nil {
		return nil, err
	}
	prev := sc.game
	sc.game = game.NewFromPosition(b, side)
	if err := sc.rebuildPlayer(sc.config); err != nil {
		sc.game = prev
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) cgp(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToCGP()), nil
}

func (sc *ShellController) moves(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	side := sc.game.PlayerOnTurn()
	legal := sc.game.Board().LegalMoves(side)
	if len(legal) == 0 {
		return msg(fmt.Sprintf("%s has no legal moves and must pass", side)), nil
	}
	descs := lo.Map(legal, func(m move.Move, _ int) string { return m.ShortDescription() })
	return msg(fmt.Sprintf("%d moves for %s: %s", len(legal), side, strings.Join(descs, " "))), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <coords|pass>")
	}
	m, err := move.FromString(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if err := sc.game.PlayMove(m); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

// ai searches the position for the side on turn and plays the best move.
func (sc *ShellController) ai(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	depth := sc.config.SearchDepth
	if len(cmd.args) > 0 {
		d, err := strconv.Atoi(cmd.args[0])
		if err != nil || d < 1 {
			return nil, fmt.Errorf("bad depth %q", cmd.args[0])
		}
		depth = d
	}
	side := sc.game.PlayerOnTurn()
	b := sc.game.Board()
	var sb strings.Builder
	m := move.Pass
	if b.HasLegalMove(side) {
		solver := sc.player.Solver()
		score, best := solver.Solve(b, side, depth)
		st := solver.Stats()
		m = best
		fmt.Fprintf(&sb, "Best move for %s at depth %d: %s (score %d)\n",
			side, depth, m.ShortDescription(), score)
		fmt.Fprintf(&sb, "Nodes: %d  Leaves: %d  Cutoffs: %d\n", st.Nodes, st.Leaves, st.Cutoffs)
		sb.WriteString(solver.PrincipalVariation().String())
	} else {
		fmt.Fprintf(&sb, "%s has no legal moves and passes\n", side)
	}
	if err := sc.game.PlayMove(m); err != nil {
		return nil, err
	}
	sb.WriteString(sc.game.ToDisplayText())
	return msg(sb.String()), nil
}

func (sc *ShellController) eval(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	b := sc.game.Board()
	e := equity.NewPositionalEvaluator(b.Width(), b.Height(), sc.config.LateGameTrigger)
	side := sc.game.PlayerOnTurn()
	return msg(fmt.Sprintf("Static evaluation for %s: %d", side, e.Evaluate(b, side))), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(fmt.Sprintf("depth %d\npruning %s\nhonor-depth-hint %v\nthreads %d\nopening-plies %d",
			sc.config.SearchDepth, sc.config.Pruning, sc.config.HonorDepthHint,
			sc.config.AutoplayThreads, sc.config.AutoplayOpeningPlies)), nil
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <option> <value>")
	}
	opt, val := cmd.args[0], cmd.args[1]
	cfg := *sc.config
	switch opt {
	case "depth":
		d, err := strconv.Atoi(val)
		if err != nil {
			return nil, err
		}
		cfg.SearchDepth = d
	case "pruning":
		if _, err := alphabeta.PruningModeFromString(val); err != nil {
			return nil, err
		}
		cfg.Pruning = val
	case "honor-depth-hint":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, err
		}
		cfg.HonorDepthHint = b
	case "threads":
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, err
		}
		cfg.AutoplayThreads = n
	case "opening-plies":
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, err
		}
		cfg.AutoplayOpeningPlies = n
	default:
		return nil, errors.New("option " + opt + " not recognized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := sc.rebuildPlayer(&cfg); err != nil {
		return nil, err
	}
	return msg("set " + opt + " to " + val), nil
}

// rebuildPlayer makes cfg the shell configuration and rebuilds the player
// for the board in play. A loaded position may be sized differently from
// cfg; the evaluator's weight table follows the position, cfg does not.
func (sc *ShellController) rebuildPlayer(cfg *config.Config) error {
	pcfg := *cfg
	if sc.game != nil {
		pcfg.BoardWidth, pcfg.BoardHeight = sc.game.Board().Width(), sc.game.Board().Height()
	}
	p, err := turnplayer.NewMinimaxPlayer(&pcfg)
	if err != nil {
		return err
	}
	sc.config = cfg
	sc.player = p
	return nil
}

// autoplay starts a batch of self-play games in the background. `autoplay
// stop` cancels it.
func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 1 && cmd.args[0] == "stop" {
		if !sc.stopAutoplay() {
			return nil, errors.New("no games are being played")
		}
		return msg("stopping autoplay..."), nil
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: autoplay <games> [-threads n] [-file path]")
	}
	numGames, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.AutoplayThreads)
	if err != nil {
		return nil, err
	}

	sc.autoplayMu.Lock()
	defer sc.autoplayMu.Unlock()
	if sc.autoplayCancel != nil {
		return nil, errors.New("games are already being played, please wait till complete")
	}

	var out io.WriteCloser
	if fn := cmd.options.String("file"); fn != "" {
		f, err := os.Create(fn)
		if err != nil {
			return nil, err
		}
		out = f
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	sc.autoplayCancel = cancel
	sc.autoplayDone = done
	cfg := *sc.config

	go func() {
		defer close(done)
		var w io.Writer
		if out != nil {
			w = out
			defer out.Close()
		}
		summary, err := automatic.StartCompVComp(ctx, &cfg, numGames, threads, w)
		sc.autoplayMu.Lock()
		sc.autoplayCancel = nil
		sc.autoplayMu.Unlock()
		cancel()
		if err != nil {
			log.Error().Err(err).Msg("autoplay-failed")
			return
		}
		sc.showMessage(summary.String())
	}()
	return msg(fmt.Sprintf("playing %d games on %d threads", numGames, threads)), nil
}

// stopAutoplay cancels a running batch and reports whether there was one.
func (sc *ShellController) stopAutoplay() bool {
	sc.autoplayMu.Lock()
	defer sc.autoplayMu.Unlock()
	if sc.autoplayCancel == nil {
		return false
	}
	sc.autoplayCancel()
	return true
}

// waitAutoplay blocks until the last batch started has finished.
func (sc *ShellController) waitAutoplay() {
	sc.autoplayMu.Lock()
	done := sc.autoplayDone
	sc.autoplayMu.Unlock()
	if done != nil {
		<-done
	}
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return usage()
	}
	return usageTopic(cmd.args[0])
}

func (sc *ShellController) exit(cmd *shellcmd) (*Response, error) {
	sc.stopAutoplay()
	return nil, errExit
}
