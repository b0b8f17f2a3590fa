// Package shell is an interactive command line for playing and analyzing
// games.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/arcothello/arcothello/config"
	"github.com/arcothello/arcothello/game"
	"github.com/arcothello/arcothello/turnplayer"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("no game loaded; use `new` or `load`")
	errExit              = errors.New("exit requested")
)

type ShellController struct {
	l   *readline.Instance
	out io.Writer

	config *config.Config
	game   *game.Game
	player *turnplayer.MinimaxPlayer

	autoplayMu     sync.Mutex
	autoplayCancel context.CancelFunc
	autoplayDone   chan struct{}
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController builds a controller reading from the terminal.
func NewShellController(cfg *config.Config) (*ShellController, error) {
	sc, err := newController(cfg, os.Stdout)
	if err != nil {
		return nil, err
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31marcothello>\033[0m ",
		HistoryFile:     "/tmp/arcothello_readline.tmp",
		AutoComplete:    &ShellCompleter{},
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	sc.out = l.Stdout()
	return sc, nil
}

func newController(cfg *config.Config, out io.Writer) (*ShellController, error) {
	p, err := turnplayer.NewMinimaxPlayer(cfg)
	if err != nil {
		return nil, err
	}
	return &ShellController{out: out, config: cfg, player: p}, nil
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// extractFields splits a line into a command, positional arguments and
// -key value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && len(fields[i]) > 1 && !isNumber(fields[i]) {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := fields[i][1:]
			options[key] = append(options[key], fields[i+1])
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func isNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Execute runs one command line and returns what it printed.
func (sc *ShellController) Execute(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	handler, ok := sc.handlers()[cmd.cmd]
	if !ok {
		return nil, errors.New("command not recognized: " + cmd.cmd)
	}
	return handler(cmd)
}

func (sc *ShellController) handlers() map[string]func(*shellcmd) (*Response, error) {
	return map[string]func(*shellcmd) (*Response, error){
		"new":      sc.newGame,
		"load":     sc.load,
		"show":     sc.show,
		"cgp":      sc.cgp,
		"moves":    sc.moves,
		"play":     sc.play,
		"ai":       sc.ai,
		"eval":     sc.eval,
		"set":      sc.set,
		"autoplay": sc.autoplay,
		"help":     sc.help,
		"exit":     sc.exit,
	}
}

func (sc *ShellController) standardModeSwitch(line string) error {
	resp, err := sc.Execute(line)
	switch {
	case errors.Is(err, errExit):
		return err
	case errors.Is(err, errNoData):
		return nil
	case err != nil:
		log.Error().Err(err).Msg("")
		sc.showError(err)
		return nil
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return nil
}

// Loop reads commands until exit or EOF, then signals sig.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if sc.stopAutoplay() {
				continue
			}
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if err := sc.standardModeSwitch(line); err != nil {
			sig <- syscall.SIGINT
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
