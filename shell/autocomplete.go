package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"
)

var commandNames = []string{
	"new", "load", "show", "cgp", "moves", "play", "ai", "eval",
	"set", "autoplay", "help", "exit",
}

var setOptions = []string{"depth", "pruning", "honor-depth-hint", "threads", "opening-plies"}

var pruningValues = []string{"single-bound", "alpha-beta", "none"}

var helpTopics = []string{"load", "play", "ai", "set", "autoplay"}

// ShellCompleter completes command names and their fixed arguments.
type ShellCompleter struct{}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	if len(fields) > 0 && !endsWithSpace {
		prefix = fields[len(fields)-1]
	}
	return completions(candidates(fields, endsWithSpace), prefix), len([]rune(prefix))
}

func candidates(fields []string, endsWithSpace bool) []string {
	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		return commandNames
	}
	argIdx := len(fields) - 1
	if endsWithSpace {
		argIdx = len(fields)
	}
	switch fields[0] {
	case "set":
		if argIdx == 1 {
			return setOptions
		}
		if argIdx == 2 && fields[1] == "pruning" {
			return pruningValues
		}
		if argIdx == 2 && fields[1] == "honor-depth-hint" {
			return []string{"true", "false"}
		}
	case "help":
		if argIdx == 1 {
			return helpTopics
		}
	case "play":
		if argIdx == 1 {
			return []string{"pass"}
		}
	case "autoplay":
		if argIdx == 1 {
			return []string{"stop"}
		}
		return []string{"-threads", "-file"}
	}
	return nil
}

// completions returns the suffixes of candidates that extend prefix.
func completions(cands []string, prefix string) [][]rune {
	matching := lo.Filter(cands, func(s string, _ int) bool {
		return strings.HasPrefix(s, prefix) && s != prefix
	})
	return lo.Map(matching, func(s string, _ int) []rune {
		return []rune(s[len(prefix):] + " ")
	})
}
