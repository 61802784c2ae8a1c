package completion

import (
	"strings"

	"github.com/NikitaCOEUR/nucomplete/internal/derrors"
	"github.com/urfave/cli/v3"
)

// CommandEngine walks a urfave/cli command tree to produce candidates
type CommandEngine struct{}

// NewEngine creates the default command-tree engine
func NewEngine() *CommandEngine {
	return &CommandEngine{}
}

// Complete implements Engine
func (e *CommandEngine) Complete(cmd *cli.Command, args []string, index int, currentDir string) ([]Candidate, error) {
	return Complete(cmd, args, index, currentDir)
}

// Optional capabilities of cli.Flag implementations
type (
	usageFlag interface{ GetUsage() string }
	valueFlag interface{ TakesValue() bool }
	visible   interface{ IsVisible() bool }
)

// parseState is the result of walking the spans before the cursor
type parseState struct {
	lineage        []*cli.Command // root first, active command last
	pendingFlag    cli.Flag       // flag whose value is being typed
	positionalOnly bool           // a bare "--" was seen
}

func (s *parseState) active() *cli.Command {
	return s.lineage[len(s.lineage)-1]
}

// Complete returns the candidates for args[index] against the command tree
// rooted at cmd. The definition is validated along the walked path; a
// malformed definition is an error, never an empty result.
func Complete(cmd *cli.Command, args []string, index int, currentDir string) ([]Candidate, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	if index < 0 {
		index = 0
	}
	if index > len(args) {
		index = len(args)
	}

	// Span 0 is the program itself
	if index == 0 {
		return []Candidate{}, nil
	}

	current := ""
	if index < len(args) {
		current = args[index]
	}

	state, err := walk(cmd, args[1:index])
	if err != nil {
		return nil, err
	}

	return candidatesFor(state, current, currentDir), nil
}

func candidatesFor(state *parseState, current, currentDir string) []Candidate {
	active := state.active()

	if state.pendingFlag != nil {
		if takesFile(state.pendingFlag) {
			return CompletePaths(current, currentDir)
		}
		return []Candidate{}
	}

	if !state.positionalOnly && strings.HasPrefix(current, "-") {
		if name, value, ok := strings.Cut(current, "="); ok {
			flag := lookupFlag(state.lineage, strings.TrimLeft(name, "-"))
			if flag == nil || !takesFile(flag) {
				return []Candidate{}
			}
			paths := CompletePaths(value, currentDir)
			for i := range paths {
				paths[i].Value = name + "=" + paths[i].Value
			}
			return paths
		}
		return Filter(flagCandidates(active), current)
	}

	if state.positionalOnly || !hasVisibleCommands(active) {
		return CompletePaths(current, currentDir)
	}

	return Filter(commandCandidates(active), current)
}

func walk(root *cli.Command, tokens []string) (*parseState, error) {
	state := &parseState{lineage: []*cli.Command{root}}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if state.positionalOnly {
			continue
		}
		if tok == "--" {
			state.positionalOnly = true
			continue
		}

		if strings.HasPrefix(tok, "-") && tok != "-" {
			name, _, inline := strings.Cut(strings.TrimLeft(tok, "-"), "=")
			flag := lookupFlag(state.lineage, name)
			if flag == nil || inline || !takesValue(flag) {
				continue
			}
			if i+1 < len(tokens) {
				i++ // skip the flag's value
				continue
			}
			state.pendingFlag = flag
			continue
		}

		if sub := lookupCommand(state.active(), tok); sub != nil {
			if err := validateCommand(sub); err != nil {
				return nil, err
			}
			state.lineage = append(state.lineage, sub)
		}
	}

	return state, nil
}

func validateCommand(cmd *cli.Command) error {
	if cmd == nil {
		return derrors.NewValidationError("command", "command definition is nil", nil)
	}
	if cmd.Name == "" {
		return derrors.NewValidationError("name", "command definition has no name", nil)
	}

	seen := make(map[string]bool)
	for _, sub := range cmd.Commands {
		if sub == nil {
			return derrors.NewValidationError(cmd.Name+".commands", "nil subcommand in definition", nil)
		}
		for _, name := range sub.Names() {
			if seen[name] {
				return derrors.NewValidationError(cmd.Name+".commands",
					"duplicate subcommand name "+name, nil)
			}
			seen[name] = true
		}
	}

	return nil
}

// lookupFlag searches the active command first, then its ancestors
func lookupFlag(lineage []*cli.Command, name string) cli.Flag {
	for i := len(lineage) - 1; i >= 0; i-- {
		for _, flag := range lineage[i].Flags {
			for _, n := range flag.Names() {
				if n == name {
					return flag
				}
			}
		}
	}
	return nil
}

func lookupCommand(cmd *cli.Command, name string) *cli.Command {
	for _, sub := range cmd.Commands {
		for _, n := range sub.Names() {
			if n == name {
				return sub
			}
		}
	}
	return nil
}

func hasVisibleCommands(cmd *cli.Command) bool {
	for _, sub := range cmd.Commands {
		if !sub.Hidden {
			return true
		}
	}
	return false
}

func commandCandidates(cmd *cli.Command) []Candidate {
	var candidates []Candidate
	for _, sub := range cmd.Commands {
		if sub.Hidden {
			continue
		}
		for _, name := range sub.Names() {
			candidates = append(candidates, Candidate{Value: name, Help: sub.Usage})
		}
	}
	return candidates
}

func flagCandidates(cmd *cli.Command) []Candidate {
	var long, short []Candidate
	for _, flag := range cmd.Flags {
		if v, ok := flag.(visible); ok && !v.IsVisible() {
			continue
		}
		help := ""
		if u, ok := flag.(usageFlag); ok {
			help = u.GetUsage()
		}
		for _, name := range flag.Names() {
			if len(name) == 1 {
				short = append(short, Candidate{Value: "-" + name, Help: help})
			} else {
				long = append(long, Candidate{Value: "--" + name, Help: help})
			}
		}
	}
	return append(long, short...)
}

func takesValue(flag cli.Flag) bool {
	if v, ok := flag.(valueFlag); ok {
		return v.TakesValue()
	}
	return false
}

func takesFile(flag cli.Flag) bool {
	switch f := flag.(type) {
	case *cli.StringFlag:
		return f.TakesFile
	case *cli.StringSliceFlag:
		return f.TakesFile
	}
	return false
}

// Filter keeps the candidates whose value starts with prefix, preserving order
func Filter(candidates []Candidate, prefix string) []Candidate {
	filtered := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(c.Value, prefix) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
