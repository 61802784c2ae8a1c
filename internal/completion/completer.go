// Package completion enumerates completion candidates for urfave/cli command
// definitions. It is the engine behind the shell responders: given the
// spans typed so far and the index of the span being completed, it returns
// an ordered list of candidates.
package completion

import (
	"github.com/urfave/cli/v3"
)

// Candidate represents a single completion candidate.
//
// An empty Help means "no description": there is no way to report a present
// but empty one. urfave/cli uses an empty Usage the same way, so nothing is
// lost for the command trees this engine walks.
type Candidate struct {
	Value string // The literal text to insert
	Help  string // Optional description
}

// HasHelp reports whether the candidate carries a description
func (c Candidate) HasHelp() bool {
	return c.Help != ""
}

// Engine produces completion candidates for a command definition
type Engine interface {
	// Complete returns candidates for args[index], in ranking order.
	// args[0] is the program name. currentDir resolves relative paths;
	// empty means the process working directory.
	Complete(cmd *cli.Command, args []string, index int, currentDir string) ([]Candidate, error)
}

// EngineFunc adapts a function to the Engine interface
type EngineFunc func(cmd *cli.Command, args []string, index int, currentDir string) ([]Candidate, error)

// Complete calls f
func (f EngineFunc) Complete(cmd *cli.Command, args []string, index int, currentDir string) ([]Candidate, error) {
	return f(cmd, args, index, currentDir)
}
