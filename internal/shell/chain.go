package shell

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/NikitaCOEUR/nucomplete/internal/completion"
	"github.com/NikitaCOEUR/nucomplete/internal/derrors"
)

// This file is a Go model of the dispatch the emitted Nushell script
// performs at completion time. Nushell runs the real dispatch; the model
// exists so that behavior can be tested without a shell, and ExecHandler
// drives the completer binary the same way the script does.

// Predicate decides whether a completer handles a command line
type Predicate func(spans []string) bool

// Handler produces candidates for a command line
type Handler func(spans []string) ([]completion.Candidate, error)

// ExternalCompleter pairs a predicate with the handler it guards
type ExternalCompleter struct {
	Predicate Predicate
	Handler   Handler
}

// ExternalConfig mirrors $env.config.completions.external
type ExternalConfig struct {
	Enable    bool
	Completer Handler // nil when no external completer is configured
}

// noopHandler stands in for an unconfigured completer
func noopHandler(_ []string) ([]completion.Candidate, error) {
	return nil, nil
}

// Install returns a config whose completer runs self when its predicate
// matches and otherwise falls through to the completer configured in cfg.
// The previous completer is captured now, so installing again wraps the
// result of this install instead of growing a chain of self.
func (cfg ExternalConfig) Install(self ExternalCompleter) ExternalConfig {
	previous := cfg.Completer
	if previous == nil {
		previous = noopHandler
	}

	return ExternalConfig{
		Enable: true,
		Completer: func(spans []string) ([]completion.Candidate, error) {
			if self.Predicate(spans) {
				return self.Handler(spans)
			}
			return previous(spans)
		},
	}
}

// Complete runs the configured completer, if enabled
func (cfg ExternalConfig) Complete(spans []string) ([]completion.Candidate, error) {
	if !cfg.Enable || cfg.Completer == nil {
		return nil, nil
	}
	return cfg.Completer(spans)
}

// ForProgram builds the completer the script registers for bin
func ForProgram(bin string, aliases map[string]string, handler Handler) ExternalCompleter {
	return ExternalCompleter{
		Predicate: func(spans []string) bool {
			return Handles(bin, spans, aliases)
		},
		Handler: handler,
	}
}

// ExpandAlias replaces span 0 with the first word of its alias expansion,
// splitting on single spaces like the script's `split row " " | take 1`.
// An expansion starting with a space therefore yields an empty span 0.
// Expansion is single-level; the remaining spans are kept as typed.
func ExpandAlias(spans []string, aliases map[string]string) []string {
	if len(spans) == 0 {
		return spans
	}

	expansion, ok := aliases[spans[0]]
	if !ok {
		return spans
	}

	first, _, _ := strings.Cut(expansion, " ")

	expanded := make([]string, 0, len(spans))
	expanded = append(expanded, first)
	return append(expanded, spans[1:]...)
}

// Handles reports whether the alias-expanded span 0 is exactly bin
func Handles(bin string, spans []string, aliases map[string]string) bool {
	expanded := ExpandAlias(spans, aliases)
	return len(expanded) > 0 && expanded[0] == bin
}

// ExecHandler invokes the completer binary the way the script does:
// VAR=nushell completer -- spans..., decoding its JSON output.
// A non-zero exit or malformed output fails the completion.
func ExecHandler(varName, completerPath string) Handler {
	return func(spans []string) ([]completion.Candidate, error) {
		args := append([]string{"--"}, spans...)
		cmd := exec.Command(completerPath, args...)
		cmd.Env = append(os.Environ(), varName+"="+shellNushell)

		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		output, err := cmd.Output()
		if err != nil {
			return nil, derrors.NewEngineError(completerPath,
				fmt.Sprintf("completer failed: %s", strings.TrimSpace(stderr.String())), err)
		}

		return DecodeCandidates(output)
	}
}
