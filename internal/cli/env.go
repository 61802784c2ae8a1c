package cli

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/NikitaCOEUR/nucomplete/internal/config"
	"github.com/NikitaCOEUR/nucomplete/internal/shell"
	urfavecli "github.com/urfave/cli/v3"
)

// EnvParams contains parameters for CompleteEnv
type EnvParams struct {
	Var        string             // defaults to COMPLETE
	Command    *urfavecli.Command // the program's own command tree
	Args       []string           // full process arguments, os.Args
	CurrentDir string
	LogLevel   string
	Registry   *shell.Registry
	Getenv     func(string) string // defaults to os.Getenv
}

// CompleteEnv turns the running program into its own completer when the
// environment variable is set to a shell name:
//
//	COMPLETE=nushell prog           writes the registration script
//	COMPLETE=nushell prog -- a b    answers a completion request for "a b"
//
// It returns false when the variable is unset, empty or "0"; the program
// then runs normally.
func CompleteEnv(ctx context.Context, params EnvParams, w io.Writer) (bool, error) {
	getenv := params.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	varName := params.Var
	if varName == "" {
		varName = config.DefaultVar
	}

	value := getenv(varName)
	if value == "" || value == "0" {
		return false, nil
	}

	completer, err := lookupShell(params.Registry, value)
	if err != nil {
		return true, err
	}

	var rest []string
	if len(params.Args) > 0 {
		rest = params.Args[1:]
	}

	sep := slices.Index(rest, "--")
	if sep < 0 {
		bin, completerPath := programNames(params)
		return true, Register(RegisterParams{
			Shell:     completer.Name(),
			Var:       varName,
			Name:      bin,
			Bin:       bin,
			Completer: completerPath,
			LogLevel:  params.LogLevel,
			Registry:  params.Registry,
		}, w)
	}

	return true, Complete(ctx, CompleteParams{
		Shell:      completer.Name(),
		Command:    params.Command,
		Args:       rest[sep+1:],
		CurrentDir: params.CurrentDir,
		LogLevel:   params.LogLevel,
		Registry:   params.Registry,
	}, w)
}

// programNames returns the name the shell sees and the path to invoke
func programNames(params EnvParams) (bin, completerPath string) {
	if len(params.Args) == 0 || params.Args[0] == "" {
		if params.Command != nil {
			return params.Command.Name, params.Command.Name
		}
		return "", ""
	}

	arg0 := params.Args[0]
	bin = filepath.Base(arg0)
	return bin, resolveExecutable(arg0)
}

// resolveExecutable makes arg0 absolute so the script works from any directory
func resolveExecutable(arg0 string) string {
	path := arg0
	if !strings.ContainsRune(arg0, filepath.Separator) {
		found, err := exec.LookPath(arg0)
		if err != nil {
			return arg0
		}
		path = found
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
