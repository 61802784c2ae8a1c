// Package complete lets a urfave/cli program act as its own Nushell
// completer. Call it before running the application:
//
//	func main() {
//		app := &cli.Command{Name: "prog", ...}
//		if ok, err := complete.Env(app).Complete(os.Args); ok {
//			if err != nil {
//				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
//				os.Exit(1)
//			}
//			return
//		}
//		_ = app.Run(context.Background(), os.Args)
//	}
//
// With COMPLETE=nushell set, "prog" prints its registration script and
// "prog -- <spans>" answers a completion request.
package complete

import (
	"context"
	"io"
	"os"

	nucli "github.com/NikitaCOEUR/nucomplete/internal/cli"
	"github.com/NikitaCOEUR/nucomplete/internal/config"
	"github.com/NikitaCOEUR/nucomplete/internal/shell"
	"github.com/urfave/cli/v3"
)

// EnvCompleter configures environment-driven completion for one program
type EnvCompleter struct {
	cmd      *cli.Command
	varName  string
	registry *shell.Registry
	stdout   io.Writer
	getenv   func(string) string
	cwd      string
	logLevel string
}

// Env creates the completer for cmd with the default variable (COMPLETE),
// the built-in shells and os.Stdout
func Env(cmd *cli.Command) *EnvCompleter {
	return &EnvCompleter{
		cmd:      cmd,
		varName:  config.DefaultVar,
		registry: shell.DefaultRegistry(),
		stdout:   os.Stdout,
		getenv:   os.Getenv,
		logLevel: config.DefaultLogLevel,
	}
}

// Var sets the environment variable that activates completion
func (e *EnvCompleter) Var(name string) *EnvCompleter {
	e.varName = name
	return e
}

// Shells replaces the set of supported shells
func (e *EnvCompleter) Shells(registry *shell.Registry) *EnvCompleter {
	e.registry = registry
	return e
}

// Stdout redirects the script and candidate output
func (e *EnvCompleter) Stdout(w io.Writer) *EnvCompleter {
	e.stdout = w
	return e
}

// Getenv replaces the environment lookup
func (e *EnvCompleter) Getenv(getenv func(string) string) *EnvCompleter {
	e.getenv = getenv
	return e
}

// Dir sets the directory paths are completed against (default: working directory)
func (e *EnvCompleter) Dir(dir string) *EnvCompleter {
	e.cwd = dir
	return e
}

// LogLevel sets the level of the diagnostics written to stderr
func (e *EnvCompleter) LogLevel(level string) *EnvCompleter {
	e.logLevel = level
	return e
}

// Complete handles the invocation when completion is active and reports
// whether it did. args are the full process arguments, usually os.Args.
func (e *EnvCompleter) Complete(args []string) (bool, error) {
	return e.CompleteContext(context.Background(), args)
}

// CompleteContext is Complete with a caller-supplied context
func (e *EnvCompleter) CompleteContext(ctx context.Context, args []string) (bool, error) {
	return nucli.CompleteEnv(ctx, nucli.EnvParams{
		Var:        e.varName,
		Command:    e.cmd,
		Args:       args,
		CurrentDir: e.cwd,
		LogLevel:   e.logLevel,
		Registry:   e.registry,
		Getenv:     e.getenv,
	}, e.stdout)
}
