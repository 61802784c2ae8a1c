// Package main is the entry point for the nucomplete CLI application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	nucli "github.com/NikitaCOEUR/nucomplete/internal/cli"
	"github.com/NikitaCOEUR/nucomplete/internal/config"
	"github.com/NikitaCOEUR/nucomplete/internal/trace"
	"github.com/NikitaCOEUR/nucomplete/pkg/complete"
	"github.com/NikitaCOEUR/nucomplete/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defer trace.Init()()

	app := newApp(args, stdout, stderr)

	handled, err := complete.Env(app).
		Stdout(stdout).
		LogLevel(os.Getenv("NUCOMPLETE_LOG_LEVEL")).
		CompleteContext(ctx, args)
	if !handled {
		err = app.Run(ctx, args)
	}

	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newApp(argv []string, stdout, stderr io.Writer) *cli.Command {
	app := &cli.Command{
		Name:      "nucomplete",
		Usage:     "Dynamic Nushell completions for command-line programs",
		Version:   version.String(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   config.DefaultLogLevel,
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("NUCOMPLETE_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:      "config",
				Usage:     "Configuration file (default: $XDG_CONFIG_HOME/nucomplete/config.yml)",
				TakesFile: true,
				Sources:   cli.EnvVars("NUCOMPLETE_CONFIG"),
			},
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:  "register",
			Usage: "Print the script that registers a program's completer in the shell",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "shell", Usage: "Target shell"},
				&cli.StringFlag{Name: "var", Usage: "Environment variable that activates completion"},
				&cli.StringFlag{Name: "name", Usage: "Display name used in the script (default: bin)"},
				&cli.StringFlag{Name: "bin", Usage: "Program name to complete"},
				&cli.StringFlag{Name: "completer", Usage: "Path of the completer binary (default: bin)", TakesFile: true},
			},
			Action: func(_ context.Context, cmd *cli.Command) error {
				cfg, _, err := config.Resolve(cmd.String("config"))
				if err != nil {
					return err
				}
				cfg = cfg.Override(config.Config{
					Shell:     cmd.String("shell"),
					Var:       cmd.String("var"),
					Name:      cmd.String("name"),
					Bin:       cmd.String("bin"),
					Completer: cmd.String("completer"),
				})

				return nucli.Register(nucli.RegisterParams{
					Shell:     cfg.Shell,
					Var:       cfg.Var,
					Name:      cfg.Name,
					Bin:       cfg.Bin,
					Completer: cfg.Completer,
					LogLevel:  logLevel(cmd, cfg),
					LogOutput: stderr,
				}, stdout)
			},
		},
		{
			Name:            "complete",
			Usage:           "Answer a completion request from the registration script",
			ArgsUsage:       "<shell> -- <span>...",
			Hidden:          true, // invoked by the registration script
			SkipFlagParsing: true, // spans are passed through untouched
			HideHelp:        true,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				shellName, spans, err := completeArgs(app, argv)
				if err != nil {
					return err
				}

				// A broken config file must not break completion
				cfg, _, err := config.Resolve(cmd.String("config"))
				if err != nil {
					cfg = nil
				}

				return nucli.Complete(ctx, nucli.CompleteParams{
					Shell:     shellName,
					Command:   app,
					Args:      spans,
					LogLevel:  logLevel(cmd, cfg),
					LogOutput: stderr,
				}, stdout)
			},
		},
		{
			Name:  "shells",
			Usage: "List the supported shells",
			Action: func(_ context.Context, _ *cli.Command) error {
				return nucli.Shells(nil, stdout)
			},
		},
		{
			Name:  "status",
			Usage: "Show the current nucomplete configuration",
			Action: func(_ context.Context, cmd *cli.Command) error {
				return nucli.Status(nucli.StatusParams{ConfigPath: cmd.String("config")}, stdout)
			},
		},
		{
			Name:      "validate",
			Usage:     "Validate a nucomplete configuration file",
			ArgsUsage: "[config-file]",
			Action: func(_ context.Context, cmd *cli.Command) error {
				configPath := cmd.String("config")
				if cmd.Args().Len() > 0 {
					configPath = cmd.Args().Get(0)
				}
				return nucli.Validate(nucli.ValidateParams{ConfigPath: configPath}, stdout)
			},
		},
	}

	return app
}

// logLevel prefers an explicit --log-level (flag or environment) over the
// config file
func logLevel(cmd *cli.Command, cfg *config.Config) string {
	if cmd.IsSet("log-level") || cfg == nil {
		return cmd.String("log-level")
	}
	return cfg.LogLevel
}

type valueFlag interface{ TakesValue() bool }

// completeArgs extracts the shell and spans from
// "nucomplete [flags] complete <shell> -- <span>...". argv is read directly
// because urfave/cli drops the "--" separator; only the first "--" after
// the shell is a separator, later ones are spans. Values of root flags are
// skipped so "--config complete" is not taken for the subcommand.
func completeArgs(root *cli.Command, argv []string) (string, []string, error) {
	i := commandIndex(root, argv, "complete")
	if i < 0 || i+1 >= len(argv) || argv[i+1] == "--" {
		return "", nil, fmt.Errorf("usage: nucomplete complete <shell> -- <span>...")
	}

	shellName := argv[i+1]
	rest := argv[i+2:]
	if len(rest) == 0 || rest[0] != "--" {
		return "", nil, fmt.Errorf("missing \"--\" before the spans")
	}
	return shellName, rest[1:], nil
}

// commandIndex returns the position of the subcommand name in argv, or -1
func commandIndex(root *cli.Command, argv []string, name string) int {
	for i := 1; i < len(argv); i++ {
		tok := argv[i]
		if tok == name {
			return i
		}
		if !strings.HasPrefix(tok, "-") || tok == "-" || tok == "--" {
			return -1
		}

		flagName, _, inline := strings.Cut(strings.TrimLeft(tok, "-"), "=")
		if inline {
			continue
		}
		for _, flag := range root.Flags {
			if v, ok := flag.(valueFlag); ok && v.TakesValue() && slices.Contains(flag.Names(), flagName) {
				i++ // skip the flag's value
				break
			}
		}
	}
	return -1
}
