package cli

import (
	urfavecli "github.com/urfave/cli/v3"
)

// testApp is a small command tree used across the command tests
func testApp() *urfavecli.Command {
	return &urfavecli.Command{
		Name: "prog",
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{Name: "verbose", Usage: "Print more"},
		},
		Commands: []*urfavecli.Command{
			{Name: "build", Usage: "Build the project"},
			{Name: "clean", Usage: "Remove artifacts"},
		},
	}
}

// fakeEnv serves lookups from values
func fakeEnv(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}
