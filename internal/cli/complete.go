package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/nucomplete/internal/logger"
	"github.com/NikitaCOEUR/nucomplete/internal/shell"
	"github.com/NikitaCOEUR/nucomplete/internal/timing"
	"github.com/NikitaCOEUR/nucomplete/internal/trace"
	urfavecli "github.com/urfave/cli/v3"
)

// CompleteParams contains parameters for the Complete command
type CompleteParams struct {
	Shell      string
	Command    *urfavecli.Command // definition being completed
	Args       []string           // spans typed so far, program name first
	CurrentDir string             // defaults to the process working directory
	LogLevel   string
	LogOutput  io.Writer // defaults to stderr
	Registry   *shell.Registry
}

// Complete answers one completion request on w. Failures are returned as
// is: an empty answer would hide a broken installation.
func Complete(ctx context.Context, params CompleteParams, w io.Writer) error {
	defer trace.Region(ctx, "cli.Complete")()
	timer := timing.NewTimer()

	log := logger.New(params.LogLevel, params.LogOutput)

	completer, err := lookupShell(params.Registry, params.Shell)
	if err != nil {
		return err
	}
	timer.Mark("lookup")

	currentDir := params.CurrentDir
	if currentDir == "" {
		currentDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	log.Debug().
		Str("shell", completer.Name()).
		Strs("args", params.Args).
		Str("cwd", currentDir).
		Msg("Received completion request")

	trace.WithRegion(ctx, "shell.WriteComplete", func() {
		err = completer.WriteComplete(params.Command, params.Args, currentDir, w)
	})
	timer.Mark("complete")

	if err != nil {
		log.Debug().Err(err).Msg("Completion failed")
		return err
	}

	log.Debug().
		Dur("duration", timer.Elapsed()).
		Str("timing", timer.Summary()).
		Msg("Completion written")

	return nil
}
