// Package cli implements the nucomplete commands: emitting registration
// scripts, answering completion requests, and the environment-driven
// entry point programs embed to complete themselves.
package cli

import (
	"io"

	"github.com/NikitaCOEUR/nucomplete/internal/config"
	"github.com/NikitaCOEUR/nucomplete/internal/derrors"
	"github.com/NikitaCOEUR/nucomplete/internal/logger"
	"github.com/NikitaCOEUR/nucomplete/internal/shell"
)

// RegisterParams contains parameters for the Register command
type RegisterParams struct {
	Shell     string
	Var       string
	Name      string // defaults to Bin
	Bin       string
	Completer string // defaults to Bin, resolved through PATH by the shell
	LogLevel  string
	LogOutput io.Writer // defaults to stderr
	Registry  *shell.Registry
}

// Register writes the registration script for the requested shell
func Register(params RegisterParams, w io.Writer) error {
	log := logger.New(params.LogLevel, params.LogOutput)

	completer, err := lookupShell(params.Registry, params.Shell)
	if err != nil {
		return err
	}

	if params.Bin == "" {
		return derrors.NewValidationError("bin", "program name is required", nil)
	}

	reg := shell.RegistrationParams{
		Var:       params.Var,
		Name:      params.Name,
		Bin:       params.Bin,
		Completer: params.Completer,
	}
	if reg.Var == "" {
		reg.Var = config.DefaultVar
	}
	if reg.Name == "" {
		reg.Name = reg.Bin
	}
	if reg.Completer == "" {
		reg.Completer = reg.Bin
	}

	log.Debug().
		Str("shell", completer.Name()).
		Str("var", reg.Var).
		Str("bin", reg.Bin).
		Str("completer", reg.Completer).
		Msg("Writing registration script")

	return completer.WriteRegistration(w, reg)
}

func lookupShell(registry *shell.Registry, name string) (shell.EnvCompleter, error) {
	if registry == nil {
		registry = shell.DefaultRegistry()
	}
	if name == "" {
		name = config.DefaultShell
	}
	return registry.Lookup(name)
}
