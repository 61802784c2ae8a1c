package cli

import (
	"fmt"
	"io"

	"github.com/NikitaCOEUR/nucomplete/internal/shell"
	"github.com/NikitaCOEUR/nucomplete/internal/status"
)

// StatusParams contains parameters for the Status command
type StatusParams struct {
	ConfigPath string
	Registry   *shell.Registry
	Getenv     func(string) string
}

// Status displays the current nucomplete configuration status
func Status(params StatusParams, w io.Writer) error {
	registry := params.Registry
	if registry == nil {
		registry = shell.DefaultRegistry()
	}

	data, err := status.Collect(status.Options{
		ConfigPath: params.ConfigPath,
		Shells:     registry.Names(),
		Getenv:     params.Getenv,
	})
	if err != nil {
		return fmt.Errorf("failed to collect status data: %w", err)
	}

	_, err = fmt.Fprintln(w, status.Render(data))
	return err
}

// Shells lists the registered shells, one per line
func Shells(registry *shell.Registry, w io.Writer) error {
	if registry == nil {
		registry = shell.DefaultRegistry()
	}
	for _, name := range registry.Names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
