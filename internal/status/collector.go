// Package status provides status information collection and display for nucomplete.
package status

import (
	"os"
	"slices"

	"github.com/NikitaCOEUR/nucomplete/internal/config"
	"github.com/NikitaCOEUR/nucomplete/pkg/version"
)

// Collect gathers status information. A broken config file is reported in
// the data rather than returned, so status stays usable for debugging it.
func Collect(opts Options) (*Data, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	data := &Data{
		Version:   version.Version,
		GitCommit: version.GitCommit,
		BuildTime: version.BuildTime,
		Shells:    opts.Shells,
		NuVersion: getenv("NU_VERSION"),
	}

	cfg, path, err := config.Resolve(opts.ConfigPath)
	data.ConfigPath = path
	if err != nil {
		data.ConfigError = err.Error()
		cfg = config.Defaults()
	}

	data.Shell = cfg.Shell
	data.Var = cfg.Var
	data.Name = cfg.Name
	data.Bin = cfg.Bin
	data.Completer = cfg.Completer
	data.LogLevel = cfg.LogLevel
	data.ShellKnown = slices.Contains(opts.Shells, cfg.Shell)
	data.EnvVarValue = getenv(cfg.Var)

	return data, nil
}
