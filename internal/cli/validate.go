package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/nucomplete/internal/config"
	"github.com/NikitaCOEUR/nucomplete/internal/shell"
)

// ValidateParams contains parameters for the Validate command
type ValidateParams struct {
	ConfigPath string // defaults to the file in the config directory
	Registry   *shell.Registry
}

// Validate validates a nucomplete configuration file
func Validate(params ValidateParams, w io.Writer) error {
	configPath := params.ConfigPath
	if configPath == "" {
		dir, err := config.DefaultDir()
		if err != nil {
			return fmt.Errorf("failed to locate config directory: %w", err)
		}
		configPath = config.FindConfigFile(dir)
		if configPath == "" {
			return fmt.Errorf("no config file found in %s", dir)
		}
	}

	_, _ = fmt.Fprintf(w, "Validating: %s\n\n", configPath)

	content, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	result, err := config.ValidateWithSchema(configPath, content)
	if err != nil {
		return err
	}

	// The schema cannot know which shells are compiled in
	if result.Valid {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if _, err := lookupShell(params.Registry, cfg.Shell); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, config.ValidationError{
				Field:   "shell",
				Message: err.Error(),
			})
		}
	}

	if result.Valid {
		_, _ = fmt.Fprintln(w, "✅ Configuration is valid!")
		return nil
	}

	_, _ = fmt.Fprintln(w, "❌ Configuration has errors:")
	for i, validationErr := range result.Errors {
		_, _ = fmt.Fprintf(w, "%d. [%s] %s\n", i+1, validationErr.Field, validationErr.Message)
	}
	_, _ = fmt.Fprintf(w, "\nFound %d error(s)\n", len(result.Errors))

	return fmt.Errorf("validation failed")
}
