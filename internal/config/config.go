// Package config handles loading of the nucomplete configuration file.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/NikitaCOEUR/nucomplete/internal/derrors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultShell is the shell used when none is configured
	DefaultShell = "nushell"
	// DefaultVar is the environment variable that switches a program into completer mode
	DefaultVar = "COMPLETE"
	// DefaultLogLevel is the log level used when none is configured
	DefaultLogLevel = "warn"
)

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	"config.yml",
	"config.yaml",
	"config.toml",
	"config.json",
}

// Config represents a nucomplete configuration
type Config struct {
	Shell     string `koanf:"shell"`
	Var       string `koanf:"var"`
	Name      string `koanf:"name"`
	Bin       string `koanf:"bin"`
	Completer string `koanf:"completer"`
	LogLevel  string `koanf:"log_level"`

	// ConfigDir is the directory of the loaded file, empty for defaults
	ConfigDir string `koanf:"-"`
}

// Defaults returns the configuration used when no file exists
func Defaults() *Config {
	return &Config{
		Shell:    DefaultShell,
		Var:      DefaultVar,
		LogLevel: DefaultLogLevel,
	}
}

// DefaultDir returns $XDG_CONFIG_HOME/nucomplete (or ~/.config/nucomplete)
func DefaultDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "nucomplete"), nil
}

// FindConfigFile returns the first supported config file in dir, or ""
func FindConfigFile(dir string) string {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Resolve loads the file at path, or the default config file when path is
// empty. Missing default files are not an error; it also returns the path
// actually loaded ("" for defaults).
func Resolve(path string) (*Config, string, error) {
	if path == "" {
		dir, err := DefaultDir()
		if err != nil {
			return Defaults(), "", nil
		}
		path = FindConfigFile(dir)
		if path == "" {
			return Defaults(), "", nil
		}
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// ParserFor returns the koanf parser matching the file extension
func ParserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, derrors.NewConfigurationError(path, "unsupported config format: "+filepath.Ext(path), nil)
	}
}

// Load reads and parses a configuration file on top of the defaults
func Load(path string) (*Config, error) {
	parser, err := ParserFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to read config", err)
	}

	return parse(path, data, parser)
}

func parse(path string, data []byte, parser koanf.Parser) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to load config", err)
	}

	// Keys absent from the file keep their default
	cfg := Defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}
	cfg.ConfigDir = filepath.Dir(path)

	cfg.Var = cfg.expandTemplate(cfg.Var)
	cfg.Name = cfg.expandTemplate(cfg.Name)
	cfg.Bin = cfg.expandTemplate(cfg.Bin)
	cfg.Completer = cfg.expandTemplate(cfg.Completer)

	return cfg, nil
}

// Override returns a copy of c where every non-empty field of o wins
func (c *Config) Override(o Config) *Config {
	merged := *c
	if o.Shell != "" {
		merged.Shell = o.Shell
	}
	if o.Var != "" {
		merged.Var = o.Var
	}
	if o.Name != "" {
		merged.Name = o.Name
	}
	if o.Bin != "" {
		merged.Bin = o.Bin
	}
	if o.Completer != "" {
		merged.Completer = o.Completer
	}
	if o.LogLevel != "" {
		merged.LogLevel = o.LogLevel
	}
	return &merged
}

// expandTemplate renders s as a Go template with sprig functions.
// Available variables: .CONFIG_DIR, .USER_WORKING_DIR, .HOME.
// Invalid templates are returned unchanged.
func (c *Config) expandTemplate(s string) string {
	if !strings.Contains(s, "{{") {
		return s
	}

	tmpl, err := template.New("config").Funcs(sprig.TxtFuncMap()).Parse(s)
	if err != nil {
		return s
	}

	cwd, _ := os.Getwd()
	home, _ := os.UserHomeDir()
	data := map[string]string{
		"CONFIG_DIR":       c.ConfigDir,
		"USER_WORKING_DIR": cwd,
		"HOME":             home,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return s
	}
	return buf.String()
}
