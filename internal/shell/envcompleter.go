// Package shell integrates nucomplete with shells' dynamic completion
// protocols. Each supported shell provides an EnvCompleter: it emits the
// registration script the shell sources, and answers the completion
// requests that script sends back through the completer binary.
package shell

import (
	"io"
	"sort"

	"github.com/NikitaCOEUR/nucomplete/internal/derrors"
	"github.com/urfave/cli/v3"
)

// RegistrationParams are the names interpolated into a registration script.
// They are inserted verbatim: values containing shell-meta characters
// produce a broken script.
type RegistrationParams struct {
	Var       string // Environment variable that switches the binary into completer mode
	Name      string // Display name used in comments and the module name
	Bin       string // Program name the script handles, matched exactly against span 0
	Completer string // Path used to invoke the completer binary
}

// EnvCompleter is a shell integration driven by an environment variable
type EnvCompleter interface {
	// Name returns the shell identifier (nushell, ...)
	Name() string
	// Is reports whether name designates this shell
	Is(name string) bool
	// WriteRegistration writes the script that registers the completer in the shell
	WriteRegistration(w io.Writer, params RegistrationParams) error
	// WriteComplete answers one completion request for args
	WriteComplete(cmd *cli.Command, args []string, currentDir string, w io.Writer) error
}

// Registry holds shell integrations keyed by identifier
type Registry struct {
	completers map[string]EnvCompleter
}

// NewRegistry creates a registry with the given completers
func NewRegistry(completers ...EnvCompleter) *Registry {
	r := &Registry{completers: make(map[string]EnvCompleter)}
	for _, c := range completers {
		r.Register(c)
	}
	return r
}

// DefaultRegistry returns a registry with every built-in shell
func DefaultRegistry() *Registry {
	return NewRegistry(NewNushell(nil))
}

// Register adds or replaces the completer for c.Name()
func (r *Registry) Register(c EnvCompleter) {
	r.completers[c.Name()] = c
}

// Lookup finds the completer designated by name. Exact identifiers win;
// otherwise each completer's Is decides, so aliases like "nu" resolve.
func (r *Registry) Lookup(name string) (EnvCompleter, error) {
	if c, ok := r.completers[name]; ok {
		return c, nil
	}
	for _, id := range r.Names() {
		if c := r.completers[id]; c.Is(name) {
			return c, nil
		}
	}
	return nil, derrors.NewUnknownShellError(name, r.Names())
}

// Names returns the registered identifiers, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.completers))
	for name := range r.completers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
