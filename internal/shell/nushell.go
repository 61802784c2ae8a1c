package shell

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/NikitaCOEUR/nucomplete/internal/completion"
	"github.com/NikitaCOEUR/nucomplete/internal/derrors"
	"github.com/urfave/cli/v3"
)

const shellNushell = "nushell"

var nushellScript = template.Must(
	template.New(shellNushell).Option("missingkey=error").Parse(nushellTemplate),
)

// Nushell integrates with Nushell's external completer
// ($env.config.completions.external.completer)
type Nushell struct {
	engine completion.Engine
}

// NewNushell creates the Nushell integration. A nil engine selects the
// default command-tree engine.
func NewNushell(engine completion.Engine) *Nushell {
	if engine == nil {
		engine = completion.NewEngine()
	}
	return &Nushell{engine: engine}
}

// Name returns the shell identifier for Nushell
func (n *Nushell) Name() string {
	return shellNushell
}

// Is matches "nushell" and "nu", ignoring case
func (n *Nushell) Is(name string) bool {
	return strings.EqualFold(name, shellNushell) || strings.EqualFold(name, "nu")
}

// WriteRegistration writes a Nushell module exporting handles, complete and
// install. The script is rendered in memory and written in one call.
func (n *Nushell) WriteRegistration(w io.Writer, params RegistrationParams) error {
	var buf bytes.Buffer
	if err := nushellScript.Execute(&buf, params); err != nil {
		return fmt.Errorf("failed to render nushell registration: %w", err)
	}
	return writeAll(w, buf.Bytes(), "registration script")
}

// WriteComplete completes the last span of args and writes the candidates
// as a JSON array of {value, description} records
func (n *Nushell) WriteComplete(cmd *cli.Command, args []string, currentDir string, w io.Writer) error {
	index := max(len(args)-1, 0)

	candidates, err := n.engine.Complete(cmd, args, index, currentDir)
	if err != nil {
		return derrors.NewEngineError(commandName(cmd), "completion engine failed", err)
	}

	data, err := EncodeCandidates(candidates)
	if err != nil {
		return err
	}

	return writeAll(w, data, "completion candidates")
}

// writeAll performs a single write; a short write is a failure
func writeAll(w io.Writer, data []byte, what string) error {
	n, err := w.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return derrors.NewWriteError(what, "failed to write "+what, err)
	}
	return nil
}

func commandName(cmd *cli.Command) string {
	if cmd == nil {
		return ""
	}
	return cmd.Name
}
