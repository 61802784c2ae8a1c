package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/NikitaCOEUR/nucomplete/internal/derrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Defaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Register(RegisterParams{Bin: "foo"}, &buf))

	script := buf.String()
	assert.Contains(t, script, "# External completer for foo")
	assert.Contains(t, script, "== r#'foo'#")
	assert.Contains(t, script, "COMPLETE=nushell ^r#'foo'# -- ...$spans | from json")
}

func TestRegister_AllParams(t *testing.T) {
	var buf bytes.Buffer
	err := Register(RegisterParams{
		Shell:     "nu",
		Var:       "FOO_COMPLETE",
		Name:      "Foo",
		Bin:       "foo",
		Completer: "/opt/foo/bin/foo",
	}, &buf)
	require.NoError(t, err)

	script := buf.String()
	assert.Contains(t, script, "# External completer for Foo")
	assert.Contains(t, script, "== r#'foo'#")
	assert.Contains(t, script, "FOO_COMPLETE=nushell ^r#'/opt/foo/bin/foo'# -- ...$spans")
}

func TestRegister_MissingBin(t *testing.T) {
	var buf bytes.Buffer
	err := Register(RegisterParams{}, &buf)

	var validationErr *derrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "bin", validationErr.Field)
	assert.Empty(t, buf.String())
}

func TestRegister_UnknownShell(t *testing.T) {
	var buf bytes.Buffer
	err := Register(RegisterParams{Shell: "fish", Bin: "foo"}, &buf)

	var unknownErr *derrors.UnknownShellError
	require.True(t, errors.As(err, &unknownErr))
	assert.Empty(t, buf.String())
}
