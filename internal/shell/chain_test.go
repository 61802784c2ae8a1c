package shell

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/NikitaCOEUR/nucomplete/internal/completion"
	"github.com/NikitaCOEUR/nucomplete/internal/derrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandAlias(t *testing.T) {
	aliases := map[string]string{
		"f":     "foo --verbose",
		"blank": "   ",
		"ll":    "ls -l",
		"lead":  " foo",
		"none":  "",
		"tab":   "foo\tbar baz",
	}

	tests := []struct {
		name     string
		spans    []string
		expected []string
	}{
		{name: "alias replaced by first word", spans: []string{"f", "x"}, expected: []string{"foo", "x"}},
		{name: "alias alone", spans: []string{"f"}, expected: []string{"foo"}},
		{name: "not an alias", spans: []string{"foo", "--flag"}, expected: []string{"foo", "--flag"}},
		{name: "only span 0 is expanded", spans: []string{"bar", "f"}, expected: []string{"bar", "f"}},
		{name: "empty spans", spans: []string{}, expected: []string{}},
		{name: "blank expansion keeps an empty span", spans: []string{"blank", "x"}, expected: []string{"", "x"}},
		{name: "leading space keeps an empty span", spans: []string{"lead", "x"}, expected: []string{"", "x"}},
		{name: "empty expansion", spans: []string{"none"}, expected: []string{""}},
		{name: "tabs are not separators", spans: []string{"tab"}, expected: []string{"foo\tbar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandAlias(tt.spans, aliases))
		})
	}
}

func TestExpandAlias_SingleLevel(t *testing.T) {
	aliases := map[string]string{"a": "b", "b": "foo"}
	assert.Equal(t, []string{"b"}, ExpandAlias([]string{"a"}, aliases))
}

func TestHandles(t *testing.T) {
	aliases := map[string]string{"f": "foo --verbose"}

	assert.True(t, Handles("foo", []string{"foo", "--flag"}, aliases))
	assert.True(t, Handles("foo", []string{"f", "x"}, aliases))
	assert.False(t, Handles("foo", []string{"bar"}, aliases))
	assert.False(t, Handles("foo", []string{"Foo"}, aliases), "match is case-sensitive")
	assert.False(t, Handles("foo", []string{"foobar"}, aliases))
	assert.False(t, Handles("foo", []string{}, aliases))
	assert.False(t, Handles("foo", []string{"f"}, nil), "no alias table")
}

// countingHandler counts invocations and returns a marker candidate
func countingHandler(marker string, calls *int) Handler {
	return func(_ []string) ([]completion.Candidate, error) {
		*calls++
		return []completion.Candidate{{Value: marker}}, nil
	}
}

func TestExternalConfig_InstallDispatch(t *testing.T) {
	var selfCalls int
	self := ForProgram("foo", nil, countingHandler("self", &selfCalls))

	cfg := ExternalConfig{}.Install(self)
	assert.True(t, cfg.Enable)

	candidates, err := cfg.Complete([]string{"foo", ""})
	require.NoError(t, err)
	assert.Equal(t, []completion.Candidate{{Value: "self"}}, candidates)
	assert.Equal(t, 1, selfCalls)
}

func TestExternalConfig_FallbackToNoop(t *testing.T) {
	var selfCalls int
	cfg := ExternalConfig{}.Install(ForProgram("foo", nil, countingHandler("self", &selfCalls)))

	candidates, err := cfg.Complete([]string{"bar", ""})
	require.NoError(t, err)
	assert.Nil(t, candidates)
	assert.Equal(t, 0, selfCalls)
}

func TestExternalConfig_FallbackToPrevious(t *testing.T) {
	var selfCalls, previousCalls int
	cfg := ExternalConfig{Enable: true, Completer: countingHandler("previous", &previousCalls)}

	cfg = cfg.Install(ForProgram("foo", nil, countingHandler("self", &selfCalls)))

	candidates, err := cfg.Complete([]string{"bar", ""})
	require.NoError(t, err)
	assert.Equal(t, []completion.Candidate{{Value: "previous"}}, candidates)
	assert.Equal(t, 1, previousCalls)
	assert.Equal(t, 0, selfCalls)
}

func TestExternalConfig_InstallTwice(t *testing.T) {
	var selfCalls, previousCalls int
	self := ForProgram("foo", nil, countingHandler("self", &selfCalls))

	cfg := ExternalConfig{Enable: true, Completer: countingHandler("previous", &previousCalls)}
	cfg = cfg.Install(self)
	cfg = cfg.Install(self)

	candidates, err := cfg.Complete([]string{"foo", ""})
	require.NoError(t, err)
	assert.Equal(t, []completion.Candidate{{Value: "self"}}, candidates)
	assert.Equal(t, 1, selfCalls, "handled line dispatches to this completer exactly once")
	assert.Equal(t, 0, previousCalls)

	_, err = cfg.Complete([]string{"bar"})
	require.NoError(t, err)
	assert.Equal(t, 1, previousCalls, "unhandled line still reaches the original completer")
	assert.Equal(t, 1, selfCalls)
}

func TestExternalConfig_CapturesPreviousByValue(t *testing.T) {
	var firstCalls, secondCalls int
	base := ExternalConfig{Enable: true, Completer: countingHandler("first", &firstCalls)}

	installed := base.Install(ForProgram("foo", nil, countingHandler("self", new(int))))
	base.Completer = countingHandler("second", &secondCalls)

	_, err := installed.Complete([]string{"bar"})
	require.NoError(t, err)
	assert.Equal(t, 1, firstCalls)
	assert.Equal(t, 0, secondCalls)
}

func TestExternalConfig_Disabled(t *testing.T) {
	var calls int
	cfg := ExternalConfig{Enable: false, Completer: countingHandler("x", &calls)}

	candidates, err := cfg.Complete([]string{"foo"})
	require.NoError(t, err)
	assert.Nil(t, candidates)
	assert.Equal(t, 0, calls)
}

func TestExternalConfig_HandlerErrorPropagates(t *testing.T) {
	cause := errors.New("bad output")
	self := ForProgram("foo", nil, func(_ []string) ([]completion.Candidate, error) {
		return nil, cause
	})

	_, err := ExternalConfig{}.Install(self).Complete([]string{"foo"})
	assert.ErrorIs(t, err, cause)
}

func TestExternalConfig_AliasDispatch(t *testing.T) {
	var selfCalls int
	aliases := map[string]string{"f": "foo --verbose"}
	cfg := ExternalConfig{}.Install(ForProgram("foo", aliases, countingHandler("self", &selfCalls)))

	_, err := cfg.Complete([]string{"f", "x"})
	require.NoError(t, err)
	assert.Equal(t, 1, selfCalls)
}

// writeCompleter writes an executable script standing in for the completer binary
func writeCompleter(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script completers are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "completer")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestExecHandler_Invocation(t *testing.T) {
	path := writeCompleter(t, `printf '[{"value":"%s"},{"value":"%s"}]' "$COMPLETE" "$*"`)

	candidates, err := ExecHandler("COMPLETE", path)([]string{"prog", "--h"})
	require.NoError(t, err)
	assert.Equal(t, []completion.Candidate{
		{Value: "nushell"},
		{Value: "-- prog --h"},
	}, candidates)
}

func TestExecHandler_NonZeroExit(t *testing.T) {
	path := writeCompleter(t, `echo "boom" >&2; exit 3`)

	_, err := ExecHandler("COMPLETE", path)([]string{"prog", ""})
	require.Error(t, err)

	var eerr *derrors.EngineError
	require.True(t, errors.As(err, &eerr))
	assert.Contains(t, err.Error(), "boom")
}

func TestExecHandler_MalformedOutput(t *testing.T) {
	path := writeCompleter(t, `echo "not json"`)

	_, err := ExecHandler("COMPLETE", path)([]string{"prog", ""})
	assert.Error(t, err)
}
