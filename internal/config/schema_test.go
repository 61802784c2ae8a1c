package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchemaJSON(t *testing.T) {
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(GetSchemaJSON()), &schema))
	assert.Equal(t, "object", schema["type"])
	assert.Contains(t, schema["properties"], "completer")
}

func TestValidateWithSchema(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		valid   bool
		field   string
	}{
		{name: "valid yaml", path: "config.yml", content: "shell: nushell\nvar: COMPLETE\nbin: foo\n", valid: true},
		{name: "empty yaml", path: "config.yaml", content: "", valid: true},
		{name: "valid toml", path: "config.toml", content: "bin = \"foo\"\nlog_level = \"info\"\n", valid: true},
		{name: "valid json", path: "config.json", content: `{"completer": "/usr/bin/foo"}`, valid: true},
		{name: "unknown key", path: "config.yml", content: "aliases: {}\n", valid: false, field: "(root)"},
		{name: "invalid var name", path: "config.yml", content: "var: 'MY VAR'\n", valid: false, field: "var"},
		{name: "invalid log level", path: "config.json", content: `{"log_level": "loud"}`, valid: false, field: "log_level"},
		{name: "wrong type", path: "config.toml", content: "bin = 3\n", valid: false, field: "bin"},
		{name: "yaml syntax", path: "config.yml", content: "bin: [", valid: false, field: "syntax"},
		{name: "json syntax", path: "config.json", content: "{", valid: false, field: "syntax"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateWithSchema(tt.path, []byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid, "%+v", result.Errors)
			if !tt.valid {
				require.NotEmpty(t, result.Errors)
				assert.Equal(t, tt.field, result.Errors[0].Field)
			}
		})
	}
}

func TestValidateWithSchema_UnsupportedFormat(t *testing.T) {
	_, err := ValidateWithSchema("config.ini", []byte("bin=foo"))
	assert.Error(t, err)
}
