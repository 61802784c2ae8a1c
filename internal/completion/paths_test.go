package completion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletePaths(t *testing.T) {
	dir := newFixtureDir(t)

	tests := []struct {
		name     string
		word     string
		expected []string
	}{
		{name: "empty word lists visible entries", word: "", expected: []string{"alpha.txt", "another.go", "beta/"}},
		{name: "prefix filter", word: "a", expected: []string{"alpha.txt", "another.go"}},
		{name: "dot prefix shows hidden entries", word: ".", expected: []string{".hidden"}},
		{name: "directory part is kept", word: "beta/", expected: []string{"beta/inner.txt"}},
		{name: "directory part with prefix", word: "beta/in", expected: []string{"beta/inner.txt"}},
		{name: "no match", word: "zzz", expected: []string{}},
		{name: "missing directory", word: "missing/x", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := CompletePaths(tt.word, dir)
			require.NotNil(t, candidates)
			assert.Equal(t, tt.expected, values(candidates))
		})
	}
}

func TestCompletePaths_AbsoluteWord(t *testing.T) {
	dir := newFixtureDir(t)

	candidates := CompletePaths(filepath.Join(dir, "al"), "/somewhere/else")
	assert.Equal(t, []string{filepath.Join(dir, "alpha.txt")}, values(candidates))
}

func TestCompletePaths_SymlinkToDirectory(t *testing.T) {
	dir := newFixtureDir(t)
	if err := os.Symlink(filepath.Join(dir, "beta"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	candidates := CompletePaths("li", dir)
	assert.Equal(t, []string{"link/"}, values(candidates))
}

func TestCompletePaths_NoHelp(t *testing.T) {
	dir := newFixtureDir(t)

	for _, c := range CompletePaths("", dir) {
		assert.False(t, c.HasHelp(), "path candidate %q should not carry help", c.Value)
	}
}

func TestSplitPath(t *testing.T) {
	dirPart, base := splitPath("src/main.go")
	assert.Equal(t, "src/", dirPart)
	assert.Equal(t, "main.go", base)

	dirPart, base = splitPath("main.go")
	assert.Equal(t, "", dirPart)
	assert.Equal(t, "main.go", base)

	dirPart, base = splitPath("/")
	assert.Equal(t, "/", dirPart)
	assert.Equal(t, "", base)
}
