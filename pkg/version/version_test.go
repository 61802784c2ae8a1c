package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origTime := Version, GitCommit, BuildTime
	t.Cleanup(func() { Version, GitCommit, BuildTime = origVersion, origCommit, origTime })

	Version, GitCommit, BuildTime = "dev", "unknown", "unknown"
	assert.Equal(t, "dev", String())

	Version, GitCommit, BuildTime = "1.0.0", "abc123", "2026-01-01"
	assert.Equal(t, "1.0.0 (abc123, built 2026-01-01)", String())
}
