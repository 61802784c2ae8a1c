package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRegion_RunsFunction(t *testing.T) {
	called := false
	WithRegion(context.Background(), "test", func() { called = true })
	assert.True(t, called)
}

func TestInit_Unset(t *testing.T) {
	t.Setenv(EnvVar, "")

	cleanup := Init()
	defer cleanup()

	assert.False(t, IsEnabled())
	Region(context.Background(), "noop")()
}
