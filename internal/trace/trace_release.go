//go:build !dev

// Package trace records runtime/trace regions in dev builds. Release
// builds compile these no-ops instead.
package trace

import "context"

// EnvVar names the file the trace is written to (dev builds only)
const EnvVar = "NUCOMPLETE_TRACE"

// Init does nothing in release builds
func Init() func() {
	return func() {}
}

// Region does nothing in release builds
func Region(_ context.Context, _ string) func() {
	return func() {}
}

// WithRegion calls f
func WithRegion(_ context.Context, _ string, f func()) {
	f()
}

// IsEnabled is always false in release builds
func IsEnabled() bool {
	return false
}
