//go:build dev

// Package trace records runtime/trace regions in dev builds.
//
//	NUCOMPLETE_TRACE=trace.out COMPLETE=nushell prog -- prog ''
//	go tool trace trace.out
package trace

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/trace"
	"sync"
)

// EnvVar names the file the trace is written to
const EnvVar = "NUCOMPLETE_TRACE"

var (
	mu     sync.Mutex
	out    *os.File
	active bool
)

// Init starts tracing when NUCOMPLETE_TRACE is set. Problems are reported
// on stderr and never fail the program. The returned func stops the trace.
func Init() func() {
	return initTo(os.Getenv(EnvVar), os.Stderr)
}

func initTo(path string, diag io.Writer) func() {
	if path == "" {
		return func() {}
	}

	mu.Lock()
	defer mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(diag, "nucomplete: cannot create trace file %s: %v\n", path, err)
		return func() {}
	}
	if err := trace.Start(f); err != nil {
		fmt.Fprintf(diag, "nucomplete: cannot start trace: %v\n", err)
		_ = f.Close()
		return func() {}
	}
	out, active = f, true

	return stop
}

func stop() {
	mu.Lock()
	defer mu.Unlock()

	if active {
		trace.Stop()
		active = false
	}
	if out != nil {
		_ = out.Close()
		out = nil
	}
}

// Region opens a region named name; call the result to close it
func Region(ctx context.Context, name string) func() {
	if !active {
		return func() {}
	}
	return trace.StartRegion(ctx, name).End
}

// WithRegion runs f inside a region named name
func WithRegion(ctx context.Context, name string, f func()) {
	if !active {
		f()
		return
	}
	trace.WithRegion(ctx, name, f)
}

// IsEnabled reports whether a trace is being recorded
func IsEnabled() bool {
	return active
}
