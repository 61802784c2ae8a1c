// Package timing measures the phases of a completion request.
package timing

import (
	"fmt"
	"strings"
	"time"
)

// Phase is one measured step, timed from the previous mark
type Phase struct {
	Label    string
	Duration time.Duration
}

// Timer splits a request into consecutive phases
type Timer struct {
	now    func() time.Time
	start  time.Time
	last   time.Time
	phases []Phase
}

// NewTimer starts a timer on the wall clock
func NewTimer() *Timer {
	return newTimer(time.Now)
}

func newTimer(now func() time.Time) *Timer {
	start := now()
	return &Timer{now: now, start: start, last: start}
}

// Mark closes the current phase under label and returns its duration
func (t *Timer) Mark(label string) time.Duration {
	at := t.now()
	d := at.Sub(t.last)
	t.last = at
	t.phases = append(t.phases, Phase{Label: label, Duration: d})
	return d
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Phases returns the recorded phases in order
func (t *Timer) Phases() []Phase {
	return append([]Phase(nil), t.phases...)
}

// Summary formats the total and every phase, e.g.
// "total=1.250ms lookup=0.100ms complete=1.150ms"
func (t *Timer) Summary() string {
	parts := make([]string, 0, len(t.phases)+1)
	parts = append(parts, "total="+millis(t.Elapsed()))
	for _, p := range t.phases {
		parts = append(parts, p.Label+"="+millis(p.Duration))
	}
	return strings.Join(parts, " ")
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000.0)
}
