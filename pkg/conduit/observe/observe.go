package observe

import (
	"sync"

	"github.com/rs/zerolog"
)

// Recorder collects the values a chain observes. Safe for use from several
// chains at once; last-writer ordering across chains is not meaningful.
type Recorder struct {
	mu        sync.Mutex
	snapshots []any
}

// Observe appends one snapshot. Pass this method as the chain observer.
func (r *Recorder) Observe(v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, v)
}

// Snapshots returns a copy of everything observed so far.
func (r *Recorder) Snapshots() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]any, len(r.snapshots))
	copy(out, r.snapshots)
	return out
}

// Last returns the most recent snapshot, if any.
func (r *Recorder) Last() (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snapshots) == 0 {
		return nil, false
	}
	return r.snapshots[len(r.snapshots)-1], true
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snapshots)
}

// Logger adapts a zerolog logger to a chain observer, emitting one debug
// event per stage input.
func Logger(log zerolog.Logger) func(v any) {
	return func(v any) {
		log.Debug().Interface("value", v).Msg("stage input")
	}
}
