// Package dedupe tracks already-seen player identifiers so that re-captured
// rows in an FM export are ingested at most once.
package dedupe

import (
	"context"
	"sync"

	"github.com/okian/gaffer/internal/domain/model"
)

// Tracker records seen player IDs.
type Tracker interface {
	// SeenAndRecord atomically checks whether id was seen and records it
	// if not. Returns true if id was already seen.
	SeenAndRecord(ctx context.Context, id model.PlayerID) bool

	// Size returns the number of recorded IDs.
	Size() int
}

// inMemoryTracker implements Tracker with a bounded map. When the bound is
// reached, new IDs are still reported as unseen but no longer recorded;
// a scouting export never comes close to the default bound in practice.
type inMemoryTracker struct {
	mu      sync.Mutex
	seen    map[model.PlayerID]struct{}
	maxSize int
}

const defaultMaxSize = 50000

// NewTracker creates an in-memory tracker with configuration options.
func NewTracker(opts ...Option) Tracker {
	t := &inMemoryTracker{
		seen:    make(map[model.PlayerID]struct{}),
		maxSize: defaultMaxSize,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *inMemoryTracker) SeenAndRecord(_ context.Context, id model.PlayerID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.seen[id]; ok {
		return true
	}
	if t.maxSize > 0 && len(t.seen) >= t.maxSize {
		return false
	}
	t.seen[id] = struct{}{}
	return false
}

func (t *inMemoryTracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}
