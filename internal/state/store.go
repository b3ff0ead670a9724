package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/waymark/internal/itinerary"
	"github.com/five82/waymark/internal/progress"
)

// Snapshot represents the latest tracking data available to the UI.
type Snapshot struct {
	Itinerary           itinerary.Itinerary
	Progress            progress.Snapshot
	HasProgress         bool
	Journal             string
	Location            string
	LastUpdated         time.Time
	LastChanged         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsStalled returns true when the journal has been unreadable for
// multiple polls.
func (s Snapshot) IsStalled() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates the poll loop (single writer) with the UI (reader).
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Reading is one successful tick's output.
type Reading struct {
	Progress progress.Snapshot
	Journal  string
	Location string
	Changed  bool
}

// SetItinerary records the route being tracked.
func (s *Store) SetItinerary(it itinerary.Itinerary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Itinerary = it
}

// Update records a tick. When err is non-nil the previous progress is kept
// but the error is recorded for visibility.
func (s *Store) Update(r Reading, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot.LastUpdated = now
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Progress = r.Progress
	s.snapshot.HasProgress = true
	s.snapshot.Journal = r.Journal
	if r.Location != "" {
		s.snapshot.Location = r.Location
	}
	if r.Changed || s.snapshot.LastChanged.IsZero() {
		s.snapshot.LastChanged = now
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Progress.Visited = s.snapshot.Progress.Visited.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
