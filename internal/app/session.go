package app

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/five82/waymark/internal/itinerary"
	"github.com/five82/waymark/internal/journal"
	"github.com/five82/waymark/internal/progress"
)

// Session is the state owned by the poll loop. Only the goroutine running
// the loop touches it.
type Session struct {
	itinerary itinerary.Itinerary
	tailer    *journal.Tailer

	visited   progress.VisitedSet
	last      progress.Snapshot
	ticked    bool
	location  string
	malformed int
}

// TickResult is the outcome of one Session.Tick.
type TickResult struct {
	Progress progress.Snapshot
	Batch    journal.Batch
	Location string
	// Changed is true on the first tick and whenever the visited summary
	// differs from the previous tick.
	Changed bool
}

// NewSession returns a session tracking it through tailer.
func NewSession(it itinerary.Itinerary, tailer *journal.Tailer) *Session {
	return &Session{
		itinerary: it,
		tailer:    tailer,
		visited:   progress.NewVisitedSet(),
	}
}

// Itinerary returns the route being tracked.
func (s *Session) Itinerary() itinerary.Itinerary { return s.itinerary }

// Tick polls the journal once and recomputes progress. A journal read
// failure is returned alongside a result computed from what was already
// known, so the caller can report it and carry on.
func (s *Session) Tick() (TickResult, error) {
	batch, pollErr := s.tailer.Poll()
	if batch.Switched() {
		s.malformed = 0
		if batch.Previous != "" && batch.Path != "" {
			log.Info().Str("journal", filepath.Base(batch.Path)).Msg("new journal")
		} else if batch.Path != "" {
			log.Debug().Str("journal", batch.Path).Msg("watching journal")
		}
	}
	if batch.Truncated {
		s.malformed = 0
		log.Warn().Str("journal", filepath.Base(batch.Path)).Msg("journal shrank, reading it again")
	}

	scan := journal.Scan(s.tailer.Lines(), s.itinerary)
	if added := s.visited.Merge(scan.Visited); added > 0 {
		log.Debug().
			Int("added", added).
			Int("visited", s.visited.Len()).
			Int("arrivals", scan.Arrivals).
			Msg("visited set grew")
	}
	if scan.Malformed > s.malformed {
		log.Debug().Int("lines", scan.Malformed-s.malformed).Msg("skipped malformed journal lines")
		s.malformed = scan.Malformed
	}
	if scan.Last.StarSystem != "" {
		s.location = scan.Last.StarSystem
	}

	snap := progress.Compute(s.visited, s.itinerary)
	changed := !s.ticked || snap.Summary() != s.last.Summary()
	s.last = snap
	s.ticked = true

	return TickResult{
		Progress: snap,
		Batch:    batch,
		Location: s.location,
		Changed:  changed,
	}, pollErr
}
