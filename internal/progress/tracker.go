// Package progress reconciles the visited set against the itinerary order.
//
// Compute is pure and rebuilds the snapshot from scratch on every call, so
// replayed or duplicate events can never skew it.
package progress

import (
	"github.com/five82/waymark/internal/itinerary"
)

// State is the tracker phase derived from a snapshot.
type State int

const (
	// NoItinerary means there is nothing to track.
	NoItinerary State = iota
	Tracking
	// Complete is terminal: every stop is visited.
	Complete
)

func (s State) String() string {
	switch s {
	case NoItinerary:
		return "no-itinerary"
	case Tracking:
		return "tracking"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Snapshot is the derived progress for one tick.
type Snapshot struct {
	Visited   VisitedSet
	NextIndex int // len(itinerary) once complete
	Next      string
	Skipped   bool
	Total     int
	State     State

	skippedAhead []string
	summary      string
}

// Compute derives the snapshot for visited against it.
func Compute(visited VisitedSet, it itinerary.Itinerary) Snapshot {
	snap := Snapshot{
		Visited: visited.Clone(),
		Total:   it.Len(),
	}
	snap.summary = snap.Visited.String()

	if it.Empty() {
		snap.State = NoItinerary
		return snap
	}

	snap.NextIndex = it.Len()
	for i := 0; i < it.Len(); i++ {
		if !visited.Has(it.At(i)) {
			snap.NextIndex = i
			break
		}
	}
	if snap.NextIndex == it.Len() {
		snap.State = Complete
		return snap
	}

	snap.State = Tracking
	snap.Next = it.At(snap.NextIndex)
	for i := snap.NextIndex + 1; i < it.Len(); i++ {
		name := it.At(i)
		if visited.Has(name) {
			snap.Skipped = true
			snap.skippedAhead = append(snap.skippedAhead, name)
		}
	}
	return snap
}

// Summary is the serialized visited set used to detect change between
// ticks.
func (s Snapshot) Summary() string { return s.summary }

// SkippedAhead lists the visited stops after NextIndex, in itinerary order.
func (s Snapshot) SkippedAhead() []string {
	return append([]string(nil), s.skippedAhead...)
}

// Done returns how many itinerary positions before NextIndex are covered.
func (s Snapshot) Done() int { return s.NextIndex }

// Percent is the fraction of itinerary positions covered by the visited set.
func (s Snapshot) Percent(it itinerary.Itinerary) float64 {
	if it.Empty() {
		return 0
	}
	covered := 0
	for i := 0; i < it.Len(); i++ {
		if s.Visited.Has(it.At(i)) {
			covered++
		}
	}
	return float64(covered) / float64(it.Len())
}

// Equal reports whether two snapshots serialize the same way.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.summary == other.summary
}
