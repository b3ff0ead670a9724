package ui

import (
	"github.com/five82/waymark/internal/itinerary"
	"github.com/five82/waymark/internal/progress"
)

// Mark classifies an itinerary row.
type Mark int

const (
	MarkPending Mark = iota
	MarkVisited
	MarkNext
	// MarkAhead is a stop after the next one that was already visited.
	MarkAhead
)

// Glyph returns the symbol drawn in front of a row.
func (m Mark) Glyph() string {
	switch m {
	case MarkVisited:
		return "✓"
	case MarkNext:
		return "▶"
	case MarkAhead:
		return "»"
	default:
		return "·"
	}
}

func (m Mark) String() string {
	switch m {
	case MarkVisited:
		return "visited"
	case MarkNext:
		return "next"
	case MarkAhead:
		return "ahead"
	default:
		return "pending"
	}
}

type routeRow struct {
	index int
	name  string
	mark  Mark
}

// buildRows marks every itinerary stop against snap.
func buildRows(it itinerary.Itinerary, snap progress.Snapshot) []routeRow {
	rows := make([]routeRow, it.Len())
	for i := range rows {
		name := it.At(i)
		row := routeRow{index: i, name: name}
		switch {
		case snap.State == progress.Tracking && i == snap.NextIndex:
			row.mark = MarkNext
		case snap.Visited.Has(name) && snap.State == progress.Tracking && i > snap.NextIndex:
			row.mark = MarkAhead
		case snap.Visited.Has(name):
			row.mark = MarkVisited
		}
		rows[i] = row
	}
	return rows
}

// visibleRange returns the [start, end) slice of total rows to draw in size
// lines. The window keeps focus a third of the way down, then shifts by
// offset. Both steps are clamped to the rows available.
func visibleRange(total, focus, size, offset int) (int, int) {
	if size <= 0 || size >= total {
		return 0, total
	}
	start := clamp(anchor(total, focus, size)+offset, 0, total-size)
	return start, start + size
}

// anchor is the window start that follows focus with no scrolling.
func anchor(total, focus, size int) int {
	return clamp(focus-size/3, 0, total-size)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
