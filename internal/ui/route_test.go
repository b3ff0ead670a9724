package ui

import (
	"testing"

	"github.com/five82/waymark/internal/itinerary"
	"github.com/five82/waymark/internal/progress"
)

func marks(rows []routeRow) []Mark {
	out := make([]Mark, len(rows))
	for i, r := range rows {
		out[i] = r.mark
	}
	return out
}

func TestBuildRows_Marks(t *testing.T) {
	it := itinerary.New("Sol", "Maia", "Merope", "Atlas")

	tests := []struct {
		name    string
		visited []string
		want    []Mark
	}{
		{
			name: "nothing visited",
			want: []Mark{MarkNext, MarkPending, MarkPending, MarkPending},
		},
		{
			name:    "in order",
			visited: []string{"Sol", "Maia"},
			want:    []Mark{MarkVisited, MarkVisited, MarkNext, MarkPending},
		},
		{
			name:    "skipped ahead",
			visited: []string{"Sol", "Atlas"},
			want:    []Mark{MarkVisited, MarkNext, MarkPending, MarkAhead},
		},
		{
			name:    "complete",
			visited: []string{"Atlas", "Merope", "Maia", "Sol"},
			want:    []Mark{MarkVisited, MarkVisited, MarkVisited, MarkVisited},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := progress.Compute(progress.NewVisitedSet(tt.visited...), it)
			got := marks(buildRows(it, snap))
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("marks = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name                       string
		total, focus, size, offset int
		wantStart, wantEnd         int
	}{
		{"fits", 5, 2, 10, 0, 0, 5},
		{"unlimited", 5, 2, 0, 0, 0, 5},
		{"focus near top", 20, 1, 6, 0, 0, 6},
		{"focus in middle", 20, 10, 6, 0, 8, 14},
		{"focus at end", 20, 19, 6, 0, 14, 20},
		{"scrolled down", 20, 10, 6, 3, 11, 17},
		{"scrolled past end", 20, 10, 6, 50, 14, 20},
		{"scrolled past top", 20, 10, 6, -50, 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(tt.total, tt.focus, tt.size, tt.offset)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Fatalf("visibleRange(%d, %d, %d, %d) = [%d, %d), want [%d, %d)",
					tt.total, tt.focus, tt.size, tt.offset, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestMarkGlyphsAreDistinct(t *testing.T) {
	seen := map[string]Mark{}
	for _, m := range []Mark{MarkPending, MarkVisited, MarkNext, MarkAhead} {
		if prev, ok := seen[m.Glyph()]; ok {
			t.Fatalf("%v and %v share glyph %q", prev, m, m.Glyph())
		}
		seen[m.Glyph()] = m
	}
}
