package ui

import (
	"fmt"
	"strings"

	"github.com/five82/waymark/internal/progress"
)

// chromeLines is the number of screen lines not available to route rows.
const chromeLines = 8

// renderStatus renders the line under the header that names the next stop.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	snap := m.snapshot.Progress

	if !m.snapshot.HasProgress {
		return styles.MutedText.Render(fmt.Sprintf("%d systems on the route", m.snapshot.Itinerary.Len()))
	}

	switch snap.State {
	case progress.NoItinerary:
		return styles.MutedText.Render("No systems in itinerary.")
	case progress.Complete:
		return styles.SuccessText.Render(fmt.Sprintf("ALL %d SYSTEMS VISITED! Mission complete! o7", snap.Total))
	}

	line := fmt.Sprintf("NEXT SYSTEM (%d/%d): ", snap.NextIndex+1, snap.Total) +
		styles.AccentText.Bold(true).Render(snap.Next)
	if snap.Skipped {
		line += "\n" + styles.WarningText.Render(
			"SKIPPED ahead: already visited "+strings.Join(snap.SkippedAhead(), ", "))
	}
	return line
}

// routeSize is how many rows fit on screen.
func (m Model) routeSize() int {
	size := m.window
	if m.height > 0 {
		fit := m.height - chromeLines
		if fit < 1 {
			fit = 1
		}
		if size <= 0 || fit < size {
			size = fit
		}
	}
	return size
}

// focusIndex is the row the window follows.
func (m Model) focusIndex() int {
	if !m.snapshot.HasProgress {
		return 0
	}
	return m.snapshot.Progress.NextIndex
}

// renderRoute renders the visible itinerary rows.
func (m Model) renderRoute() string {
	styles := m.theme.Styles()
	it := m.snapshot.Itinerary
	rows := buildRows(it, m.snapshot.Progress)
	if len(rows) == 0 {
		return styles.FaintText.Render("  (empty route)")
	}

	start, end := visibleRange(len(rows), m.focusIndex(), m.routeSize(), m.offset)
	numWidth := len(fmt.Sprint(len(rows)))

	var b strings.Builder
	if start > 0 {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}
	for _, row := range rows[start:end] {
		glyph := styles.MarkStyle(row.mark).Render(row.mark.Glyph())
		num := styles.FaintText.Render(fmt.Sprintf("%*d.", numWidth, row.index+1))
		name := styles.Text.Render(row.name)
		switch row.mark {
		case MarkNext:
			name = styles.Focus.Foreground(styles.MarkStyle(MarkNext).GetForeground()).Render(row.name)
		case MarkVisited:
			name = styles.MutedText.Render(row.name)
		case MarkAhead:
			name = styles.WarningText.Render(row.name)
		}
		fmt.Fprintf(&b, "  %s %s %s\n", glyph, num, name)
	}
	if end < len(rows) {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("  ↓ %d more", len(rows)-end)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderFooter renders the progress bar and the short help line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	it := m.snapshot.Itinerary
	snap := m.snapshot.Progress

	covered := 0
	for i := 0; i < it.Len(); i++ {
		if snap.Visited.Has(it.At(i)) {
			covered++
		}
	}
	bar := m.bar.ViewAs(snap.Percent(it))
	count := styles.MutedText.Render(fmt.Sprintf(" %d/%d", covered, it.Len()))

	return bar + count + "\n" + m.help.View(m.keys)
}

// clampOffset keeps offset within the scrollable range of the route.
func (m Model) clampOffset(offset int) int {
	total := m.snapshot.Itinerary.Len()
	size := m.routeSize()
	if size <= 0 || size >= total {
		return 0
	}
	base := anchor(total, m.focusIndex(), size)
	return clamp(offset, -base, total-size-base)
}
