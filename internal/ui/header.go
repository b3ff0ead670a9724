package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// renderHeader renders the top status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Bar)
	bg := NewBgStyle(m.theme.Bar)
	snap := m.snapshot

	parts := []string{bg.Render("waymark", styles.Logo)}

	switch {
	case snap.LastError != nil:
		label := "JOURNAL ERROR"
		if snap.IsStalled() {
			label = "JOURNAL STALLED"
		}
		parts = append(parts,
			bg.Render(label, styles.DangerText),
			bg.Render(truncate(snap.LastError.Error(), 60), styles.MutedText),
			bg.Render("retrying", styles.WarningText),
		)
	case !snap.HasProgress:
		parts = append(parts, bg.Render("Reading journal...", styles.WarningText.Bold(true)))
	default:
		journal := "no journal yet"
		if snap.Journal != "" {
			journal = filepath.Base(snap.Journal)
		}
		parts = append(parts, bg.Render(journal, styles.MutedText))
		if snap.Location != "" {
			at := bg.Render("at", styles.FaintText) + bg.Spaces(1) + bg.Render(snap.Location, styles.AccentText)
			if i := snap.Itinerary.Index(snap.Location); i >= 0 {
				at += bg.Spaces(1) + bg.Render(fmt.Sprintf("(stop %d/%d)", i+1, snap.Itinerary.Len()), styles.FaintText)
			} else {
				at += bg.Spaces(1) + bg.Render("(off route)", styles.FaintText)
			}
			parts = append(parts, at)
		}
	}

	if !snap.LastUpdated.IsZero() {
		parts = append(parts, bg.Render("updated "+snap.LastUpdated.Format("15:04:05"), styles.FaintText))
	}
	if !snap.LastChanged.IsZero() && snap.LastError == nil {
		parts = append(parts, bg.Render("last jump "+formatAge(m.now().Sub(snap.LastChanged)), styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// formatAge renders a short relative duration such as "12s ago".
func formatAge(d time.Duration) string {
	switch {
	case d < time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d/time.Second))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	default:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	}
}

// truncate shortens s to max runes with a trailing ellipsis.
func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
