package notify

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/waymark/internal/progress"
)

// Console prints progress changes as styled text.
type Console struct {
	out io.Writer

	label   lipgloss.Style
	next    lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
}

// NewConsole returns a Console writing to out. Colour is used only when out
// is a terminal that supports it.
func NewConsole(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:     out,
		label:   r.NewStyle().Foreground(lipgloss.Color("#8BE9FD")),
		next:    r.NewStyle().Foreground(lipgloss.Color("#BD93F9")).Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#6272A4")),
		success: r.NewStyle().Foreground(lipgloss.Color("#50FA7B")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("#FFB86C")).Bold(true),
	}
}

// Notify implements Notifier.
func (c *Console) Notify(_ context.Context, u Update) error {
	_, err := io.WriteString(c.out, c.Render(u))
	return err
}

// Render formats an update without writing it.
func (c *Console) Render(u Update) string {
	snap := u.Snapshot
	var b strings.Builder

	visited := snap.Summary()
	if visited == "" {
		visited = c.muted.Render("none yet")
	}
	fmt.Fprintf(&b, "\n%s %s\n", c.label.Render("[*] Visited:"), visited)

	if u.Location != "" {
		fmt.Fprintf(&b, "    %s %s\n", c.muted.Render("Current system:"), u.Location)
	}
	if u.Journal != "" {
		fmt.Fprintf(&b, "    %s %s\n", c.muted.Render("Journal:"), filepath.Base(u.Journal))
	}

	switch snap.State {
	case progress.NoItinerary:
		fmt.Fprintf(&b, "    %s\n", c.muted.Render("No systems in itinerary."))
	case progress.Complete:
		fmt.Fprintf(&b, "%s\n", c.success.Render(fmt.Sprintf("ALL %d SYSTEMS VISITED! Mission complete! o7", snap.Total)))
	default:
		fmt.Fprintf(&b, "    NEXT SYSTEM (%d/%d): %s\n", snap.NextIndex+1, snap.Total, c.next.Render(snap.Next))
		if snap.Skipped {
			fmt.Fprintf(&b, "    %s visit %s next (already visited: %s)\n",
				c.warning.Render("SKIPPED ahead:"), snap.Next, strings.Join(snap.SkippedAhead(), ", "))
		} else {
			fmt.Fprintf(&b, "    %s\n", c.success.Render("On track - no skips."))
		}
	}
	return b.String()
}
