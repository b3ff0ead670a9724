package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a named set of dashboard colors.
type Theme struct {
	Name string

	Screen string // behind the help overlay
	Bar    string // header bar
	Cursor string // row of the next stop
	Frame  string // help overlay border

	Fg     string
	Dim    string
	Faint  string
	Accent string
	Good   string
	Warn   string
	Bad    string
	Info   string

	// Gradient runs the progress bar from its empty end to its full end.
	Gradient [2]string

	// MarkColors colors the glyph in front of each route row.
	MarkColors map[Mark]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	fg := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return Styles{
		Text:        fg(t.Fg),
		MutedText:   fg(t.Dim),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Good).Bold(true),
		WarningText: fg(t.Warn),
		DangerText:  fg(t.Bad).Bold(true),
		Logo:        fg(t.Warn).Bold(true),

		Header: fg(t.Fg).Background(lipgloss.Color(t.Bar)).Padding(0, 1),
		Focus:  lipgloss.NewStyle().Background(lipgloss.Color(t.Cursor)).Bold(true),

		markColors: t.MarkColors,
		fallback:   t.Dim,
	}
}

// Styles are the rendered forms of a Theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	Logo        lipgloss.Style

	// Header paints the top bar; Focus highlights the next stop.
	Header lipgloss.Style
	Focus  lipgloss.Style

	markColors map[Mark]string
	fallback   string
}

// MarkStyle returns the glyph style for a route row mark.
func (s Styles) MarkStyle(mark Mark) lipgloss.Style {
	color := s.markColors[mark]
	if color == "" {
		color = s.fallback
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// WithBackground returns a copy whose text styles paint bgColor, for text
// placed on the header bar.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	for _, st := range []*lipgloss.Style{
		&out.Text, &out.MutedText, &out.FaintText, &out.AccentText,
		&out.SuccessText, &out.WarningText, &out.DangerText, &out.Logo,
	} {
		*st = st.Background(bg)
	}
	return out
}

var themeOrder = []string{"Dracula", "Slate"}

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
}

// GetTheme returns a theme by name, falling back to Dracula.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["Dracula"]
}

// NextTheme returns the theme after current, wrapping around.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names in cycle order.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

// withMarks fills the route marks from the theme's semantic colors: done
// stops read as success, the next stop as info, out-of-order visits as a
// warning and the rest as dim text.
func withMarks(t Theme) Theme {
	t.MarkColors = map[Mark]string{
		MarkVisited: t.Good,
		MarkNext:    t.Info,
		MarkAhead:   t.Warn,
		MarkPending: t.Dim,
	}
	return t
}

func draculaTheme() Theme {
	// Palette from draculatheme.com.
	return withMarks(Theme{
		Name:     "Dracula",
		Screen:   "#191A21",
		Bar:      "#282A36",
		Cursor:   "#343746",
		Frame:    "#BD93F9",
		Fg:       "#F8F8F2",
		Dim:      "#6272A4",
		Faint:    "#44475A",
		Accent:   "#BD93F9",
		Good:     "#50FA7B",
		Warn:     "#FFB86C",
		Bad:      "#FF5555",
		Info:     "#8BE9FD",
		Gradient: [2]string{"#BD93F9", "#50FA7B"},
	})
}

func slateTheme() Theme {
	// Tailwind slate greys with sky, green, amber and red accents.
	return withMarks(Theme{
		Name:     "Slate",
		Screen:   "#020617",
		Bar:      "#0f172a",
		Cursor:   "#283548",
		Frame:    "#38bdf8",
		Fg:       "#f1f5f9",
		Dim:      "#94a3b8",
		Faint:    "#64748b",
		Accent:   "#38bdf8",
		Good:     "#22c55e",
		Warn:     "#f59e0b",
		Bad:      "#ef4444",
		Info:     "#06b6d4",
		Gradient: [2]string{"#0284c7", "#22c55e"},
	})
}
