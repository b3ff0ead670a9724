package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	progressbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/five82/waymark/internal/prefs"
	"github.com/five82/waymark/internal/state"
)

// Options configures the UI.
type Options struct {
	Store     *state.Store
	PollTick  time.Duration
	ThemeName string
	// Window caps the number of route rows. Zero fits the terminal.
	Window    int
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	store     *state.Store
	prefsPath string
	pollTick  time.Duration
	now       func() time.Time

	theme  Theme
	keys   keyMap
	help   help.Model
	bar    progressbar.Model
	width  int
	height int
	ready  bool

	snapshot  state.Snapshot
	window    int
	offset    int
	lastFocus int

	showHelp bool
}

// New creates a dashboard model.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		store:     opts.Store,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		now:       time.Now,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		window:    opts.Window,
	}
	m.applyTheme(GetTheme(opts.ThemeName))
	return m
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	m.bar = progressbar.New(
		progressbar.WithGradient(t.Gradient[0], t.Gradient[1]),
		progressbar.WithoutPercentage(),
		progressbar.WithWidth(m.barWidth()),
	)
	styles := t.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
}

func (m Model) barWidth() int {
	if m.width <= 0 {
		return 40
	}
	return max(10, m.width-12)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = m.barWidth()
		m.ready = true
		m.offset = m.clampOffset(m.offset)
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		if focus := m.focusIndex(); focus != m.lastFocus {
			// The next stop moved; snap back to it.
			m.lastFocus = focus
			m.offset = 0
		}
		m.offset = m.clampOffset(m.offset)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Window: m.window}); err != nil {
				log.Warn().Err(err).Msg("save prefs")
			}
		}

	case key.Matches(msg, m.keys.Up):
		m.offset = m.clampOffset(m.offset - 1)

	case key.Matches(msg, m.keys.Down):
		m.offset = m.clampOffset(m.offset + 1)

	case key.Matches(msg, m.keys.Follow):
		m.offset = 0
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	sections := []string{
		m.renderHeader(),
		"",
		m.renderStatus(),
		"",
		m.renderRoute(),
		"",
		m.renderFooter(),
	}
	body := strings.Join(sections, "\n")
	return lipgloss.NewStyle().MaxHeight(max(m.height, 1)).Render(body)
}

type tickMsg time.Time

type snapshotMsg state.Snapshot

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled. Cancellation is not an error.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
