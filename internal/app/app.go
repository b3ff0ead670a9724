package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/five82/waymark/internal/config"
	"github.com/five82/waymark/internal/itinerary"
	"github.com/five82/waymark/internal/journal"
	"github.com/five82/waymark/internal/logging"
	"github.com/five82/waymark/internal/notify"
	"github.com/five82/waymark/internal/prefs"
	"github.com/five82/waymark/internal/state"
	"github.com/five82/waymark/internal/ui"
)

// ErrNothingToDo reports an itinerary that is missing or has no systems.
// It ends the program early without being a failure.
var ErrNothingToDo = errors.New("nothing to track")

const defaultLogFile = "~/.local/state/waymark/waymark.log"

// Options configure a waymark run. Zero values defer to the config file.
type Options struct {
	ConfigPath    string
	JournalDir    string
	ItineraryPath string
	PollEvery     time.Duration
	NoClipboard   bool
	LogLevel      string
	TUI           bool
	PrefsPath     string

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
	// FS defaults to the OS filesystem.
	FS afero.Fs
	// Clipboard replaces the system clipboard sink when set.
	Clipboard notify.Notifier
}

type runtime struct {
	cfg       config.Config
	opts      Options
	itinerary itinerary.Itinerary
	session   *Session
	closeLog  io.Closer
}

// Run tracks the itinerary until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := setup(opts, opts.TUI)
	if err != nil {
		return err
	}
	defer rt.closeLog.Close()

	sinks := notify.Multi{}
	if clip := rt.clipboard(); clip != nil {
		sinks = append(sinks, clip)
	}

	if !opts.TUI {
		sinks = append(notify.Multi{notify.NewConsole(rt.opts.Stdout)}, sinks...)
		Loop(ctx, rt.session, rt.cfg.PollInterval, notifyOnChange(sinks))
		return nil
	}

	store := &state.Store{}
	loopCtx, stop := context.WithCancel(ctx)
	done := StartPoller(loopCtx, rt.session, store, rt.cfg.PollInterval, notifyOnChange(sinks))
	defer func() {
		stop()
		<-done
	}()

	p := prefs.Load(opts.PrefsPath)
	return ui.Run(ctx, ui.Options{
		Store:     store,
		PollTick:  rt.cfg.PollInterval,
		ThemeName: p.Theme,
		Window:    p.Window,
		PrefsPath: opts.PrefsPath,
	})
}

// Status reads the active journal once and prints the resulting progress.
// The clipboard is left alone.
func Status(ctx context.Context, opts Options) error {
	rt, err := setup(opts, false)
	if err != nil {
		return err
	}
	defer rt.closeLog.Close()

	res, err := rt.session.Tick()
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	return notify.NewConsole(rt.opts.Stdout).Notify(ctx, notify.Update{
		Snapshot: res.Progress,
		Journal:  res.Batch.Path,
		Location: res.Location,
	})
}

func setup(opts Options, toFile bool) (*runtime, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}

	cfg, cfgErr := config.Load(opts.ConfigPath)
	var soft *config.ConfigError
	if cfgErr != nil && !errors.As(cfgErr, &soft) {
		return nil, fmt.Errorf("load config: %w", cfgErr)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return nil, err
	}

	logOpts := logging.Options{Level: cfg.LogLevel, Console: opts.Stderr}
	if toFile {
		logOpts.Console = nil
		logOpts.File = logFilePath(defaultLogFile, opts.Stderr)
	}
	closeLog := logging.Init(logOpts)

	switch {
	case soft != nil:
		log.Warn().Err(soft).Msg("bad config, using defaults")
	case cfgErr == nil && fileExists(cfg.Source):
		log.Info().Str("path", cfg.Source).Msg("config loaded")
	default:
		log.Info().Msg("no config file, using defaults")
	}
	log.Info().
		Str("journal", cfg.JournalDir).
		Str("itinerary", cfg.ItineraryPath).
		Dur("poll", cfg.PollInterval).
		Msg("settings")

	it, err := itinerary.Load(opts.FS, cfg.ItineraryPath)
	if err != nil {
		closeLog.Close()
		if errors.Is(err, itinerary.ErrNotFound) {
			return nil, fmt.Errorf("%w: itinerary file not found: %s", ErrNothingToDo, cfg.ItineraryPath)
		}
		return nil, err
	}
	if it.Empty() {
		closeLog.Close()
		return nil, fmt.Errorf("%w: no systems in itinerary %s", ErrNothingToDo, cfg.ItineraryPath)
	}
	log.Info().Int("systems", it.Len()).Str("route", it.Preview(5)).Msg("itinerary loaded")

	source := journal.NewSource(opts.FS, cfg.JournalDir)
	return &runtime{
		cfg:       cfg,
		opts:      opts,
		itinerary: it,
		session:   NewSession(it, journal.NewTailer(opts.FS, source)),
		closeLog:  closeLog,
	}, nil
}

// applyOverrides lays command-line values over the loaded config.
func applyOverrides(cfg *config.Config, opts Options) error {
	if dir := strings.TrimSpace(opts.JournalDir); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return fmt.Errorf("journal dir: %w", err)
		}
		cfg.JournalDir = expanded
	}
	if path := strings.TrimSpace(opts.ItineraryPath); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return fmt.Errorf("itinerary: %w", err)
		}
		cfg.ItineraryPath = expanded
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = opts.PollEvery
	}
	if opts.NoClipboard {
		cfg.Clipboard = false
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	return nil
}

func (rt *runtime) clipboard() notify.Notifier {
	if !rt.cfg.Clipboard {
		return nil
	}
	if rt.opts.Clipboard != nil {
		return rt.opts.Clipboard
	}
	if !notify.Available() {
		log.Warn().Msg("no clipboard utility found, clipboard disabled")
		return nil
	}
	return notify.NewClipboard()
}

// logFilePath expands path, falling back to a file in the temp dir when the
// home directory cannot be resolved. The fallback is reported on stderr
// because the logger is not installed yet.
func logFilePath(path string, stderr io.Writer) string {
	expanded, err := config.ExpandPath(path)
	if err == nil {
		return expanded
	}
	fallback := filepath.Join(os.TempDir(), "waymark.log")
	fmt.Fprintf(stderr, "waymark: log file %s: %v; logging to %s\n", path, err, fallback)
	return fallback
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
