package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/waymark/internal/app"
)

var version = "dev"

type runFunc func(ctx context.Context, opts app.Options) error

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(app.Run, app.Status)
	err := root.ExecuteContext(ctx)
	return exitCode(ctx, err, os.Stdout, os.Stderr)
}

// exitCode reports the outcome of a run and maps it to a process status.
func exitCode(ctx context.Context, err error, stdout, stderr io.Writer) int {
	switch {
	case err == nil && ctx.Err() != nil:
		fmt.Fprintln(stdout, "\nStopped by user.")
		return 0
	case err == nil:
		return 0
	case errors.Is(err, app.ErrNothingToDo):
		fmt.Fprintf(stdout, "%s. Exiting.\n", strings.TrimPrefix(err.Error(), app.ErrNothingToDo.Error()+": "))
		return 0
	default:
		fmt.Fprintf(stderr, "waymark: %v\n", err)
		return 1
	}
}

func newRootCmd(track, status runFunc) *cobra.Command {
	var (
		opts        app.Options
		pollSeconds float64
	)

	root := &cobra.Command{
		Use:     "waymark",
		Short:   "Track progress along a star system itinerary",
		Version: version,
		Long: `waymark follows the game journal as you fly, compares the systems you
have reached against your itinerary and tells you where to jump next.
The next system is copied to the clipboard whenever it changes.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("poll") {
				if pollSeconds <= 0 {
					return fmt.Errorf("--poll must be positive, got %v", pollSeconds)
				}
				opts.PollEvery = time.Duration(pollSeconds * float64(time.Second))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return track(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/waymark/config.toml)")
	flags.StringVar(&opts.JournalDir, "journal", "", "journal directory")
	flags.StringVar(&opts.ItineraryPath, "itinerary", "", "itinerary file, one system per line")
	flags.Float64Var(&pollSeconds, "poll", 0, "poll interval in seconds")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.Flags().BoolVar(&opts.NoClipboard, "no-clipboard", false, "do not copy the next system to the clipboard")
	root.Flags().BoolVar(&opts.TUI, "tui", false, "show the full-screen dashboard")
	root.Flags().StringVar(&opts.PrefsPath, "prefs", "", "dashboard preferences file")

	root.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print progress once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return status(cmd.Context(), opts)
		},
	})

	return root
}
