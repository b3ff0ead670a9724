package notify

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"

	"github.com/five82/waymark/internal/progress"
)

// Clipboard copies the next system name whenever it changes.
type Clipboard struct {
	write func(string) error
	last  string
}

// NewClipboard returns a sink backed by the system clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll}
}

// Available reports whether the platform has a usable clipboard command.
func Available() bool { return !clipboard.Unsupported }

// Last returns the value most recently copied.
func (c *Clipboard) Last() string { return c.last }

// Notify implements Notifier.
func (c *Clipboard) Notify(_ context.Context, u Update) error {
	if u.Snapshot.State != progress.Tracking {
		return nil
	}
	next := u.Snapshot.Next
	if next == c.last {
		log.Debug().Str("system", next).Msg("already on clipboard")
		return nil
	}
	if err := c.write(next); err != nil {
		return fmt.Errorf("%w: clipboard: %v", ErrSink, err)
	}
	c.last = next
	log.Info().Str("system", next).Msg("copied next system to clipboard")
	return nil
}
