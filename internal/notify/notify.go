// Package notify delivers progress changes to the outside world: the
// terminal and the system clipboard.
package notify

import (
	"context"
	"errors"

	"github.com/five82/waymark/internal/progress"
)

// ErrSink wraps a failure of a notification side effect. Sink failures are
// reported and dropped; they never stop tracking.
var ErrSink = errors.New("notification failed")

// Update is what a Notifier receives when progress changes.
type Update struct {
	Snapshot progress.Snapshot
	Journal  string // active journal path, "" when none
	Location string // system of the latest arrival, on route or not
}

// Notifier receives progress updates.
type Notifier interface {
	Notify(ctx context.Context, u Update) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, u Update) error

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, u Update) error { return f(ctx, u) }

// Multi fans an update out to every notifier in order. A failing notifier
// does not stop the rest; all failures are joined.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(ctx context.Context, u Update) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, u); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
