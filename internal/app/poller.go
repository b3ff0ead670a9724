package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/five82/waymark/internal/journal"
	"github.com/five82/waymark/internal/notify"
	"github.com/five82/waymark/internal/state"
)

const defaultPollInterval = 2 * time.Second

// TickFunc observes each tick of the loop.
type TickFunc func(ctx context.Context, res TickResult, err error)

// Loop ticks the session immediately and then once per interval until ctx
// is cancelled. It blocks; the session is used only from the calling
// goroutine.
func Loop(ctx context.Context, session *Session, interval time.Duration, onTick TickFunc) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		res, err := session.Tick()
		if onTick != nil {
			onTick(ctx, res, err)
		}
		if ctx.Err() != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// StartPoller runs Loop on a background goroutine, publishing every tick to
// store. It returns a channel closed when the loop exits.
func StartPoller(ctx context.Context, session *Session, store *state.Store, interval time.Duration, onTick TickFunc) <-chan struct{} {
	done := make(chan struct{})
	store.SetItinerary(session.Itinerary())
	go func() {
		defer close(done)
		Loop(ctx, session, interval, func(ctx context.Context, res TickResult, err error) {
			store.Update(state.Reading{
				Progress: res.Progress,
				Journal:  res.Batch.Path,
				Location: res.Location,
				Changed:  res.Changed,
			}, err)
			if onTick != nil {
				onTick(ctx, res, err)
			}
		})
	}()
	return done
}

// notifyOnChange returns a TickFunc that hands changed progress to n and
// reports journal and sink failures without stopping the loop.
func notifyOnChange(n notify.Notifier) TickFunc {
	return func(ctx context.Context, res TickResult, err error) {
		if err != nil {
			logTickError(err)
		}
		if !res.Changed || n == nil {
			return
		}
		update := notify.Update{
			Snapshot: res.Progress,
			Journal:  res.Batch.Path,
			Location: res.Location,
		}
		if err := n.Notify(ctx, update); err != nil {
			log.Warn().Err(err).Msg("notification failed")
		}
	}
}

func logTickError(err error) {
	if errors.Is(err, journal.ErrLogAccess) {
		log.Warn().Err(err).Msg("journal unavailable, retrying next poll")
		return
	}
	log.Error().Err(err).Msg("poll failed")
}
