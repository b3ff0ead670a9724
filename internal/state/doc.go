// Package state shares tracking results between the poll loop and the
// dashboard.
//
// # Architecture
//
//	Producer (poll loop):          Consumer (dashboard):
//	┌──────────────────┐           ┌──────────────────┐
//	│ Session.Tick()   │           │                  │
//	│      ↓           │  (mutex)  │                  │
//	│ store.Update()   │──────────→│ store.Snapshot() │
//	│      ↓           │           │      ↓           │
//	│ sleep, repeat    │           │ render           │
//	└──────────────────┘           └──────────────────┘
//
// The poll loop is the only writer, so progress is still computed on one
// goroutine; the Store only hands finished snapshots across.
//
// # Update Semantics
//
//	// Success: replace progress, clear the error
//	store.Update(reading, nil)
//
//	// Failure: keep the last good progress, record the error
//	store.Update(state.Reading{}, err)
//
// ConsecutiveFailures counts failed ticks since the last success, and
// IsStalled reports two or more in a row so the dashboard can flag an
// unreadable journal without flickering on a single rotation race.
//
// # Copying
//
// Snapshot clones the visited set and the error value, so the dashboard can
// hold on to a snapshot while the poll loop keeps writing.
//
// The zero Store is ready to use.
package state
