// Package app wires configuration, the journal tailer, progress tracking
// and the notification sinks into waymark's poll loop.
//
// # Architecture
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read settings, fall back to defaults
//	       ├─────> logging.Init()      zerolog to stderr (or a file for the TUI)
//	       ├─────> itinerary.Load()    Missing or empty → ErrNothingToDo
//	       ├─────> NewSession()        Tailer + visited set, owned by the loop
//	       └─────> Loop()              Console mode: runs inline
//	               StartPoller()+ui.Run()  TUI mode: loop on a goroutine
//
// # Tick
//
// Each Session.Tick:
//
//  1. polls the tailer (rotation, truncation and partial lines handled
//     there);
//  2. scans the active journal's lines for arrivals on the route;
//  3. merges them into the visited set, which only grows for the run;
//  4. recomputes the progress snapshot from scratch;
//  5. flags the tick as changed when the visited summary differs from the
//     previous tick.
//
// Notifiers run only on changed ticks, so a quiet journal never re-copies
// the same system to the clipboard.
//
// # Concurrency
//
// The session belongs to whichever goroutine runs Loop. In TUI mode the loop
// publishes finished snapshots into a state.Store and the dashboard reads
// them; nothing else writes tracking state.
//
// # Shutdown
//
// Loop waits on the ticker and ctx.Done together, so cancelling the context
// ends the run at once. Nothing is ever written to the journal directory.
//
// # Errors
//
//   - A bad config file is logged as a warning; defaults apply.
//   - A config file that cannot be read at all is fatal.
//   - A missing or empty itinerary returns ErrNothingToDo.
//   - An unreadable journal is logged and retried on the next tick.
//   - A failing notifier is logged and never retried.
package app
