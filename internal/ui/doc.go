// Package ui renders the waymark dashboard with Bubble Tea.
//
// The dashboard never reads journals itself. It polls a state.Store that the
// tracking loop fills and redraws on every poll tick:
//
//   - a header line with the active journal, the current system and the age
//     of the last update, or the journal error while polls are failing
//   - the itinerary, one row per stop, marked visited, next, skipped ahead
//     or pending, scrolled so the next stop stays in view
//   - a progress bar of covered stops and a short key help line
//
// Keys: q or ctrl+c quits, T cycles the theme (saved to prefs), h or ? toggles
// the help overlay, j/k scroll and f returns the view to the next stop.
package ui
