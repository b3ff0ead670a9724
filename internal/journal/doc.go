// Package journal tails the game's rotated journal files and turns new lines
// into arrival events.
//
// # Files
//
// The game writes one journal per session into a single directory, named
// Journal.<timestamp>.<part>.log. Source.Latest picks the active one: the
// newest by modification time, with ties broken by the lexicographically
// greatest file name so the choice is deterministic.
//
// # Tailing
//
// Tailer owns the read cursor for the active file. Each Poll:
//
//  1. asks the Source for the active file;
//  2. on a change of file (rotation) resets the offset to zero and drops
//     every line accumulated from the previous file;
//  3. reads all bytes between the cursor and EOF;
//  4. appends the complete lines to the accumulated set and keeps any
//     trailing fragment until its newline arrives.
//
// A file that shrinks below the cursor is read again from the start. A
// file that vanishes mid-read resets the cursor and surfaces ErrLogAccess;
// the next Poll retries. Lines recorded in an older journal before the
// tailer first saw the directory are never replayed.
//
// # Events
//
// ParseRecord decodes one line into a Record. Malformed lines return
// ErrMalformedRecord and are skipped by Scan. Only arrival kinds (FSDJump,
// Location, CarrierJump) carry meaning for progress; every other event is
// KindUnrecognized.
//
// Scan is a pure set-membership fold: it collects the itinerary systems
// that appear in arrival records. The order of lines does not change the
// result. Sequencing against the itinerary order lives in package progress.
package journal
