// Package itinerary loads the ordered list of star systems a commander
// intends to visit.
//
// # Format
//
// The itinerary is plain text, one system per line:
//
//	Sol            # start
//	Alpha Centauri
//
//	Barnard's Star
//
// Everything after the first '#' on a line is a comment. Lines are trimmed
// after the comment is removed and blank lines are dropped. Order is
// preserved exactly as written. A system may appear more than once; every
// occurrence keeps its position, but progress tracking compares by name, so
// a repeated stop is satisfied by the first visit.
//
// # Errors
//
// Load returns ErrNotFound when the file does not exist and a *ParseError
// when it exists but cannot be read. A readable file with no systems is not
// an error: the caller receives an empty Itinerary and decides what to do.
package itinerary
