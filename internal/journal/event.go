package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/five82/waymark/internal/itinerary"
	"github.com/five82/waymark/internal/progress"
)

// ErrMalformedRecord reports a journal line that is not a JSON object.
var ErrMalformedRecord = errors.New("malformed journal record")

// Kind classifies a journal record.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindFSDJump
	KindLocation
	KindCarrierJump
)

var kindsByEvent = map[string]Kind{
	"FSDJump":     KindFSDJump,
	"Location":    KindLocation,
	"CarrierJump": KindCarrierJump,
}

func (k Kind) String() string {
	switch k {
	case KindFSDJump:
		return "FSDJump"
	case KindLocation:
		return "Location"
	case KindCarrierJump:
		return "CarrierJump"
	default:
		return "Unrecognized"
	}
}

// Arrival reports whether the kind places the commander in a system.
func (k Kind) Arrival() bool {
	return k != KindUnrecognized
}

// Record is one decoded journal line.
type Record struct {
	Event      string
	Kind       Kind
	StarSystem string
	Timestamp  time.Time
}

// ParseRecord decodes a single journal line. Only the line being a JSON
// object is required. Fields of an unexpected type read as zero values, so
// an odd field elsewhere in the record never hides an arrival.
func ParseRecord(line string) (Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if fields == nil {
		return Record{}, fmt.Errorf("%w: not an object", ErrMalformedRecord)
	}

	event := stringField(fields, "event")
	rec := Record{
		Event:      event,
		Kind:       kindsByEvent[event],
		StarSystem: stringField(fields, "StarSystem"),
	}
	if ts, err := time.Parse(time.RFC3339, strings.TrimSpace(stringField(fields, "timestamp"))); err == nil {
		rec.Timestamp = ts
	}
	return rec, nil
}

// stringField returns fields[key] when it holds a JSON string, else "".
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}

// ScanResult summarises a pass over journal lines.
type ScanResult struct {
	Visited   progress.VisitedSet
	Arrivals  int
	Malformed int
	Last      Record // latest arrival by timestamp, in any system
}

// Scan folds arrival records whose system is on the itinerary into a
// visited set. Lines that fail to parse are counted and skipped.
func Scan(lines []string, it itinerary.Itinerary) ScanResult {
	res := ScanResult{Visited: progress.NewVisitedSet()}
	for _, line := range lines {
		rec, err := ParseRecord(line)
		if err != nil {
			res.Malformed++
			continue
		}
		if !rec.Kind.Arrival() || rec.StarSystem == "" {
			continue
		}
		res.Arrivals++
		if res.Last.Kind == KindUnrecognized || !rec.Timestamp.Before(res.Last.Timestamp) {
			res.Last = rec
		}
		if it.Contains(rec.StarSystem) {
			res.Visited.Add(rec.StarSystem)
		}
	}
	return res
}

// Extract returns the itinerary systems confirmed visited by lines.
func Extract(lines []string, it itinerary.Itinerary) progress.VisitedSet {
	return Scan(lines, it).Visited
}
