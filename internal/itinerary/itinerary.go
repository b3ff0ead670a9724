package itinerary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// CommentMarker starts an inline comment in an itinerary file.
const CommentMarker = "#"

// ErrNotFound reports that the itinerary file does not exist.
var ErrNotFound = errors.New("itinerary not found")

// ParseError wraps a failure to read an existing itinerary source.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("read itinerary: %v", e.Err)
	}
	return fmt.Sprintf("read itinerary %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Itinerary is an ordered sequence of waypoint names.
type Itinerary struct {
	stops   []string
	members map[string]int // name -> first index
}

// New builds an itinerary from names in visiting order.
func New(names ...string) Itinerary {
	it := Itinerary{
		stops:   make([]string, 0, len(names)),
		members: make(map[string]int, len(names)),
	}
	for _, name := range names {
		if _, seen := it.members[name]; !seen {
			it.members[name] = len(it.stops)
		}
		it.stops = append(it.stops, name)
	}
	return it
}

// Load reads the itinerary at path from fs.
func Load(fs afero.Fs, path string) (Itinerary, error) {
	file, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Itinerary{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Itinerary{}, &ParseError{Path: path, Err: err}
	}
	defer func() { _ = file.Close() }()

	it, err := Parse(file)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return Itinerary{}, err
	}
	return it, nil
}

// Parse reads itinerary lines from r.
func Parse(r io.Reader) (Itinerary, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4*1024), 64*1024)
	for scanner.Scan() {
		if name := parseLine(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return Itinerary{}, &ParseError{Err: err}
	}
	return New(names...), nil
}

func parseLine(raw string) string {
	line, _, _ := strings.Cut(raw, CommentMarker)
	return strings.TrimSpace(line)
}

// Len returns the number of stops, counting repeats.
func (it Itinerary) Len() int { return len(it.stops) }

// Empty reports whether the itinerary has no stops.
func (it Itinerary) Empty() bool { return len(it.stops) == 0 }

// At returns the stop at position i.
func (it Itinerary) At(i int) string { return it.stops[i] }

// Contains reports whether name is one of the stops. Comparison is exact.
func (it Itinerary) Contains(name string) bool {
	_, ok := it.members[name]
	return ok
}

// Index returns the first position of name, or -1.
func (it Itinerary) Index(name string) int {
	if i, ok := it.members[name]; ok {
		return i
	}
	return -1
}

// Names returns a copy of the stops in order.
func (it Itinerary) Names() []string {
	if len(it.stops) == 0 {
		return nil
	}
	out := make([]string, len(it.stops))
	copy(out, it.stops)
	return out
}

// Preview returns the first n names joined for display, with an ellipsis
// when more remain.
func (it Itinerary) Preview(n int) string {
	if n <= 0 || len(it.stops) == 0 {
		return ""
	}
	if len(it.stops) <= n {
		return strings.Join(it.stops, ", ")
	}
	return strings.Join(it.stops[:n], ", ") + "..."
}
