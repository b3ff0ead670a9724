package progress

import (
	"sort"
	"strings"
)

// VisitedSet holds the waypoint names confirmed visited. It only grows: no
// method removes a name.
type VisitedSet struct {
	names map[string]struct{}
}

// NewVisitedSet returns a set seeded with names.
func NewVisitedSet(names ...string) VisitedSet {
	s := VisitedSet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		s.names[name] = struct{}{}
	}
	return s
}

// Add records name. It reports whether the name was new.
func (s *VisitedSet) Add(name string) bool {
	if s.names == nil {
		s.names = make(map[string]struct{})
	}
	if _, ok := s.names[name]; ok {
		return false
	}
	s.names[name] = struct{}{}
	return true
}

// Merge adds every name of other and returns how many were new.
func (s *VisitedSet) Merge(other VisitedSet) int {
	added := 0
	for name := range other.names {
		if s.Add(name) {
			added++
		}
	}
	return added
}

// Has reports whether name was visited.
func (s VisitedSet) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of distinct names.
func (s VisitedSet) Len() int { return len(s.names) }

// Sorted returns the names in lexical order.
func (s VisitedSet) Sorted() []string {
	out := make([]string, 0, len(s.names))
	for name := range s.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// String joins the sorted names with ", ".
func (s VisitedSet) String() string {
	return strings.Join(s.Sorted(), ", ")
}

// Clone returns an independent copy.
func (s VisitedSet) Clone() VisitedSet {
	return NewVisitedSet(s.Sorted()...)
}
