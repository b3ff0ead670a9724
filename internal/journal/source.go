package journal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultPattern matches the game's journal file names.
const DefaultPattern = "Journal.*.log"

// ErrLogAccess reports that the journal directory or active file could not
// be read this tick.
var ErrLogAccess = errors.New("journal not readable")

// Source locates the active journal inside a directory.
type Source struct {
	fs      afero.Fs
	dir     string
	pattern string
}

// NewSource returns a Source for dir using DefaultPattern.
func NewSource(fs afero.Fs, dir string) *Source {
	return &Source{fs: fs, dir: dir, pattern: DefaultPattern}
}

// WithPattern overrides the glob used to match journal files.
func (s *Source) WithPattern(pattern string) *Source {
	s.pattern = pattern
	return s
}

// Dir returns the watched directory.
func (s *Source) Dir() string { return s.dir }

// Latest returns the path of the most recently modified journal, or "" when
// the directory holds none. A missing directory counts as holding none.
func (s *Source) Latest() (string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("%w: list %s: %v", ErrLogAccess, s.dir, err)
	}

	var best os.FileInfo
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		ok, err := filepath.Match(s.pattern, entry.Name())
		if err != nil {
			return "", fmt.Errorf("match journal pattern %q: %w", s.pattern, err)
		}
		if !ok {
			continue
		}
		if best == nil || newer(entry, best) {
			best = entry
		}
	}
	if best == nil {
		return "", nil
	}
	return filepath.Join(s.dir, best.Name()), nil
}

// newer orders journals by modification time, then by name.
func newer(a, b os.FileInfo) bool {
	if !a.ModTime().Equal(b.ModTime()) {
		return a.ModTime().After(b.ModTime())
	}
	return a.Name() > b.Name()
}
