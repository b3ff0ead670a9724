// Package prefs persists dashboard preferences in
// ~/.config/waymark/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/waymark/internal/config"
)

// Prefs holds dashboard preferences.
type Prefs struct {
	Theme string `toml:"theme"`
	// Window is how many itinerary rows the dashboard shows around the next
	// stop. Zero shows them all.
	Window int `toml:"window"`
}

const (
	defaultPrefsPath = "~/.config/waymark/prefs.toml"
	defaultTheme     = "Dracula"
	defaultWindow    = 12
)

// Default returns the preferences used when nothing is stored.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, Window: defaultWindow}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. Any problem reading or decoding the
// file yields defaults; preferences never stop the program.
func Load(path string) Prefs {
	p := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return p
	}
	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return p
	}

	var stored struct {
		Theme  string `toml:"theme"`
		Window *int   `toml:"window"`
	}
	if err := toml.Unmarshal(bytes, &stored); err != nil {
		return p
	}
	if theme := strings.TrimSpace(stored.Theme); theme != "" {
		p.Theme = theme
	}
	if stored.Window != nil && *stored.Window >= 0 {
		p.Window = *stored.Window
	}
	return p
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
