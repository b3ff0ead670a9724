package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config captures the settings waymark runs with.
type Config struct {
	JournalDir    string
	ItineraryPath string
	PollInterval  time.Duration
	Clipboard     bool
	LogLevel      string

	// Source is the resolved config file path, loaded or not.
	Source string
}

const (
	defaultConfigPath   = "~/.config/waymark/config.toml"
	defaultJournalDir   = "~/.local/share/Frontier Developments/Elite Dangerous"
	defaultItinerary    = "itinerary.txt"
	defaultPollInterval = 2 * time.Second
	defaultLogLevel     = "info"
)

const (
	keyJournalDir   = "journal_dir"
	keyItinerary    = "itinerary_file"
	keyPollInterval = "poll_interval"
	keyClipboard    = "clipboard"
	keyLogLevel     = "log_level"
)

// ConfigError reports a config file that was read but could not be used in
// full. The Config returned alongside it is still valid: unusable values
// fall back to their defaults.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		JournalDir:    mustExpand(defaultJournalDir),
		ItineraryPath: mustExpand(defaultItinerary),
		PollInterval:  defaultPollInterval,
		Clipboard:     true,
		LogLevel:      defaultLogLevel,
	}
}

// Load reads the config at path, or the default path when empty. A missing
// file yields defaults. A malformed file yields defaults and a *ConfigError.
// Any other read failure is returned as a plain error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	cfg.Source = resolved

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	values, err := decode(resolved, bytes)
	if err != nil {
		return cfg, &ConfigError{Path: resolved, Err: fmt.Errorf("parse config: %w", err)}
	}

	if errs := cfg.apply(values); len(errs) > 0 {
		return cfg, &ConfigError{Path: resolved, Err: errors.Join(errs...)}
	}
	return cfg, nil
}

// decode parses bytes into a generic map using the format implied by the
// file extension. TOML is assumed when the extension is unknown.
func decode(path string, bytes []byte) (map[string]any, error) {
	values := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(bytes, &values); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(bytes, &values); err != nil {
			return nil, err
		}
	default:
		if err := toml.Unmarshal(bytes, &values); err != nil {
			return nil, err
		}
	}
	return normalizeKeys(values), nil
}

// normalizeKeys lowercases keys so JOURNAL_DIR and journal_dir are the same
// setting. Unknown keys pass through and are ignored by apply.
func normalizeKeys(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}

func (c *Config) apply(values map[string]any) []error {
	var errs []error

	if v, ok := values[keyJournalDir]; ok {
		s, err := stringValue(keyJournalDir, v)
		switch {
		case err != nil:
			errs = append(errs, err)
		case s != "":
			c.JournalDir = mustExpand(s)
		}
	}
	if v, ok := values[keyItinerary]; ok {
		s, err := stringValue(keyItinerary, v)
		switch {
		case err != nil:
			errs = append(errs, err)
		case s != "":
			c.ItineraryPath = mustExpand(s)
		}
	}
	if v, ok := values[keyPollInterval]; ok {
		d, err := secondsValue(keyPollInterval, v)
		if err != nil {
			errs = append(errs, err)
		} else {
			c.PollInterval = d
		}
	}
	if v, ok := values[keyClipboard]; ok {
		b, isBool := v.(bool)
		if !isBool {
			errs = append(errs, fmt.Errorf("%s: want a boolean, got %T", keyClipboard, v))
		} else {
			c.Clipboard = b
		}
	}
	if v, ok := values[keyLogLevel]; ok {
		s, err := stringValue(keyLogLevel, v)
		switch {
		case err != nil:
			errs = append(errs, err)
		case s != "":
			c.LogLevel = strings.ToLower(s)
		}
	}
	return errs
}

func stringValue(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: want a string, got %T", key, v)
	}
	return strings.TrimSpace(s), nil
}

// secondsValue converts a positive number of seconds into a duration.
func secondsValue(key string, v any) (time.Duration, error) {
	var secs float64
	switch n := v.(type) {
	case float64:
		secs = n
	case int64:
		secs = float64(n)
	case int:
		secs = float64(n)
	default:
		return 0, fmt.Errorf("%s: want seconds as a number, got %T", key, v)
	}
	if secs <= 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, fmt.Errorf("%s: want a positive number of seconds, got %v", key, v)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
