// Package config loads waymark's settings.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/waymark/config.toml
//  3. If the file doesn't exist, use built-in defaults
//  4. If the file can't be parsed, use built-in defaults and return a
//     *ConfigError the caller reports as a warning
//  5. Known keys override defaults one by one; unknown keys are ignored
//
// # Default Values
//
//   - Journal directory: ~/.local/share/Frontier Developments/Elite Dangerous
//   - Itinerary: itinerary.txt in the working directory
//   - Poll interval: 2 seconds
//   - Clipboard: enabled
//   - Log level: info
//
// # Formats
//
// The file extension picks the decoder: .json, .yaml/.yml, and TOML for
// everything else. Keys are matched case-insensitively, so a JSON file
// written for older tooling with JOURNAL_DIR, ITINERARY_FILE and
// POLL_INTERVAL keys still loads.
//
//	journal_dir = "~/Games/Elite/journals"
//	itinerary_file = "~/routes/colonia.txt"
//	poll_interval = 1.5
//	clipboard = true
//	log_level = "debug"
//
// Tilde expansion is applied to both paths.
//
// # Error Handling
//
// Load returns a plain error only when the file exists but cannot be opened
// or read (permissions, I/O). That is the one startup condition the caller
// treats as fatal.
package config
