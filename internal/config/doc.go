// Package config loads the viewer's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/boxcast/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # Default Values
//
//   - API URL: https://api.boxcast.com
//   - Poll interval: 30 seconds
//   - Log file: ~/.local/state/boxcast/boxcast.log
//   - Log level: info
//
// There is no default channel; Validate rejects a config without one.
//
// # TOML Format
//
//	api_url = "https://api.boxcast.com"
//	channel_id = "abcd1234"
//	poll_seconds = 30
//	log_file = "~/.local/state/boxcast/boxcast.log"
//	log_level = "debug"
//
// Tilde expansion is applied to log_file. Command-line flags override the
// file; see cmd/boxcast.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files and
// invalid TOML. A missing file is not an error.
package config
