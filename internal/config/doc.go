// Package config loads the amphibians client configuration file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/amphibians/config.toml
//  3. If the file doesn't exist, return Default()
//  4. If the file exists but fields are blank, keep the defaults for them
//
// # File Format
//
//	base_url = "https://android-kotlin-fun-mars-server.appspot.com/"
//	request_timeout = "10s"
//	log_file = "~/.local/state/amphibians/amphibians.log"
//	log_level = "info"
//
// request_timeout uses Go duration syntax and must be positive. Paths starting
// with ~ are expanded to the user's home directory.
//
// # Error Handling
//
// A missing file is not an error. Unreadable files, invalid TOML and bad
// durations are returned wrapped with "open config", "read config" or
// "parse config". The base URL itself is validated later, when the container
// builds the HTTP client.
package config
