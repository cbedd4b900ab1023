// Package config handles loading and parsing folio's configuration file.
//
// # Overview
//
// Folio reads a small TOML file describing which endpoint to browse and how
// to log. Everything has a sensible default: folio works with no config file
// at all.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/folio/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
// Example config.toml:
//
//	api_url = "https://rickandmortyapi.com/api/character"
//	log_file = "~/.local/state/folio/folio.log"
//	log_level = "debug"
//	request_timeout_seconds = 10
//
// All fields are optional. The endpoint may be any URL whose responses use
// the {results, info: {next}} pagination envelope. Tilde expansion is
// performed on paths, and relative paths are made absolute.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors other
// than os.ErrNotExist, and TOML parsing errors. A missing file is not an
// error - defaults apply so folio runs out of the box.
package config
