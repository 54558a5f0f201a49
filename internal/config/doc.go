// Package config loads, validates, and normalizes the tool's TOML
// configuration.
//
// Configuration sections by subsystem:
//   - Source: path to the results export feeding the run
//   - Output: destination directory and the series header line
//   - Contact: name and email shown in the page footer
//   - Logging: log format and level
//
// Load resolves the file from an explicit path, the default location
// under ~/.config/ttresults, or a project-local ttresults.toml, then
// expands home-relative paths and validates the result.
package config
