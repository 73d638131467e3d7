// Package output provides output formatting for the mapcell shell.
//
// This package handles rendering of map listings and shell data:
//
//   - formatter.go: Formatter interface and factory
//   - plain.go: the default single-line {key:value, ...} listing
//   - table.go: tabwriter-based key/value tables
//   - json.go: JSON output formatting
//   - yaml.go: YAML output formatting
//
// Listings are passed as []Pair so iteration order survives rendering;
// a Go map would shuffle it.
package output
