// Package config loads mapcell shell configuration.
//
// Configuration comes from three sources with increasing priority:
//
//  1. Built-in defaults
//  2. YAML config file (~/.mapcell/cli.yaml by default)
//  3. MAPCELL_* environment variables
//
// Loading is built on Koanf. A fsnotify-based Watcher lets a running
// shell pick up config file edits (output format, log level) without
// restarting.
package config
