// Package logger provides structured logging for mapcell.
//
// It wraps the standard library log/slog behind a small interface so the
// rest of the tool never imports slog directly:
//
//   - JSON or text output, selected by configuration
//   - Dynamic log level, adjustable while a shell session is running
//   - Field-scoped child loggers via With
package logger
