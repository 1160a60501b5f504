// Package logging builds the application slog.Logger: a compact console
// handler for interactive use (colored when stdout is a terminal) and a JSON
// handler for machine consumption, optionally duplicated to a log file.
package logging
