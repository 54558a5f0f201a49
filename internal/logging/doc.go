// Package logging assembles the structured slog loggers used across the
// tool.
//
// It owns the console and JSON handlers and the level plumbing so every
// component emits lines with the same shape, and provides a no-op logger
// for tests and wiring code that cannot fail. Components tag their lines
// with a "component" attr, which the console handler folds into a prefix.
package logging
