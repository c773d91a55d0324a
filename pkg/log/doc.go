// Package log defines the structured logging abstraction used across
// explored, plus a zerolog-backed implementation and a no-op default.
//
// Library code (pkg/explore, internal/mission, adapters) logs only through
// [Logger] so embedders can plug in their own backend; the CLI wires in the
// zerolog adapter with console output.
package log
