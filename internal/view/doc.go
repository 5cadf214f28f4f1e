// Package view projects the session state into typed view-models. The
// projections are pure: they read a state snapshot and produce display
// structures consumed by the terminal rendering backend, so calling one
// twice over unchanged state yields equivalent output. No projection
// ever performs I/O.
package view
