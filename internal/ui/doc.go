// Package ui implements the terminal interface as a Bubble Tea model.
//
// All remote calls run as commands; the Update loop owns the session
// store and is the only writer. Destructive actions are gated behind a
// confirm dialog and at most one mutating action runs at a time.
package ui
