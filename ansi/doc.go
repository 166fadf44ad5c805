// Package ansi provides ANSI SGR escape code generation and terminal
// capability detection.
//
// The package checks the environment variables NO_COLOR and
// FORCE_COLOR to determine whether color output should be disabled or
// forced, and otherwise tests whether the output stream is an
// interactive terminal using the golang.org/x/term package. The check
// is intended to run once per output stream, not once per record.
// Constants are provided for the standard foreground and background
// colors and text attributes.
package ansi
