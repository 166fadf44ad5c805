// Package convert turns terminal output with ANSI escape sequences
// into HTML, so colored program output can be pasted into web pages
// and email. Capture runs a command under script(1) to coax the colors
// out of programs that only emit them on a terminal.
package convert
