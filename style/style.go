package style

import (
	"github.com/gauravjuvekar/coloredlogs/ansi"
	"github.com/gauravjuvekar/coloredlogs/core"
)

// Style describes how a piece of log output is rendered on a color
// terminal. The zero value renders nothing and is the neutral default
// used for unknown levels.
type Style struct {
	// Color is the foreground color code (0 = terminal default).
	Color ansi.Code
	// Background is the background color code (0 = terminal default).
	Background ansi.Code
	Bold       bool
	Faint      bool
	Underline  bool
}

// IsZero reports whether the style selects no rendering at all.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Codes returns the SGR codes selected by the style, attributes first.
func (s Style) Codes() []ansi.Code {
	if s.IsZero() {
		return nil
	}

	codes := make([]ansi.Code, 0, 4)
	if s.Bold {
		codes = append(codes, ansi.Bold)
	}
	if s.Faint {
		codes = append(codes, ansi.Faint)
	}
	if s.Underline {
		codes = append(codes, ansi.Underline)
	}
	if s.Color != 0 {
		codes = append(codes, s.Color)
	}
	if s.Background != 0 {
		codes = append(codes, s.Background)
	}
	return codes
}

// Sequence returns the escape sequence selecting the style, or the
// empty string for the zero style.
func (s Style) Sequence() string {
	return ansi.ControlString(s.Codes()...)
}

// Render wraps text in the style's escape sequence and a reset. The
// zero style returns text unchanged, with no escape bytes.
func (s Style) Render(text string) string {
	return ansi.Colorize(text, s.Codes()...)
}

// Map associates log levels with styles.
type Map map[core.Level]Style

// Get returns the style for a level. Unknown levels, including custom
// ones outside the defined range, get the zero style rather than an
// error.
func (m Map) Get(level core.Level) Style {
	return m[level]
}

// Merge returns a copy of m with the entries of other laid over it.
func (m Map) Merge(other Map) Map {
	merged := make(Map, len(m)+len(other))
	for l, s := range m {
		merged[l] = s
	}
	for l, s := range other {
		merged[l] = s
	}
	return merged
}

// DefaultLevelStyles returns the built-in level palette. Every defined
// level has exactly one entry.
func DefaultLevelStyles() Map {
	return Map{
		core.DebugLevel:    {Color: ansi.FgGreen},
		core.VerboseLevel:  {Color: ansi.FgBlue},
		core.InfoLevel:     {Color: ansi.FgCyan},
		core.NoticeLevel:   {Color: ansi.FgMagenta},
		core.WarningLevel:  {Color: ansi.FgYellow},
		core.ErrorLevel:    {Color: ansi.FgRed},
		core.CriticalLevel: {Color: ansi.FgRed, Bold: true},
	}
}

// DefaultFieldStyles returns the built-in styles for the non-level
// fields of a log line.
func DefaultFieldStyles() map[string]Style {
	return map[string]Style{
		"asctime":     {Color: ansi.FgGreen},
		"hostname":    {Color: ansi.FgMagenta},
		"name":        {Color: ansi.FgBlue},
		"programname": {Color: ansi.FgCyan},
	}
}
