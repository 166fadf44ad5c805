package logger

import "github.com/gauravjuvekar/coloredlogs/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel    = core.DebugLevel
	VerboseLevel  = core.VerboseLevel
	InfoLevel     = core.InfoLevel
	NoticeLevel   = core.NoticeLevel
	WarningLevel  = core.WarningLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
)

// ParseLevel converts a string to a Level. Unknown names fall back to
// InfoLevel.
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
