package core

import "strings"

// Level represents the severity of a log record
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// VerboseLevel for chatty output that is useful but not essential
	VerboseLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// NoticeLevel for normal but noteworthy conditions
	NoticeLevel
	// WarningLevel for warning messages
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for errors the program cannot recover from
	CriticalLevel
)

// LevelCount is the number of defined levels. Useful for arrays
// indexed by Level.
const LevelCount = int(CriticalLevel) + 1

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case VerboseLevel:
		return "VERBOSE"
	case InfoLevel:
		return "INFO"
	case NoticeLevel:
		return "NOTICE"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Defined reports whether l is one of the built-in levels.
func (l Level) Defined() bool {
	return l >= DebugLevel && l <= CriticalLevel
}

// ParseLevel converts a level name to a Level. Unknown names fall back
// to InfoLevel; formatting must keep working on whatever the caller
// hands us.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel
	case "VERBOSE":
		return VerboseLevel
	case "INFO":
		return InfoLevel
	case "NOTICE":
		return NoticeLevel
	case "WARN", "WARNING":
		return WarningLevel
	case "ERROR":
		return ErrorLevel
	case "CRITICAL", "FATAL":
		return CriticalLevel
	default:
		return InfoLevel
	}
}
