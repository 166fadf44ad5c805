package logger

import (
	"fmt"
	"time"

	"github.com/gauravjuvekar/coloredlogs/core"
	"github.com/gauravjuvekar/coloredlogs/handler"
)

// Logger is the main logging interface (immutable)
type Logger struct {
	handler       handler.Handler
	fastHandler   handler.FastHandler
	level         core.Level
	name          string
	fields        []core.Field
	recycleRecord bool
	now           func() time.Time
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	fastHandler   handler.FastHandler
	level         core.Level
	name          string
	fields        []core.Field
	recycleRecord bool
	coarseClock   bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.InfoLevel, // Default level
		name:  "root",
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	// Pre-compute recycleRecord to avoid interface assertion in Build()
	if rc, ok := h.(interface{ CanRecycleRecord() bool }); ok {
		b.recycleRecord = rc.CanRecycleRecord()
	} else {
		b.recycleRecord = false
	}
	// Cache FastHandler for pool-free hot path
	b.fastHandler, _ = h.(handler.FastHandler)
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithName sets the logger name carried in every record
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithFields adds default fields to all log records
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCoarseClock trades timestamp precision for speed. Records get
// their time from the coarse clock, accurate to about a millisecond.
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	now := time.Now
	if b.coarseClock {
		core.StartCoarseClock()
		now = core.CoarseNow
	}
	name := b.name
	if name == "" {
		name = "root"
	}
	return &Logger{
		handler:       b.handler,
		fastHandler:   b.fastHandler,
		level:         b.level,
		name:          name,
		fields:        b.fields,
		recycleRecord: b.recycleRecord,
		now:           now,
	}
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	clone := *l
	clone.fields = newFields
	return &clone
}

// Named creates a child Logger whose name extends this logger's name
// with a dot. Naming the root logger replaces "root" instead of
// prefixing it.
func (l *Logger) Named(name string) *Logger {
	if name == "" {
		return l
	}
	clone := *l
	if l.name == "" || l.name == "root" {
		clone.name = name
	} else {
		clone.name = l.name + "." + name
	}
	return &clone
}

// Name returns the logger's name.
func (l *Logger) Name() string {
	return l.name
}

// Level returns the logger's minimum level.
func (l *Logger) Level() core.Level {
	return l.level
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	// Level check optimization - exit early BEFORE any allocations
	if level < l.level {
		return
	}

	l.log(level, msg, fields)
}

// log is the internal logging method that takes a pre-allocated slice
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	// Handler check - exit if no handler (avoid any work)
	if l.handler == nil {
		return
	}

	// Fast path: use FastHandler when there are no call-site fields.
	// This avoids sync.Pool Get/Put overhead. We cannot pass variadic
	// fields through the interface because that causes them to escape
	// to the heap.
	if l.fastHandler != nil && len(fields) == 0 {
		l.fastHandler.HandleLog(l.now(), level, l.name, msg, l.fields, nil)
		return
	}

	// Get record from pool AFTER level check
	rec := core.GetRecord()
	rec.Time = l.now()
	rec.Level = level
	rec.Name = l.name
	rec.Message = msg

	// Add logger's default fields
	if len(l.fields) > 0 {
		rec.Fields = append(rec.Fields, l.fields...)
	}

	// Add provided fields
	if len(fields) > 0 {
		rec.Fields = append(rec.Fields, fields...)
	}

	err := l.handler.Handle(rec)
	if err != nil {
		return
	}

	// Return record to pool if handler supports it
	if l.recycleRecord {
		core.PutRecord(rec)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Verbose logs a verbose message
func (l *Logger) Verbose(msg string, fields ...core.Field) {
	if core.VerboseLevel < l.level {
		return
	}
	l.log(core.VerboseLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Notice logs a notice message
func (l *Logger) Notice(msg string, fields ...core.Field) {
	if core.NoticeLevel < l.level {
		return
	}
	l.log(core.NoticeLevel, msg, fields)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, fields ...core.Field) {
	if core.WarningLevel < l.level {
		return
	}
	l.log(core.WarningLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Critical logs a critical message
func (l *Logger) Critical(msg string, fields ...core.Field) {
	l.log(core.CriticalLevel, msg, fields)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Verbosef logs a verbose message with formatting
func (l *Logger) Verbosef(format string, args ...interface{}) {
	if core.VerboseLevel < l.level {
		return
	}
	l.log(core.VerboseLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Noticef logs a notice message with formatting
func (l *Logger) Noticef(format string, args ...interface{}) {
	if core.NoticeLevel < l.level {
		return
	}
	l.log(core.NoticeLevel, fmt.Sprintf(format, args...), nil)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) {
	if core.WarningLevel < l.level {
		return
	}
	l.log(core.WarningLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.log(core.CriticalLevel, fmt.Sprintf(format, args...), nil)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
