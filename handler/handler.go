package handler

import (
	"time"

	"github.com/gauravjuvekar/coloredlogs/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log record
	Handle(rec *core.Record) error

	// Close closes the handler and releases resources
	Close() error
}

// FastHandler is an optional interface that handlers can implement
// to process log data directly without requiring a Record from the pool.
type FastHandler interface {
	HandleLog(t time.Time, level core.Level, name, msg string, loggerFields, callFields []core.Field) error
}
