package handler

import (
	"time"

	"github.com/gauravjuvekar/coloredlogs/core"
)

// MultiHandler sends log records to multiple handlers
type MultiHandler struct {
	handlers      []Handler
	fastHandlers  []FastHandler // cached FastHandler interfaces (nil when handler doesn't implement it)
	allFast       bool          // true when every child implements FastHandler
	recycleRecord bool          // true when every child supports record recycling
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{
		handlers:      handlers,
		fastHandlers:  make([]FastHandler, len(handlers)),
		allFast:       true,
		recycleRecord: true,
	}
	for i, h := range handlers {
		if fh, ok := h.(FastHandler); ok {
			m.fastHandlers[i] = fh
		} else {
			m.allFast = false
		}
		if rc, ok := h.(interface{ CanRecycleRecord() bool }); ok {
			if !rc.CanRecycleRecord() {
				m.recycleRecord = false
			}
		} else {
			m.recycleRecord = false
		}
	}
	return m
}

// HandleLog processes log data directly without requiring a pooled Record.
// When all children implement FastHandler, this avoids Record allocation entirely.
func (h *MultiHandler) HandleLog(t time.Time, level core.Level, name, msg string, loggerFields, callFields []core.Field) error {
	if h.allFast {
		var lastErr error
		for _, fh := range h.fastHandlers {
			if err := fh.HandleLog(t, level, name, msg, loggerFields, callFields); err != nil {
				lastErr = err
			}
		}
		return lastErr
	}

	// Mixed path: build a pooled record for non-fast handlers
	rec := core.GetRecord()
	rec.Time = t
	rec.Level = level
	rec.Name = name
	rec.Message = msg
	if len(loggerFields) > 0 {
		rec.Fields = append(rec.Fields, loggerFields...)
	}
	if len(callFields) > 0 {
		rec.Fields = append(rec.Fields, callFields...)
	}
	var lastErr error
	for i, handler := range h.handlers {
		if fh := h.fastHandlers[i]; fh != nil {
			if err := fh.HandleLog(t, level, name, msg, loggerFields, callFields); err != nil {
				lastErr = err
			}
		} else if err := handler.Handle(rec); err != nil {
			lastErr = err
		}
	}
	if h.recycleRecord {
		core.PutRecord(rec)
	}
	return lastErr
}

// Handle processes a log record by sending it to all handlers
func (h *MultiHandler) Handle(rec *core.Record) error {
	var lastErr error
	for _, handler := range h.handlers {
		if err := handler.Handle(rec); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// CanRecycleRecord returns true if the caller can recycle the record after Handle returns.
// This is safe when all child handlers process records synchronously.
func (h *MultiHandler) CanRecycleRecord() bool {
	return h.recycleRecord
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var lastErr error
	for _, handler := range h.handlers {
		if err := handler.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
