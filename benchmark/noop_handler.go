package benchmark

import (
	"github.com/gauravjuvekar/coloredlogs/core"
	"github.com/gauravjuvekar/coloredlogs/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(rec *core.Record) error {
	_ = len(rec.Message)
	core.PutRecord(rec)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
