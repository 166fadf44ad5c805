//go:build !windows && !plan9

package handler

import (
	"testing"

	"github.com/gauravjuvekar/coloredlogs/core"
)

func TestSyslogHandler(t *testing.T) {
	h, err := NewSyslogHandler(SyslogConfig{Tag: "coloredlogs-test"})
	if err != nil {
		// Containers and minimal CI images often run without a syslog
		// daemon.
		t.Skipf("no syslog daemon available: %v", err)
	}
	defer h.Close()

	if !h.CanRecycleRecord() {
		t.Error("CanRecycleRecord() = false, want true")
	}

	for _, level := range []core.Level{
		core.DebugLevel, core.VerboseLevel, core.InfoLevel, core.NoticeLevel,
		core.WarningLevel, core.ErrorLevel, core.CriticalLevel,
	} {
		rec := core.GetRecord()
		rec.Level = level
		rec.Message = "syslog handler test"
		if err := h.Handle(rec); err != nil {
			t.Errorf("Handle(%v) error = %v", level, err)
		}
		core.PutRecord(rec)
	}
}

func TestSyslogHandler_Unreachable(t *testing.T) {
	_, err := NewSyslogHandler(SyslogConfig{
		Network: "tcp",
		Address: "127.0.0.1:1", // Nothing listens on port 1.
	})
	if err == nil {
		t.Fatal("Expected error dialing unreachable daemon")
	}
}
