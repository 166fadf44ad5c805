//go:build !windows && !plan9

package handler

import (
	"bytes"
	"log/syslog"
	"sync"

	"github.com/gauravjuvekar/coloredlogs/core"
	"github.com/gauravjuvekar/coloredlogs/formatter"
)

// DefaultSyslogFormat is the template for messages sent to the system
// log. The daemon adds timestamps itself, so the template carries
// none; the "name[pid]:" prefix (specifically the colon) lets rsyslogd
// extract the program name for per-program filtering.
const DefaultSyslogFormat = "%(programname)s[%(process)d]: %(levelname)s %(message)s"

// SyslogConfig holds configuration for the syslog handler
type SyslogConfig struct {
	// Network and Address select the system logging daemon. Both empty
	// connects to the local daemon, trying the usual unix log devices.
	Network string
	Address string
	// Tag is the syslog tag (default: the program name)
	Tag string
	// Facility is the syslog facility (default: LOG_USER)
	Facility syslog.Priority
	// Format is the message template (default: DefaultSyslogFormat)
	Format string
}

// SyslogHandler forwards log records to the system logging daemon,
// mapping levels to syslog severities. Colors never apply here; the
// destination is a daemon, not a terminal.
type SyslogHandler struct {
	writer    *syslog.Writer
	formatter formatter.Formatter
	mu        sync.Mutex
}

// NewSyslogHandler connects to the system logging daemon. An
// unreachable daemon yields an error, not a panic; callers typically
// fall back to console logging.
func NewSyslogHandler(cfg SyslogConfig) (*SyslogHandler, error) {
	if cfg.Tag == "" {
		cfg.Tag = core.ProgramName()
	}
	if cfg.Facility == 0 {
		cfg.Facility = syslog.LOG_USER
	}
	if cfg.Format == "" {
		cfg.Format = DefaultSyslogFormat
	}

	w, err := syslog.Dial(cfg.Network, cfg.Address, cfg.Facility|syslog.LOG_INFO, cfg.Tag)
	if err != nil {
		return nil, err
	}

	return &SyslogHandler{
		writer: w,
		formatter: formatter.NewColorFormatter(formatter.ColorConfig{
			Config: formatter.Config{Format: cfg.Format},
		}),
	}, nil
}

// Handle formats a record and writes it at the matching severity
func (h *SyslogHandler) Handle(rec *core.Record) error {
	data, err := h.formatter.Format(rec)
	if err != nil {
		return err
	}
	// The syslog protocol frames messages itself.
	msg := string(bytes.TrimRight(data, "\n"))

	h.mu.Lock()
	defer h.mu.Unlock()

	switch rec.Level {
	case core.DebugLevel, core.VerboseLevel:
		return h.writer.Debug(msg)
	case core.InfoLevel:
		return h.writer.Info(msg)
	case core.NoticeLevel:
		return h.writer.Notice(msg)
	case core.WarningLevel:
		return h.writer.Warning(msg)
	case core.ErrorLevel:
		return h.writer.Err(msg)
	case core.CriticalLevel:
		return h.writer.Crit(msg)
	default:
		return h.writer.Info(msg)
	}
}

// CanRecycleRecord returns true; records are consumed synchronously
func (h *SyslogHandler) CanRecycleRecord() bool {
	return true
}

// Close closes the connection to the daemon
func (h *SyslogHandler) Close() error {
	return h.writer.Close()
}
