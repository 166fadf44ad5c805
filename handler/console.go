package handler

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/gauravjuvekar/coloredlogs/ansi"
	"github.com/gauravjuvekar/coloredlogs/core"
	"github.com/gauravjuvekar/coloredlogs/formatter"
)

// ColorMode controls whether the console handler emits ANSI escape
// sequences when it builds its own formatter.
type ColorMode int

const (
	// ColorAuto enables color iff the writer is an interactive
	// terminal, honoring NO_COLOR and FORCE_COLOR. The check runs once
	// at construction time.
	ColorAuto ColorMode = iota
	// ColorAlways emits escape sequences unconditionally
	ColorAlways
	// ColorNever emits plain text only
	ColorNever
)

// ConsoleHandler writes log records to stdout/stderr
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	async           bool
	queue           chan *core.Record
	wg              sync.WaitGroup
	closed          chan struct{}
	mu              sync.Mutex
	overflowPolicy  map[core.Level]OverflowPolicy
	blockTimeout    time.Duration
	stats           *Stats
	drainTimeout    time.Duration
	blockTimer      *time.Timer
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use. When nil, a ColorFormatter is built with color
	// decided by Color.
	Formatter formatter.Formatter
	// Color selects the color decision for the built-in formatter.
	// Ignored when Formatter is set; an explicit formatter already
	// knows whether it colors.
	Color ColorMode
	// Async enables asynchronous logging (default: false)
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: uses DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout is the timeout for blocking overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// NewConsoleHandler creates a new console handler. When no formatter
// is configured, the terminal capability of the writer is checked here,
// once, and never again per record.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		useColor := false
		switch cfg.Color {
		case ColorAlways:
			useColor = true
		case ColorNever:
			useColor = false
		default:
			useColor = ansi.ShouldColorize(cfg.Writer)
		}
		if useColor {
			// Translate sequences for legacy Windows consoles.
			cfg.Writer = ansi.Writer(cfg.Writer)
		}
		cfg.Formatter = formatter.NewColorFormatter(formatter.ColorConfig{UseColor: useColor})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	h := &ConsoleHandler{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		async:          cfg.Async,
		closed:         make(chan struct{}),
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		stats:          NewStats(),
		drainTimeout:   cfg.DrainTimeout,
		blockTimer:     newStoppedTimer(),
	}

	// Cache WriterFormatter for zero-alloc path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	if h.async {
		h.queue = make(chan *core.Record, cfg.BufferSize)
		h.wg.Add(1)
		go h.process()
	}

	return h
}

// Handle processes a log record
func (h *ConsoleHandler) Handle(rec *core.Record) error {
	if !h.async {
		return h.write(rec)
	}

	// Get overflow policy for this level
	policy, ok := h.overflowPolicy[rec.Level]
	if !ok {
		policy = DropNewest // Default if not specified
	}

	switch policy {
	case Block:
		// Try to send with timeout using reusable timer
		select {
		case h.queue <- rec:
			return nil
		default:
			// Queue full, use timer for timeout
			if !h.blockTimer.Stop() {
				select {
				case <-h.blockTimer.C:
				default:
				}
			}
			h.blockTimer.Reset(h.blockTimeout)
			select {
			case h.queue <- rec:
				if !h.blockTimer.Stop() {
					select {
					case <-h.blockTimer.C:
					default:
					}
				}
				return nil
			case <-h.blockTimer.C:
				// Timeout - fall back to synchronous write
				h.stats.IncrementBlocked()
				return h.write(rec)
			case <-h.closed:
				// Handler is closing, write synchronously
				if !h.blockTimer.Stop() {
					select {
					case <-h.blockTimer.C:
					default:
					}
				}
				return h.write(rec)
			}
		}

	case DropOldest:
		// Try non-blocking send
		select {
		case h.queue <- rec:
			return nil
		default:
			// Queue full - try to drop oldest
			select {
			case <-h.queue: // Remove oldest
				h.stats.IncrementDropped(rec.Level)
			default:
			}
			// Try again
			select {
			case h.queue <- rec:
				return nil
			default:
				// Still full, drop this one
				h.stats.IncrementDropped(rec.Level)
				return nil
			}
		}

	case DropNewest:
		fallthrough
	default:
		// Non-blocking send
		select {
		case h.queue <- rec:
			return nil
		default:
			// Queue full - drop this record
			h.stats.IncrementDropped(rec.Level)
			return nil
		}
	}
}

// HandleLog processes log data directly without a pooled record. Only
// the synchronous path qualifies; the async queue needs a pooled
// record it can own.
func (h *ConsoleHandler) HandleLog(t time.Time, level core.Level, name, msg string, loggerFields, callFields []core.Field) error {
	if h.async {
		rec := core.GetRecord()
		rec.Time = t
		rec.Level = level
		rec.Name = name
		rec.Message = msg
		rec.Fields = append(rec.Fields, loggerFields...)
		rec.Fields = append(rec.Fields, callFields...)
		return h.Handle(rec)
	}

	rec := core.Record{
		Time:     t,
		Level:    level,
		Name:     name,
		Message:  msg,
		Hostname: core.Hostname(),
		PID:      core.PID(),
		Program:  core.ProgramName(),
	}
	if len(callFields) == 0 {
		rec.Fields = loggerFields
	} else {
		rec.Fields = make([]core.Field, 0, len(loggerFields)+len(callFields))
		rec.Fields = append(rec.Fields, loggerFields...)
		rec.Fields = append(rec.Fields, callFields...)
	}
	return h.write(&rec)
}

// write formats and writes a record
func (h *ConsoleHandler) write(rec *core.Record) error {
	if h.writerFormatter != nil {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(rec, h.writer)
		h.mu.Unlock()
		if err == nil {
			h.stats.IncrementProcessed()
		}
		return err
	}

	data, err := h.formatter.Format(rec)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, writeErr := h.writer.Write(data)
	h.mu.Unlock()

	if writeErr == nil {
		h.stats.IncrementProcessed()
	}

	return writeErr
}

// CanRecycleRecord returns true if the caller can recycle the record after Handle returns
func (h *ConsoleHandler) CanRecycleRecord() bool {
	return !h.async
}

// process handles async log processing
func (h *ConsoleHandler) process() {
	defer h.wg.Done()

	for {
		select {
		case rec := <-h.queue:
			err := h.write(rec)
			if err != nil {
				return
			}
			core.PutRecord(rec)
		case <-h.closed:
			// Drain remaining records with timeout
			deadline := time.After(h.drainTimeout)
		drainLoop:
			for {
				select {
				case rec := <-h.queue:
					err := h.write(rec)
					if err != nil {
						return
					}
					core.PutRecord(rec)
				case <-deadline:
					// Timeout reached, stop draining
					break drainLoop
				default:
					// Queue empty
					break drainLoop
				}
			}
			return
		}
	}
}

// newStoppedTimer returns a timer that is not running and whose
// channel is empty, ready for Reset.
func newStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return t
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler
func (h *ConsoleHandler) Close() error {
	// Check if already closed (without lock to avoid deadlock)
	select {
	case <-h.closed:
		return nil // Already closed
	default:
	}

	if h.async {
		close(h.closed)
		h.wg.Wait() // Wait without holding lock to avoid deadlock

		h.mu.Lock()
		close(h.queue)
		h.mu.Unlock()
	}
	return nil
}
