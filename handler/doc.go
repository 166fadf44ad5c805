// Package handler provides the output side of the logging pipeline:
// implementations of the Handler interface that deliver formatted
// records to a destination.
//
// ConsoleHandler writes to a stream, deciding once at construction
// time whether that stream gets ANSI colors. FileHandler adds
// size/age/interval based rotation with optional gzip compression of
// rotated backups. SyslogHandler forwards records to the system
// logging daemon at the matching severity. MultiHandler fans a record
// out to several children, and SlogHandler adapts any Handler into a
// log/slog.Handler.
//
// Console and file handlers can run asynchronously with a bounded
// queue. When the queue fills up, a per-level OverflowPolicy decides
// whether to drop the newest record, drop the oldest, or block the
// caller with a timeout; drops and blocks are counted in Stats.
package handler
