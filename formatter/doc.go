// Package formatter defines how log records are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on
// the write path.
//
// The ColorFormatter renders records through a %(field)s template and
// wraps the level name and message in the ANSI escape sequence for the
// record's severity, plus per-field sequences for the metadata fields.
// Whether escape sequences are emitted at all is decided once per
// output stream by the owning handler, never per record; with color
// off the ColorFormatter doubles as the plain-text formatter. The
// JSONFormatter produces a machine-readable rendition of the same
// record.
//
// Both formatters implement both interfaces. They use a pooled
// bytes.Buffer internally and rely on Go's Append-style functions
// (time.AppendFormat, strconv.AppendInt) to avoid per-call
// allocations. Buffers larger than 64 KiB are not returned to the pool
// to prevent a single large log line from permanently inflating memory
// usage.
package formatter
