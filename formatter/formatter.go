package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/gauravjuvekar/coloredlogs/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log record into bytes
	Format(rec *core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log record and writes it directly to the writer
	FormatTo(rec *core.Record, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// Format is the %(field)s template describing the log line
	// (empty for DefaultFormat). Ignored by the JSON formatter.
	Format string
	// TimeFormat specifies the asctime layout (empty for DefaultTimeFormat)
	TimeFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
