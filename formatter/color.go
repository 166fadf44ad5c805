package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/gauravjuvekar/coloredlogs/ansi"
	"github.com/gauravjuvekar/coloredlogs/core"
	"github.com/gauravjuvekar/coloredlogs/style"
)

// ColorConfig holds configuration for the color formatter
type ColorConfig struct {
	Config
	// LevelStyles maps levels to styles (nil for the default palette)
	LevelStyles style.Map
	// FieldStyles maps template field names to styles (nil for defaults)
	FieldStyles map[string]style.Style
	// UseColor enables escape sequences. The decision belongs to the
	// owner of the output stream and is made once, not per record.
	UseColor bool
}

// ColorFormatter renders records as text lines, wrapping the severity
// dependent parts in ANSI escape sequences when color is enabled. With
// color disabled it produces the identical line without any escape
// bytes, which is also how it serves as the plain-text formatter for
// files and pipes.
//
// Formatting is a stateless transform; a ColorFormatter is safe for
// concurrent use.
type ColorFormatter struct {
	segments   []segment
	timeFormat string
	useColor   bool
	// Escape sequences precomputed at construction. levelSeq styles
	// the levelname and message fields, fieldSeq the metadata fields.
	levelSeq map[core.Level]string
	fieldSeq map[string]string
}

// NewColorFormatter creates a new color formatter
func NewColorFormatter(cfg ColorConfig) *ColorFormatter {
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = DefaultTimeFormat
	}
	if cfg.LevelStyles == nil {
		cfg.LevelStyles = style.DefaultLevelStyles()
	}
	if cfg.FieldStyles == nil {
		cfg.FieldStyles = style.DefaultFieldStyles()
	}

	f := &ColorFormatter{
		segments:   parseFormat(cfg.Format),
		timeFormat: cfg.TimeFormat,
		useColor:   cfg.UseColor,
	}

	if cfg.UseColor {
		f.levelSeq = make(map[core.Level]string, len(cfg.LevelStyles))
		for level, s := range cfg.LevelStyles {
			f.levelSeq[level] = s.Sequence()
		}
		f.fieldSeq = make(map[string]string, len(cfg.FieldStyles))
		for name, s := range cfg.FieldStyles {
			f.fieldSeq[name] = s.Sequence()
		}
	}

	return f
}

// Format formats a record as a text line
func (f *ColorFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *ColorFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// sequenceFor returns the escape sequence opening the given field for
// the given record, or "" when the field is unstyled. Levels without a
// style entry get "" and render as plain text.
func (f *ColorFormatter) sequenceFor(field string, level core.Level) string {
	if !f.useColor {
		return ""
	}
	switch field {
	case FieldLevelName, FieldMessage:
		return f.levelSeq[level]
	default:
		return f.fieldSeq[field]
	}
}

// formatToBuffer writes the formatted record into the given buffer
func (f *ColorFormatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	for _, seg := range f.segments {
		if seg.field == "" {
			buf.WriteString(seg.text)
			continue
		}

		seq := f.sequenceFor(seg.field, rec.Level)
		if seq != "" {
			buf.WriteString(seq)
		}
		f.appendField(rec, seg.field, buf)
		if seq != "" {
			buf.WriteString(ansi.Reset)
		}
	}

	// Structured fields follow the templated line
	for _, field := range rec.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}

// appendField writes the record value for a template field. Uses
// Append-style functions to avoid per-call allocations.
func (f *ColorFormatter) appendField(rec *core.Record, field string, buf *bytes.Buffer) {
	switch field {
	case FieldAsctime:
		buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.timeFormat))
	case FieldHostname:
		buf.WriteString(rec.Hostname)
	case FieldLevelName:
		buf.WriteString(rec.Level.String())
	case FieldMessage:
		buf.WriteString(rec.Message)
	case FieldName:
		buf.WriteString(rec.Name)
	case FieldProcess:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.PID), 10))
	case FieldProgramName:
		buf.WriteString(rec.Program)
	}
}
