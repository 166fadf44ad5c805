package formatter

import "strings"

// DefaultFormat is the template used when none is configured.
const DefaultFormat = "%(asctime)s %(hostname)s %(name)s[%(process)d] %(levelname)s %(message)s"

// DefaultTimeFormat is the human-readable layout used for %(asctime)s.
const DefaultTimeFormat = "2006-01-02 15:04:05"

// Template field names.
const (
	FieldAsctime     = "asctime"
	FieldHostname    = "hostname"
	FieldLevelName   = "levelname"
	FieldMessage     = "message"
	FieldName        = "name"
	FieldProcess     = "process"
	FieldProgramName = "programname"
)

func knownField(name string) bool {
	switch name {
	case FieldAsctime, FieldHostname, FieldLevelName, FieldMessage,
		FieldName, FieldProcess, FieldProgramName:
		return true
	default:
		return false
	}
}

// segment is one compiled piece of a format template: either literal
// text or a field placeholder.
type segment struct {
	text  string // literal text, used when field is empty
	field string
}

// parseFormat compiles a %(field)s template into segments. The syntax
// follows the classic "%(name)s" placeholder form; the single verb
// character after the closing parenthesis is accepted and discarded.
//
// Malformed placeholders (missing parenthesis, missing verb, unknown
// field name) are kept as literal text so that a bad format string
// degrades to an ugly log line instead of an error.
func parseFormat(format string) []segment {
	var segs []segment
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			segs = append(segs, segment{text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(format); {
		if format[i] != '%' || i+1 >= len(format) || format[i+1] != '(' {
			literal.WriteByte(format[i])
			i++
			continue
		}

		close := strings.IndexByte(format[i+2:], ')')
		if close < 0 || i+2+close+1 >= len(format) {
			// Unterminated placeholder, emit the rest literally.
			literal.WriteString(format[i:])
			break
		}

		name := format[i+2 : i+2+close]
		end := i + 2 + close + 2 // past the verb character
		if !knownField(name) {
			literal.WriteString(format[i:end])
			i = end
			continue
		}

		flush()
		segs = append(segs, segment{field: name})
		i = end
	}

	flush()
	return segs
}
