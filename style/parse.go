package style

import (
	"strings"

	"github.com/valyala/fastjson"

	"github.com/gauravjuvekar/coloredlogs/ansi"
	"github.com/gauravjuvekar/coloredlogs/core"
)

// colorsByName maps color names accepted in style specs to foreground
// codes. Background codes are derived by offset.
var colorsByName = map[string]ansi.Code{
	"black":   ansi.FgBlack,
	"red":     ansi.FgRed,
	"green":   ansi.FgGreen,
	"yellow":  ansi.FgYellow,
	"blue":    ansi.FgBlue,
	"magenta": ansi.FgMagenta,
	"cyan":    ansi.FgCyan,
	"white":   ansi.FgWhite,
}

const brightOffset = ansi.FgHiBlack - ansi.FgBlack
const backgroundOffset = ansi.BgBlack - ansi.FgBlack

// parseToken applies a single style token ("red", "bright-blue",
// "bg=yellow", "bold", "faint", "underline") to s. Unknown tokens are
// ignored so a bad spec degrades instead of failing.
func parseToken(token string, s *Style) {
	token = strings.ToLower(strings.TrimSpace(token))

	switch token {
	case "":
		return
	case "bold":
		s.Bold = true
		return
	case "faint":
		s.Faint = true
		return
	case "underline":
		s.Underline = true
		return
	}

	background := false
	if rest, ok := strings.CutPrefix(token, "bg="); ok {
		token = rest
		background = true
	}

	bright := false
	if rest, ok := strings.CutPrefix(token, "bright-"); ok {
		token = rest
		bright = true
	}

	code, ok := colorsByName[token]
	if !ok {
		return
	}
	if bright {
		code += brightOffset
	}
	if background {
		s.Background = code + backgroundOffset
	} else {
		s.Color = code
	}
}

// ParseStyle parses a comma-separated style spec like "red,bold" into
// a Style. Unknown tokens are skipped.
func ParseStyle(spec string) Style {
	var s Style
	for _, token := range strings.Split(spec, ",") {
		parseToken(token, &s)
	}
	return s
}

// ParseLevelStyles parses a level style spec into a Map laid over the
// built-in defaults. Two syntaxes are accepted:
//
//	text: "info=cyan;warning=yellow,bold;error=red"
//	JSON: {"info": {"color": "cyan"}, "error": {"color": "red", "bold": true}}
//
// Entries naming unknown levels and malformed fragments are skipped;
// parsing never fails.
func ParseLevelStyles(spec string) Map {
	styles := DefaultLevelStyles()
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return styles
	}

	if strings.HasPrefix(spec, "{") {
		return styles.Merge(parseJSONLevelStyles(spec))
	}

	for _, entry := range strings.Split(spec, ";") {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		level, known := levelByName(name)
		if !known {
			continue
		}
		styles[level] = ParseStyle(value)
	}
	return styles
}

// ParseFieldStyles parses a field style spec, text syntax only, laid
// over the built-in field defaults:
//
//	"asctime=green;hostname=magenta,bold"
func ParseFieldStyles(spec string) map[string]Style {
	styles := DefaultFieldStyles()
	for _, entry := range strings.Split(spec, ";") {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		styles[name] = ParseStyle(value)
	}
	return styles
}

// parseJSONLevelStyles parses the JSON object form of a level style
// spec. A malformed document yields an empty map.
func parseJSONLevelStyles(spec string) Map {
	v, err := fastjson.Parse(spec)
	if err != nil {
		return Map{}
	}
	obj, err := v.Object()
	if err != nil {
		return Map{}
	}

	styles := make(Map)
	obj.Visit(func(key []byte, v *fastjson.Value) {
		level, known := levelByName(string(key))
		if !known {
			return
		}

		var s Style
		if c := v.GetStringBytes("color"); c != nil {
			parseToken(string(c), &s)
		}
		if c := v.GetStringBytes("background"); c != nil {
			parseToken("bg="+string(c), &s)
		}
		s.Bold = v.GetBool("bold")
		s.Faint = v.GetBool("faint")
		s.Underline = v.GetBool("underline")
		styles[level] = s
	})
	return styles
}

// levelByName resolves a level name strictly, unlike core.ParseLevel
// which falls back to INFO. Style specs must not restyle INFO because
// of a typo.
func levelByName(name string) (core.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return core.DebugLevel, true
	case "VERBOSE":
		return core.VerboseLevel, true
	case "INFO":
		return core.InfoLevel, true
	case "NOTICE":
		return core.NoticeLevel, true
	case "WARN", "WARNING":
		return core.WarningLevel, true
	case "ERROR":
		return core.ErrorLevel, true
	case "CRITICAL", "FATAL":
		return core.CriticalLevel, true
	default:
		return 0, false
	}
}
