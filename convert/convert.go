package convert

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gauravjuvekar/coloredlogs/ansi"
)

// Palette maps the standard terminal colors to hex values that look
// reasonable on a white page. Index 0-7 are the normal colors, 8-15
// the bright variants.
var Palette = [16]string{
	"#010101", "#de382b", "#39b54a", "#ffc706",
	"#006fb8", "#762671", "#2cb5e9", "#cccccc",
	"#808080", "#ff0000", "#00ff00", "#ffff00",
	"#0000ff", "#ff00ff", "#00ffff", "#ffffff",
}

var urlPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

// textStyle is the rendering state accumulated from SGR parameters.
type textStyle struct {
	foreground int // palette index, -1 for default
	background int
	bold       bool
	faint      bool
	underline  bool
}

func defaultStyle() textStyle {
	return textStyle{foreground: -1, background: -1}
}

// css renders the style as an inline CSS declaration, empty for the
// default state.
func (s textStyle) css() string {
	var parts []string
	fg := s.foreground
	if s.bold && fg >= 0 && fg < 8 {
		// Terminals brighten the color for bold text.
		fg += 8
	}
	if fg >= 0 {
		parts = append(parts, "color:"+Palette[fg])
	}
	if s.background >= 0 {
		parts = append(parts, "background-color:"+Palette[s.background])
	}
	if s.bold {
		parts = append(parts, "font-weight:bold")
	}
	if s.faint {
		parts = append(parts, "opacity:0.5")
	}
	if s.underline {
		parts = append(parts, "text-decoration:underline")
	}
	return strings.Join(parts, ";")
}

// apply updates the style according to one SGR parameter.
func (s *textStyle) apply(param int) {
	code := ansi.Code(param)
	switch {
	case param == 0:
		*s = defaultStyle()
	case code == ansi.Bold:
		s.bold = true
	case code == ansi.Faint:
		s.faint = true
	case code == ansi.Underline:
		s.underline = true
	case code >= ansi.FgBlack && code <= ansi.FgWhite:
		s.foreground = int(code - ansi.FgBlack)
	case param == 39:
		s.foreground = -1
	case code >= ansi.BgBlack && code <= ansi.BgWhite:
		s.background = int(code - ansi.BgBlack)
	case param == 49:
		s.background = -1
	case code >= ansi.FgHiBlack && code <= ansi.FgHiWhite:
		s.foreground = int(code-ansi.FgHiBlack) + 8
	case code >= ansi.BgHiBlack && code <= ansi.BgHiWhite:
		s.background = int(code-ansi.BgHiBlack) + 8
	}
}

// ToHTML converts terminal output with ANSI escape sequences into
// HTML. SGR sequences become spans with inline styles, text is
// HTML-escaped, http(s) URLs become hyperlinks, and every other escape
// sequence (cursor movement, OSC titles, the carriage returns script
// leaves behind) is stripped.
func ToHTML(input string) string {
	var out strings.Builder
	var text strings.Builder
	state := defaultStyle()
	open := false

	flush := func() {
		if text.Len() == 0 {
			return
		}
		css := state.css()
		if css != "" && !open {
			out.WriteString(`<span style="` + css + `">`)
			open = true
		}
		out.WriteString(linkify(escapeHTML(text.String())))
		text.Reset()
	}
	closeSpan := func() {
		if open {
			out.WriteString("</span>")
			open = false
		}
	}

	for i := 0; i < len(input); {
		c := input[i]
		if c == '\r' {
			i++
			continue
		}
		if c != 0x1b {
			text.WriteByte(c)
			i++
			continue
		}

		// Escape sequence. Emit pending text under the current style
		// before the state changes.
		flush()

		if i+1 >= len(input) {
			break
		}
		switch input[i+1] {
		case '[':
			j := i + 2
			for j < len(input) && !isFinalByte(input[j]) {
				j++
			}
			if j < len(input) && input[j] == 'm' {
				closeSpan()
				applyParams(&state, input[i+2:j])
			}
			i = j + 1
		case ']':
			// OSC, terminated by BEL or ST.
			j := i + 2
			for j < len(input) && input[j] != 0x07 {
				if input[j] == 0x1b && j+1 < len(input) && input[j+1] == '\\' {
					j++
					break
				}
				j++
			}
			i = j + 1
		default:
			i += 2
		}
	}

	flush()
	closeSpan()
	return out.String()
}

// isFinalByte reports whether b terminates a CSI sequence.
func isFinalByte(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}

// applyParams parses the semicolon-separated SGR parameter list.
// An empty list means reset, same as 0.
func applyParams(s *textStyle, params string) {
	if params == "" {
		*s = defaultStyle()
		return
	}
	for _, p := range strings.Split(params, ";") {
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		s.apply(n)
	}
}

// escapeHTML escapes the characters that are unsafe in HTML text.
func escapeHTML(text string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(text)
}

// linkify wraps http(s) URLs in anchor tags. Runs on already escaped
// text, so the match cannot contain markup.
func linkify(text string) string {
	return urlPattern.ReplaceAllString(text, `<a href="$0">$0</a>`)
}

// ToHTMLDocument wraps the converted output in a minimal standalone
// page with a monospace block, ready to mail or publish.
func ToHTMLDocument(input string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<body>\n")
	b.WriteString(`<pre style="font-family:monospace">` + "\n")
	b.WriteString(ToHTML(input))
	b.WriteString("\n</pre>\n</body>\n</html>\n")
	return b.String()
}
