package ansi

import (
	"strconv"
	"strings"
)

const (
	// sbPadding leaves headroom in the strings.Builder for a few codes.
	sbPadding = 16

	prefix = "\033["
	suffix = "m"

	// Reset is the SGR sequence that restores default rendering.
	Reset = "\033[0m"
)

// Code represents an ANSI SGR control code for text formatting.
type Code int

// Control codes for text attributes.
const (
	ResetCode Code = iota
	Bold
	Faint
	Italic
	Underline
	BlinkSlow
	BlinkRapid
	ReverseVideo
	Concealed
	CrossedOut
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground Hi-Intensity text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

// Background text colors.
const (
	BgBlack Code = iota + 40
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
)

// Background Hi-Intensity text colors.
const (
	BgHiBlack Code = iota + 100
	BgHiRed
	BgHiGreen
	BgHiYellow
	BgHiBlue
	BgHiMagenta
	BgHiCyan
	BgHiWhite
)

// ControlString generates the escape sequence selecting the given SGR
// codes, e.g. ControlString(Bold, FgRed) == "\033[1;31m". With no
// codes it returns the empty string.
func ControlString(c ...Code) string {
	if len(c) == 0 {
		return ""
	}

	sb := strings.Builder{}
	sb.Grow(len(prefix) + len(suffix) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range c {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)

	return sb.String()
}

// Colorize returns str wrapped in the escape sequence for the given
// codes followed by a reset. With no codes the string is returned
// unchanged.
func Colorize(str string, colorCodes ...Code) string {
	if len(colorCodes) == 0 {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(Reset) + sbPadding)
	sb.WriteString(ControlString(colorCodes...))
	sb.WriteString(str)
	sb.WriteString(Reset)

	return sb.String()
}
