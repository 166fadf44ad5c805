package ansi

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlString(t *testing.T) {
	assert.Equal(t, "\033[1m", ControlString(Bold))
	assert.Equal(t, "\033[1;31m", ControlString(Bold, FgRed))
	assert.Equal(t, "\033[32m", ControlString(FgGreen))
	assert.Equal(t, "", ControlString())
}

func TestColorize(t *testing.T) {
	assert.Equal(t, "\033[31mfail\033[0m", Colorize("fail", FgRed))
	assert.Equal(t, "\033[1;33mwarn\033[0m", Colorize("warn", Bold, FgYellow))
	// No codes means no escape bytes at all.
	assert.Equal(t, "plain", Colorize("plain"))
}

func TestCodeValues(t *testing.T) {
	// SGR numbering is fixed by the terminal standard.
	assert.Equal(t, Code(30), FgBlack)
	assert.Equal(t, Code(37), FgWhite)
	assert.Equal(t, Code(40), BgBlack)
	assert.Equal(t, Code(90), FgHiBlack)
	assert.Equal(t, Code(1), Bold)
	assert.Equal(t, Code(2), Faint)
	assert.Equal(t, Code(4), Underline)
}

func TestShouldColorize_NoColorWins(t *testing.T) {
	t.Setenv(NoColor, "1")
	t.Setenv(ForceColor, "1")
	assert.False(t, ShouldColorize(os.Stdout))
}

func TestShouldColorize_ForceColor(t *testing.T) {
	t.Setenv(NoColor, "")
	t.Setenv(ForceColor, "1")
	assert.True(t, ShouldColorize(&bytes.Buffer{}))
}

func TestShouldColorize_NonTerminalWriter(t *testing.T) {
	t.Setenv(NoColor, "")
	t.Setenv(ForceColor, "")
	assert.False(t, ShouldColorize(&bytes.Buffer{}))
}

func TestIsTerminal_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	// A pipe is an *os.File but not a tty.
	assert.False(t, IsTerminal(w))
}

func TestWriter_PassesThroughNonFiles(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, &buf, Writer(&buf))
}
