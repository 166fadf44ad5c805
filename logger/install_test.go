package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gauravjuvekar/coloredlogs/handler"
)

func TestInstall_Defaults(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var buf bytes.Buffer
	l := Install(InstallConfig{
		Writer: &buf,
		Color:  handler.ColorNever,
	})
	defer l.Close()

	if Default() != l {
		t.Error("Install should replace the default logger")
	}

	Info("installed")
	if !strings.Contains(buf.String(), "installed") {
		t.Errorf("Expected output through default logger, got: %q", buf.String())
	}
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("ColorNever must not emit escapes, got: %q", buf.String())
	}

	// Default level is INFO
	buf.Reset()
	Debug("hidden")
	if buf.Len() > 0 {
		t.Errorf("Debug should be filtered at default level, got: %q", buf.String())
	}
}

func TestInstall_EnvOverrides(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "%(levelname)s %(message)s")

	var buf bytes.Buffer
	l := Install(InstallConfig{
		Level:  "error", // Overridden by the environment.
		Writer: &buf,
		Color:  handler.ColorNever,
	})
	defer l.Close()

	l.Debug("env wins")
	got := buf.String()
	if got != "DEBUG env wins\n" {
		t.Errorf("Install() output = %q, want %q", got, "DEBUG env wins\n")
	}
}

func TestInstall_ColorAlways(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var buf bytes.Buffer
	l := Install(InstallConfig{
		Writer: &buf,
		Color:  handler.ColorAlways,
	})
	defer l.Close()

	l.Info("painted")
	if !strings.Contains(buf.String(), "\033[36mpainted\033[0m") {
		t.Errorf("Expected cyan message, got: %q", buf.String())
	}
}

func TestInstall_LevelStyles(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	t.Setenv(EnvLevelStyles, "info=white,bold")
	t.Setenv(EnvLogFormat, "%(message)s")

	var buf bytes.Buffer
	l := Install(InstallConfig{
		Writer: &buf,
		Color:  handler.ColorAlways,
	})
	defer l.Close()

	l.Info("styled")
	if !strings.Contains(buf.String(), "\033[1;37mstyled\033[0m") {
		t.Errorf("Expected bold white message, got: %q", buf.String())
	}
}
