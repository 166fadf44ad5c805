package logger

import (
	"io"
	"os"

	"github.com/gauravjuvekar/coloredlogs/ansi"
	"github.com/gauravjuvekar/coloredlogs/core"
	"github.com/gauravjuvekar/coloredlogs/formatter"
	"github.com/gauravjuvekar/coloredlogs/handler"
	"github.com/gauravjuvekar/coloredlogs/style"
)

// Environment variables consulted by Install. Each one overrides the
// corresponding InstallConfig field, so end users can recolor or
// silence a program without touching its code.
const (
	EnvLogLevel    = "COLOREDLOGS_LOG_LEVEL"
	EnvLogFormat   = "COLOREDLOGS_LOG_FORMAT"
	EnvDateFormat  = "COLOREDLOGS_DATE_FORMAT"
	EnvLevelStyles = "COLOREDLOGS_LEVEL_STYLES"
	EnvFieldStyles = "COLOREDLOGS_FIELD_STYLES"
)

// InstallConfig configures Install. The zero value gives the standard
// setup: INFO level, the default template, automatic color detection
// on stderr.
type InstallConfig struct {
	// Level is the minimum level name ("debug" .. "critical").
	// Unknown or empty means INFO.
	Level string
	// Format is the line template (default: formatter.DefaultFormat)
	Format string
	// TimeFormat is the layout for %(asctime)s (default: formatter.DefaultTimeFormat)
	TimeFormat string
	// LevelStyles is a level style spec laid over the default palette,
	// in the syntax accepted by style.ParseLevelStyles
	LevelStyles string
	// FieldStyles is a field style spec laid over the defaults
	FieldStyles string
	// Writer is the output stream (default: os.Stderr)
	Writer io.Writer
	// Color selects the color decision (default: ColorAuto)
	Color handler.ColorMode
	// Name is the root logger name (default: "root")
	Name string
	// Async enables the buffered async handler. Install defaults to
	// synchronous output so lines appear immediately, matching what an
	// interactive program expects.
	Async bool
}

// Install replaces the default logger with one built from cfg and the
// COLOREDLOGS_* environment variables, and returns it. Calling it with
// the zero config is the one-liner that turns on colored terminal
// output for a program.
func Install(cfg InstallConfig) *Logger {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(EnvDateFormat); v != "" {
		cfg.TimeFormat = v
	}
	if v := os.Getenv(EnvLevelStyles); v != "" {
		cfg.LevelStyles = v
	}
	if v := os.Getenv(EnvFieldStyles); v != "" {
		cfg.FieldStyles = v
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	useColor := false
	switch cfg.Color {
	case handler.ColorAlways:
		useColor = true
	case handler.ColorNever:
		useColor = false
	default:
		useColor = ansi.ShouldColorize(cfg.Writer)
	}
	w := cfg.Writer
	if useColor {
		w = ansi.Writer(w)
	}

	f := formatter.NewColorFormatter(formatter.ColorConfig{
		Config: formatter.Config{
			Format:     cfg.Format,
			TimeFormat: cfg.TimeFormat,
		},
		LevelStyles: style.ParseLevelStyles(cfg.LevelStyles),
		FieldStyles: style.ParseFieldStyles(cfg.FieldStyles),
		UseColor:    useColor,
	})

	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer:    w,
		Formatter: f,
		Async:     cfg.Async,
	})

	l := NewBuilder().
		WithHandler(h).
		WithLevel(core.ParseLevel(cfg.Level)).
		WithName(cfg.Name).
		Build()

	SetDefault(l)
	return l
}
