// Package main is the entry point for the coloredlogs command-line tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gauravjuvekar/coloredlogs/convert"
	"github.com/gauravjuvekar/coloredlogs/handler"
	"github.com/gauravjuvekar/coloredlogs/logger"
)

const (
	levelFlag    = "level"
	formatFlag   = "format"
	fragmentFlag = "fragment"
)

// ErrNoCommand is returned when convert is invoked without a command.
var ErrNoCommand = errors.New("no command to capture")

var rootCmd = &cli.Command{
	Name:      "coloredlogs",
	Usage:     "coloredlogs demo",
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Description: `Coloredlogs renders log records as human-readable terminal output,
colored by severity when the output stream is an interactive terminal.
This tool demonstrates the palette and converts captured terminal
output to HTML.`,
	Commands: []*cli.Command{
		demoCmd,
		convertCmd,
	},
	EnableShellCompletion: true,
}

// demoCmd logs a sample message at every severity so the palette can
// be eyeballed.
var demoCmd = &cli.Command{
	Name:        "demo",
	Description: "Log a message at every severity level.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  levelFlag,
			Value: "debug",
			Usage: "minimum level to show",
		},
		&cli.StringFlag{
			Name:  formatFlag,
			Usage: "log line template",
		},
	},
	Action: func(_ context.Context, cmd *cli.Command) error {
		log := logger.Install(logger.InstallConfig{
			Level:  cmd.String(levelFlag),
			Format: cmd.String(formatFlag),
			Writer: os.Stdout,
		})
		defer log.Close()

		log.Debug("message with level 'debug'")
		log.Verbose("message with level 'verbose'")
		log.Info("message with level 'info'")
		log.Notice("message with level 'notice'")
		log.Warning("message with level 'warning'")
		log.Error("message with level 'error'")
		log.Critical("message with level 'critical'")
		return nil
	},
}

// convertCmd captures a command's terminal output and converts the
// ANSI escape sequences to HTML on stdout.
var convertCmd = &cli.Command{
	Name:        "convert",
	Description: "Run a command on a pseudo terminal and convert its output to HTML.",
	Usage:       "coloredlogs convert -- hg log",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  fragmentFlag,
			Usage: "emit an HTML fragment instead of a full document",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		command := cmd.Args().Slice()
		if len(command) == 0 {
			return ErrNoCommand
		}

		out, err := convert.Capture(ctx, command)
		if err != nil && len(out) == 0 {
			return fmt.Errorf("capturing %q: %w", command[0], err)
		}

		if cmd.Bool(fragmentFlag) {
			fmt.Fprintln(cmd.Writer, convert.ToHTML(string(out)))
		} else {
			fmt.Fprint(cmd.Writer, convert.ToHTMLDocument(string(out)))
		}
		return nil
	},
}

func main() {
	log := logger.NewBuilder().
		WithHandler(handler.NewConsoleHandler(handler.ConsoleConfig{})).
		Build()

	if err := rootCmd.Run(context.Background(), os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
