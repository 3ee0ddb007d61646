// callexpr reads source files made of call expressions and prints their
// tokens or syntax trees, or checks them for errors.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"github.com/xiam/callexpr/internal/config"
	"github.com/xiam/callexpr/internal/logs"
)

// flag names
const (
	configFlagName            = "config"
	unrecognizedFlagName      = "unrecognized"
	allowUnterminatedFlagName = "allow-unterminated"
	autoCloseFlagName         = "auto-close"
	allowTrailingFlagName     = "allow-trailing"
	rejectMalformedFlagName   = "reject-malformed"
	maxDepthFlagName          = "max-depth"
	logLevelFlagName          = "log-level"
	logFileFlagName           = "log-file"
	noColorFlagName           = "no-color"
	formatFlagName            = "format"
)

// globalFlags returns the flags shared by every command. Flags keep state
// once applied, so each App gets its own set.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    configFlagName,
			Usage:   "YAML settings file",
			EnvVars: []string{"CALLEXPR_CONFIG"},
		},
		&cli.StringFlag{
			Name:    unrecognizedFlagName,
			Usage:   "what to do with unrecognized characters: warn, skip or reject",
			EnvVars: []string{"CALLEXPR_UNRECOGNIZED"},
		},
		&cli.BoolFlag{
			Name:    allowUnterminatedFlagName,
			Usage:   "stop quietly at a string with no closing quote",
			EnvVars: []string{"CALLEXPR_ALLOW_UNTERMINATED"},
		},
		&cli.BoolFlag{
			Name:    autoCloseFlagName,
			Usage:   "close parentheses left open at the end of the input",
			EnvVars: []string{"CALLEXPR_AUTO_CLOSE"},
		},
		&cli.BoolFlag{
			Name:    allowTrailingFlagName,
			Usage:   "ignore anything after the first expression",
			EnvVars: []string{"CALLEXPR_ALLOW_TRAILING"},
		},
		&cli.BoolFlag{
			Name:    rejectMalformedFlagName,
			Usage:   "fail on argument groups that don't start with a name instead of dropping them",
			EnvVars: []string{"CALLEXPR_REJECT_MALFORMED"},
		},
		&cli.IntFlag{
			Name:    maxDepthFlagName,
			Usage:   "maximum parenthesis nesting",
			EnvVars: []string{"CALLEXPR_MAX_DEPTH"},
		},
		&cli.StringFlag{
			Name:    logLevelFlagName,
			Usage:   "debug, info, warn or error",
			EnvVars: []string{"CALLEXPR_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    logFileFlagName,
			Usage:   "append JSON log records to this file",
			EnvVars: []string{"CALLEXPR_LOG_FILE"},
		},
		&cli.BoolFlag{
			Name:    noColorFlagName,
			Usage:   "disable colored diagnostics",
			EnvVars: []string{"CALLEXPR_NO_COLOR"},
		},
	}
}

func formatFlag(formats map[string]bool, value string) cli.Flag {
	return &cli.StringFlag{
		Name:    formatFlagName,
		Aliases: []string{"f"},
		Usage:   "output format: " + formatNames(formats),
		Value:   value,
	}
}

// command holds what every subcommand needs once the global flags are read.
type command struct {
	stdin io.Reader

	cfg     config.Config
	logger  *slog.Logger
	logFile *os.File
}

func (c *command) before(ctx *cli.Context) error {
	if ctx.Bool(noColorFlagName) {
		color.NoColor = true
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	c.cfg = cfg

	opts := logs.Options{Level: cfg.Log.Level}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		c.logFile = f
		opts.File = f
	}
	c.logger = logs.New(ctx.App.ErrWriter, opts)

	c.logger.Debug("settings loaded",
		"unrecognized", cfg.Lexer.Unrecognized,
		"auto_close", cfg.Parser.AutoCloseOnEOF,
		"allow_trailing", cfg.Parser.AllowTrailing,
		"reject_malformed", cfg.Parser.RejectMalformed,
		"max_depth", cfg.Parser.MaxDepth,
	)
	return nil
}

func (c *command) after(ctx *cli.Context) error {
	if c.logFile != nil {
		return c.logFile.Close()
	}
	return nil
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	c := &command{stdin: stdin}

	return &cli.App{
		Name:        "callexpr",
		Usage:       "inspect call expression sources",
		Description: "callexpr tokenizes and parses sources such as (add 2 3 (subtract 4 2)). With no FILE, or when FILE is -, standard input is read.",
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags:       globalFlags(),
		Before:      c.before,
		After:       c.after,
		Commands: []*cli.Command{
			{
				Name:      "tokens",
				Usage:     "print the tokens of each FILE",
				ArgsUsage: "[FILE...]",
				Flags:     []cli.Flag{formatFlag(tokenFormats, formatText)},
				Action:    c.tokens,
			},
			{
				Name:      "parse",
				Usage:     "print the syntax tree of each FILE",
				ArgsUsage: "[FILE...]",
				Flags:     []cli.Flag{formatFlag(nodeFormats, formatSexpr)},
				Action:    c.parse,
			},
			{
				Name:      "check",
				Usage:     "report the errors found in each FILE",
				ArgsUsage: "[FILE...]",
				Action:    c.check,
			},
		},
		// exit codes are handled by main
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	if err := app.Run(os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			if msg := exitErr.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
