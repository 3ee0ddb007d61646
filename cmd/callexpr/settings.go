package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/xiam/callexpr/internal/config"
	"github.com/xiam/callexpr/lexer"
)

// loadConfig reads the settings file, if any, and applies the flags that were
// set on top of it.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()

	if path := ctx.String(configFlagName); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	if ctx.IsSet(unrecognizedFlagName) {
		policy, err := lexer.ParsePolicy(ctx.String(unrecognizedFlagName))
		if err != nil {
			return config.Config{}, fmt.Errorf("--%s: %w", unrecognizedFlagName, err)
		}
		cfg.Lexer.Unrecognized = policy
	}
	if ctx.IsSet(allowUnterminatedFlagName) {
		cfg.Lexer.AllowUnterminatedString = ctx.Bool(allowUnterminatedFlagName)
	}
	if ctx.IsSet(autoCloseFlagName) {
		cfg.Parser.AutoCloseOnEOF = ctx.Bool(autoCloseFlagName)
	}
	if ctx.IsSet(allowTrailingFlagName) {
		cfg.Parser.AllowTrailing = ctx.Bool(allowTrailingFlagName)
	}
	if ctx.IsSet(rejectMalformedFlagName) {
		cfg.Parser.RejectMalformed = ctx.Bool(rejectMalformedFlagName)
	}
	if ctx.IsSet(maxDepthFlagName) {
		cfg.Parser.MaxDepth = ctx.Int(maxDepthFlagName)
	}
	if ctx.IsSet(logLevelFlagName) {
		if err := cfg.Log.Level.UnmarshalText([]byte(ctx.String(logLevelFlagName))); err != nil {
			return config.Config{}, fmt.Errorf("--%s: %w", logLevelFlagName, err)
		}
	}
	if ctx.IsSet(logFileFlagName) {
		cfg.Log.File = ctx.String(logFileFlagName)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
