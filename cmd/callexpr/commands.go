package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"
	"github.com/xiam/callexpr/internal/diag"
	"github.com/xiam/callexpr/internal/logs"
)

var errFailed = cli.Exit("", 1)

func (c *command) tokens(ctx *cli.Context) error {
	format := ctx.String(formatFlagName)
	if err := checkFormat(tokenFormats, format); err != nil {
		return err
	}

	inputs, err := c.readInputs(ctx.Args().Slice())
	if err != nil {
		return err
	}

	failed := false
	for _, in := range inputs {
		lctx := logs.WithInput(ctx.Context, in.name)

		r := in.reader(c)
		tokens, err := r.Tokens()
		c.report(ctx, in, r.Warnings(), err)
		if err != nil {
			failed = true
			continue
		}

		c.logger.DebugContext(lctx, "tokenized", "tokens", len(tokens))
		if err := writeTokens(ctx.App.Writer, format, tokens); err != nil {
			return err
		}
	}

	if failed {
		return errFailed
	}
	return nil
}

func (c *command) parse(ctx *cli.Context) error {
	format := ctx.String(formatFlagName)
	if err := checkFormat(nodeFormats, format); err != nil {
		return err
	}

	inputs, err := c.readInputs(ctx.Args().Slice())
	if err != nil {
		return err
	}

	failed := false
	for _, in := range inputs {
		lctx := logs.WithInput(ctx.Context, in.name)

		r := in.reader(c)
		root, err := r.Parse()
		c.report(ctx, in, r.Warnings(), err)
		if err != nil {
			failed = true
			continue
		}

		if root == nil {
			c.logger.InfoContext(lctx, "empty input")
			continue
		}

		c.logger.DebugContext(lctx, "parsed", "depth", root.Depth())
		if err := writeNode(ctx.App.Writer, format, root); err != nil {
			return err
		}
	}

	if failed {
		return errFailed
	}
	return nil
}

func (c *command) check(ctx *cli.Context) error {
	inputs, err := c.readInputs(ctx.Args().Slice())
	if err != nil {
		return err
	}

	var result *multierror.Error
	for _, in := range inputs {
		r := in.reader(c)
		_, err := r.Parse()
		c.report(ctx, in, r.Warnings(), err)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", in.name, err))
			continue
		}
		fmt.Fprintf(ctx.App.Writer, "%s: ok\n", in.name)
	}

	if err := result.ErrorOrNil(); err != nil {
		c.logger.InfoContext(ctx.Context, "check failed",
			"inputs", len(inputs),
			"failed", len(result.Errors),
		)
		return errFailed
	}

	c.logger.DebugContext(ctx.Context, "check passed", "inputs", len(inputs))
	return nil
}

// report prints the warnings and the error of one input, if any.
func (c *command) report(ctx *cli.Context, in *input, warnings, err error) {
	src := in.source()
	if warnings != nil {
		src.Fprint(ctx.App.ErrWriter, diag.Warning, warnings)
	}
	if err != nil {
		src.Fprint(ctx.App.ErrWriter, diag.Error, err)
	}
}
