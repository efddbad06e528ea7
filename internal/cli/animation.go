package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/noisify/pkg/animate"
	"github.com/matzehuels/noisify/pkg/buildinfo"
	"github.com/matzehuels/noisify/pkg/config"
	"github.com/matzehuels/noisify/pkg/errors"
	"github.com/matzehuels/noisify/pkg/lines"
	"github.com/matzehuels/noisify/pkg/observability"
)

// runAnimation resolves the terminal width, loads the input and runs the
// animation until ctx is cancelled. Cancellation is a normal exit.
func (c *CLI) runAnimation(ctx context.Context, cmd *cobra.Command, opts options) error {
	ctx = withLogger(ctx, c.Logger)
	out := cmd.OutOrStdout()

	if opts.showTermWidth {
		width, err := c.terminalWidth()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, width)
		return nil
	}

	if err := errors.ValidateColumns(opts.columns); err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.configPath != "" {
		c.Logger.Debug("loaded config", "path", opts.configPath)
	}

	width, err := c.resolveWidth(opts)
	if err != nil {
		return err
	}

	buf, err := loadLines(ctx, lines.Options{
		Path:             opts.path,
		Stdin:            cmd.InOrStdin(),
		HorizontalMargin: opts.margin,
		VerticalMargin:   opts.vmargin,
	})
	if err != nil {
		return ignoreCancel(err)
	}

	columns := opts.columns
	if columns == 0 {
		columns = animate.Columns(width, lines.Width(buf[0]), opts.debug, cfg.DebugWidth)
	}

	seed := opts.seed
	if !opts.seedSet {
		seed = uint64(time.Now().UnixNano())
	}

	c.Logger.Debug("starting",
		"version", buildinfo.String(),
		"input", inputName(opts.path),
		"lines", len(buf),
		"line_width", lines.Width(buf[0]),
		"term_width", width,
		"columns", columns,
		"seed", seed,
	)
	observability.SetAnimationHooks(logHooks{logger: c.Logger})

	anim, err := animate.New(buf, animate.Options{
		Columns:     columns,
		NoNoise:     opts.noNoise,
		Debug:       opts.debug,
		Config:      &cfg,
		Rand:        animate.NewRand(seed),
		StylePrefix: renderDebugPrefix,
		Sleep:       c.sleep,
		MaxFrames:   opts.frames,
	})
	if err != nil {
		return err
	}

	if opts.tui {
		return ignoreCancel(runTUI(ctx, anim, tuiOptions{
			out:          out,
			ttyInput:     opts.path == "",
			fixedColumns: opts.columns > 0,
			debug:        opts.debug,
			debugWidth:   cfg.DebugWidth,
			maxFrames:    opts.frames,
		}))
	}
	return ignoreCancel(anim.Run(ctx, out))
}

// resolveWidth returns the explicit --term-width or the detected width.
// With a fixed --columns count the width is informational only, so a failed
// detection is not an error.
func (c *CLI) resolveWidth(opts options) (int, error) {
	if opts.termWidthSet {
		if err := errors.ValidateTermWidth(opts.termWidth); err != nil {
			return 0, err
		}
		return opts.termWidth, nil
	}

	width, err := c.terminalWidth()
	if err != nil {
		if opts.columns > 0 || opts.tui {
			c.Logger.Debug("terminal width unavailable", "err", err)
			return 0, nil
		}
		return 0, err
	}
	return width, nil
}

// loadLines runs lines.Load so that an interrupt is honoured while waiting on
// a slow or idle stdin.
func loadLines(ctx context.Context, opts lines.Options) ([]string, error) {
	type result struct {
		lines []string
		err   error
	}
	done := make(chan result, 1)
	go func() {
		buf, err := lines.Load(opts)
		done <- result{buf, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.lines, r.err
	}
}

// ignoreCancel treats context cancellation as a clean shutdown.
func ignoreCancel(err error) error {
	if err == context.Canceled {
		return nil
	}
	return err
}

func inputName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}
