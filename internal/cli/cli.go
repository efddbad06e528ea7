// Package cli implements the noisify command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/noisify/pkg/animate"
	"github.com/matzehuels/noisify/pkg/buildinfo"
	"github.com/matzehuels/noisify/pkg/lines"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "noisify"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// terminalWidth detects the width of the output terminal.
	// Tests replace it.
	terminalWidth func() (int, error)

	// sleep overrides the wait between frames. Nil uses animate.Sleep.
	sleep animate.SleepFunc
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:        newLogger(w, level),
		terminalWidth: detectTerminalWidth,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. The root command runs the
// animation; completion is the only subcommand.
func (c *CLI) RootCommand() *cobra.Command {
	opts := options{
		margin:  lines.DefaultHorizontalMargin,
		vmargin: lines.DefaultVerticalMargin,
	}

	root := &cobra.Command{
		Use:   appName + " [FILENAME]",
		Short: "Infinitely scroll text or ASCII art with added textual noise",
		Long: `Noisify scrolls a piece of text or ASCII art forever, tiled across the
terminal, while randomly blanking tiles and corrupting characters.

Input is read from FILENAME, or from standard input when no file is given.
Scroll speed, density and noise drift on their own and occasionally flare
up together. Press Ctrl+C to stop.`,
		Args:         cobra.MaximumNArgs(1),
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.path = args[0]
			}
			opts.termWidthSet = cmd.Flags().Changed("term-width")
			opts.seedSet = cmd.Flags().Changed("seed")
			return c.runAnimation(cmd.Context(), cmd, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.Flags()
	flags.BoolVar(&opts.noNoise, "no-noise", false, "don't add noise")
	flags.BoolVar(&opts.debug, "debug", false, "show debugging information")
	flags.BoolVar(&opts.showTermWidth, "show-term-width", false, "show current terminal window's width and exit")
	flags.IntVar(&opts.termWidth, "term-width", 0, "terminal width to use instead of auto-detecting it")
	flags.IntVar(&opts.columns, "columns", 0, "fixed number of tiles per row (default: fill the terminal)")
	flags.IntVar(&opts.margin, "margin", opts.margin, "blank columns on each side of the input")
	flags.IntVar(&opts.vmargin, "vmargin", opts.vmargin, "blank rows below the input")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed for a reproducible animation (default: time-based)")
	flags.StringVar(&opts.configPath, "config", "", "TOML file overriding the rate parameters")
	flags.BoolVar(&opts.tui, "tui", false, "run full-screen in the alternate screen buffer")
	flags.IntVar(&opts.frames, "frames", 0, "stop after this many frames (default: run forever)")

	root.AddCommand(c.completionCommand())

	return root
}

// options collects the root command's flags.
type options struct {
	path          string
	noNoise       bool
	debug         bool
	showTermWidth bool
	termWidth     int
	termWidthSet  bool
	columns       int
	margin        int
	vmargin       int
	seed          uint64
	seedSet       bool
	configPath    string
	tui           bool
	frames        int
}
