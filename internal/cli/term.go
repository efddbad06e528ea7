package cli

import (
	"os"

	"golang.org/x/term"

	"github.com/matzehuels/noisify/pkg/errors"
)

// terminalWidthHelp is reported when the width cannot be detected, which
// happens whenever stdout is not a terminal.
const terminalWidthHelp = "Couldn't get terminal width. If you're sending the output to another " +
	"program, you may need to explicitly specify the terminal width using " +
	"--term-width=<number>. You can find the terminal width with --show-term-width."

// detectTerminalWidth returns the column count of the terminal attached to
// stdout.
func detectTerminalWidth() (int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, errors.New(errors.ErrCodeTerminalWidth, terminalWidthHelp)
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, errors.New(errors.ErrCodeTerminalWidth, terminalWidthHelp)
	}
	return w, nil
}
