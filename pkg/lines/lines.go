// Package lines loads the text that the animation scrolls.
//
// Input is read once into an ordered slice of strings. [Load] then pads every
// line to a common width and frames the block with blank margins so that tiled
// copies sit apart from one another on screen.
//
// Widths are counted in runes, matching how the noise transforms count them.
package lines

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/noisify/pkg/errors"
)

// Default margin sizes.
const (
	DefaultHorizontalMargin = 3
	DefaultVerticalMargin   = 1
)

// maxLineSize bounds a single input line. ASCII art rarely gets close.
const maxLineSize = 1 << 20

// Options configures [Load].
type Options struct {
	// Path is the input file. Empty means read from Stdin.
	Path string

	// Stdin is used when Path is empty. Defaults to os.Stdin.
	Stdin io.Reader

	// HorizontalMargin is the number of blank columns added on each side.
	HorizontalMargin int

	// VerticalMargin is the number of blank rows appended at the bottom.
	VerticalMargin int
}

// DefaultOptions returns options that read stdin with the standard margins.
func DefaultOptions() Options {
	return Options{
		HorizontalMargin: DefaultHorizontalMargin,
		VerticalMargin:   DefaultVerticalMargin,
	}
}

// Load reads the input described by opts, normalizes its line lengths and
// adds margins. It fails with ErrCodeNoInput if the input has no lines.
func Load(opts Options) ([]string, error) {
	if err := errors.ValidateMargins(opts.HorizontalMargin, opts.VerticalMargin); err != nil {
		return nil, err
	}

	var (
		lines []string
		err   error
	)
	if opts.Path != "" {
		lines, err = ReadFile(opts.Path)
	} else {
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		lines, err = Read(in)
	}
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New(errors.ErrCodeNoInput, "no input")
	}

	return AddMargins(NormalizeLengths(lines), opts.HorizontalMargin, opts.VerticalMargin), nil
}

// ReadFile reads the lines of the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	lines, err := Read(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return lines, nil
}

// Read returns every line of r with its line terminator removed. A final line
// without a trailing newline is kept; a trailing newline does not produce an
// extra empty line.
func Read(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
	}
	return lines, nil
}

// NormalizeLengths returns a copy of lines with each line right-padded with
// spaces to the length of the longest one.
func NormalizeLengths(lines []string) []string {
	width := MaxWidth(lines)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + strings.Repeat(" ", width-Width(line))
	}
	return out
}

// AddMargins returns a copy of lines with horizontal blank columns on both
// sides of every line and vertical blank rows appended at the bottom.
// The blank rows are as wide as the padded lines. Lines are expected to share
// a common width, as produced by [NormalizeLengths].
func AddMargins(lines []string, horizontal, vertical int) []string {
	if len(lines) == 0 {
		return nil
	}

	pad := strings.Repeat(" ", horizontal)
	blankRow := strings.Repeat(" ", Width(lines[0]))

	out := make([]string, 0, len(lines)+vertical)
	out = append(out, lines...)
	for range vertical {
		out = append(out, blankRow)
	}
	for i, line := range out {
		out[i] = pad + line + pad
	}
	return out
}

// Width returns the length of s in runes.
func Width(s string) int {
	return utf8.RuneCountInString(s)
}

// MaxWidth returns the width of the longest line, or 0 for no lines.
func MaxWidth(lines []string) int {
	width := 0
	for _, line := range lines {
		width = max(width, Width(line))
	}
	return width
}
