package animate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/matzehuels/noisify/pkg/config"
	"github.com/matzehuels/noisify/pkg/errors"
	"github.com/matzehuels/noisify/pkg/lines"
	"github.com/matzehuels/noisify/pkg/noise"
	"github.com/matzehuels/noisify/pkg/observability"
	"github.com/matzehuels/noisify/pkg/rate"
)

// Source is the random generator the animation draws from. *rand.Rand
// satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// SleepFunc blocks for d or until ctx is done, returning ctx.Err() in the
// latter case.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Options configures an [Animator].
type Options struct {
	// Columns is the number of tiles per row. Values below 1 mean 1.
	Columns int

	// NoNoise tiles the raw line without blanking or substitution.
	NoNoise bool

	// Debug prefixes every row with the current rate values.
	Debug bool

	// Config supplies the rate parameters and bump threshold.
	// The zero value is replaced by config.Default().
	Config *config.Config

	// Rand is the generator for every random draw. Defaults to a
	// time-seeded PCG.
	Rand Source

	// StylePrefix decorates the debug prefix. Defaults to identity.
	StylePrefix func(string) string

	// Sleep replaces the inter-frame wait. Defaults to a context-aware timer.
	Sleep SleepFunc

	// MaxFrames stops [Animator.Run] after that many frames. Zero runs until
	// the context is cancelled.
	MaxFrames int
}

// Animator renders frames from a fixed line buffer.
//
// An Animator is not safe for concurrent use.
type Animator struct {
	lines     []string
	columns   int
	noNoise   bool
	debug     bool
	threshold float64
	rng       Source
	style     func(string) string
	sleep     SleepFunc
	maxFrames int

	Speed  *rate.Manager
	Chance *rate.Manager
	Bumper *rate.Manager
	Noise  *rate.Manager

	cursor int
	frames int
}

// New creates an Animator over buf. It fails with ErrCodeNoInput when buf is
// empty.
func New(buf []string, opts Options) (*Animator, error) {
	if len(buf) == 0 {
		return nil, errors.New(errors.ErrCodeNoInput, "no input")
	}

	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Animator{
		lines:     buf,
		columns:   max(opts.Columns, 1),
		noNoise:   opts.NoNoise,
		debug:     opts.Debug,
		threshold: cfg.BumpThreshold,
		rng:       opts.Rand,
		style:     opts.StylePrefix,
		sleep:     opts.Sleep,
		maxFrames: opts.MaxFrames,
		Speed:     rate.New("speed", cfg.Speed),
		Chance:    rate.New("chance", cfg.Chance),
		Bumper:    rate.New("bumper", cfg.Bumper),
		Noise:     rate.New("noise", cfg.Noise),
	}
	if a.rng == nil {
		a.rng = NewRand(uint64(time.Now().UnixNano()))
	}
	if a.style == nil {
		a.style = func(s string) string { return s }
	}
	if a.sleep == nil {
		a.sleep = Sleep
	}
	return a, nil
}

// NewRand returns a PCG generator seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Columns returns how many copies of a line of lineWidth fit in termWidth,
// after reserving debugWidth columns when debug is on. The result is at
// least 1.
func Columns(termWidth, lineWidth int, debug bool, debugWidth int) int {
	if debug {
		termWidth -= debugWidth
	}
	if lineWidth <= 0 {
		return 1
	}
	return max(termWidth/lineWidth, 1)
}

// Cursor returns the index of the line the next frame is built from.
func (a *Animator) Cursor() int { return a.cursor }

// Frames returns the number of frames produced so far.
func (a *Animator) Frames() int { return a.frames }

// Delay returns the current inter-frame delay.
func (a *Animator) Delay() time.Duration {
	return time.Duration(a.Speed.Rate * float64(time.Second))
}

// SetColumns changes the number of tiles per row. Values below 1 mean 1.
func (a *Animator) SetColumns(n int) { a.columns = max(n, 1) }

// LineWidth returns the width of the buffer's first line.
func (a *Animator) LineWidth() int { return lines.Width(a.lines[0]) }

// Row builds the row for the current line without advancing anything.
func (a *Animator) Row() string {
	line := a.lines[a.cursor]

	var b strings.Builder
	if a.debug {
		b.WriteString(a.style(a.debugPrefix()))
		b.WriteByte(' ')
	}
	for range a.columns {
		b.WriteString(a.tile(line))
	}
	return b.String()
}

// Frame builds the row for the current line, advances the cursor and lets
// every rate drift once. It does not sleep or bump.
func (a *Animator) Frame(ctx context.Context) string {
	row := a.Row()
	cursor := a.cursor

	a.cursor = (a.cursor + 1) % len(a.lines)
	a.Bumper.Update(a.rng)
	a.Chance.Update(a.rng)
	a.Noise.Update(a.rng)
	a.Speed.Update(a.rng)

	observability.Animation().OnFrame(ctx, observability.Frame{
		Index:   a.frames,
		Cursor:  cursor,
		Columns: a.columns,
		Speed:   a.Speed.Rate,
		Chance:  a.Chance.Rate,
		Bumper:  a.Bumper.Rate,
		Noise:   a.Noise.Rate,
	})
	a.frames++
	return row
}

// Settle bumps speed and chance when the bumper is at or above the
// threshold, and reports whether it did.
func (a *Animator) Settle(ctx context.Context) bool {
	if a.Bumper.Rate < a.threshold {
		return false
	}
	a.Speed.Bump()
	a.Chance.Bump()
	observability.Animation().OnBump(ctx, a.Bumper.Rate)
	return true
}

// Run writes frames to w until ctx is cancelled or MaxFrames is reached.
// Each row is flushed as soon as it is written. Run returns ctx.Err() on
// cancellation and nil when MaxFrames is reached.
func (a *Animator) Run(ctx context.Context, w io.Writer) (err error) {
	start := time.Now()
	hooks := observability.Animation()
	hooks.OnStart(ctx, len(a.lines), a.columns)
	defer func() {
		hooks.OnStop(ctx, a.frames, time.Since(start), err)
	}()

	bw := bufio.NewWriter(w)
	for a.maxFrames == 0 || a.frames < a.maxFrames {
		if err := ctx.Err(); err != nil {
			return err
		}

		row := a.Frame(ctx)
		if _, err := fmt.Fprintln(bw, row); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write frame")
		}
		if err := bw.Flush(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "flush frame")
		}

		if err := a.sleep(ctx, a.Delay()); err != nil {
			return err
		}
		a.Settle(ctx)
	}
	return nil
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (a *Animator) tile(line string) string {
	if a.noNoise {
		return line
	}
	return noise.Transform(a.rng, line, a.Chance.Rate, a.Noise.Rate)
}

func (a *Animator) debugPrefix() string {
	return fmt.Sprintf("R%3.1f C%.2f B%.2f N%.2f|",
		a.Speed.Rate, a.Chance.Rate, a.Bumper.Rate, a.Noise.Rate)
}
