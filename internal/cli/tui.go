package cli

import (
	"context"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/noisify/pkg/animate"
)

// =============================================================================
// AnimationModel - Full-screen animation
// =============================================================================

// frameMsg asks the model to render the next frame.
type frameMsg struct{}

// tuiOptions configures runTUI.
type tuiOptions struct {
	out          io.Writer
	ttyInput     bool // stdin carried the text, so read keys from the TTY
	fixedColumns bool
	debug        bool
	debugWidth   int
	maxFrames    int
}

// AnimationModel is the bubbletea model for --tui. It keeps the most recent
// rows that fit on screen and re-tiles on resize.
type AnimationModel struct {
	ctx     context.Context
	anim    *animate.Animator
	opts    tuiOptions
	rows    []string
	height  int
	pending bool // a frame was shown and its bump check is due
}

// NewAnimationModel creates a model driving anim.
func NewAnimationModel(ctx context.Context, anim *animate.Animator, opts tuiOptions) AnimationModel {
	return AnimationModel{ctx: ctx, anim: anim, opts: opts, height: 24}
}

func (m AnimationModel) Init() tea.Cmd {
	return func() tea.Msg { return frameMsg{} }
}

func (m AnimationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height, 1)
		if !m.opts.fixedColumns {
			m.anim.SetColumns(animate.Columns(msg.Width, m.anim.LineWidth(), m.opts.debug, m.opts.debugWidth))
		}
		m.rows = lastN(m.rows, m.height)
	case frameMsg:
		if m.pending {
			m.anim.Settle(m.ctx)
		}
		if m.opts.maxFrames > 0 && m.anim.Frames() >= m.opts.maxFrames {
			return m, tea.Quit
		}
		m.rows = lastN(append(m.rows, m.anim.Frame(m.ctx)), m.height)
		m.pending = true
		return m, tea.Tick(m.anim.Delay(), func(time.Time) tea.Msg { return frameMsg{} })
	}
	return m, nil
}

func (m AnimationModel) View() string {
	return strings.Join(m.rows, "\n")
}

// Rows returns the rows currently on screen, oldest first.
func (m AnimationModel) Rows() []string {
	return m.rows
}

// runTUI runs the animation in the alternate screen until the user quits or
// ctx is cancelled.
func runTUI(ctx context.Context, anim *animate.Animator, opts tuiOptions) error {
	logger := loggerFromContext(ctx)

	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(opts.out),
	}
	if opts.ttyInput {
		progOpts = append(progOpts, tea.WithInputTTY())
	}

	logger.Debug("starting full-screen mode")
	if _, err := tea.NewProgram(NewAnimationModel(ctx, anim, opts), progOpts...).Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// lastN returns the final n elements of rows.
func lastN(rows []string, n int) []string {
	if len(rows) <= n {
		return rows
	}
	return rows[len(rows)-n:]
}
