package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorRed = lipgloss.Color("167") // Soft red - errors
	colorDim = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text, including the debug prefix.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconError = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconError = "✗"
)

// =============================================================================
// Status Output
// =============================================================================

// PrintError writes an error line to w.
func PrintError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// renderDebugPrefix styles the per-row rate readout.
func renderDebugPrefix(s string) string {
	return StyleDim.Render(s)
}
