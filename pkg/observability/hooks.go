// Package observability provides hooks for watching the animation run.
//
// The animation loop reports every frame and every bump through a registered
// [AnimationHooks] implementation. The default is a no-op; the CLI installs a
// logging implementation under --verbose.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for the events the loop emits
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so pkg/animate never
// depends on a logger or metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetAnimationHooks(&myHooks{})
//	    // ... run application
//	}
//
// The loop calls hooks to emit events:
//
//	observability.Animation().OnFrame(ctx, frame)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Animation Hooks
// =============================================================================

// Frame describes one printed row and the rate values it was produced with.
type Frame struct {
	Index   int     // Frames printed before this one
	Cursor  int     // Line index the row was built from
	Columns int     // Tiles in the row
	Speed   float64 // Delay in seconds before the next frame
	Chance  float64
	Bumper  float64
	Noise   float64
}

// AnimationHooks receives events from the animation loop.
type AnimationHooks interface {
	// OnStart is called once before the first frame.
	OnStart(ctx context.Context, lineCount, columns int)

	// OnFrame is called after a row is written and the rates are updated.
	OnFrame(ctx context.Context, f Frame)

	// OnBump is called when the bumper crosses its threshold.
	OnBump(ctx context.Context, bumper float64)

	// OnStop is called when the loop returns.
	OnStop(ctx context.Context, frames int, elapsed time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAnimationHooks is a no-op implementation of AnimationHooks.
type NoopAnimationHooks struct{}

func (NoopAnimationHooks) OnStart(context.Context, int, int)                 {}
func (NoopAnimationHooks) OnFrame(context.Context, Frame)                    {}
func (NoopAnimationHooks) OnBump(context.Context, float64)                   {}
func (NoopAnimationHooks) OnStop(context.Context, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	animationHooks AnimationHooks = NoopAnimationHooks{}
	hooksMu        sync.RWMutex
)

// SetAnimationHooks registers custom animation hooks.
// This should be called once at application startup before the loop runs.
func SetAnimationHooks(h AnimationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		animationHooks = h
	}
}

// Animation returns the registered animation hooks.
func Animation() AnimationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return animationHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	animationHooks = NoopAnimationHooks{}
}
