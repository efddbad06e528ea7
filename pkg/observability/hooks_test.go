package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopAnimationHooks{}
	h.OnStart(ctx, 10, 4)
	h.OnFrame(ctx, Frame{Index: 1, Speed: 1, Chance: 0.2, Bumper: 0.01, Noise: 0.1})
	h.OnBump(ctx, 0.9)
	h.OnStop(ctx, 100, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Animation().(NoopAnimationHooks); !ok {
		t.Error("Animation() should return NoopAnimationHooks by default")
	}

	// Set custom hooks
	custom := &testAnimationHooks{}
	SetAnimationHooks(custom)
	if Animation() != custom {
		t.Error("SetAnimationHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Animation().(NoopAnimationHooks); !ok {
		t.Error("Reset() should restore NoopAnimationHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testAnimationHooks{}
	SetAnimationHooks(custom)

	// Setting nil should be ignored
	SetAnimationHooks(nil)

	if Animation() != custom {
		t.Error("SetAnimationHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testAnimationHooks struct{ NoopAnimationHooks }
