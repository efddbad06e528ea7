// Package rate provides bounded, randomly drifting scalars.
//
// A [Manager] wraps a single value that wanders between a lower and upper
// bound. Each call to [Manager.Update] moves the value one step up, one step
// down, or leaves it alone; [Manager.Bump] applies a deterministic step. The
// animation drives four managers in lockstep (scroll speed, output chance,
// bump trigger and noise intensity) to produce its uneven, self-regulating
// rhythm.
//
// # Direction
//
// A step is always Rate += Delta. A negative Delta therefore makes "up" mean
// smaller, which the speed manager relies on: bumping it shortens the frame
// delay.
//
// # Randomness
//
// Managers hold no generator of their own. Callers pass a [Source], normally
// a seeded *rand.Rand from math/rand/v2, so a whole animation can be replayed
// from one seed.
package rate
