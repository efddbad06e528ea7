// Package animate drives the scrolling glitch animation.
//
// An [Animator] owns the loaded line buffer, a cursor into it, and four
// [rate.Manager] values:
//
//   - speed: the delay between frames, in seconds
//   - chance: the probability that a tile is shown instead of blanked
//   - bumper: when at or above the bump threshold, speed and chance are bumped
//   - noise: the probability and intensity of character substitution
//
// Each frame tiles the current line across the row, running every tile
// through [noise.Transform] independently, then advances the cursor and lets
// every rate drift. [Animator.Run] adds the sleep and the bump and repeats
// until its context is cancelled.
//
// # Frame Order
//
// A single iteration of [Animator.Run] is:
//
//  1. Build the row from lines[cursor] ([Animator.Frame])
//  2. Write the row and a newline, then flush
//  3. Advance the cursor cyclically
//  4. Update bumper, chance, noise and speed
//  5. Sleep for speed seconds
//  6. Bump speed and chance if bumper ≥ threshold ([Animator.Settle])
//
// Callers that manage their own timing, such as the full-screen mode, call
// [Animator.Frame], wait [Animator.Delay], and call [Animator.Settle].
package animate
