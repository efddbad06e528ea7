// Package pkg provides the libraries behind noisify.
//
// # Overview
//
// Noisify scrolls a block of text forever while randomly blanking and
// corrupting it. The pkg directory is organized by concern:
//
//  1. [lines] - Input loading (read, pad, add margins)
//  2. [rate] - Bounded, randomly drifting scalars
//  3. [noise] - Blanking and character substitution
//  4. [animate] - The frame loop tying the above together
//  5. [config] - Tunable rate parameters, loadable from TOML
//  6. [errors] - Structured error codes for startup failures
//  7. [observability] - Hooks for watching frames and bumps
//
// # Architecture
//
// The data flow through noisify:
//
//	File or stdin
//	     ↓
//	[lines] package (normalize, margins)
//	     ↓
//	[animate] package (cursor, four [rate] managers)
//	     ↓
//	[noise] package (per-tile transform)
//	     ↓
//	Terminal
//
// # Quick Start
//
//	buf, err := lines.Load(lines.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	anim, err := animate.New(buf, animate.Options{Columns: 4})
//	if err != nil {
//	    return err
//	}
//	return anim.Run(ctx, os.Stdout)
package pkg
