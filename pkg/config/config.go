// Package config holds the tuning knobs of the animation.
//
// The defaults were tuned by eye until the effect felt right. They
// have no meaning beyond that, so any of them can be overridden from a TOML
// file:
//
//	bump_threshold = 0.9
//
//	[speed]
//	initial = 0.5
//	min     = 0.05
//	max     = 1.0
//	delta   = -0.05
//
// Keys that are not recognized are rejected rather than silently ignored.
package config

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/noisify/pkg/errors"
	"github.com/matzehuels/noisify/pkg/rate"
)

const (
	// DefaultBumpThreshold is the bumper rate at or above which speed and
	// chance get bumped after every frame.
	DefaultBumpThreshold = 0.83

	// DefaultDebugWidth is the number of columns the debug prefix occupies.
	DefaultDebugWidth = 26
)

// Config is the complete set of animation parameters.
type Config struct {
	// Speed is the frame delay in seconds. Its negative delta means a bump
	// speeds the scroll up.
	Speed rate.Params `toml:"speed"`

	// Chance is the probability that a tile is shown rather than blanked.
	Chance rate.Params `toml:"chance"`

	// Bumper drives the correlated bursts; see BumpThreshold.
	Bumper rate.Params `toml:"bumper"`

	// Noise is both the probability that a tile is noisified at all and the
	// per-character substitution probability once it is.
	Noise rate.Params `toml:"noise"`

	BumpThreshold float64 `toml:"bump_threshold"`
	DebugWidth    int     `toml:"debug_width"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Speed:         rate.Params{Initial: 1, Min: 0.1, Max: 2.5, Delta: -0.1},
		Chance:        rate.Params{Initial: 0.2, Min: 0.05, Max: 0.9, Delta: 0.05},
		Bumper:        rate.Params{Initial: 0.01, Min: 0.01, Max: 0.95, Delta: 0.1},
		Noise:         rate.Params{Initial: 0.1, Min: 0.01, Max: 0.99, Delta: -0.007},
		BumpThreshold: DefaultBumpThreshold,
		DebugWidth:    DefaultDebugWidth,
	}
}

// Load decodes the TOML file at path on top of [Default] and validates the
// result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every rate's bounds and the scalar settings.
func (c Config) Validate() error {
	for _, r := range []struct {
		name string
		p    rate.Params
	}{
		{"speed", c.Speed},
		{"chance", c.Chance},
		{"bumper", c.Bumper},
		{"noise", c.Noise},
	} {
		if err := r.p.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s rate", r.name)
		}
	}
	if c.Speed.Min < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "speed rate cannot go below zero")
	}
	if c.DebugWidth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "debug_width cannot be negative")
	}
	return nil
}
