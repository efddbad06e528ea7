package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/noisify/pkg/errors"
	"github.com/matzehuels/noisify/pkg/rate"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "noisify.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
bump_threshold = 0.5

[speed]
initial = 0.5
min = 0.05
max = 1.0
delta = -0.05
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.BumpThreshold != 0.5 {
		t.Errorf("BumpThreshold = %v, want 0.5", cfg.BumpThreshold)
	}
	want := rate.Params{Initial: 0.5, Min: 0.05, Max: 1.0, Delta: -0.05}
	if cfg.Speed != want {
		t.Errorf("Speed = %+v, want %+v", cfg.Speed, want)
	}
	if cfg.Chance != Default().Chance {
		t.Errorf("Chance = %+v, want default", cfg.Chance)
	}
	if cfg.DebugWidth != DefaultDebugWidth {
		t.Errorf("DebugWidth = %d, want %d", cfg.DebugWidth, DefaultDebugWidth)
	}
}

func TestLoadPartialTable(t *testing.T) {
	path := writeConfig(t, "[noise]\nmax = 0.5\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Noise.Max != 0.5 {
		t.Errorf("Noise.Max = %v, want 0.5", cfg.Noise.Max)
	}
	if cfg.Noise.Delta != Default().Noise.Delta {
		t.Errorf("Noise.Delta = %v, want default %v", cfg.Noise.Delta, Default().Noise.Delta)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax error", "speed = ["},
		{"unknown key", "colour = \"red\"\n"},
		{"unknown nested key", "[speed]\nfastest = 1\n"},
		{"inverted bounds", "[chance]\nmin = 0.9\nmax = 0.1\n"},
		{"negative speed", "[speed]\nmin = -1\n"},
		{"negative debug width", "debug_width = -3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load() of missing file succeeded")
	}
}
