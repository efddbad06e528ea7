package noise

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 42^0xdeadbeef))
}

func TestAlphabet(t *testing.T) {
	seen := map[rune]bool{}
	for _, r := range Alphabet {
		if seen[r] {
			t.Errorf("duplicate rune %q in Alphabet", r)
		}
		seen[r] = true
	}
	if len(seen) != 94 {
		t.Errorf("Alphabet has %d runes, want 94", len(seen))
	}
	for _, r := range "aZ0~{" {
		if !IsNoise(r) {
			t.Errorf("IsNoise(%q) = false, want true", r)
		}
	}
	if IsNoise(' ') {
		t.Error("IsNoise(' ') = true, want false")
	}
}

func TestMaybe(t *testing.T) {
	rng := newRand()
	tests := []string{"", "hello", "  /\\_/\\  ", "héllo wörld"}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				if got := Maybe(rng, s, 1.0); got != s {
					t.Fatalf("Maybe(%q, 1) = %q, want input", s, got)
				}
				got := Maybe(rng, s, 0.0)
				if utf8.RuneCountInString(got) != utf8.RuneCountInString(s) {
					t.Fatalf("Maybe(%q, 0) length = %d, want %d", s, utf8.RuneCountInString(got), utf8.RuneCountInString(s))
				}
				if strings.Trim(got, " ") != "" {
					t.Fatalf("Maybe(%q, 0) = %q, want only spaces", s, got)
				}
			}
		})
	}
}

func TestMaybeMixes(t *testing.T) {
	rng := newRand()
	kept := 0
	for i := 0; i < 1000; i++ {
		if Maybe(rng, "x", 0.5) == "x" {
			kept++
		}
	}
	if kept < 350 || kept > 650 {
		t.Errorf("Maybe(_, 0.5) kept %d/1000, want roughly half", kept)
	}
}

func TestNoisifyZero(t *testing.T) {
	rng := newRand()
	s := "The quick brown fox"
	for i := 0; i < 100; i++ {
		if got := Noisify(rng, s, 0.0); got != s {
			t.Fatalf("Noisify(%q, 0) = %q, want input", s, got)
		}
	}
}

func TestNoisifyFull(t *testing.T) {
	rng := newRand()
	s := strings.Repeat(" ", 200)
	got := Noisify(rng, s, 1.0)

	if utf8.RuneCountInString(got) != 200 {
		t.Fatalf("length = %d, want 200", utf8.RuneCountInString(got))
	}
	for i, r := range got {
		if !IsNoise(r) {
			t.Fatalf("rune %d = %q, not in alphabet", i, r)
		}
	}
}

func TestNoisifyFullDiffers(t *testing.T) {
	rng := newRand()
	s := strings.Repeat("a", 1000)
	got := Noisify(rng, s, 1.0)

	same := 0
	for _, r := range got {
		if r == 'a' {
			same++
		}
	}
	// One in 83 picks lands on 'a' again.
	if same > 50 {
		t.Errorf("%d/1000 runes unchanged, want most to differ", same)
	}
}

func TestNoisifyPreservesMultibyteLength(t *testing.T) {
	rng := newRand()
	s := "░▒▓█▓▒░"
	got := Noisify(rng, s, 0.5)
	if utf8.RuneCountInString(got) != utf8.RuneCountInString(s) {
		t.Errorf("rune count = %d, want %d", utf8.RuneCountInString(got), utf8.RuneCountInString(s))
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name      string
		chance    float64
		intensity float64
		check     func(t *testing.T, in, out string)
	}{
		{
			name:      "always shown, no noise",
			chance:    1,
			intensity: 0,
			check: func(t *testing.T, in, out string) {
				if out != in {
					t.Errorf("got %q, want %q", out, in)
				}
			},
		},
		{
			name:      "always blank, no noise",
			chance:    0,
			intensity: 0,
			check: func(t *testing.T, in, out string) {
				if strings.TrimSpace(out) != "" || len(out) != len(in) {
					t.Errorf("got %q, want %d spaces", out, len(in))
				}
			},
		},
		{
			name:      "full noise",
			chance:    1,
			intensity: 1,
			check: func(t *testing.T, in, out string) {
				for _, r := range out {
					if !IsNoise(r) {
						t.Errorf("got %q, rune %q not noise", out, r)
						return
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := newRand()
			in := "  ascii art  "
			for i := 0; i < 50; i++ {
				tt.check(t, in, Transform(rng, in, tt.chance, tt.intensity))
			}
		})
	}
}
