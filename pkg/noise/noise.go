// Package noise corrupts strings for the glitch effect.
//
// Both transforms are pure apart from the random draws they take from the
// caller's [Source], and both preserve the rune length of their input so
// tiled rows stay aligned.
package noise

import "strings"

// Alphabet is the set of runes [Noisify] substitutes in.
const Alphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"1234567890" +
	",.<>/?;:'\"!@#$%^&*()-_=+\\`~|[]{}"

var alphabet = []rune(Alphabet)

// Source is the subset of *rand.Rand used by the transforms.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// Maybe returns s with probability chance and otherwise a run of spaces of
// the same rune length.
func Maybe(src Source, s string, chance float64) string {
	if src.Float64() < chance {
		return s
	}
	return blank(s)
}

// Noisify replaces each rune of s, with probability factor, by a random rune
// from [Alphabet].
func Noisify(src Source, s string, factor float64) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if src.Float64() < factor {
			r = alphabet[src.IntN(len(alphabet))]
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Transform blanks s out with probability 1-chance, then noisifies it at the
// given intensity. Noise itself is gated by a second draw against intensity,
// so at low intensity most calls leave the text untouched.
func Transform(src Source, s string, chance, intensity float64) string {
	s = Maybe(src, s, chance)
	if src.Float64() < intensity {
		s = Noisify(src, s, intensity)
	}
	return s
}

// IsNoise reports whether r belongs to [Alphabet].
func IsNoise(r rune) bool {
	return strings.ContainsRune(Alphabet, r)
}

func blank(s string) string {
	n := 0
	for range s {
		n++
	}
	return strings.Repeat(" ", n)
}
