package rate

import (
	"fmt"

	"github.com/matzehuels/noisify/pkg/errors"
)

// Drift thresholds for [Manager.Update]. Draws above stepUp add Delta,
// draws below stepDown subtract it.
const (
	stepUp   = 0.6
	stepDown = 0.4
)

// Source is the subset of *rand.Rand used by a [Manager].
type Source interface {
	Float64() float64
}

// Params describes the shape of a [Manager]. The TOML tags let a config file
// override any of them.
type Params struct {
	Initial float64 `toml:"initial"`
	Min     float64 `toml:"min"`
	Max     float64 `toml:"max"`
	Delta   float64 `toml:"delta"`
}

// Validate reports whether the bounds are usable.
func (p Params) Validate() error {
	if p.Min > p.Max {
		return errors.New(errors.ErrCodeInvalidConfig, "min %g exceeds max %g", p.Min, p.Max)
	}
	return nil
}

// Manager holds one bounded value. The zero value is a manager pinned at 0.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	Name  string
	Rate  float64
	Min   float64
	Max   float64
	Delta float64
}

// New creates a manager from p. The initial value is clamped into [Min, Max].
func New(name string, p Params) *Manager {
	m := &Manager{
		Name:  name,
		Rate:  p.Initial,
		Min:   p.Min,
		Max:   p.Max,
		Delta: p.Delta,
	}
	m.clamp()
	return m
}

// Update draws once from src and moves the rate by Delta, by -Delta, or not
// at all, then clamps.
func (m *Manager) Update(src Source) {
	r := src.Float64()
	switch {
	case r > stepUp:
		m.Rate += m.Delta
	case r < stepDown:
		m.Rate -= m.Delta
	}
	m.clamp()
}

// Bump adds Delta unconditionally and clamps.
func (m *Manager) Bump() {
	m.Rate += m.Delta
	m.clamp()
}

// Params returns the manager's current shape with Rate as the initial value.
func (m *Manager) Params() Params {
	return Params{Initial: m.Rate, Min: m.Min, Max: m.Max, Delta: m.Delta}
}

func (m *Manager) String() string {
	return fmt.Sprintf("%s=%.3f [%g, %g]", m.Name, m.Rate, m.Min, m.Max)
}

func (m *Manager) clamp() {
	m.Rate = max(m.Min, min(m.Rate, m.Max))
}
