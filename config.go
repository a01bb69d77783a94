package sway

import (
	"encoding/json"
	"math"
)

// DefaultEquilibriumThreshold is the rest threshold assigned by
// NewConfig: the largest distance-to-target and velocity magnitude at
// which Update snaps the spring to its target.
const DefaultEquilibriumThreshold = 0.05

// Config holds the tunable parameters governing spring dynamics.
//
// Config is an immutable value: WithEquilibriumThreshold returns a
// modified copy, and nothing mutates a Config after construction.
type Config struct {
	tension              float64
	friction             float64
	equilibriumThreshold float64
}

// Preset configurations, the classic tension/friction pairings.
var (
	NoWobble = NewConfig(170, 26) // settles quickly without overshoot
	Gentle   = NewConfig(120, 14)
	Wobbly   = NewConfig(180, 12)
	Stiff    = NewConfig(210, 20)
)

// Compile-time interface checks.
var (
	_ json.Marshaler   = Config{}
	_ json.Unmarshaler = (*Config)(nil)
)

// NewConfig creates a Config with the given tension and friction and
// the default equilibrium threshold of 0.05.
//
// No validation is performed: zero or negative values are accepted,
// and the resulting degenerate behavior (non-convergence, oscillation,
// instant snapping) is the caller's to tune away.
func NewConfig(tension, friction float64) Config {
	return Config{
		tension:              tension,
		friction:             friction,
		equilibriumThreshold: DefaultEquilibriumThreshold,
	}
}

// WithEquilibriumThreshold returns a copy of c with the rest threshold
// replaced. The sign is not checked; a zero or negative threshold
// disables the snap-to-rest fast path in Update entirely.
func (c Config) WithEquilibriumThreshold(threshold float64) Config {
	c.equilibriumThreshold = threshold
	return c
}

// Tension returns the proportional gain pulling value toward target.
func (c Config) Tension() float64 { return c.tension }

// Friction returns the damping coefficient opposing velocity.
func (c Config) Friction() float64 { return c.friction }

// EquilibriumThreshold returns the rest threshold used by Update.
func (c Config) EquilibriumThreshold() float64 {
	return c.equilibriumThreshold
}

// CriticalFriction returns the friction at which a spring with the
// given tension settles fastest without overshoot: 2·√tension for the
// unit mass this integrator models. Less friction oscillates, more
// creeps.
func CriticalFriction(tension float64) float64 {
	return 2 * math.Sqrt(tension)
}

// configJSON is the serialized form of a Config.
type configJSON struct {
	Tension              float64 `json:"tension"`
	Friction             float64 `json:"friction"`
	EquilibriumThreshold float64 `json:"equilibrium_threshold"`
}

// MarshalJSON implements json.Marshaler.
func (c Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(configJSON{
		Tension:              c.tension,
		Friction:             c.friction,
		EquilibriumThreshold: c.equilibriumThreshold,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Config) UnmarshalJSON(data []byte) error {
	var j configJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	c.tension = j.Tension
	c.friction = j.Friction
	c.equilibriumThreshold = j.EquilibriumThreshold
	return nil
}
