package sway

import (
	"encoding/json"
	"math"
)

// Spring is the simulation state of one scalar spring: current value,
// the target it is being pulled toward, and current velocity.
//
// Spring is an immutable value. Update returns the next-generation
// state and leaves its receiver untouched; thread the result of each
// call into the next to advance a single animation. The target is
// fixed at construction; to retarget, build a new Spring from the
// current Value.
type Spring struct {
	value    float64
	target   float64
	velocity float64
}

// Compile-time interface checks.
var (
	_ json.Marshaler   = Spring{}
	_ json.Unmarshaler = (*Spring)(nil)
)

// New creates a Spring at the given value, pulled toward target, with
// zero velocity.
func New(value, target float64) Spring {
	return Spring{value: value, target: target}
}

// Update advances the simulation by deltaMs milliseconds and returns
// the resulting Spring.
//
// If the spring is already within cfg's equilibrium threshold (both
// |value − target| and |velocity| strictly below it), Update snaps to
// an exact rest state (value = target, velocity = 0) and discards the
// residual offset. The snapped state is absorbing: further updates
// return it unchanged.
//
// Otherwise one semi-implicit Euler step is taken:
//
//	dt = deltaMs / 1000
//	a  = dt * ((target − value)·tension − velocity·friction)
//	v' = v + a
//	x' = x + v'·dt
//
// deltaMs is not clamped. Zero advances nothing (outside the rest
// zone); a negative delta integrates backward, which the formula
// permits but physics does not. Choosing sensible deltas is the
// caller's job. NaN and infinite inputs flow through untouched.
func (s Spring) Update(cfg Config, deltaMs float64) Spring {
	if math.Abs(s.value-s.target) < cfg.equilibriumThreshold &&
		math.Abs(s.velocity) < cfg.equilibriumThreshold {
		return Spring{value: s.target, target: s.target}
	}

	dt := deltaMs / 1000
	accel := dt * ((s.target-s.value)*cfg.tension - s.velocity*cfg.friction)
	vel := s.velocity + accel
	return Spring{
		value:    s.value + vel*dt,
		target:   s.target,
		velocity: vel,
	}
}

// Value returns the spring's current position.
func (s Spring) Value() float64 { return s.value }

// Target returns the value the spring is being pulled toward.
func (s Spring) Target() float64 { return s.target }

// Velocity returns the spring's current rate of change.
func (s Spring) Velocity() float64 { return s.velocity }

// AtRest reports whether the spring is in the exact rest state
// produced by Update's snap: value equal to target and velocity equal
// to zero, bit for bit. States that are merely within the equilibrium
// threshold report false until an Update snaps them.
func (s Spring) AtRest() bool {
	return s.value == s.target && s.velocity == 0
}

// Settle replays Update with a fixed deltaMs until the spring reaches
// rest or maxSteps updates have run, whichever comes first. It returns
// the final state and the number of updates taken.
func (s Spring) Settle(cfg Config, deltaMs float64, maxSteps int) (Spring, int) {
	for i := 0; i < maxSteps; i++ {
		s = s.Update(cfg, deltaMs)
		if s.AtRest() {
			return s, i + 1
		}
	}
	return s, maxSteps
}

// springJSON is the serialized form of a Spring.
type springJSON struct {
	Value    float64 `json:"value"`
	Target   float64 `json:"target"`
	Velocity float64 `json:"velocity"`
}

// MarshalJSON implements json.Marshaler.
func (s Spring) MarshalJSON() ([]byte, error) {
	return json.Marshal(springJSON{
		Value:    s.value,
		Target:   s.target,
		Velocity: s.velocity,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Spring) UnmarshalJSON(data []byte) error {
	var j springJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	s.value = j.Value
	s.target = j.Target
	s.velocity = j.Velocity
	return nil
}
