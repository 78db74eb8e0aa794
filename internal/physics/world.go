package physics

// Default parameters for a standard run. Gravity is per-tick acceleration,
// the other two are per-tick multipliers.
const (
	DefaultGravity       = 0.5
	DefaultDamping       = 0.9
	DefaultAirResistance = 0.995
)

// World holds the forces applied to every body on every tick. Advance only
// reads it, so one World value can be shared across all bodies of a frame.
// Gravity is expected >= 0 (Y grows downward); Damping and AirResistance in
// [0, 1]. Out-of-range values are accepted and produce wilder runs.
type World struct {
	Gravity       float64
	Damping       float64
	AirResistance float64
}

// NewWorld returns a world with the default parameter set.
func NewWorld() World {
	return World{
		Gravity:       DefaultGravity,
		Damping:       DefaultDamping,
		AirResistance: DefaultAirResistance,
	}
}

// Bounds is the simulated viewport in pixels. The collision pass keeps every
// body inside [0, Width-Size.X] x [0, Height-Size.Y].
type Bounds struct {
	Width  float64
	Height float64
}
