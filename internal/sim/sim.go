package sim

import (
	"math/rand"

	"gravity-squares/internal/physics"
)

// Simulation owns the body collection and advances it tick by tick. All
// randomness flows through the generator handed to New, so runs are
// reproducible from a seed. Not safe for concurrent use; the driving loop
// is the only caller.
type Simulation struct {
	bodies []physics.Body
	count  int
	rng    *rand.Rand
}

// New returns an empty simulation drawing its randomness from rng.
// Nothing moves until Initialize is called.
func New(rng *rand.Rand) *Simulation {
	return &Simulation{rng: rng}
}

// Initialize replaces the collection with count fresh bodies spawned at the
// viewport center: canonical 100x100 size, uniform integer velocity in
// [-20, 20] on each axis, uniform random opaque color.
func (s *Simulation) Initialize(count int, bounds physics.Bounds) {
	if count < 0 {
		count = 0
	}
	s.count = count
	s.bodies = make([]physics.Body, 0, count)
	center := physics.NewVec2(bounds.Width/2, bounds.Height/2)
	for i := 0; i < count; i++ {
		s.bodies = append(s.bodies, physics.Body{
			Size:     physics.NewVec2(bodyWidth, bodyHeight),
			Position: center,
			Velocity: RandomVelocity(s.rng),
			Color:    RandomColor(s.rng),
		})
	}
}

// Reinitialize discards every body and spawns a fresh set of the same count.
// No state survives: positions, velocities, and colors are all redrawn.
func (s *Simulation) Reinitialize(bounds physics.Bounds) {
	s.Initialize(s.count, bounds)
}

// Tick advances every body one step and collects the wall contacts by body
// index. Bodies appear in the map only when they hit an edge this tick.
// The simulation never repaints bodies; callers apply their own policy to
// the returned contacts.
func (s *Simulation) Tick(world physics.World, bounds physics.Bounds) map[int][]physics.Contact {
	var hits map[int][]physics.Contact
	for i := range s.bodies {
		contacts := world.Advance(&s.bodies[i], bounds)
		if len(contacts) == 0 {
			continue
		}
		if hits == nil {
			hits = make(map[int][]physics.Contact)
		}
		hits[i] = contacts
	}
	return hits
}

// Bodies returns the live body slice in spawn order, for rendering and for
// repainting on contact. The slice is owned by the simulation and is only
// valid until the next Initialize or Reinitialize; callers must not grow it.
func (s *Simulation) Bodies() []physics.Body {
	return s.bodies
}

// Count returns the body count the simulation was last initialized with.
func (s *Simulation) Count() int {
	return s.count
}
