package physics

// Edge identifies which side of the viewport a body hit during a tick.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// Contact records one wall hit produced by Advance. A body can produce
// several per tick: a corner hit yields a side edge plus top or bottom.
type Contact struct {
	Edge Edge
}

// A floor touch slower than bounceThreshold settles instead of bouncing;
// settled bodies bleed horizontal speed by groundFriction each tick.
// Fixed constants of the contact model, not configuration.
const (
	bounceThreshold = 0.5
	groundFriction  = 0.95
)

// Advance moves one body through one tick: gravity, air resistance, Euler
// integration with a unit time step, then wall/floor/ceiling resolution
// against bounds. The body is clamped back inside the viewport and the
// returned contacts say which edges it hit this tick. A floor touch below
// the bounce threshold settles the body and reports nothing.
func (w World) Advance(b *Body, bounds Bounds) []Contact {
	b.ApplyGravity(w.Gravity)
	b.ApplyAirResistance(w.AirResistance)
	b.UpdatePosition()

	onRight := b.Position.X >= bounds.Width-b.Size.X
	onLeft := b.Position.X <= 0
	onFloor := b.Position.Y >= bounds.Height-b.Size.Y
	onCeiling := b.Position.Y <= 0

	var contacts []Contact

	if onLeft || onRight {
		if onLeft {
			b.Position.X = 0
			contacts = append(contacts, Contact{Edge: EdgeLeft})
		}
		if onRight {
			b.Position.X = bounds.Width - b.Size.X
			contacts = append(contacts, Contact{Edge: EdgeRight})
		}
		// One reversal even when both sides touch at once.
		b.DampX(w.Damping)
	}

	if onFloor {
		b.Position.Y = bounds.Height - b.Size.Y
		if b.Velocity.Y > bounceThreshold {
			b.DampY(w.Damping)
			contacts = append(contacts, Contact{Edge: EdgeBottom})
		} else {
			// Settle: kill vertical motion, keep sliding with friction.
			b.Velocity.X *= groundFriction
			b.Velocity.Y = 0
		}
	}

	if onCeiling {
		b.Position.Y = 0
		b.DampY(w.Damping)
		contacts = append(contacts, Contact{Edge: EdgeTop})
	}

	return contacts
}
