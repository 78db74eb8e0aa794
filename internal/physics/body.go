package physics

import "image/color"

// Body is an axis-aligned square moving through the viewport.
// Position is the top-left corner; Position + Size is the bottom-right.
// Color rides along so presentation code can repaint a body on impact
// without a lookup elsewhere.
type Body struct {
	Size     Vec2
	Position Vec2
	Velocity Vec2
	Color    color.RGBA
}

// NewBody returns a body with the given size, position, and velocity.
// Size components must be positive for the boundary predicates to make
// sense; this is not checked.
func NewBody(size, position, velocity Vec2) *Body {
	return &Body{
		Size:     size,
		Position: position,
		Velocity: velocity,
	}
}

// ApplyGravity adds the per-tick gravity acceleration to the vertical
// velocity. Y grows downward, so positive gravity pulls toward the floor.
func (b *Body) ApplyGravity(gravity float64) {
	b.Velocity.Y += gravity
}

// ApplyAirResistance scales the horizontal velocity by the drag factor k.
// Vertical velocity is left alone; gravity shapes it between contacts.
func (b *Body) ApplyAirResistance(k float64) {
	b.Velocity.X *= k
}

// DampX reverses the horizontal velocity, scaled by the damping factor.
func (b *Body) DampX(damping float64) {
	b.Velocity.X *= -damping
}

// DampY reverses the vertical velocity, scaled by the damping factor.
func (b *Body) DampY(damping float64) {
	b.Velocity.Y *= -damping
}

// UpdatePosition integrates one tick of movement: position += velocity.
func (b *Body) UpdatePosition() {
	b.Position = b.Position.Add(b.Velocity)
}
