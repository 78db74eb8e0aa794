package physics

// Vec2 is a 2D vector with float64 components. Plain data: methods return
// new values and never mutate the receiver.
type Vec2 struct {
	X float64
	Y float64
}

// NewVec2 returns the vector (x, y).
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}
