package physics

import "testing"

// TestApplyGravity tests that gravity accelerates the vertical velocity only.
func TestApplyGravity(t *testing.T) {
	b := NewBody(NewVec2(100, 100), NewVec2(0, 0), NewVec2(3, -2))
	b.ApplyGravity(0.5)

	if b.Velocity.Y != -1.5 {
		t.Errorf("Expected velocity.Y -1.5 after gravity, got %v", b.Velocity.Y)
	}
	if b.Velocity.X != 3 {
		t.Errorf("Expected velocity.X untouched by gravity, got %v", b.Velocity.X)
	}
}

// TestApplyAirResistance tests that drag scales the horizontal velocity only.
func TestApplyAirResistance(t *testing.T) {
	b := NewBody(NewVec2(100, 100), NewVec2(0, 0), NewVec2(10, 4))
	b.ApplyAirResistance(0.5)

	if b.Velocity.X != 5 {
		t.Errorf("Expected velocity.X 5 after air resistance, got %v", b.Velocity.X)
	}
	if b.Velocity.Y != 4 {
		t.Errorf("Expected velocity.Y untouched by air resistance, got %v", b.Velocity.Y)
	}
}

// TestDamp tests that DampX and DampY reverse and scale their axis.
func TestDamp(t *testing.T) {
	b := NewBody(NewVec2(100, 100), NewVec2(0, 0), NewVec2(10, -20))

	b.DampX(0.9)
	if b.Velocity.X != -9 {
		t.Errorf("Expected velocity.X -9 after DampX, got %v", b.Velocity.X)
	}

	b.DampY(0.9)
	if b.Velocity.Y != 18 {
		t.Errorf("Expected velocity.Y 18 after DampY, got %v", b.Velocity.Y)
	}
}

// TestUpdatePosition tests one Euler step: position moves by exactly the velocity.
func TestUpdatePosition(t *testing.T) {
	b := NewBody(NewVec2(100, 100), NewVec2(50, 60), NewVec2(-3, 4))
	b.UpdatePosition()

	want := Vec2{X: 47, Y: 64}
	if b.Position != want {
		t.Errorf("Expected position %v, got %v", want, b.Position)
	}
	if b.Velocity != (Vec2{X: -3, Y: 4}) {
		t.Errorf("Expected velocity unchanged by integration, got %v", b.Velocity)
	}
}
