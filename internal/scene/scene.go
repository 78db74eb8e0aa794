package scene

import (
	"image/color"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gravity-squares/internal/physics"
	"gravity-squares/internal/sim"
)

// Scene draws the simulation and owns the impact repaint policy: any body
// that reported a contact this tick gets a fresh random color before it is
// drawn again. The simulation itself never touches colors.
type Scene struct {
	rng *rand.Rand
}

// New returns a scene drawing repaint colors from rng.
func New(rng *rand.Rand) *Scene {
	return &Scene{rng: rng}
}

// Recolor repaints every body listed in hits with a fresh random draw, one
// repaint per body however many edges it touched. Bodies are visited in
// index order so a seeded run repaints reproducibly.
func (s *Scene) Recolor(sb *sim.Simulation, hits map[int][]physics.Contact) {
	if len(hits) == 0 {
		return
	}
	bodies := sb.Bodies()
	for i := range bodies {
		if _, ok := hits[i]; ok {
			bodies[i].Color = sim.RandomColor(s.rng)
		}
	}
}

// Draw renders every body as a filled rectangle in its current color.
// Call between BeginDrawing and EndDrawing, after the background clear.
func (s *Scene) Draw(sb *sim.Simulation) {
	for _, b := range sb.Bodies() {
		rl.DrawRectangleRec(bodyRect(b), bodyColor(b.Color))
	}
}

// bodyRect converts a body's position and size to a raylib rectangle.
// Coordinates stay float64 in the simulation; raylib gets float32.
func bodyRect(b physics.Body) rl.Rectangle {
	return rl.NewRectangle(
		float32(b.Position.X),
		float32(b.Position.Y),
		float32(b.Size.X),
		float32(b.Size.Y),
	)
}

// bodyColor converts the simulation's color type to raylib's.
func bodyColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
