package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Config describes the window the sandbox runs in.
type Config struct {
	Width      int
	Height     int
	Title      string
	TargetFPS  int
	Background rl.Color
}

// Run opens the window and drives the main loop. Each frame it calls update
// (input and simulation), then clears the screen and calls draw. This keeps
// the graphics layer separate from simulation content.
// Returns when the window closes; ESC or the window button quits.
func Run(cfg Config, update, draw func()) {
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.TargetFPS))

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(cfg.Background)
		draw()
		rl.EndDrawing()
	}
}
