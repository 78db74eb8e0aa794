package sim

import (
	"image/color"
	"math/rand"

	"gravity-squares/internal/physics"
)

// Canonical body parameters used by Initialize. The viewport is
// configurable; the squares themselves are not.
const (
	bodyWidth  = 100
	bodyHeight = 100
	// maxStartSpeed bounds the uniform integer velocity draw on each axis.
	maxStartSpeed = 20
)

// RandomVelocity draws a uniform integer velocity in [-20, 20] per axis.
// The draw is integral; the physics itself runs on float64.
func RandomVelocity(rng *rand.Rand) physics.Vec2 {
	return physics.NewVec2(
		float64(rng.Intn(2*maxStartSpeed+1)-maxStartSpeed),
		float64(rng.Intn(2*maxStartSpeed+1)-maxStartSpeed),
	)
}

// RandomColor draws a uniform opaque color over the full RGB cube.
// Impact repaints use the same distribution as the initial paint.
func RandomColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 255,
	}
}
