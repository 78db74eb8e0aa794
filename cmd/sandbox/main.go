package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gravity-squares/internal/config"
	"gravity-squares/internal/debug"
	"gravity-squares/internal/env"
	"gravity-squares/internal/graphics"
	"gravity-squares/internal/input"
	"gravity-squares/internal/logger"
	"gravity-squares/internal/scene"
	"gravity-squares/internal/sim"
)

func main() {
	log := logger.New()
	_ = env.Load(".env")

	path := os.Getenv("SANDBOX_CONFIG")
	if path == "" {
		path = config.DefaultPath
	}
	cfg, _ := config.Load(path)

	// Flags default to the loaded config, so precedence is defaults < file < flags.
	writeConfig := flag.Bool("write-config", false, "write the effective config to the config file and exit")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "viewport width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "viewport height in pixels")
	flag.IntVar(&cfg.Bodies, "bodies", cfg.Bodies, "number of squares")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed; 0 picks a time-based seed")
	flag.IntVar(&cfg.TargetFPS, "fps", cfg.TargetFPS, "target frames per second")
	flag.Float64Var(&cfg.Gravity, "gravity", cfg.Gravity, "per-tick downward acceleration")
	flag.Float64Var(&cfg.Damping, "damping", cfg.Damping, "bounce energy retention factor")
	flag.Float64Var(&cfg.AirResistance, "air-resistance", cfg.AirResistance, "horizontal drag factor per tick")
	flag.BoolVar(&cfg.ShowFPS, "show-fps", cfg.ShowFPS, "draw the FPS counter")
	flag.BoolVar(&cfg.ShowMemAlloc, "show-memalloc", cfg.ShowMemAlloc, "draw the heap allocation counter")
	flag.Parse()

	if *writeConfig {
		if err := config.Save(path, cfg); err != nil {
			fmt.Fprintln(os.Stderr, "write config:", err)
			os.Exit(1)
		}
		fmt.Println("wrote", path)
		return
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	world := cfg.World()
	bounds := cfg.Bounds()

	sb := sim.New(rng)
	sb.Initialize(cfg.Bodies, bounds)

	scn := scene.New(rng)

	dbg := debug.New()
	dbg.SetShowFPS(cfg.ShowFPS)
	dbg.SetShowMemAlloc(cfg.ShowMemAlloc)

	keys := input.NewBindings()
	keys.Bind(rl.KeySpace, func() {
		sb.Reinitialize(bounds)
		log.Log("simulation reset")
	})

	log.Log(fmt.Sprintf("sandbox starting: %dx%d, %d bodies, seed %d", cfg.Width, cfg.Height, cfg.Bodies, seed))

	update := func() {
		keys.Poll()
		hits := sb.Tick(world, bounds)
		scn.Recolor(sb, hits)
	}
	draw := func() {
		scn.Draw(sb)
		dbg.Draw()
	}
	graphics.Run(graphics.Config{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Title:      "Gravity Squares",
		TargetFPS:  cfg.TargetFPS,
		Background: rl.White,
	}, update, draw)

	log.Log("sandbox stopped")
}
