package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefault tests the stock sandbox parameters.
func TestDefault(t *testing.T) {
	c := Default()
	if c.Width != 640 || c.Height != 480 {
		t.Errorf("Expected 640x480 viewport, got %dx%d", c.Width, c.Height)
	}
	if c.Bodies != 4 {
		t.Errorf("Expected 4 bodies, got %d", c.Bodies)
	}
	if c.Gravity != 0.5 || c.Damping != 0.9 || c.AirResistance != 0.995 {
		t.Errorf("Expected forces (0.5, 0.9, 0.995), got (%v, %v, %v)", c.Gravity, c.Damping, c.AirResistance)
	}
	if c.Seed != 0 {
		t.Errorf("Expected time-based seeding (0) by default, got %d", c.Seed)
	}
	if c.TargetFPS != 60 {
		t.Errorf("Expected 60 FPS target, got %d", c.TargetFPS)
	}
	if c.ShowFPS || c.ShowMemAlloc {
		t.Errorf("Expected overlays off by default")
	}
}

// TestLoadMissingFile tests that a missing config file silently falls back
// to defaults.
func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected nil error for a missing file, got %v", err)
	}
	if c != Default() {
		t.Errorf("Expected defaults for a missing file, got %+v", c)
	}
}

// TestLoadInvalidFile tests that unparseable YAML silently falls back to
// defaults.
func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Expected nil error for an invalid file, got %v", err)
	}
	if c != Default() {
		t.Errorf("Expected defaults for an invalid file, got %+v", c)
	}
}

// TestLoadPartialFile tests that keys absent from the file keep their
// default values.
func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	if err := os.WriteFile(path, []byte("bodies: 9\nseed: 42\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, _ := Load(path)
	if c.Bodies != 9 {
		t.Errorf("Expected 9 bodies from the file, got %d", c.Bodies)
	}
	if c.Seed != 42 {
		t.Errorf("Expected seed 42 from the file, got %d", c.Seed)
	}
	if c.Width != 640 || c.Gravity != 0.5 {
		t.Errorf("Expected untouched keys to keep defaults, got %+v", c)
	}
}

// TestSaveLoadRoundTrip tests that Save output loads back unchanged.
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "sandbox.yaml")
	want := Default()
	want.Width = 800
	want.Height = 600
	want.Bodies = 12
	want.Seed = 7
	want.ShowFPS = true

	if err := Save(path, want); err != nil {
		t.Fatalf("Expected save to succeed, got %v", err)
	}
	got, _ := Load(path)
	if got != want {
		t.Errorf("Expected %+v after round trip, got %+v", want, got)
	}
}

// TestWorldAndBounds tests the conversion into physics parameters.
func TestWorldAndBounds(t *testing.T) {
	c := Default()
	w := c.World()
	if w.Gravity != c.Gravity || w.Damping != c.Damping || w.AirResistance != c.AirResistance {
		t.Errorf("Expected world %+v to mirror config forces, got %+v", c, w)
	}
	b := c.Bounds()
	if b.Width != 640 || b.Height != 480 {
		t.Errorf("Expected bounds 640x480, got %+v", b)
	}
}
