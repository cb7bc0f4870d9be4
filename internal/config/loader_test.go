package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	embedded, err := decode("ohflip.yaml", defaultFlipYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	want := DefaultFlipConfig()
	if embedded.Physics != want.Physics {
		t.Errorf("physics = %+v, expected %+v", embedded.Physics, want.Physics)
	}
	if embedded.Flip != want.Flip {
		t.Errorf("flip = %+v, expected %+v", embedded.Flip, want.Flip)
	}
	if embedded.Bounce != want.Bounce {
		t.Errorf("bounce = %+v, expected %+v", embedded.Bounce, want.Bounce)
	}
	if embedded.Camera != want.Camera {
		t.Errorf("camera = %+v, expected %+v", embedded.Camera, want.Camera)
	}
	if len(embedded.Goals) != len(want.Goals) {
		t.Fatalf("goals = %d, expected %d", len(embedded.Goals), len(want.Goals))
	}
	for i := range want.Goals {
		if embedded.Goals[i] != want.Goals[i] {
			t.Errorf("goal %d = %+v, expected %+v", i, embedded.Goals[i], want.Goals[i])
		}
	}
}

func TestLoadFlipCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: -2000\nbounce:\n  min_velocity: 800\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlip(path)
	if err != nil {
		t.Fatalf("LoadFlip() failed: %v", err)
	}
	if cfg.Physics.Gravity != -2000 {
		t.Errorf("Gravity = %v, expected -2000", cfg.Physics.Gravity)
	}
	if cfg.Bounce.MinVelocity != 800 {
		t.Errorf("MinVelocity = %v, expected 800", cfg.Bounce.MinVelocity)
	}
	// Untouched fields keep defaults
	if cfg.Bounce.FailAngle != 30 {
		t.Errorf("FailAngle = %v, expected default 30", cfg.Bounce.FailAngle)
	}
	if len(cfg.Goals) != len(DefaultFlipConfig().Goals) {
		t.Errorf("goals should fall back to defaults, got %d", len(cfg.Goals))
	}
}

func TestLoadFlipCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte(`
[flip]
target_velocity = 900.0

[[goals]]
text = "Only goal"
kind = "total_flips"
param = 10
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlip(path)
	if err != nil {
		t.Fatalf("LoadFlip() failed: %v", err)
	}
	if cfg.Flip.TargetVelocity != 900 {
		t.Errorf("TargetVelocity = %v, expected 900", cfg.Flip.TargetVelocity)
	}
	if cfg.Flip.SpinDecay != 0.7 {
		t.Errorf("SpinDecay = %v, expected default 0.7", cfg.Flip.SpinDecay)
	}
	if len(cfg.Goals) != 1 || cfg.Goals[0].Kind != "total_flips" || cfg.Goals[0].Param != 10 {
		t.Errorf("Goals = %+v, expected the single TOML goal", cfg.Goals)
	}
}

func TestLoadFlipMissingFile(t *testing.T) {
	cfg, err := LoadFlip(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadFlip() should fail for a missing custom path")
	}
	if cfg.Physics.Gravity != DefaultFlipConfig().Physics.Gravity {
		t.Error("failed load should still return defaults")
	}
}

func TestLoadFlipInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlip(path); err == nil {
		t.Error("LoadFlip() should fail for invalid YAML")
	}
}

func TestApplyFlipPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		failAngle    float64
		perfectAngle float64
	}{
		{DifficultyEasy, 45, 10},
		{DifficultyNormal, 30, 6.5},
		{DifficultyHard, 20, 4},
		{DifficultyFixed, 30, 6.5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultFlipConfig()
			ApplyFlipPreset(&cfg, tc.preset)
			if cfg.Bounce.FailAngle != tc.failAngle || cfg.Bounce.PerfectAngle != tc.perfectAngle {
				t.Errorf("preset %s: fail=%v perfect=%v, expected %v/%v",
					tc.preset, cfg.Bounce.FailAngle, cfg.Bounce.PerfectAngle, tc.failAngle, tc.perfectAngle)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
