package ohflip

import (
	"testing"

	"github.com/vovakirdan/ohflip/internal/config"
)

func TestCameraSteadyAtFrameHeight(t *testing.T) {
	cfg := config.DefaultFlipConfig().Camera
	c := NewCamera(cfg)
	dt := 1.0 / 60.0

	prev := c.Scale
	prevDelta := 0.0
	for i := 0; i < 300; i++ {
		c.Advance(dt, 280)
		if c.Scale > cfg.BaseScale*1.5 {
			t.Fatalf("tick %d: scale %f above 1.5x baseline", i, c.Scale)
		}
		delta := c.Scale - prev
		if delta*prevDelta < 0 {
			t.Fatalf("tick %d: scale oscillates", i)
		}
		if delta != 0 {
			prevDelta = delta
		}
		prev = c.Scale
	}
}

func TestCameraZoomsOutImmediately(t *testing.T) {
	cfg := config.DefaultFlipConfig().Camera
	c := NewCamera(cfg)

	c.Advance(1.0/60.0, 2800)

	if c.Scale >= cfg.BaseScale {
		t.Errorf("scale %f did not zoom out", c.Scale)
	}
	if c.Hold != cfg.HoldDelay {
		t.Errorf("hold = %f, want %f", c.Hold, cfg.HoldDelay)
	}
}

func TestCameraRecoversAfterHold(t *testing.T) {
	cfg := config.DefaultFlipConfig().Camera
	c := NewCamera(cfg)
	dt := 1.0 / 60.0

	for i := 0; i < 60; i++ {
		c.Advance(dt, 2800)
	}
	low := c.Scale

	// Within the hold delay the scale stays put
	for i := 0; i < 60; i++ {
		c.Advance(dt, 0)
	}
	if c.Scale != low {
		t.Errorf("scale moved during hold: %f -> %f", low, c.Scale)
	}

	for i := 0; i < 300; i++ {
		c.Advance(dt, 0)
	}
	if c.Scale <= low {
		t.Errorf("scale did not recover: %f", c.Scale)
	}
	if c.Scale > cfg.BaseScale {
		t.Errorf("scale overshot baseline: %f", c.Scale)
	}
}

func TestCameraImpactDecays(t *testing.T) {
	cfg := config.DefaultFlipConfig().Camera
	c := NewCamera(cfg)

	c.Kick()
	if c.Presented() <= c.Scale {
		t.Error("kick should add zoom")
	}
	for i := 0; i < 60; i++ {
		c.Advance(1.0/60.0, 0)
	}
	if c.Impact > 1e-5 {
		t.Errorf("impact zoom did not decay: %f", c.Impact)
	}
}

func TestShake(t *testing.T) {
	cfg := config.DefaultFlipConfig().Shake
	s := NewShake(cfg)

	if s.Offset() != 0 {
		t.Error("new trampoline should be still")
	}

	s.Hit()
	if s.Amount != cfg.Amplitude || s.Phase != 0 {
		t.Fatalf("hit = %+v", s)
	}

	for i := 0; i < 120; i++ {
		s.Advance(1.0 / 60.0)
		if s.Phase < 0 || s.Phase >= 360 {
			t.Fatalf("phase %f out of range", s.Phase)
		}
	}
	if s.Amount > 0.01 {
		t.Errorf("amplitude did not decay: %f", s.Amount)
	}
}
