package ohflip

import (
	"math"
	"testing"

	"github.com/vovakirdan/ohflip/internal/config"
)

func TestClassify(t *testing.T) {
	cfg := config.DefaultFlipConfig().Bounce

	tests := []struct {
		name     string
		angle    float64
		rotation float64
		want     Outcome
	}{
		{"upright no flip", 0, 0, OutcomeMiss},
		{"partial rotation", 3, 200, OutcomeMiss},
		{"perfect", 0, 360, OutcomePerfect},
		{"perfect negative", -6, 360, OutcomePerfect},
		{"good", 10, 360, OutcomeGood},
		{"good at edge", 30, 360, OutcomeGood},
		{"fail", 45, 360, OutcomeFail},
		{"fail beats miss", -31, 0, OutcomeFail},
		{"threshold rotation", 0, 270, OutcomePerfect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.angle, tt.rotation, cfg); got != tt.want {
				t.Errorf("Classify(%f, %f) = %v, want %v", tt.angle, tt.rotation, got, tt.want)
			}
		})
	}
}

func TestBouncePowerDelta(t *testing.T) {
	b := NewBouncePower(config.DefaultFlipConfig().Bounce)

	tests := []struct {
		flips   int
		perfect bool
		want    float64
	}{
		{1, true, 198},
		{1, false, 132},
		{5, false, 180},
		{2, true, 216},
	}

	for _, tt := range tests {
		if got := b.Delta(tt.flips, tt.perfect); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Delta(%d, %v) = %f, want %f", tt.flips, tt.perfect, got, tt.want)
		}
	}
}

func TestBouncePowerFloor(t *testing.T) {
	cfg := config.DefaultFlipConfig().Bounce
	b := NewBouncePower(cfg)

	b.Reward(1, false)
	for i := 0; i < 10; i++ {
		b.Penalize()
		if b.Value < cfg.MinVelocity {
			t.Fatalf("power %f fell below floor %f", b.Value, cfg.MinVelocity)
		}
	}
	if b.Value != cfg.MinVelocity {
		t.Errorf("power = %f, want floor %f", b.Value, cfg.MinVelocity)
	}
}
