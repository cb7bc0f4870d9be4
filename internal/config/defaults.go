package config

import (
	_ "embed"
)

//go:embed defaults/ohflip.yaml
var defaultFlipYAML []byte

// DefaultFlipConfig returns the default tuning.
func DefaultFlipConfig() FlipConfig {
	return FlipConfig{
		Physics: PhysicsConfig{
			Gravity:      -1400,
			UnitsPerFoot: 40,
		},
		Flip: FlipTuning{
			MinHeight:      100,
			TargetVelocity: 720,
			SpinUpBlend:    0.1,
			SpinDecay:      0.7,
			UprightDecay:   0.8,
			UprightEpsilon: 0.01,
			CountOffset:    90,
		},
		Bounce: BounceConfig{
			MinVelocity:     1000,
			HitIncrease:     120,
			MissDecrease:    120,
			PerfectMult:     1.5,
			FlipMultPerFive: 0.5,
			FlipThreshold:   270,
			PerfectAngle:    6.5,
			FailAngle:       30,
		},
		Fail: FailConfig{
			Duration:  1.0,
			ArcWidth:  400,
			ArcHeight: 200,
			SpinSpeed: 800,
		},
		Camera: CameraConfig{
			BaseScale:       0.7,
			FrameHeight:     280,
			MaxZoom:         1.5,
			Blend:           0.2,
			HoldDelay:       3.0,
			RecoverBlend:    0.001,
			ImpactZoom:      0.025,
			ImpactZoomDecay: 0.8,
		},
		Shake: ShakeConfig{
			Amplitude:  16,
			Decay:      0.9,
			PhaseSpeed: 4000,
		},
		Popups: PopupConfig{
			Lifetime: 0.5,
			GrowIn:   0.1,
			Drift:    0.4,
		},
		Goals: []GoalConfig{
			{Text: "Do a flip", Kind: "flips_landed", Param: 1},
			{Text: "Do a double flip", Kind: "flips_landed", Param: 1},
			{Text: "Land a perfect flip", Kind: "perfect_flip", Param: 1},
			{Text: "Reach 25 ft", Kind: "height_ft", Param: 25},
			{Text: "Do a triple flip", Kind: "flips_landed", Param: 3},
		},
	}
}
