// Package config provides YAML/TOML game tuning and difficulty presets for
// the game.
package config

// FlipConfig contains all tuning for the trampoline game.
// Blend factors are applied once per tick, not scaled by elapsed time.
type FlipConfig struct {
	Physics PhysicsConfig `yaml:"physics" toml:"physics"`
	Flip    FlipTuning    `yaml:"flip" toml:"flip"`
	Bounce  BounceConfig  `yaml:"bounce" toml:"bounce"`
	Fail    FailConfig    `yaml:"fail" toml:"fail"`
	Camera  CameraConfig  `yaml:"camera" toml:"camera"`
	Shake   ShakeConfig   `yaml:"shake" toml:"shake"`
	Popups  PopupConfig   `yaml:"popups" toml:"popups"`
	Goals   []GoalConfig  `yaml:"goals" toml:"goals"`
}

// PhysicsConfig defines vertical motion.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`             // units/s^2, negative = down
	UnitsPerFoot float64 `yaml:"units_per_foot" toml:"units_per_foot"` // height display conversion
}

// FlipTuning defines rotation while the control is held.
type FlipTuning struct {
	MinHeight      float64 `yaml:"min_height" toml:"min_height"`           // flipping only above this height
	TargetVelocity float64 `yaml:"target_velocity" toml:"target_velocity"` // deg/s
	SpinUpBlend    float64 `yaml:"spin_up_blend" toml:"spin_up_blend"`     // fraction of the gap closed per tick
	SpinDecay      float64 `yaml:"spin_decay" toml:"spin_decay"`           // fraction of velocity kept per tick
	UprightDecay   float64 `yaml:"upright_decay" toml:"upright_decay"`     // fraction of angle kept per tick
	UprightEpsilon float64 `yaml:"upright_epsilon" toml:"upright_epsilon"` // deg
	CountOffset    float64 `yaml:"count_offset" toml:"count_offset"`       // deg added before counting turns
}

// BounceConfig defines landing classification and bounce power.
type BounceConfig struct {
	MinVelocity     float64 `yaml:"min_velocity" toml:"min_velocity"`
	HitIncrease     float64 `yaml:"hit_increase" toml:"hit_increase"`
	MissDecrease    float64 `yaml:"miss_decrease" toml:"miss_decrease"`
	PerfectMult     float64 `yaml:"perfect_mult" toml:"perfect_mult"`
	FlipMultPerFive float64 `yaml:"flip_mult_per_five" toml:"flip_mult_per_five"`
	FlipThreshold   float64 `yaml:"flip_threshold" toml:"flip_threshold"` // deg of rotation that counts as a flip
	PerfectAngle    float64 `yaml:"perfect_angle" toml:"perfect_angle"`   // deg
	FailAngle       float64 `yaml:"fail_angle" toml:"fail_angle"`         // deg
}

// FailConfig defines the scripted fall-out.
type FailConfig struct {
	Duration  float64 `yaml:"duration" toml:"duration"`     // seconds
	ArcWidth  float64 `yaml:"arc_width" toml:"arc_width"`   // lateral reach per 1000 bounce power
	ArcHeight float64 `yaml:"arc_height" toml:"arc_height"` // vertical reach per 1000 bounce power
	SpinSpeed float64 `yaml:"spin_speed" toml:"spin_speed"` // deg/s
}

// CameraConfig defines zoom framing.
type CameraConfig struct {
	BaseScale       float64 `yaml:"base_scale" toml:"base_scale"`
	FrameHeight     float64 `yaml:"frame_height" toml:"frame_height"`
	MaxZoom         float64 `yaml:"max_zoom" toml:"max_zoom"`
	Blend           float64 `yaml:"blend" toml:"blend"`
	HoldDelay       float64 `yaml:"hold_delay" toml:"hold_delay"` // seconds
	RecoverBlend    float64 `yaml:"recover_blend" toml:"recover_blend"`
	ImpactZoom      float64 `yaml:"impact_zoom" toml:"impact_zoom"`
	ImpactZoomDecay float64 `yaml:"impact_zoom_decay" toml:"impact_zoom_decay"`
}

// ShakeConfig defines the trampoline oscillation.
type ShakeConfig struct {
	Amplitude  float64 `yaml:"amplitude" toml:"amplitude"`
	Decay      float64 `yaml:"decay" toml:"decay"`
	PhaseSpeed float64 `yaml:"phase_speed" toml:"phase_speed"` // deg/s
}

// PopupConfig defines floating text lifetime.
type PopupConfig struct {
	Lifetime float64 `yaml:"lifetime" toml:"lifetime"` // seconds
	GrowIn   float64 `yaml:"grow_in" toml:"grow_in"`   // seconds
	Drift    float64 `yaml:"drift" toml:"drift"`       // seconds until the offset animation completes
}

// GoalConfig describes one objective in order.
type GoalConfig struct {
	Text  string `yaml:"text" toml:"text"`
	Kind  string `yaml:"kind" toml:"kind"` // flips_landed, perfect_flip, height_ft, total_flips
	Param int    `yaml:"param" toml:"param"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
