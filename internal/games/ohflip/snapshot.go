package ohflip

// Snapshot is the read-only view the renderer draws from.
type Snapshot struct {
	PlayerX     float64
	PlayerY     float64
	Angle       float64
	Touching    bool
	Failing     bool
	EyeClosed   bool
	PupilOffset float64

	CameraScale float64
	ShakeOffset float64

	MainMenu bool
	Paused   bool

	HeightFt       int
	BestHeightFt   int
	TotalFlips     int
	BestTotalFlips int

	GoalIndex    int
	GoalText     string
	GoalsDone    bool
	BouncePower  float64
	Popups       []Popup
}

// Snapshot captures the state for rendering. Bests and pause are filled
// in by the caller.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		PlayerX:     s.Player.X,
		PlayerY:     s.Player.Y,
		Angle:       s.Player.Angle,
		Touching:    s.touching,
		Failing:     s.Player.Fail.Active,
		EyeClosed:   s.Blink.Closed(),
		PupilOffset: s.PupilOffset(),
		CameraScale: s.Camera.Presented(),
		ShakeOffset: s.Shake.Offset(),
		MainMenu:    s.MainMenu,
		HeightFt:    s.HeightFt(),
		TotalFlips:  s.Player.TotalFlips,
		GoalIndex:   s.Goals.Index(),
		GoalsDone:   s.Goals.Complete(),
		BouncePower: s.Power.Value,
		Popups:      s.Popups.Items(),
	}
	if g, ok := s.Goals.Current(); ok {
		snap.GoalText = g.Text
	}
	return snap
}
