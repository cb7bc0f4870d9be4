package ohflip

import (
	"fmt"

	"github.com/vovakirdan/ohflip/internal/config"
)

// GoalKind selects the predicate a goal is checked with.
type GoalKind int

const (
	GoalFlipsLanded GoalKind = iota // Landed at least Param flips in one bounce
	GoalPerfectFlip                 // Perfect landing with at least Param flips
	GoalHeightFt                    // Peak of the bounce reached Param feet
	GoalTotalFlips                  // Run total reached Param flips
)

var goalKindNames = map[string]GoalKind{
	"flips_landed": GoalFlipsLanded,
	"perfect_flip": GoalPerfectFlip,
	"height_ft":    GoalHeightFt,
	"total_flips":  GoalTotalFlips,
}

// ParseGoalKind converts a config name to a GoalKind.
func ParseGoalKind(s string) (GoalKind, error) {
	k, ok := goalKindNames[s]
	if !ok {
		return 0, fmt.Errorf("ohflip: unknown goal kind %q", s)
	}
	return k, nil
}

// BounceReport is what the goals see after each resolved contact.
type BounceReport struct {
	Outcome     Outcome
	FlipsLanded int
	HeightFt    int // peak of the cycle that just ended
	TotalFlips  int
}

var goalPredicates = map[GoalKind]func(r BounceReport, param int) bool{
	GoalFlipsLanded: func(r BounceReport, n int) bool {
		return r.FlipsLanded >= n
	},
	GoalPerfectFlip: func(r BounceReport, n int) bool {
		return r.Outcome == OutcomePerfect && r.FlipsLanded >= n
	},
	GoalHeightFt: func(r BounceReport, n int) bool {
		return r.HeightFt >= n
	},
	GoalTotalFlips: func(r BounceReport, n int) bool {
		return r.TotalFlips >= n
	},
}

// Goal is one objective.
type Goal struct {
	Text  string
	Kind  GoalKind
	Param int
}

// Satisfied reports whether the bounce completes the goal.
func (g Goal) Satisfied(r BounceReport) bool {
	pred, ok := goalPredicates[g.Kind]
	if !ok {
		return false
	}
	return pred(r, g.Param)
}

// BuildGoals converts config entries into goals.
func BuildGoals(cfgs []config.GoalConfig) ([]Goal, error) {
	goals := make([]Goal, 0, len(cfgs))
	for i, c := range cfgs {
		kind, err := ParseGoalKind(c.Kind)
		if err != nil {
			return nil, fmt.Errorf("goal %d: %w", i+1, err)
		}
		goals = append(goals, Goal{Text: c.Text, Kind: kind, Param: c.Param})
	}
	return goals, nil
}

// GoalTracker walks an ordered list of goals. The cursor survives run
// restarts and holds on the last goal once everything is done.
type GoalTracker struct {
	goals    []Goal
	index    int
	complete bool
}

// NewGoalTracker returns a tracker positioned on the first goal.
func NewGoalTracker(goals []Goal) *GoalTracker {
	return &GoalTracker{goals: goals}
}

// Current returns the goal being pursued.
func (t *GoalTracker) Current() (Goal, bool) {
	if len(t.goals) == 0 {
		return Goal{}, false
	}
	return t.goals[t.index], true
}

// Index returns the zero-based cursor.
func (t *GoalTracker) Index() int {
	return t.index
}

// Complete reports whether the last goal has been met.
func (t *GoalTracker) Complete() bool {
	return t.complete
}

// Len returns the number of goals.
func (t *GoalTracker) Len() int {
	return len(t.goals)
}

// OnBounceResolved checks the current goal against a resolved contact and
// advances the cursor when it is met.
func (t *GoalTracker) OnBounceResolved(r BounceReport) bool {
	if t.complete || len(t.goals) == 0 {
		return false
	}
	if !t.goals[t.index].Satisfied(r) {
		return false
	}
	if t.index == len(t.goals)-1 {
		t.complete = true
	} else {
		t.index++
	}
	return true
}
