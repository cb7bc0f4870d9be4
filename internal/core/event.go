package core

// EventKind identifies something notable that happened during a tick.
// Platforms use events for sound and logging; games use them for popups.
type EventKind int

const (
	EventNone      EventKind = iota
	EventBounce              // Ground contact
	EventFlip                // Flip count increased mid-air
	EventGood                // Flip landed, not upright enough for perfect
	EventPerfect             // Flip landed upright
	EventMiss                // Landed without completing a flip
	EventFail                // Landed at an unsafe angle, fail-out started
	EventGoal                // Current goal completed
	EventRunReset            // Fail-out finished and the run restarted
	EventMenuLeave           // Title screen dismissed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventBounce:
		return "Bounce"
	case EventFlip:
		return "Flip"
	case EventGood:
		return "Good"
	case EventPerfect:
		return "Perfect"
	case EventMiss:
		return "Miss"
	case EventFail:
		return "Fail"
	case EventGoal:
		return "Goal"
	case EventRunReset:
		return "RunReset"
	case EventMenuLeave:
		return "MenuLeave"
	default:
		return "Unknown"
	}
}

// Event is a single occurrence reported by a game step.
type Event struct {
	Kind  EventKind
	Value int // Kind-specific payload (flip count, goal index)
}

// HasEvent reports whether events contains an event of the given kind.
func HasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
