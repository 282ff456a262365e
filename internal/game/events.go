package game

// Phase is the coarse state of the session state machine.
type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhaseControls Phase = "controls"
	PhaseCredits  Phase = "credits"
	PhasePlaying  Phase = "playing"
	PhaseSplash   Phase = "splash" // Level-advance banner, input ignored
	PhaseEnded    Phase = "ended"  // Defeat or victory, replay menu active
)

// EventKind identifies something that happened during a Step. The platform
// layer turns events into sound and log lines; the simulation itself never
// touches either.
type EventKind int

const (
	EventRunStarted EventKind = iota
	EventHeartEaten
	EventLevelAdvanced
	EventVictory
	EventDefeat
)

// Event is a single occurrence reported by Step.
type Event struct {
	Kind  EventKind
	Index int // Heart slot for EventHeartEaten
	Level int // New level for EventLevelAdvanced
}

// State is the platform-visible summary of a session.
type State struct {
	Phase           Phase
	Level           int
	HeartsCollected int
	GameOver        bool
	GameWon         bool
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  State
	Events []Event
}

func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "run_started"
	case EventHeartEaten:
		return "heart_eaten"
	case EventLevelAdvanced:
		return "level_advanced"
	case EventVictory:
		return "victory"
	case EventDefeat:
		return "defeat"
	}
	return "unknown"
}
