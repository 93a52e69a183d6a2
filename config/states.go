package config

// RoundPhase identifies a state of the round controller's state machine.
// The values double as looplab/fsm state names.
type RoundPhase string

const (
	PhasePlaying   RoundPhase = "playing"
	PhasePaused    RoundPhase = "paused"
	PhaseRoundOver RoundPhase = "round_over"
)

// Round state machine event names.
const (
	EventPause   = "pause"
	EventResume  = "resume"
	EventFinish  = "finish"
	EventRestart = "restart"
)

// Winner identifies the outcome of a finished round.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayer1
	WinnerPlayer2
	WinnerDraw
)

func (w Winner) String() string {
	switch w {
	case WinnerPlayer1:
		return "player1"
	case WinnerPlayer2:
		return "player2"
	case WinnerDraw:
		return "draw"
	default:
		return "none"
	}
}

// AttackID identifies one of the attack buttons / catalog moves.
type AttackID int

const (
	AttackLight AttackID = iota
	AttackHeavy
	AttackSpecial
	AttackCount // Must be last - used for array sizing
)

func (a AttackID) String() string {
	switch a {
	case AttackLight:
		return "light"
	case AttackHeavy:
		return "heavy"
	case AttackSpecial:
		return "special"
	default:
		return "unknown"
	}
}
