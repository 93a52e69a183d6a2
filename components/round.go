package components

import (
	cfg "github.com/mirrorfall/fightcore/config"
	"github.com/yohamta/donburi"
)

// RoundData stores the current round's clock and outcome.
// This is a singleton component - only one round exists at a time.
type RoundData struct {
	TimeLeft float64 // seconds remaining, clamped at 0
	Over     bool
	Winner   cfg.Winner
	Paused   bool

	// PauseRequested is latched by the intent system on a pause press
	// and consumed by the engine before any simulation work.
	PauseRequested bool
}

var Round = donburi.NewComponentType[RoundData]()
