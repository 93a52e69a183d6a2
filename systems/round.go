package systems

import (
	"github.com/mirrorfall/fightcore/components"
	cfg "github.com/mirrorfall/fightcore/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRound counts the round clock down and resolves a timeout by
// comparing health totals. KO resolution happens in ResolveCombat; this
// system only handles the timer.
func UpdateRound(e *ecs.ECS, dt float64) {
	round := RoundState(e)
	if round.Over || round.Paused {
		return
	}

	round.TimeLeft -= dt
	if round.TimeLeft > 0 {
		return
	}
	round.TimeLeft = 0
	round.Over = true

	fighters := Fighters(e)
	h1 := components.Fighter.Get(fighters[0]).Health
	h2 := components.Fighter.Get(fighters[1]).Health
	switch {
	case h1 == h2:
		round.Winner = cfg.WinnerDraw
	case h1 > h2:
		round.Winner = cfg.WinnerPlayer1
	default:
		round.Winner = cfg.WinnerPlayer2
	}
}
