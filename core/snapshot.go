package core

import (
	"github.com/mirrorfall/fightcore/components"
	cfg "github.com/mirrorfall/fightcore/config"
	"github.com/mirrorfall/fightcore/systems"
)

// MoveSnapshot describes a fighter's in-flight move, if any.
type MoveSnapshot struct {
	Name   string `json:"name"`
	Frame  int    `json:"frame"`
	Active bool   `json:"active"` // inside the hit-capable window
}

// FighterSnapshot is a value copy of one fighter's state after a tick.
type FighterSnapshot struct {
	Health        int     `json:"health"`
	Facing        int     `json:"facing"`
	X             float64 `json:"x"` // left edge of the body rectangle
	Y             float64 `json:"y"` // top edge of the body rectangle
	SpeedX        float64 `json:"speed_x"`
	SpeedY        float64 `json:"speed_y"`
	OnGround      bool    `json:"on_ground"`
	Jumping       bool    `json:"jumping"`
	Blocking      bool    `json:"blocking"`
	Crouching     bool    `json:"crouching"`
	HitstunFrames int     `json:"hitstun_frames"`
	ComboCounter  int     `json:"combo_counter"`
	KO            bool    `json:"ko"`

	Move *MoveSnapshot `json:"move,omitempty"`
}

// RoundSnapshot is a value copy of the round state after a tick.
type RoundSnapshot struct {
	TimeLeft float64        `json:"time_left"`
	Phase    cfg.RoundPhase `json:"phase"`
	Paused   bool           `json:"paused"`
	Over     bool           `json:"over"`
	Winner   cfg.Winner     `json:"winner"`
}

// Snapshot is the read-only per-tick view handed to downstream consumers
// (renderer, persistence). It shares no memory with the world.
type Snapshot struct {
	Fighters [2]FighterSnapshot `json:"fighters"`
	Round    RoundSnapshot      `json:"round"`
}

// Snapshot captures the current state of both fighters and the round.
func (en *Engine) Snapshot() Snapshot {
	var snap Snapshot

	for i, entry := range systems.Fighters(en.ecs) {
		fighter := components.Fighter.Get(entry)
		phys := components.Physics.Get(entry)
		obj := components.Object.Get(entry).Object

		fs := FighterSnapshot{
			Health:        fighter.Health,
			Facing:        fighter.Facing,
			X:             obj.X,
			Y:             obj.Y,
			SpeedX:        phys.SpeedX,
			SpeedY:        phys.SpeedY,
			OnGround:      phys.OnGround,
			Jumping:       phys.Jumping,
			Blocking:      fighter.Blocking,
			Crouching:     fighter.Crouching,
			HitstunFrames: fighter.HitstunFrames,
			ComboCounter:  fighter.ComboCounter,
			KO:            fighter.KO,
		}
		if entry.HasComponent(components.ActiveMove) {
			move := components.ActiveMove.Get(entry)
			fs.Move = &MoveSnapshot{
				Name:   move.Spec.Name,
				Frame:  move.Frame,
				Active: move.InActiveWindow(),
			}
		}
		snap.Fighters[i] = fs
	}

	round := systems.RoundState(en.ecs)
	snap.Round = RoundSnapshot{
		TimeLeft: round.TimeLeft,
		Phase:    en.Phase(),
		Paused:   round.Paused,
		Over:     round.Over,
		Winner:   round.Winner,
	}
	return snap
}
