package systems

import (
	"github.com/mirrorfall/fightcore/components"
	cfg "github.com/mirrorfall/fightcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RecordIntents rotates each fighter's intent frames and latches a pause
// request on a rising pause edge. It runs every tick, including paused
// ones, so the resume press can be seen.
func RecordIntents(e *ecs.ECS, p1, p2 cfg.Intent) {
	fighters := Fighters(e)
	round := RoundState(e)
	for i, intent := range [2]cfg.Intent{p1, p2} {
		data := components.Intent.Get(fighters[i])
		data.Previous = data.Current
		data.Current = intent
		if data.PauseJustPressed() {
			round.PauseRequested = true
		}
	}
}

// ApplyIntents consumes each fighter's current intent: movement, jump,
// crouch, block and attack selection. Runs only on live simulation ticks.
func ApplyIntents(e *ecs.ECS, table cfg.MoveTable) {
	for _, entry := range Fighters(e) {
		fighter := components.Fighter.Get(entry)
		if fighter.KO {
			continue
		}
		in := components.Intent.Get(entry).Current
		phys := components.Physics.Get(entry)
		attacking := entry.HasComponent(components.ActiveMove)

		// Movement. Hitstun leaves velocity alone so the knockback
		// impulse carries; an active move locks the fighter in place.
		switch {
		case fighter.HitstunFrames > 0:
		case attacking:
			phys.SpeedX = 0
		default:
			moveX := 0.0
			if in.Left {
				moveX -= 1
			}
			if in.Right {
				moveX += 1
			}
			phys.SpeedX = moveX * cfg.Fighter.MoveSpeed
		}

		// Jump / crouch
		if in.Up && phys.OnGround && !phys.Jumping {
			phys.SpeedY = cfg.Fighter.JumpSpeed
			phys.OnGround = false
			phys.Jumping = true
		}
		fighter.Crouching = in.Down && phys.OnGround

		// Block
		fighter.Blocking = in.Block && phys.OnGround && !attacking

		// Attacks. One attack per tick, first match in the configured
		// priority order wins.
		if !attacking && fighter.HitstunFrames == 0 && !fighter.Blocking {
			selectAttack(entry, fighter, in, table)
		}
	}
}

func selectAttack(entry *donburi.Entry, fighter *components.FighterData, in cfg.Intent, table cfg.MoveTable) {
	for _, id := range cfg.Combat.AttackPriority {
		if !in.Attack(id) {
			continue
		}
		spec := table[id]
		if id == cfg.AttackSpecial && fighter.ComboCounter >= cfg.Combat.ComboThreshold {
			// Copy-on-select: the bonus lives on this instance only,
			// never on the shared catalog entry.
			spec.Damage += cfg.Combat.ComboBonusDamage
		}
		donburi.Add(entry, components.ActiveMove, &components.ActiveMoveData{Spec: spec})
		return
	}
}
