package systems

import (
	"github.com/mirrorfall/fightcore/components"
	cfg "github.com/mirrorfall/fightcore/config"
	"github.com/mirrorfall/fightcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResolveCombat runs hit resolution for both attacker/defender orders
// within the same tick, so simultaneous trades are possible.
func ResolveCombat(e *ecs.ECS) {
	round := RoundState(e)
	if round.Over {
		return
	}

	fighters := Fighters(e)
	resolveAttack(e, fighters[0], fighters[1], round)
	resolveAttack(e, fighters[1], fighters[0], round)
}

func resolveAttack(e *ecs.ECS, atkEntry, defEntry *donburi.Entry, round *components.RoundData) {
	if !atkEntry.HasComponent(components.ActiveMove) {
		return
	}
	move := components.ActiveMove.Get(atkEntry)
	if !move.InActiveWindow() {
		return
	}

	attacker := components.Fighter.Get(atkEntry)
	atkObj := components.Object.Get(atkEntry).Object
	defObj := components.Object.Get(defEntry).Object

	hitbox := worldHitbox(move.Spec, attacker.Facing, atkObj)
	if !hitConnects(e, hitbox, defObj) {
		return
	}

	defender := components.Fighter.Get(defEntry)
	defPhys := components.Physics.Get(defEntry)

	blocked := defender.Blocking && defPhys.OnGround

	damage := move.Spec.Damage
	if blocked {
		damage = move.Spec.Damage / cfg.Combat.BlockDamageDivisor
		if damage < 1 {
			damage = 1
		}
	}
	defender.Health -= damage
	if defender.Health < 0 {
		defender.Health = 0
	}

	if blocked {
		attacker.ComboCounter = 0
	} else {
		attacker.ComboCounter++
	}

	// Knockback pushes the defender away from the attacker: the x
	// component follows the attacker's facing.
	kb := move.Spec.Knockback
	if blocked {
		kb.X *= cfg.Combat.BlockKnockbackScale
		kb.Y *= cfg.Combat.BlockKnockbackScale
	}
	defPhys.SpeedX = kb.X * float64(attacker.Facing)
	defPhys.SpeedY = kb.Y
	defPhys.OnGround = false

	if blocked {
		defender.HitstunFrames = cfg.Combat.BlockedHitstunFrames
	} else {
		defender.HitstunFrames = cfg.Combat.HitstunFrames
	}

	// One hit per active window.
	move.Landed = true
	move.CloseActiveWindow()

	if defender.Health <= 0 {
		defender.KO = true
		round.Over = true
		if round.Winner == cfg.WinnerNone {
			if attacker.Index == 0 {
				round.Winner = cfg.WinnerPlayer1
			} else {
				round.Winner = cfg.WinnerPlayer2
			}
		}
	}
}

// worldHitbox resolves a move's local hitbox into world space: the x
// offset mirrors when facing left, then the rect is translated by the
// attacker's horizontal center and feet position.
func worldHitbox(spec cfg.MoveSpec, facing int, atkObj *resolv.Object) *resolv.Object {
	local := spec.Hitbox
	x := local.X
	if facing < 0 {
		x = -local.X - local.W
	}
	worldX := atkObj.X + atkObj.W/2 + x
	worldY := atkObj.Y + atkObj.H + local.Y

	hb := resolv.NewObject(worldX, worldY, local.W, local.H)
	hb.SetShape(resolv.NewRectangle(0, 0, local.W, local.H))
	return hb
}

// hitConnects tests a hitbox against a specific defender body: resolv
// cell broadphase first, exact shape intersection to confirm.
func hitConnects(e *ecs.ECS, hb *resolv.Object, defObj *resolv.Object) bool {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return false
	}
	space := components.Space.Get(spaceEntry)

	space.Add(hb)
	hb.Update()
	defer space.Remove(hb)

	check := hb.Check(0, 0, tags.ResolvFighter)
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		if obj != defObj {
			continue
		}
		if hb.Shape.Intersection(0, 0, obj.Shape) != nil {
			return true
		}
	}
	return false
}
