package systems

import (
	"github.com/mirrorfall/fightcore/components"
	cfg "github.com/mirrorfall/fightcore/config"
	"github.com/mirrorfall/fightcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances both fighters by one fixed timestep: gravity,
// integration, ground snap, arena bounds, move phase timing and hitstun
// countdown.
func UpdatePhysics(e *ecs.ECS, dt float64) {
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		phys := components.Physics.Get(entry)
		obj := components.Object.Get(entry).Object

		if !phys.OnGround {
			phys.SpeedY += cfg.Physics.Gravity * dt
		}

		obj.X += phys.SpeedX * dt
		obj.Y += phys.SpeedY * dt

		// Ground collision: the object's Y is the top of the body, so
		// the feet sit at Y+H.
		if obj.Y+obj.H >= cfg.Arena.GroundY {
			obj.Y = cfg.Arena.GroundY - obj.H
			phys.OnGround = true
			phys.Jumping = false
			phys.SpeedY = 0
		}

		// Side bounds
		if obj.X < cfg.Arena.MinX {
			obj.X = cfg.Arena.MinX
		} else if obj.X > cfg.Arena.MaxX {
			obj.X = cfg.Arena.MaxX
		}
		obj.Update()

		// Move timing
		if entry.HasComponent(components.ActiveMove) {
			move := components.ActiveMove.Get(entry)
			move.Frame++
			if move.Frame >= move.Spec.TotalFrames() {
				if !move.Landed {
					// A whiffed move drops the combo.
					fighter.ComboCounter = 0
				}
				entry.RemoveComponent(components.ActiveMove)
			}
		}

		// Hitstun countdown
		if fighter.HitstunFrames > 0 {
			fighter.HitstunFrames--
		}
	})
}

// UpdateFacing points each fighter at the other. It runs after both
// fighters have moved so hitboxes always mirror toward the opponent.
func UpdateFacing(e *ecs.ECS) {
	fighters := Fighters(e)
	o1 := components.Object.Get(fighters[0]).Object
	o2 := components.Object.Get(fighters[1]).Object
	f1 := components.Fighter.Get(fighters[0])
	f2 := components.Fighter.Get(fighters[1])

	if o1.X+o1.W/2 < o2.X+o2.W/2 {
		f1.Facing = 1
		f2.Facing = -1
	} else {
		f1.Facing = -1
		f2.Facing = 1
	}
}
