package systems

import (
	"github.com/mirrorfall/fightcore/archetypes"
	"github.com/mirrorfall/fightcore/components"
	cfg "github.com/mirrorfall/fightcore/config"
	"github.com/mirrorfall/fightcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a minimal round world with both fighters grounded
// at the given left-edge x positions, facing each other.
func newTestWorld(x1, x2 float64) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	spaceEntry := archetypes.Space.Spawn(e)
	space := resolv.NewSpace(int(cfg.Arena.Width), int(cfg.Arena.Height), 16, 16)
	components.Space.SetValue(spaceEntry, components.SpaceData{Space: space})

	roundEntry := archetypes.Round.Spawn(e)
	components.Round.SetValue(roundEntry, components.RoundData{
		TimeLeft: cfg.Round.Duration,
		Winner:   cfg.WinnerNone,
	})

	for i, x := range [2]float64{x1, x2} {
		entry := archetypes.Fighter.Spawn(e)
		obj := resolv.NewObject(
			x,
			cfg.Arena.GroundY-cfg.Fighter.Height,
			cfg.Fighter.Width,
			cfg.Fighter.Height,
			tags.ResolvFighter,
		)
		obj.SetShape(resolv.NewRectangle(0, 0, cfg.Fighter.Width, cfg.Fighter.Height))
		space.Add(obj)
		obj.Update()

		facing := 1
		if i == 1 {
			facing = -1
		}
		components.Fighter.SetValue(entry, components.FighterData{
			Index:  i,
			Health: cfg.Fighter.Health,
			Facing: facing,
		})
		components.Physics.SetValue(entry, components.PhysicsData{OnGround: true})
		components.Object.SetValue(entry, components.ObjectData{Object: obj})
	}
	return e
}

// startMove puts a fighter mid-move at the given elapsed frame.
func startMove(entry *donburi.Entry, spec cfg.MoveSpec, frame int) *components.ActiveMoveData {
	donburi.Add(entry, components.ActiveMove, &components.ActiveMoveData{
		Spec:  spec,
		Frame: frame,
	})
	return components.ActiveMove.Get(entry)
}
