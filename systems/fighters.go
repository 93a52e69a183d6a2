package systems

import (
	"github.com/mirrorfall/fightcore/components"
	"github.com/mirrorfall/fightcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Fighters returns both fighter entries ordered by player index.
func Fighters(e *ecs.ECS) [2]*donburi.Entry {
	var out [2]*donburi.Entry
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		f := components.Fighter.Get(entry)
		if f.Index >= 0 && f.Index < len(out) {
			out[f.Index] = entry
		}
	})
	return out
}

// RoundState returns the round singleton.
func RoundState(e *ecs.ECS) *components.RoundData {
	entry, ok := components.Round.First(e.World)
	if !ok {
		return nil
	}
	return components.Round.Get(entry)
}
