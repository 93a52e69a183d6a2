package components

import "github.com/yohamta/donburi"

// FighterData holds one combatant's combat state. Kinematics live in the
// Physics and Object components; the optional active move is the presence
// of the ActiveMove component.
type FighterData struct {
	Index         int // 0 = player 1, 1 = player 2
	Health        int
	Facing        int // 1 right, -1 left
	Blocking      bool
	Crouching     bool
	HitstunFrames int // forced non-actionable frames, counts down
	ComboCounter  int // consecutive unblocked hits landed by this fighter
	KO            bool
}

var Fighter = donburi.NewComponentType[FighterData]()
