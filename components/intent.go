package components

import (
	cfg "github.com/mirrorfall/fightcore/config"
	"github.com/yohamta/donburi"
)

// IntentData stores the current and previous tick's normalized intent for
// one fighter. Edge-triggered actions (pause) are computed by comparing
// the two frames.
type IntentData struct {
	Current  cfg.Intent
	Previous cfg.Intent
}

// PauseJustPressed reports a rising edge on the pause button.
func (i *IntentData) PauseJustPressed() bool {
	return i.Current.Pause && !i.Previous.Pause
}

var Intent = donburi.NewComponentType[IntentData]()
