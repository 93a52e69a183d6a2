package components

import (
	cfg "github.com/mirrorfall/fightcore/config"
	"github.com/yohamta/donburi"
)

// ActiveMoveData is attached to a fighter for the duration of one attack
// and removed when the move fully resolves. Spec is a value copy taken at
// selection time, so combo bonuses never touch the shared catalog.
type ActiveMoveData struct {
	Spec   cfg.MoveSpec
	Frame  int  // frames elapsed since the move started
	Landed bool // the active window connected at least once
}

// InActiveWindow reports whether the move can currently hit.
func (m *ActiveMoveData) InActiveWindow() bool {
	return m.Frame >= m.Spec.StartupFrames &&
		m.Frame < m.Spec.StartupFrames+m.Spec.ActiveFrames
}

// CloseActiveWindow advances the frame counter past the active phase so
// the same window cannot register a second hit.
func (m *ActiveMoveData) CloseActiveWindow() {
	m.Frame = m.Spec.StartupFrames + m.Spec.ActiveFrames
}

var ActiveMove = donburi.NewComponentType[ActiveMoveData]()
