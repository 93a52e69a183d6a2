package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	OnGround bool
	Jumping  bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
