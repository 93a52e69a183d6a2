package config

// ArenaConfig describes the playfield the fighters move in.
type ArenaConfig struct {
	Width   float64
	Height  float64
	GroundY float64 // world y of the ground plane (feet rest here)
	MinX    float64 // left bound for a fighter's left edge
	MaxX    float64 // right bound for a fighter's left edge
}

// PhysicsConfig contains global physics constants.
type PhysicsConfig struct {
	Gravity float64 // downward acceleration, units/s^2
}

// FighterConfig contains per-fighter movement and body values.
type FighterConfig struct {
	Health    int
	MoveSpeed float64 // horizontal ground speed, units/s
	JumpSpeed float64 // initial jump velocity (negative = up)

	// Body rectangle
	Width  float64
	Height float64

	// Spawn positions (left edge of the body rectangle)
	SpawnX [2]float64
}

// CombatConfig contains hit resolution tunables.
type CombatConfig struct {
	// Hitstun applied to the defender, in frames.
	HitstunFrames        int
	BlockedHitstunFrames int

	// Blocked hits divide damage by this (integer division, floor, min 1).
	BlockDamageDivisor int

	// Blocked knockback is scaled by this factor on both axes.
	BlockKnockbackScale float64

	// Damage added to a special selected while the attacker's combo
	// counter is at or above ComboThreshold.
	ComboThreshold   int
	ComboBonusDamage int

	// AttackPriority resolves simultaneous attack presses: the first
	// pressed attack in this order wins the tick. The default order is
	// light > heavy > special.
	AttackPriority []AttackID
}

// RoundConfig contains round lifecycle tunables.
type RoundConfig struct {
	Duration float64 // round length in seconds
}

// Global configuration instances
var Arena ArenaConfig
var Physics PhysicsConfig
var Fighter FighterConfig
var Combat CombatConfig
var Round RoundConfig

func init() {
	Arena = ArenaConfig{
		Width:   1280,
		Height:  720,
		GroundY: 620,
		MinX:    60,
		MaxX:    1280 - 120,
	}

	Physics = PhysicsConfig{
		Gravity: 1800.0,
	}

	Fighter = FighterConfig{
		Health:    100,
		MoveSpeed: 320.0,
		JumpSpeed: -650.0,
		Width:     60,
		Height:    110,
		SpawnX:    [2]float64{400, 880},
	}

	Combat = CombatConfig{
		HitstunFrames:        18,
		BlockedHitstunFrames: 10,
		BlockDamageDivisor:   3,
		BlockKnockbackScale:  0.2,
		ComboThreshold:       2,
		ComboBonusDamage:     5,
		AttackPriority:       []AttackID{AttackLight, AttackHeavy, AttackSpecial},
	}

	Round = RoundConfig{
		Duration: 60,
	}
}
