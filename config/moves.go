package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidMove is wrapped by all move validation failures.
var ErrInvalidMove = errors.New("invalid move spec")

// Vec is a 2D vector.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Rect is an axis-aligned rectangle given by its top-left corner.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// MoveSpec describes one attack. Frame counts split the move into the
// usual startup / active / recovery phases; only the active phase can hit.
//
// Hitbox is in attacker-local coordinates assuming rightward facing:
// x measured from the attacker's horizontal center, y measured from the
// feet with negative values above the ground.
type MoveSpec struct {
	Name           string `yaml:"-"`
	StartupFrames  int    `yaml:"startup"`
	ActiveFrames   int    `yaml:"active"`
	RecoveryFrames int    `yaml:"recovery"`
	Damage         int    `yaml:"damage"`
	Knockback      Vec    `yaml:"knockback"`
	Hitbox         Rect   `yaml:"hitbox"`
}

// TotalFrames returns the full duration of the move.
func (m MoveSpec) TotalFrames() int {
	return m.StartupFrames + m.ActiveFrames + m.RecoveryFrames
}

// Validate rejects specs that would corrupt the per-frame bookkeeping.
func (m MoveSpec) Validate() error {
	if m.StartupFrames < 0 || m.RecoveryFrames < 0 {
		return fmt.Errorf("%w: %s: negative frame count", ErrInvalidMove, m.Name)
	}
	if m.ActiveFrames < 1 {
		return fmt.Errorf("%w: %s: active frames must be >= 1", ErrInvalidMove, m.Name)
	}
	if m.Damage < 1 {
		return fmt.Errorf("%w: %s: damage must be positive", ErrInvalidMove, m.Name)
	}
	if m.Hitbox.W <= 0 || m.Hitbox.H <= 0 {
		return fmt.Errorf("%w: %s: degenerate hitbox", ErrInvalidMove, m.Name)
	}
	return nil
}

// MoveTable is a per-loadout catalog keyed by attack button.
type MoveTable map[AttackID]MoveSpec

// Validate checks every spec and requires an entry per attack button.
func (t MoveTable) Validate() error {
	for id := AttackID(0); id < AttackCount; id++ {
		spec, ok := t[id]
		if !ok {
			return fmt.Errorf("%w: missing move for %s", ErrInvalidMove, id)
		}
		if err := spec.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DefaultMoves returns the built-in catalog.
func DefaultMoves() MoveTable {
	return MoveTable{
		AttackLight: {
			Name:           "light",
			StartupFrames:  4,
			ActiveFrames:   6,
			RecoveryFrames: 10,
			Damage:         6,
			Knockback:      Vec{X: 4.0, Y: -1.0},
			Hitbox:         Rect{X: 50, Y: -90, W: 40, H: 30},
		},
		AttackHeavy: {
			Name:           "heavy",
			StartupFrames:  8,
			ActiveFrames:   6,
			RecoveryFrames: 16,
			Damage:         12,
			Knockback:      Vec{X: 8.0, Y: -3.0},
			Hitbox:         Rect{X: 55, Y: -100, W: 55, H: 40},
		},
		AttackSpecial: {
			Name:           "special",
			StartupFrames:  10,
			ActiveFrames:   10,
			RecoveryFrames: 18,
			Damage:         18,
			Knockback:      Vec{X: 11.0, Y: -5.0},
			Hitbox:         Rect{X: 60, Y: -115, W: 60, H: 50},
		},
	}
}

type moveFile struct {
	Moves map[string]MoveSpec `yaml:"moves"`
}

// LoadMoves reads a move catalog from a YAML file and validates it.
func LoadMoves(path string) (MoveTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseMoves(b)
}

// ParseMoves decodes and validates YAML move catalog data.
func ParseMoves(b []byte) (MoveTable, error) {
	var mf moveFile
	if err := yaml.Unmarshal(b, &mf); err != nil {
		return nil, fmt.Errorf("parse moves: %w", err)
	}

	names := map[string]AttackID{
		"light":   AttackLight,
		"heavy":   AttackHeavy,
		"special": AttackSpecial,
	}

	table := MoveTable{}
	for name, spec := range mf.Moves {
		id, ok := names[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown move name %q", ErrInvalidMove, name)
		}
		spec.Name = name
		table[id] = spec
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
