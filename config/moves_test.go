package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMovesValidate(t *testing.T) {
	require.NoError(t, DefaultMoves().Validate())
}

func TestParseMoves(t *testing.T) {
	data := []byte(`
moves:
  light:
    startup: 3
    active: 2
    recovery: 5
    damage: 4
    knockback: {x: 3, y: -1}
    hitbox: {x: 40, y: -80, w: 30, h: 25}
  heavy:
    startup: 7
    active: 4
    recovery: 12
    damage: 11
    knockback: {x: 7, y: -2}
    hitbox: {x: 50, y: -95, w: 50, h: 35}
  special:
    startup: 9
    active: 8
    recovery: 15
    damage: 16
    knockback: {x: 10, y: -4}
    hitbox: {x: 55, y: -110, w: 55, h: 45}
`)
	table, err := ParseMoves(data)
	require.NoError(t, err)

	light := table[AttackLight]
	assert.Equal(t, "light", light.Name)
	assert.Equal(t, 3, light.StartupFrames)
	assert.Equal(t, 10, light.TotalFrames())
	assert.Equal(t, Vec{X: 3, Y: -1}, light.Knockback)
	assert.Equal(t, Rect{X: 40, Y: -80, W: 30, H: 25}, light.Hitbox)
}

func TestParseMovesRejectsUnknownName(t *testing.T) {
	_, err := ParseMoves([]byte("moves:\n  uppercut:\n    startup: 1\n    active: 1\n    recovery: 1\n    damage: 1\n    hitbox: {x: 1, y: -1, w: 1, h: 1}\n"))
	require.ErrorIs(t, err, ErrInvalidMove)
}

func TestParseMovesRequiresAllAttacks(t *testing.T) {
	_, err := ParseMoves([]byte("moves:\n  light:\n    startup: 1\n    active: 1\n    recovery: 1\n    damage: 1\n    hitbox: {x: 1, y: -1, w: 1, h: 1}\n"))
	require.ErrorIs(t, err, ErrInvalidMove)
}

func TestValidateRejectsBadSpecs(t *testing.T) {
	base := DefaultMoves()

	cases := map[string]func(*MoveSpec){
		"zero active frames":     func(m *MoveSpec) { m.ActiveFrames = 0 },
		"negative startup":       func(m *MoveSpec) { m.StartupFrames = -1 },
		"negative recovery":      func(m *MoveSpec) { m.RecoveryFrames = -2 },
		"non-positive damage":    func(m *MoveSpec) { m.Damage = 0 },
		"degenerate hitbox":      func(m *MoveSpec) { m.Hitbox.W = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			table := MoveTable{}
			for id, spec := range base {
				table[id] = spec
			}
			spec := table[AttackHeavy]
			mutate(&spec)
			table[AttackHeavy] = spec

			assert.ErrorIs(t, table.Validate(), ErrInvalidMove)
		})
	}
}

func TestLoadMoves(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "moves.yaml")

	data := []byte(`
moves:
  light:
    startup: 4
    active: 6
    recovery: 10
    damage: 6
    knockback: {x: 4, y: -1}
    hitbox: {x: 50, y: -90, w: 40, h: 30}
  heavy:
    startup: 8
    active: 6
    recovery: 16
    damage: 12
    knockback: {x: 8, y: -3}
    hitbox: {x: 55, y: -100, w: 55, h: 40}
  special:
    startup: 10
    active: 10
    recovery: 18
    damage: 18
    knockback: {x: 11, y: -5}
    hitbox: {x: 60, y: -115, w: 60, h: 50}
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	table, err := LoadMoves(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultMoves()[AttackHeavy].Damage, table[AttackHeavy].Damage)

	_, err = LoadMoves(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
