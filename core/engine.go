package core

import (
	"context"

	"github.com/looplab/fsm"
	"github.com/mirrorfall/fightcore/archetypes"
	"github.com/mirrorfall/fightcore/components"
	cfg "github.com/mirrorfall/fightcore/config"
	"github.com/mirrorfall/fightcore/systems"
	"github.com/mirrorfall/fightcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Intents carries both players' normalized input for one tick.
type Intents struct {
	P1 cfg.Intent
	P2 cfg.Intent
}

// Engine owns the simulation world for one round: both fighters, the
// round singleton and the round phase state machine. It is not safe for
// concurrent use; the host drives it from a single goroutine.
type Engine struct {
	ecs   *ecs.ECS
	fsm   *fsm.FSM
	moves cfg.MoveTable
}

// New builds an engine with the built-in move catalog.
func New() *Engine {
	en, err := NewWithMoves(cfg.DefaultMoves())
	if err != nil {
		// The built-in catalog always validates.
		panic(err)
	}
	return en
}

// NewWithMoves builds an engine with a host-supplied move catalog. The
// catalog is validated once here; a bad spec never reaches a tick.
func NewWithMoves(table cfg.MoveTable) (*Engine, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	en := &Engine{moves: table}
	en.buildWorld()
	en.fsm = newRoundFSM()
	return en, nil
}

func newRoundFSM() *fsm.FSM {
	return fsm.NewFSM(
		string(cfg.PhasePlaying),
		fsm.Events{
			{Name: cfg.EventPause, Src: []string{string(cfg.PhasePlaying)}, Dst: string(cfg.PhasePaused)},
			{Name: cfg.EventResume, Src: []string{string(cfg.PhasePaused)}, Dst: string(cfg.PhasePlaying)},
			{Name: cfg.EventFinish, Src: []string{string(cfg.PhasePlaying)}, Dst: string(cfg.PhaseRoundOver)},
		},
		fsm.Callbacks{},
	)
}

func (en *Engine) buildWorld() {
	e := ecs.NewECS(donburi.NewWorld())

	spaceEntry := archetypes.Space.Spawn(e)
	space := resolv.NewSpace(int(cfg.Arena.Width), int(cfg.Arena.Height), 16, 16)
	components.Space.SetValue(spaceEntry, components.SpaceData{Space: space})

	roundEntry := archetypes.Round.Spawn(e)
	components.Round.SetValue(roundEntry, components.RoundData{
		TimeLeft: cfg.Round.Duration,
		Winner:   cfg.WinnerNone,
	})

	for i := 0; i < 2; i++ {
		entry := archetypes.Fighter.Spawn(e)

		obj := resolv.NewObject(
			cfg.Fighter.SpawnX[i],
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

	en.ecs = e
}

// Update advances the simulation by one tick of dt seconds. All effects
// are visible through Snapshot; nothing is returned. A tick that toggles
// pause performs no other simulation work, and once the round is over
// every Update is a no-op until Restart.
func (en *Engine) Update(dt float64, in Intents) {
	if en.fsm.Is(string(cfg.PhaseRoundOver)) {
		return
	}

	systems.RecordIntents(en.ecs, in.P1, in.P2)

	round := systems.RoundState(en.ecs)
	if round.PauseRequested {
		round.PauseRequested = false
		if en.fsm.Is(string(cfg.PhasePaused)) {
			en.mustEvent(cfg.EventResume)
		} else {
			en.mustEvent(cfg.EventPause)
		}
		round.Paused = en.fsm.Is(string(cfg.PhasePaused))
		return
	}
	if en.fsm.Is(string(cfg.PhasePaused)) {
		return
	}

	systems.ApplyIntents(en.ecs, en.moves)
	systems.UpdatePhysics(en.ecs, dt)
	systems.UpdateFacing(en.ecs)
	systems.ResolveCombat(en.ecs)
	systems.UpdateRound(en.ecs, dt)

	if round.Over {
		en.mustEvent(cfg.EventFinish)
	}
}

// Restart rebuilds both fighters at spawn and a fresh round state.
func (en *Engine) Restart() {
	en.buildWorld()
	en.fsm = newRoundFSM()
}

// Phase returns the round controller's current phase.
func (en *Engine) Phase() cfg.RoundPhase {
	return cfg.RoundPhase(en.fsm.Current())
}

func (en *Engine) mustEvent(name string) {
	// Transitions are only fired from states that allow them; an error
	// here is a programming bug, not a runtime condition.
	if err := en.fsm.Event(context.Background(), name); err != nil {
		panic(err)
	}
}
