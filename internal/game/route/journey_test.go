package route_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/route1/internal/game/battle"
	"github.com/cory-johannsen/route1/internal/game/creature"
	"github.com/cory-johannsen/route1/internal/game/encounter"
	"github.com/cory-johannsen/route1/internal/game/route"
	"github.com/cory-johannsen/route1/internal/game/species"
)

// scriptedEncounters replays encounter decisions and spawns from tmpl.
type scriptedEncounters struct {
	hits []bool
	tmpl *species.Template
	err  error
}

func (s *scriptedEncounters) ShouldEncounter() bool {
	if len(s.hits) == 0 {
		return false
	}
	hit := s.hits[0]
	s.hits = s.hits[1:]
	return hit
}

func (s *scriptedEncounters) Spawn() (encounter.Wild, error) {
	if s.err != nil {
		return encounter.Wild{}, s.err
	}
	c, err := s.tmpl.Spawn()
	if err != nil {
		return encounter.Wild{}, err
	}
	return encounter.Wild{Species: s.tmpl, Creature: c}, nil
}

func newJourney(t *testing.T, hits ...bool) *route.Journey {
	t.Helper()
	cat, err := species.Default()
	require.NoError(t, err)
	return route.NewJourney(cat.Starters, &scriptedEncounters{hits: hits, tmpl: cat.Wild[1]}, zap.NewNop())
}

func TestDirectionFromChoice(t *testing.T) {
	for choice, want := range map[int]route.Direction{1: route.Forward, 2: route.Left, 3: route.Right} {
		d, err := route.DirectionFromChoice(choice)
		require.NoError(t, err)
		assert.Equal(t, want, d)
	}
	for _, choice := range []int{0, 4} {
		_, err := route.DirectionFromChoice(choice)
		assert.ErrorIs(t, err, creature.ErrInvalidArgument)
	}
}

func TestJourney_ChooseStarter(t *testing.T) {
	j := newJourney(t)
	assert.Len(t, j.Starters(), 3)

	_, err := j.ChooseStarter(4)
	assert.ErrorIs(t, err, creature.ErrInvalidArgument)

	c, err := j.ChooseStarter(3)
	require.NoError(t, err)
	assert.Equal(t, "Squirtle", c.Name())
	assert.Equal(t, 5, c.Level())
	assert.Same(t, c, j.Player())

	_, err = j.ChooseStarter(1)
	assert.ErrorIs(t, err, route.ErrStarterChosen)
}

func TestJourney_StepRequiresStarter(t *testing.T) {
	_, err := newJourney(t).Step(route.Forward)
	assert.ErrorIs(t, err, route.ErrNoStarter)
}

func TestJourney_StepRejectsUnknownDirection(t *testing.T) {
	j := newJourney(t)
	_, err := j.ChooseStarter(1)
	require.NoError(t, err)
	_, err = j.Step(route.Direction("backward"))
	assert.ErrorIs(t, err, creature.ErrInvalidArgument)
	assert.Equal(t, 0, j.Steps())
}

func TestJourney_QuietStepAndEncounter(t *testing.T) {
	j := newJourney(t, false, true)
	_, err := j.ChooseStarter(1)
	require.NoError(t, err)

	step, err := j.Step(route.Left)
	require.NoError(t, err)
	assert.Equal(t, 1, step.Number)
	assert.Equal(t, route.Left, step.Direction)
	assert.Nil(t, step.Wild)
	assert.Nil(t, step.Species)

	step, err = j.Step(route.Forward)
	require.NoError(t, err)
	assert.Equal(t, 2, step.Number)
	require.NotNil(t, step.Wild)
	assert.Equal(t, "Rattata", step.Wild.Name())
	require.NotNil(t, step.Species)
	assert.Equal(t, "rattata", step.Species.ID)

	_, err = j.Step(route.Forward)
	assert.ErrorIs(t, err, route.ErrBattlePending)

	require.NoError(t, j.Finish(battle.PlayerWins))
	assert.Equal(t, 1, j.Wins())
	assert.False(t, j.Over())

	_, err = j.Step(route.Right)
	require.NoError(t, err)
	assert.Equal(t, 3, j.Steps())
}

func TestJourney_LossEndsJourney(t *testing.T) {
	j := newJourney(t, true)
	player, err := j.ChooseStarter(1)
	require.NoError(t, err)
	_, err = j.Step(route.Forward)
	require.NoError(t, err)

	player.TakeDamage(player.MaxHealth())
	require.NoError(t, j.Finish(battle.PlayerLoses))
	assert.True(t, j.Over())

	_, err = j.Step(route.Forward)
	assert.ErrorIs(t, err, route.ErrGameOver)
}

func TestJourney_DoubleFaintWinEndsJourney(t *testing.T) {
	j := newJourney(t, true)
	player, err := j.ChooseStarter(1)
	require.NoError(t, err)
	_, err = j.Step(route.Forward)
	require.NoError(t, err)

	player.TakeDamage(player.MaxHealth())
	require.NoError(t, j.Finish(battle.PlayerWins))
	assert.Equal(t, 1, j.Wins())
	assert.True(t, j.Over())
}

func TestJourney_FinishValidation(t *testing.T) {
	j := newJourney(t, true)
	_, err := j.ChooseStarter(1)
	require.NoError(t, err)

	assert.ErrorIs(t, j.Finish(battle.PlayerWins), creature.ErrInvalidArgument, "nothing pending")

	_, err = j.Step(route.Forward)
	require.NoError(t, err)
	assert.ErrorIs(t, j.Finish(battle.Undecided), creature.ErrInvalidArgument)
}

func TestJourney_SpawnErrorLeavesJourneyUnchanged(t *testing.T) {
	cat, err := species.Default()
	require.NoError(t, err)
	boom := errors.New("no species")
	j := route.NewJourney(cat.Starters, &scriptedEncounters{hits: []bool{true, true}, err: boom}, zap.NewNop())
	_, err = j.ChooseStarter(1)
	require.NoError(t, err)

	_, err = j.Step(route.Forward)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, j.Steps(), "a failed step is not counted")

	_, err = j.Step(route.Forward)
	assert.ErrorIs(t, err, boom, "nothing is left pending after a failed spawn")
	assert.Equal(t, 0, j.Steps())
}
