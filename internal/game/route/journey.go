// Package route models the player's walk along the route: choosing a
// starter, taking steps, and meeting wild creatures until the starter faints.
package route

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/route1/internal/game/battle"
	"github.com/cory-johannsen/route1/internal/game/creature"
	"github.com/cory-johannsen/route1/internal/game/encounter"
	"github.com/cory-johannsen/route1/internal/game/species"
)

var (
	// ErrNoStarter is returned when stepping before a starter was chosen.
	ErrNoStarter = errors.New("no starter chosen")
	// ErrStarterChosen is returned when choosing a starter twice.
	ErrStarterChosen = errors.New("starter already chosen")
	// ErrGameOver is returned when acting after the player's creature fainted.
	ErrGameOver = errors.New("game over")
	// ErrBattlePending is returned when stepping while an encounter is unresolved.
	ErrBattlePending = errors.New("an encounter is still pending")
)

// Encounters is the part of encounter.Generator a journey needs.
type Encounters interface {
	ShouldEncounter() bool
	Spawn() (encounter.Wild, error)
}

// Step is the result of one move along the route.
type Step struct {
	// Number is the 1-based step count.
	Number    int
	Direction Direction
	// Wild is the creature that appeared, or nil when the step was quiet.
	Wild *creature.Creature
	// Species is the template Wild was spawned from, or nil.
	Species *species.Template
}

// Journey is one play session on the route. It is not safe for concurrent use.
type Journey struct {
	starters   []*species.Template
	encounters Encounters
	logger     *zap.Logger

	player  *creature.Creature
	pending *creature.Creature
	steps   int
	wins    int
	over    bool
}

// NewJourney creates a journey offering the given starters.
//
// Precondition: starters non-empty; encounters and logger non-nil.
// Postcondition: Returns a Journey awaiting ChooseStarter.
func NewJourney(starters []*species.Template, encounters Encounters, logger *zap.Logger) *Journey {
	return &Journey{
		starters:   starters,
		encounters: encounters,
		logger:     logger,
	}
}

// Starters returns the starter templates in menu order.
func (j *Journey) Starters() []*species.Template { return j.starters }

// ChooseStarter spawns the player's creature from the 1-based starter choice.
//
// Postcondition: Returns the player's creature; an error wrapping
// creature.ErrInvalidArgument when choice is out of range; ErrStarterChosen
// when a starter already exists.
func (j *Journey) ChooseStarter(choice int) (*creature.Creature, error) {
	if j.player != nil {
		return nil, ErrStarterChosen
	}
	if choice < 1 || choice > len(j.starters) {
		return nil, fmt.Errorf("%w: starter choice must be 1-%d, got %d", creature.ErrInvalidArgument, len(j.starters), choice)
	}
	c, err := j.starters[choice-1].Spawn()
	if err != nil {
		return nil, err
	}
	j.player = c
	j.logger.Info("starter chosen", zap.String("creature", c.Name()), zap.String("creature_id", c.ID()))
	return c, nil
}

// Player returns the player's creature, or nil before ChooseStarter.
func (j *Journey) Player() *creature.Creature { return j.player }

// Steps returns the number of steps taken.
func (j *Journey) Steps() int { return j.steps }

// Wins returns the number of battles won.
func (j *Journey) Wins() int { return j.wins }

// Over reports whether the journey has ended.
func (j *Journey) Over() bool { return j.over }

// Step walks one step in direction and rolls for a wild encounter.
//
// Postcondition: On success the step counter has increased by one and, when an
// encounter happened, Step.Wild is a fresh creature that must be resolved with
// Finish before the next step. On error the journey is unchanged.
func (j *Journey) Step(direction Direction) (Step, error) {
	switch {
	case j.over:
		return Step{}, ErrGameOver
	case j.player == nil:
		return Step{}, ErrNoStarter
	case j.pending != nil:
		return Step{}, ErrBattlePending
	case !direction.Valid():
		return Step{}, fmt.Errorf("%w: unknown direction %q", creature.ErrInvalidArgument, direction)
	}

	step := Step{Number: j.steps + 1, Direction: direction}
	if j.encounters.ShouldEncounter() {
		wild, err := j.encounters.Spawn()
		if err != nil {
			return Step{}, fmt.Errorf("generating wild creature: %w", err)
		}
		step.Wild = wild.Creature
		step.Species = wild.Species
		j.pending = wild.Creature
	}
	j.steps = step.Number
	j.logger.Debug("route step",
		zap.Int("step", step.Number),
		zap.String("direction", string(direction)),
		zap.Bool("encounter", step.Wild != nil),
	)
	return step, nil
}

// Finish records the outcome of the pending encounter. The journey ends when
// the player's creature has fainted, which includes a double-faint win.
//
// Precondition: an encounter is pending; outcome is PlayerWins or PlayerLoses.
// Postcondition: No encounter is pending; Over() is true iff the player's creature fainted.
func (j *Journey) Finish(outcome battle.Outcome) error {
	if j.pending == nil {
		return fmt.Errorf("%w: no encounter to finish", creature.ErrInvalidArgument)
	}
	switch outcome {
	case battle.PlayerWins:
		j.wins++
	case battle.PlayerLoses:
	default:
		return fmt.Errorf("%w: cannot finish an undecided battle", creature.ErrInvalidArgument)
	}
	j.pending = nil

	// A double faint is still a win, but the journey cannot continue.
	if j.player.IsFainted() {
		j.over = true
		j.logger.Info("journey over",
			zap.Int("steps", j.steps),
			zap.Int("wins", j.wins),
			zap.Int("level", j.player.Level()),
		)
	}
	return nil
}
