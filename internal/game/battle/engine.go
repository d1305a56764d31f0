package battle

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/route1/internal/game/creature"
	"github.com/cory-johannsen/route1/internal/game/dice"
)

var errInvalid = creature.ErrInvalidArgument

// Rules holds the tunable constants of a battle.
type Rules struct {
	// HealAmount is the health restored by ActionHeal.
	HealAmount int
	// VictoryExperience is granted to the player's creature on a win.
	VictoryExperience int
}

// DefaultRules returns a heal of 20 and 100 experience per victory.
func DefaultRules() Rules {
	return Rules{HealAmount: 20, VictoryExperience: 100}
}

// ActionProvider supplies the player's action for the next turn.
// Returning an error aborts the battle.
type ActionProvider func(b *Battle) (Action, error)

// MoveSelector supplies the 1-based index of the player's move for an attack.
// Returning an error aborts the battle.
type MoveSelector func(b *Battle) (int, error)

// Engine starts and runs battles. It holds no per-battle state.
type Engine struct {
	rules  Rules
	roller *dice.Roller
	logger *zap.Logger
}

// NewEngine creates an Engine.
//
// Precondition: roller and logger must be non-nil; rules amounts must be >= 0.
// Postcondition: Returns a non-nil Engine.
func NewEngine(rules Rules, roller *dice.Roller, logger *zap.Logger) *Engine {
	return &Engine{rules: rules, roller: roller, logger: logger}
}

// Rules returns the engine's rules.
func (e *Engine) Rules() Rules { return e.rules }

// Start begins a battle between player and opponent.
//
// Precondition: both creatures non-nil, distinct, and not fainted.
// Postcondition: Returns an undecided Battle, or an error wrapping creature.ErrInvalidArgument.
func (e *Engine) Start(player, opponent *creature.Creature) (*Battle, error) {
	if player == nil || opponent == nil {
		return nil, fmt.Errorf("%w: battle needs two creatures", errInvalid)
	}
	if player == opponent {
		return nil, fmt.Errorf("%w: a creature cannot battle itself", errInvalid)
	}
	if player.IsFainted() {
		return nil, fmt.Errorf("%w: %s has fainted and cannot battle", errInvalid, player.Name())
	}
	if opponent.IsFainted() {
		return nil, fmt.Errorf("%w: %s has fainted and cannot battle", errInvalid, opponent.Name())
	}

	e.logger.Info("battle started",
		zap.String("player", player.Name()),
		zap.String("player_id", player.ID()),
		zap.Int("player_level", player.Level()),
		zap.String("opponent", opponent.Name()),
		zap.String("opponent_id", opponent.ID()),
		zap.Int("opponent_level", opponent.Level()),
	)
	return &Battle{engine: e, player: player, opponent: opponent}, nil
}

// Run drives a battle to completion, asking actions for each turn's action and
// moves for the move of each attack. A heal at full health is rejected without
// consuming a turn and actions is asked again.
//
// Precondition: actions and moves must be non-nil; actions must eventually
// return something other than ActionHeal while the player is at full health.
// Postcondition: Returns a Result with Outcome PlayerWins or PlayerLoses, or an
// error. Invalid actions and move indexes wrap creature.ErrInvalidArgument.
func (e *Engine) Run(player, opponent *creature.Creature, actions ActionProvider, moves MoveSelector) (Result, error) {
	if actions == nil || moves == nil {
		return Result{}, fmt.Errorf("%w: action provider and move selector are required", errInvalid)
	}
	b, err := e.Start(player, opponent)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for !b.Over() {
		action, err := actions(b)
		if err != nil {
			return result, fmt.Errorf("requesting action: %w", err)
		}

		var turn Turn
		switch action {
		case ActionHeal:
			turn, err = b.Heal()
			if errors.Is(err, ErrAlreadyFullHealth) {
				continue
			}
		case ActionAttack:
			idx, selErr := moves(b)
			if selErr != nil {
				return result, fmt.Errorf("selecting move: %w", selErr)
			}
			turn, err = b.Attack(idx)
		default:
			err = fmt.Errorf("%w: unknown action %d", errInvalid, int(action))
		}
		if err != nil {
			return result, err
		}

		result.Turns = append(result.Turns, turn)
		for _, ev := range turn.Events {
			if ev.Type == EventLevelUp {
				result.LeveledUp = true
			}
		}
	}
	result.Outcome = b.Outcome()
	return result, nil
}
