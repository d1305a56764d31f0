// Package battle resolves a one-on-one fight between the player's creature
// and a wild opponent.
package battle

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyFullHealth is returned by Heal when the player's creature is
	// already at max health. No turn is consumed.
	ErrAlreadyFullHealth = errors.New("creature is already at full health")
	// ErrBattleOver is returned when acting on a battle that has an outcome.
	ErrBattleOver = errors.New("battle is over")
)

// Action is a player's choice for one turn.
// The zero value (ActionUnknown) is intentionally invalid.
type Action int

const (
	ActionUnknown Action = iota
	ActionAttack
	ActionHeal
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionHeal:
		return "heal"
	default:
		return "unknown"
	}
}

// ActionFromChoice maps a 1-based menu choice to an Action: 1 attacks, 2 heals.
//
// Postcondition: Returns a valid Action or an error wrapping creature.ErrInvalidArgument.
func ActionFromChoice(choice int) (Action, error) {
	switch choice {
	case 1:
		return ActionAttack, nil
	case 2:
		return ActionHeal, nil
	default:
		return ActionUnknown, fmt.Errorf("%w: action choice must be 1-2, got %d", errInvalid, choice)
	}
}

// Outcome is the terminal state of a battle.
type Outcome int

const (
	// Undecided means the battle is still in progress.
	Undecided Outcome = iota
	PlayerWins
	PlayerLoses
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case PlayerWins:
		return "player wins"
	case PlayerLoses:
		return "player loses"
	default:
		return "undecided"
	}
}

// EventType identifies what an Event records.
type EventType int

const (
	EventMove EventType = iota
	EventHeal
	EventFaint
	EventExperience
	EventLevelUp
)

// Event records one thing that happened during a turn.
type Event struct {
	Type      EventType
	ActorID   string
	ActorName string
	// Move is the move used; empty for non-move events.
	Move string
	// TargetName is the creature a move landed on.
	TargetName string
	// Amount is damage dealt, health restored, experience gained, or the new level.
	Amount int
	// Multiplier is the type-effectiveness multiplier of a move.
	Multiplier float64
	// Player is true when the actor is the player's creature.
	Player    bool
	Narrative string
}

// Turn is the result of one resolved player action.
type Turn struct {
	// Number is the 1-based turn count within the battle.
	Number int
	Action Action
	Events []Event
	// Outcome is the battle outcome after this turn.
	Outcome Outcome
}

// Result summarises a finished battle.
type Result struct {
	Outcome Outcome
	Turns   []Turn
	// LeveledUp is true when the victory experience raised the player's level.
	LeveledUp bool
}
