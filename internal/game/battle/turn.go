package battle

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/route1/internal/game/creature"
)

// Battle is one encounter in progress. It is not safe for concurrent use.
type Battle struct {
	engine   *Engine
	player   *creature.Creature
	opponent *creature.Creature
	turns    int
	outcome  Outcome
}

// Player returns the player's creature.
func (b *Battle) Player() *creature.Creature { return b.player }

// Opponent returns the opposing creature.
func (b *Battle) Opponent() *creature.Creature { return b.opponent }

// TurnCount returns the number of turns resolved so far.
func (b *Battle) TurnCount() int { return b.turns }

// Outcome returns the battle outcome; Undecided while in progress.
func (b *Battle) Outcome() Outcome { return b.outcome }

// Over reports whether the battle has an outcome.
func (b *Battle) Over() bool { return b.outcome != Undecided }

// Heal restores the engine's heal amount to the player's creature. The
// opponent does not act on a heal turn.
//
// Postcondition: Returns ErrAlreadyFullHealth with no state change when the
// player is at max health; ErrBattleOver when the battle has ended; otherwise
// a Turn containing one EventHeal.
func (b *Battle) Heal() (Turn, error) {
	if b.Over() {
		return Turn{}, ErrBattleOver
	}
	if b.player.IsFullHealth() {
		return Turn{}, fmt.Errorf("%s: %w", b.player.Name(), ErrAlreadyFullHealth)
	}

	healed := b.player.Heal(b.engine.rules.HealAmount)
	b.turns++
	turn := Turn{
		Number: b.turns,
		Action: ActionHeal,
		Events: []Event{{
			Type:      EventHeal,
			ActorID:   b.player.ID(),
			ActorName: b.player.Name(),
			Amount:    healed,
			Player:    true,
			Narrative: fmt.Sprintf("You healed your %s for %d HP!", b.player.Name(), healed),
		}},
	}
	b.finishTurn(&turn)
	return turn, nil
}

// Attack resolves an attack turn. The player uses the move at the 1-based
// moveIndex; the opponent picks one of its moves uniformly at random. Both
// damages are computed from the pre-turn state and applied together.
//
// Postcondition: Returns an error wrapping creature.ErrInvalidArgument with no
// state change when moveIndex is out of range; ErrBattleOver when the battle
// has ended; otherwise a Turn with both move events and any faint, experience,
// and level-up events.
func (b *Battle) Attack(moveIndex int) (Turn, error) {
	if b.Over() {
		return Turn{}, ErrBattleOver
	}
	playerMove, err := b.player.Move(moveIndex)
	if err != nil {
		return Turn{}, err
	}
	opponentMoves := b.opponent.Moves()
	opponentMove := opponentMoves[b.engine.roller.Pick("opponent move", len(opponentMoves))]

	playerMult := creature.Effectiveness(playerMove.Affinity(), b.opponent.Affinity())
	opponentMult := creature.Effectiveness(opponentMove.Affinity(), b.player.Affinity())
	playerDamage := creature.Damage(playerMove, b.opponent.Affinity())
	opponentDamage := creature.Damage(opponentMove, b.player.Affinity())

	b.opponent.TakeDamage(playerDamage)
	b.player.TakeDamage(opponentDamage)

	b.turns++
	turn := Turn{
		Number: b.turns,
		Action: ActionAttack,
		Events: []Event{
			moveEvent(b.player, b.opponent, playerMove, playerDamage, playerMult, true),
			moveEvent(b.opponent, b.player, opponentMove, opponentDamage, opponentMult, false),
		},
	}
	b.finishTurn(&turn)
	return turn, nil
}

func moveEvent(actor, target *creature.Creature, m creature.Move, damage int, mult float64, player bool) Event {
	who := "Opponent"
	if player {
		who = "You"
	}
	narrative := fmt.Sprintf("%s used %s! %s took %d damage.", who, m.Name(), target.Name(), damage)
	if label := creature.EffectivenessLabel(mult); label != "" {
		narrative += " " + label
	}
	return Event{
		Type:       EventMove,
		ActorID:    actor.ID(),
		ActorName:  actor.Name(),
		Move:       m.Name(),
		TargetName: target.Name(),
		Amount:     damage,
		Multiplier: mult,
		Player:     player,
		Narrative:  narrative,
	}
}

// finishTurn checks for fainting after the whole turn has been applied. The
// opponent is checked first, so a double faint is a player win.
func (b *Battle) finishTurn(turn *Turn) {
	logger := b.engine.logger

	switch {
	case b.opponent.IsFainted():
		b.outcome = PlayerWins
		turn.Events = append(turn.Events, Event{
			Type:      EventFaint,
			ActorID:   b.opponent.ID(),
			ActorName: b.opponent.Name(),
			Narrative: fmt.Sprintf("Opponent's %s fainted! You win!", b.opponent.Name()),
		})
		if b.player.IsFainted() {
			turn.Events = append(turn.Events, Event{
				Type:      EventFaint,
				ActorID:   b.player.ID(),
				ActorName: b.player.Name(),
				Player:    true,
				Narrative: fmt.Sprintf("Your %s fainted too!", b.player.Name()),
			})
		}
		b.grantExperience(turn)
	case b.player.IsFainted():
		b.outcome = PlayerLoses
		turn.Events = append(turn.Events, Event{
			Type:      EventFaint,
			ActorID:   b.player.ID(),
			ActorName: b.player.Name(),
			Player:    true,
			Narrative: fmt.Sprintf("Your %s fainted!", b.player.Name()),
		})
	}
	turn.Outcome = b.outcome

	logger.Debug("battle turn resolved",
		zap.Int("turn", turn.Number),
		zap.Stringer("action", turn.Action),
		zap.Int("player_hp", b.player.CurrentHealth()),
		zap.Int("opponent_hp", b.opponent.CurrentHealth()),
		zap.Stringer("outcome", b.outcome),
	)
	if b.Over() {
		logger.Info("battle finished",
			zap.Stringer("outcome", b.outcome),
			zap.Int("turns", b.turns),
			zap.String("player", b.player.Name()),
			zap.String("opponent", b.opponent.Name()),
		)
	}
}

func (b *Battle) grantExperience(turn *Turn) {
	exp := b.engine.rules.VictoryExperience
	turn.Events = append(turn.Events, Event{
		Type:      EventExperience,
		ActorID:   b.player.ID(),
		ActorName: b.player.Name(),
		Amount:    exp,
		Player:    true,
		Narrative: fmt.Sprintf("You gained %d EXP!", exp),
	})
	if !b.player.GainExperience(exp) {
		return
	}
	turn.Events = append(turn.Events, Event{
		Type:      EventLevelUp,
		ActorID:   b.player.ID(),
		ActorName: b.player.Name(),
		Amount:    b.player.Level(),
		Player:    true,
		Narrative: fmt.Sprintf("%s leveled up to level %d!", b.player.Name(), b.player.Level()),
	})
	b.engine.logger.Info("creature leveled up",
		zap.String("creature", b.player.Name()),
		zap.String("creature_id", b.player.ID()),
		zap.Int("level", b.player.Level()),
	)
}
