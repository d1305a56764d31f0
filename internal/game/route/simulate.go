package route

import (
	"fmt"

	"github.com/cory-johannsen/route1/internal/game/battle"
	"github.com/cory-johannsen/route1/internal/game/creature"
)

// Strategy makes the player's decisions for a headless run.
type Strategy struct {
	Direction func(j *Journey) Direction
	Actions   battle.ActionProvider
	Moves     battle.MoveSelector
}

// Autopilot walks forward, heals below healThreshold percent of max health,
// and otherwise attacks with the move that deals the most damage.
func Autopilot(healThreshold int) Strategy {
	return Strategy{
		Direction: func(*Journey) Direction { return Forward },
		Actions: func(b *battle.Battle) (battle.Action, error) {
			p := b.Player()
			if !p.IsFullHealth() && p.CurrentHealth()*100 < p.MaxHealth()*healThreshold {
				return battle.ActionHeal, nil
			}
			return battle.ActionAttack, nil
		},
		Moves: func(b *battle.Battle) (int, error) {
			best, bestDamage := 1, -1
			for i, m := range b.Player().Moves() {
				if d := creature.Damage(m, b.Opponent().Affinity()); d > bestDamage {
					best, bestDamage = i+1, d
				}
			}
			return best, nil
		},
	}
}

// Summary reports how a headless run went.
type Summary struct {
	Starter string
	Steps   int
	Battles int
	Wins    int
	Level   int
	Fainted bool
}

// Simulate chooses starter, then walks up to maxSteps steps, fighting every
// encounter with eng and s, until the steps run out or the starter faints.
//
// Precondition: j is fresh; maxSteps >= 0.
// Postcondition: Returns a Summary of the run, or the first error encountered.
func Simulate(j *Journey, eng *battle.Engine, starter, maxSteps int, s Strategy) (Summary, error) {
	player, err := j.ChooseStarter(starter)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Starter: player.Name()}
	for i := 0; i < maxSteps && !j.Over(); i++ {
		step, err := j.Step(s.Direction(j))
		if err != nil {
			return sum, err
		}
		sum.Steps = step.Number
		if step.Wild == nil {
			continue
		}
		sum.Battles++
		result, err := eng.Run(player, step.Wild, s.Actions, s.Moves)
		if err != nil {
			return sum, fmt.Errorf("battle on step %d: %w", step.Number, err)
		}
		if err := j.Finish(result.Outcome); err != nil {
			return sum, err
		}
	}

	sum.Wins = j.Wins()
	sum.Level = player.Level()
	sum.Fainted = player.IsFainted()
	return sum, nil
}
