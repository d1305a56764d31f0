// Package creature defines the battling creature, its moves, and the
// type-effectiveness rule between affinities.
package creature

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidArgument is wrapped by every error caused by a caller passing
// an out-of-range or malformed value.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	// MinLevel and MaxLevel bound a creature's level.
	MinLevel = 1
	MaxLevel = 100

	// LevelUpExperience is the experience that must be gained at once to level up.
	LevelUpExperience = 100

	baseLevel      = 5
	baseHealth     = 50
	healthPerLevel = 10
	baseAttack     = 10
	attackPerLevel = 2
)

// MaxHealthAt returns the max health of a freshly created creature at level.
func MaxHealthAt(level int) int {
	return baseHealth + (level-baseLevel)*healthPerLevel
}

// AttackPowerAt returns the attack power of a freshly created creature at level.
func AttackPowerAt(level int) int {
	return baseAttack + (level-baseLevel)*attackPerLevel
}

// Creature is one battle participant.
//
// Invariant: 0 <= CurrentHealth() <= MaxHealth(); IsFainted() iff CurrentHealth() == 0.
type Creature struct {
	id            string
	name          string
	level         int
	maxHealth     int
	currentHealth int
	attackPower   int
	affinity      Affinity
	moves         []Move
}

// New creates a Creature with level-derived stats at full health.
//
// Precondition: name non-empty; level in [MinLevel, MaxLevel]; affinity valid; moves non-empty.
// Postcondition: MaxHealth() == MaxHealthAt(level), AttackPower() == AttackPowerAt(level),
// CurrentHealth() == MaxHealth(); or an error wrapping ErrInvalidArgument.
func New(name string, level int, affinity Affinity, moves []Move) (*Creature, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: creature name must not be empty", ErrInvalidArgument)
	}
	if level < MinLevel || level > MaxLevel {
		return nil, fmt.Errorf("%w: creature %q level must be %d-%d, got %d", ErrInvalidArgument, name, MinLevel, MaxLevel, level)
	}
	if !affinity.Valid() {
		return nil, fmt.Errorf("%w: creature %q has invalid affinity", ErrInvalidArgument, name)
	}
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: creature %q must have at least one move", ErrInvalidArgument, name)
	}
	for i, m := range moves {
		if m.Name() == "" || m.Power() < 0 || !m.Affinity().Valid() {
			return nil, fmt.Errorf("%w: creature %q move %d is malformed", ErrInvalidArgument, name, i+1)
		}
	}

	maxHealth := MaxHealthAt(level)
	return &Creature{
		id:            uuid.New().String(),
		name:          name,
		level:         level,
		maxHealth:     maxHealth,
		currentHealth: maxHealth,
		attackPower:   AttackPowerAt(level),
		affinity:      affinity,
		moves:         append([]Move(nil), moves...),
	}, nil
}

// ID returns the unique instance identifier.
func (c *Creature) ID() string { return c.id }

// Name returns the species display name.
func (c *Creature) Name() string { return c.name }

// Level returns the current level.
func (c *Creature) Level() int { return c.level }

// MaxHealth returns the current maximum health.
func (c *Creature) MaxHealth() int { return c.maxHealth }

// CurrentHealth returns the current health.
func (c *Creature) CurrentHealth() int { return c.currentHealth }

// AttackPower returns the level-derived attack power.
func (c *Creature) AttackPower() int { return c.attackPower }

// Affinity returns the creature's elemental affinity.
func (c *Creature) Affinity() Affinity { return c.affinity }

// Moves returns a copy of the creature's moves in order.
func (c *Creature) Moves() []Move {
	return append([]Move(nil), c.moves...)
}

// Move returns the move at the 1-based index.
//
// Postcondition: Returns the move or an error wrapping ErrInvalidArgument.
func (c *Creature) Move(index int) (Move, error) {
	if index < 1 || index > len(c.moves) {
		return Move{}, fmt.Errorf("%w: move index must be 1-%d, got %d", ErrInvalidArgument, len(c.moves), index)
	}
	return c.moves[index-1], nil
}

// IsFainted reports whether the creature has no health left.
func (c *Creature) IsFainted() bool { return c.currentHealth == 0 }

// IsFullHealth reports whether current health equals max health.
func (c *Creature) IsFullHealth() bool { return c.currentHealth == c.maxHealth }

// TakeDamage reduces current health by amount, flooring at zero.
// Negative amounts are ignored.
//
// Postcondition: 0 <= CurrentHealth() <= MaxHealth().
func (c *Creature) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	c.currentHealth -= amount
	if c.currentHealth < 0 {
		c.currentHealth = 0
	}
}

// Heal restores up to amount health, capped at max health, and returns the
// health actually restored. Negative amounts are ignored.
//
// Postcondition: 0 <= CurrentHealth() <= MaxHealth(); return value >= 0.
func (c *Creature) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.currentHealth
	c.currentHealth += amount
	if c.currentHealth > c.maxHealth {
		c.currentHealth = c.maxHealth
	}
	return c.currentHealth - before
}

// GainExperience levels the creature up once when amount reaches
// LevelUpExperience and the level is below MaxLevel. Health is not restored.
//
// Postcondition: Returns true iff Level() increased by exactly 1, in which case
// MaxHealth() grew by 10 and AttackPower() by 2.
func (c *Creature) GainExperience(amount int) bool {
	if c.level >= MaxLevel || amount < LevelUpExperience {
		return false
	}
	c.level++
	c.maxHealth += healthPerLevel
	c.attackPower += attackPerLevel
	return true
}

// String returns a short status line, e.g. "Bulbasaur Lv5 (grass) 50/50".
func (c *Creature) String() string {
	return fmt.Sprintf("%s Lv%d (%s) %d/%d", c.name, c.level, c.affinity, c.currentHealth, c.maxHealth)
}
