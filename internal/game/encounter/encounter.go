// Package encounter decides when a wild creature appears on the route and
// spawns it from the wild species table.
package encounter

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/route1/internal/game/creature"
	"github.com/cory-johannsen/route1/internal/game/dice"
	"github.com/cory-johannsen/route1/internal/game/species"
)

// Chance is the encounter probability expressed as a die roll: an encounter
// happens when Die rolls Threshold or lower.
//
// Invariant: Die is a single die with no modifier.
type Chance struct {
	Die       dice.Expression
	Threshold int
}

// DefaultChance is a 30% encounter rate: 1d10 <= 3.
var DefaultChance = Chance{Die: dice.Die(10), Threshold: 3}

// ParseChance builds a Chance from a dice expression such as "1d10".
//
// Postcondition: Returns a valid Chance, or an error when expr does not parse,
// is not a single unmodified die, or threshold is outside [0, sides].
func ParseChance(expr string, threshold int) (Chance, error) {
	die, err := dice.Parse(expr)
	if err != nil {
		return Chance{}, fmt.Errorf("encounter die: %w", err)
	}
	c := Chance{Die: die, Threshold: threshold}
	if err := c.validate(); err != nil {
		return Chance{}, err
	}
	return c, nil
}

func (c Chance) validate() error {
	if c.Die.Count != 1 || c.Die.Modifier != 0 || c.Die.Sides < 1 {
		return fmt.Errorf("%w: encounter die must be a single unmodified die, got %s", creature.ErrInvalidArgument, c.Die)
	}
	if c.Threshold < 0 || c.Threshold > c.Die.Sides {
		return fmt.Errorf("%w: encounter chance %d/%d out of range", creature.ErrInvalidArgument, c.Threshold, c.Die.Sides)
	}
	return nil
}

// Rate returns the probability of an encounter per step.
func (c Chance) Rate() float64 {
	return float64(c.Threshold) / float64(c.Die.Sides)
}

// Wild is a freshly spawned wild creature and the species it came from.
type Wild struct {
	Species  *species.Template
	Creature *creature.Creature
}

// Generator rolls for encounters and spawns wild creatures.
type Generator struct {
	roller *dice.Roller
	chance Chance
	wild   []*species.Template
	logger *zap.Logger
}

// NewGenerator creates a Generator over the given wild species.
//
// Precondition: roller and logger non-nil.
// Postcondition: Returns a Generator, or an error wrapping creature.ErrInvalidArgument
// when wild is empty or chance is out of range.
func NewGenerator(roller *dice.Roller, wild []*species.Template, chance Chance, logger *zap.Logger) (*Generator, error) {
	if len(wild) == 0 {
		return nil, fmt.Errorf("%w: encounter generator needs at least one wild species", creature.ErrInvalidArgument)
	}
	if err := chance.validate(); err != nil {
		return nil, err
	}
	return &Generator{
		roller: roller,
		chance: chance,
		wild:   append([]*species.Template(nil), wild...),
		logger: logger,
	}, nil
}

// Chance returns the generator's encounter chance.
func (g *Generator) Chance() Chance { return g.chance }

// ShouldEncounter rolls for a wild encounter. Each call is independent.
//
// Postcondition: Returns true with probability Chance().Rate().
func (g *Generator) ShouldEncounter() bool {
	roll := g.roller.Roll("encounter", g.chance.Die)
	hit := roll.Total() <= g.chance.Threshold
	g.logger.Debug("encounter check",
		zap.Int("roll", roll.Total()),
		zap.Int("threshold", g.chance.Threshold),
		zap.Bool("encounter", hit),
	)
	return hit
}

// Spawn picks a wild species uniformly and spawns a fresh creature from it.
//
// Postcondition: Returns a new full-health Creature matching Wild.Species,
// or an error if the template cannot spawn.
func (g *Generator) Spawn() (Wild, error) {
	tmpl := g.wild[g.roller.Pick("wild species", len(g.wild))]
	c, err := tmpl.Spawn()
	if err != nil {
		return Wild{}, err
	}
	g.logger.Info("wild creature appeared",
		zap.String("species", tmpl.ID),
		zap.String("creature_id", c.ID()),
		zap.Int("level", c.Level()),
	)
	return Wild{Species: tmpl, Creature: c}, nil
}

// GenerateWild spawns a fresh creature from a uniformly chosen wild species.
//
// Postcondition: Returns a new full-health Creature matching one wild template,
// or an error if the template cannot spawn.
func (g *Generator) GenerateWild() (*creature.Creature, error) {
	w, err := g.Spawn()
	if err != nil {
		return nil, err
	}
	return w.Creature, nil
}
