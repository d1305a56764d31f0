// Package app assembles a playable journey from configuration.
package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/cory-johannsen/route1/internal/config"
	"github.com/cory-johannsen/route1/internal/game/battle"
	"github.com/cory-johannsen/route1/internal/game/dice"
	"github.com/cory-johannsen/route1/internal/game/encounter"
	"github.com/cory-johannsen/route1/internal/game/route"
	"github.com/cory-johannsen/route1/internal/game/species"
	"github.com/cory-johannsen/route1/internal/observability"
)

// App holds everything one play session needs.
type App struct {
	Config    config.Config
	Logger    *zap.Logger
	Catalog   *species.Catalog
	Engine    *battle.Engine
	Encounter *encounter.Generator
	Journey   *route.Journey
}

// ProviderSet builds an App from a config.Config.
var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideSource,
	dice.NewLoggedRoller,
	ProvideCatalog,
	ProvideRules,
	battle.NewEngine,
	ProvideChance,
	ProvideGenerator,
	wire.Bind(new(route.Encounters), new(*encounter.Generator)),
	ProvideJourney,
	wire.Struct(new(App), "*"),
)

// TerminalLogFile is where TerminalSafe sends logs bound for the terminal.
const TerminalLogFile = "route.log"

// TerminalSafe returns cfg with terminal log outputs redirected to
// TerminalLogFile, so log lines never land on the screen the UI draws.
func TerminalSafe(cfg config.Config) config.Config {
	switch cfg.Logging.Output {
	case "", "stderr", "stdout":
		cfg.Logging.Output = TerminalLogFile
	}
	return cfg
}

// ProvideLogger builds the logger described by cfg.Logging.
func ProvideLogger(cfg config.Config) (*zap.Logger, error) {
	return observability.NewLogger(cfg.Logging)
}

// ProvideSource returns a seeded source when cfg.Game.Seed is set, and a
// crypto source otherwise.
func ProvideSource(cfg config.Config) dice.Source {
	if cfg.Game.Seed != 0 {
		return dice.NewSeededSource(cfg.Game.Seed)
	}
	return dice.NewCryptoSource()
}

// ProvideCatalog loads species from cfg.Game.ContentDir, or the embedded
// catalog when it is empty.
func ProvideCatalog(cfg config.Config) (*species.Catalog, error) {
	return species.LoadCatalog(cfg.Game.ContentDir)
}

// ProvideRules maps the game config onto battle rules.
func ProvideRules(cfg config.Config) battle.Rules {
	return battle.Rules{
		HealAmount:        cfg.Game.HealAmount,
		VictoryExperience: cfg.Game.VictoryExperience,
	}
}

// ProvideChance parses the configured encounter die into an encounter chance.
func ProvideChance(cfg config.Config) (encounter.Chance, error) {
	return encounter.ParseChance(cfg.Game.EncounterExpr(), cfg.Game.EncounterThreshold)
}

// ProvideGenerator builds the wild encounter generator.
func ProvideGenerator(roller *dice.Roller, catalog *species.Catalog, chance encounter.Chance, logger *zap.Logger) (*encounter.Generator, error) {
	return encounter.NewGenerator(roller, catalog.Wild, chance, logger)
}

// ProvideJourney starts a journey over the catalog's starters.
func ProvideJourney(catalog *species.Catalog, encounters route.Encounters, logger *zap.Logger) *route.Journey {
	return route.NewJourney(catalog.Starters, encounters, logger)
}
