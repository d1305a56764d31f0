// Package config provides Viper-based configuration loading for the route game.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a zap output path: "stderr", "stdout", or a file path.
	Output string `mapstructure:"output"`
}

// GameConfig holds the tunable rules of the battle simulation.
type GameConfig struct {
	// EncounterSides is the die rolled on each travel step.
	EncounterSides int `mapstructure:"encounter_sides"`
	// EncounterThreshold is the highest roll that triggers a wild encounter.
	EncounterThreshold int `mapstructure:"encounter_threshold"`
	// HealAmount is the health restored by the Heal action.
	HealAmount int `mapstructure:"heal_amount"`
	// VictoryExperience is the experience granted for winning a battle.
	VictoryExperience int `mapstructure:"victory_experience"`
	// ContentDir optionally overrides the embedded species catalog.
	ContentDir string `mapstructure:"content_dir"`
	// Seed selects a deterministic dice source when non-zero.
	Seed uint64 `mapstructure:"seed"`
}

// EncounterExpr returns the dice expression rolled for encounter checks.
//
// Precondition: EncounterSides >= 2.
// Postcondition: Returns a string of the form "1d<sides>".
func (g GameConfig) EncounterExpr() string {
	return fmt.Sprintf("1d%d", g.EncounterSides)
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return fmt.Errorf("logging.output must not be empty")
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.EncounterSides < 2 {
		errs = append(errs, fmt.Sprintf("game.encounter_sides must be >= 2, got %d", g.EncounterSides))
	}
	if g.EncounterThreshold < 0 || g.EncounterThreshold > g.EncounterSides {
		errs = append(errs, fmt.Sprintf("game.encounter_threshold must be 0-%d, got %d", g.EncounterSides, g.EncounterThreshold))
	}
	if g.HealAmount < 0 {
		errs = append(errs, fmt.Sprintf("game.heal_amount must be >= 0, got %d", g.HealAmount))
	}
	if g.VictoryExperience < 0 {
		errs = append(errs, fmt.Sprintf("game.victory_experience must be >= 0, got %d", g.VictoryExperience))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides only.
//
// Precondition: path is empty or names a readable YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// Default returns the built-in configuration with environment overrides applied.
//
// Postcondition: Returns a valid Config or a non-nil error if an override is invalid.
func Default() (Config, error) {
	return Load("")
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with ROUTE_ prefix
	v.SetEnvPrefix("ROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("game.encounter_sides", 10)
	v.SetDefault("game.encounter_threshold", 3)
	v.SetDefault("game.heal_amount", 20)
	v.SetDefault("game.victory_experience", 100)
	v.SetDefault("game.content_dir", "")
	v.SetDefault("game.seed", 0)
}
