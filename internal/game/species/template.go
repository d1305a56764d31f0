// Package species provides the creature templates that starters and wild
// encounters are spawned from.
package species

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/route1/internal/game/creature"
)

// MoveTemplate defines one move of a species.
type MoveTemplate struct {
	Name     string            `yaml:"name"`
	Power    int               `yaml:"power"`
	Affinity creature.Affinity `yaml:"affinity"`
}

// Template defines a species loaded from YAML.
type Template struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Level       int               `yaml:"level"`
	Affinity    creature.Affinity `yaml:"affinity"`
	Moves       []MoveTemplate    `yaml:"moves"`
}

// Validate checks that the template can spawn a creature.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, Level is in
// [creature.MinLevel, creature.MaxLevel], Affinity is valid, and there is at
// least one well-formed move; returns an error on the first violation otherwise.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("species template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("species template %q: name must not be empty", t.ID)
	}
	if t.Level < creature.MinLevel || t.Level > creature.MaxLevel {
		return fmt.Errorf("species template %q: level must be %d-%d", t.ID, creature.MinLevel, creature.MaxLevel)
	}
	if !t.Affinity.Valid() {
		return fmt.Errorf("species template %q: affinity must be set", t.ID)
	}
	if len(t.Moves) == 0 {
		return fmt.Errorf("species template %q: at least one move is required", t.ID)
	}
	for i, m := range t.Moves {
		if _, err := creature.NewMove(m.Name, m.Power, m.Affinity); err != nil {
			return fmt.Errorf("species template %q: move %d: %w", t.ID, i+1, err)
		}
	}
	return nil
}

// Spawn creates a fresh creature from the template.
//
// Precondition: t passed Validate.
// Postcondition: Returns a new full-health Creature with a new ID, or an error.
func (t *Template) Spawn() (*creature.Creature, error) {
	moves := make([]creature.Move, 0, len(t.Moves))
	for _, m := range t.Moves {
		mv, err := creature.NewMove(m.Name, m.Power, m.Affinity)
		if err != nil {
			return nil, fmt.Errorf("spawning %q: %w", t.ID, err)
		}
		moves = append(moves, mv)
	}
	c, err := creature.New(t.Name, t.Level, t.Affinity, moves)
	if err != nil {
		return nil, fmt.Errorf("spawning %q: %w", t.ID, err)
	}
	return c, nil
}

// LoadTemplateFromBytes parses a single species template from raw YAML bytes.
//
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir of fsys, in lexical file order.
//
// Precondition: dir must be a readable directory in fsys.
// Postcondition: Returns all templates or an error on the first read, parse,
// validate, or duplicate-ID failure; on error, the partial result is discarded.
func LoadTemplates(fsys fs.FS, dir string) ([]*Template, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading species dir %q: %w", dir, err)
	}

	seen := make(map[string]bool)
	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		p := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}

		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", p, err)
		}
		if seen[tmpl.ID] {
			return nil, fmt.Errorf("loading %q: duplicate species id %q", p, tmpl.ID)
		}
		seen[tmpl.ID] = true
		templates = append(templates, tmpl)
	}
	return templates, nil
}
