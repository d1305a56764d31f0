package species

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/cory-johannsen/route1/internal/game/creature"
)

//go:embed content
var embedded embed.FS

const (
	wildDir     = "wild"
	startersDir = "starters"
)

// Catalog holds the species a journey can draw from.
type Catalog struct {
	// Wild are the species wild encounters are spawned from.
	Wild []*Template
	// Starters are the species offered when a journey begins.
	Starters []*Template
}

// LoadCatalogFS loads a catalog from fsys, which must contain "wild" and
// "starters" directories of species YAML files.
//
// Postcondition: Returns a catalog with at least one wild species and one
// starter, or an error.
func LoadCatalogFS(fsys fs.FS) (*Catalog, error) {
	wild, err := LoadTemplates(fsys, wildDir)
	if err != nil {
		return nil, err
	}
	if len(wild) == 0 {
		return nil, fmt.Errorf("species catalog: no wild species in %q", wildDir)
	}
	starters, err := LoadTemplates(fsys, startersDir)
	if err != nil {
		return nil, err
	}
	if len(starters) == 0 {
		return nil, fmt.Errorf("species catalog: no starters in %q", startersDir)
	}
	return &Catalog{Wild: wild, Starters: starters}, nil
}

// LoadCatalog loads a catalog from a directory on disk. An empty dir loads
// the built-in catalog.
//
// Postcondition: Returns a non-nil Catalog or an error.
func LoadCatalog(dir string) (*Catalog, error) {
	if dir == "" {
		return Default()
	}
	c, err := LoadCatalogFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("loading species catalog from %q: %w", dir, err)
	}
	return c, nil
}

// Default returns the built-in catalog: three wild species (Pidgey, Rattata,
// Caterpie) and three starters (Bulbasaur, Charmander, Squirtle).
func Default() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "content")
	if err != nil {
		return nil, fmt.Errorf("opening embedded species: %w", err)
	}
	return LoadCatalogFS(sub)
}

// Starter returns the starter at the 1-based choice.
//
// Postcondition: Returns the template, or an error wrapping
// creature.ErrInvalidArgument when choice is out of range.
func (c *Catalog) Starter(choice int) (*Template, error) {
	if choice < 1 || choice > len(c.Starters) {
		return nil, fmt.Errorf("%w: starter choice must be 1-%d, got %d", creature.ErrInvalidArgument, len(c.Starters), choice)
	}
	return c.Starters[choice-1], nil
}
