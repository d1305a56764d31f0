package creature

import "fmt"

// Move is an immutable named action with a base power and an affinity.
type Move struct {
	name     string
	power    int
	affinity Affinity
}

// NewMove creates a Move.
//
// Precondition: name non-empty; power >= 0; affinity valid.
// Postcondition: Returns a Move or an error wrapping ErrInvalidArgument.
func NewMove(name string, power int, affinity Affinity) (Move, error) {
	if name == "" {
		return Move{}, fmt.Errorf("%w: move name must not be empty", ErrInvalidArgument)
	}
	if power < 0 {
		return Move{}, fmt.Errorf("%w: move %q power must be >= 0, got %d", ErrInvalidArgument, name, power)
	}
	if !affinity.Valid() {
		return Move{}, fmt.Errorf("%w: move %q has invalid affinity", ErrInvalidArgument, name)
	}
	return Move{name: name, power: power, affinity: affinity}, nil
}

// MustMove is NewMove for static tables; it panics on invalid input.
func MustMove(name string, power int, affinity Affinity) Move {
	m, err := NewMove(name, power, affinity)
	if err != nil {
		panic(err)
	}
	return m
}

// Name returns the move's display name.
func (m Move) Name() string { return m.name }

// Power returns the move's base power.
func (m Move) Power() int { return m.power }

// Affinity returns the move's elemental affinity.
func (m Move) Affinity() Affinity { return m.affinity }
