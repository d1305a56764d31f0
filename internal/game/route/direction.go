package route

import (
	"fmt"

	"github.com/cory-johannsen/route1/internal/game/creature"
)

// Direction is a way the player can walk along the route.
type Direction string

const (
	Forward Direction = "forward"
	Left    Direction = "left"
	Right   Direction = "right"
)

// Directions lists the travel menu in display order.
var Directions = []Direction{Forward, Left, Right}

// DirectionFromChoice maps a 1-based menu choice to a Direction.
//
// Postcondition: Returns a Direction or an error wrapping creature.ErrInvalidArgument.
func DirectionFromChoice(choice int) (Direction, error) {
	if choice < 1 || choice > len(Directions) {
		return "", fmt.Errorf("%w: direction choice must be 1-%d, got %d", creature.ErrInvalidArgument, len(Directions), choice)
	}
	return Directions[choice-1], nil
}

// Valid reports whether d is one of the travel directions.
func (d Direction) Valid() bool {
	for _, known := range Directions {
		if d == known {
			return true
		}
	}
	return false
}
