// Package dice is the single source of randomness for the route game:
// encounter checks, wild species selection, and opponent move selection all
// go through a Roller so every roll can be seeded and logged.
package dice

import (
	"fmt"
	"strings"
)

// Source is the randomness provider for dice rolls.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// RollResult is one evaluated Expression.
//
// Invariant: len(Faces) == Expr.Count for results produced by Roll.
type RollResult struct {
	Expr  Expression
	Faces []int
}

// Total returns the sum of the faces plus the expression's modifier.
func (r RollResult) Total() int {
	total := r.Expr.Modifier
	for _, f := range r.Faces {
		total += f
	}
	return total
}

// String renders the roll as "1d10 → [3] = 3" or "2d6+3 → [4 5] +3 = 12".
func (r RollResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s → %v", r.Expr, r.Faces)
	if r.Expr.Modifier != 0 {
		fmt.Fprintf(&b, " %+d", r.Expr.Modifier)
	}
	fmt.Fprintf(&b, " = %d", r.Total())
	return b.String()
}
