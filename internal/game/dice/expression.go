package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is a parsed "NdS+M" dice expression.
//
// Invariant: Count >= 1 and Sides >= 1 for values returned by Parse.
type Expression struct {
	Count    int
	Sides    int
	Modifier int
}

// Die returns the expression for a single die with sides faces.
func Die(sides int) Expression {
	return Expression{Count: 1, Sides: sides}
}

// String renders the expression in canonical "NdS±M" form.
func (e Expression) String() string {
	if e.Modifier == 0 {
		return fmt.Sprintf("%dd%d", e.Count, e.Sides)
	}
	return fmt.Sprintf("%dd%d%+d", e.Count, e.Sides, e.Modifier)
}

// Parse reads a dice expression such as "d10", "1d3", or "2d6+3". The count
// defaults to 1 and the "d" is case-insensitive.
//
// Postcondition: Returns a valid Expression or an error naming the bad part.
func Parse(s string) (Expression, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	countPart, rest, ok := strings.Cut(lower, "d")
	if !ok {
		return Expression{}, fmt.Errorf("dice: %q has no 'd'", s)
	}

	e := Expression{Count: 1}
	if countPart != "" {
		n, err := strconv.Atoi(countPart)
		if err != nil || n < 1 {
			return Expression{}, fmt.Errorf("dice: bad die count in %q", s)
		}
		e.Count = n
	}

	sidesPart := rest
	if i := strings.IndexAny(rest, "+-"); i > 0 {
		sidesPart = rest[:i]
		m, err := strconv.Atoi(rest[i:])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: bad modifier in %q: %w", s, err)
		}
		e.Modifier = m
	}
	sides, err := strconv.Atoi(sidesPart)
	if err != nil || sides < 1 {
		return Expression{}, fmt.Errorf("dice: bad die sides in %q", s)
	}
	e.Sides = sides
	return e, nil
}
