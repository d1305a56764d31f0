package creature

import (
	"fmt"
	"strings"
)

// Affinity is the elemental category of a creature or move.
// The zero value (AffinityUnknown) is intentionally invalid.
type Affinity int

const (
	AffinityUnknown Affinity = iota
	Grass
	Fire
	Water
)

// Affinities lists every valid affinity in declaration order.
var Affinities = []Affinity{Grass, Fire, Water}

// String returns the lowercase name of the affinity.
func (a Affinity) String() string {
	switch a {
	case Grass:
		return "grass"
	case Fire:
		return "fire"
	case Water:
		return "water"
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of Grass, Fire, or Water.
func (a Affinity) Valid() bool {
	return a == Grass || a == Fire || a == Water
}

// ParseAffinity maps a case-insensitive name to an Affinity.
//
// Postcondition: Returns a valid Affinity, or an error wrapping ErrInvalidArgument.
func ParseAffinity(s string) (Affinity, error) {
	for _, a := range Affinities {
		if strings.EqualFold(strings.TrimSpace(s), a.String()) {
			return a, nil
		}
	}
	return AffinityUnknown, fmt.Errorf("%w: unknown affinity %q", ErrInvalidArgument, s)
}

// UnmarshalText implements encoding.TextUnmarshaler so affinities can be
// written by name in YAML content.
func (a *Affinity) UnmarshalText(text []byte) error {
	parsed, err := ParseAffinity(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Affinity) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: cannot marshal affinity %d", ErrInvalidArgument, int(a))
	}
	return []byte(a.String()), nil
}

// strongAgainst maps each affinity to the one it deals double damage to.
// The reverse pairing deals half damage.
var strongAgainst = map[Affinity]Affinity{
	Grass: Fire,
	Fire:  Water,
	Water: Grass,
}

// Effectiveness returns the damage multiplier for an attack of affinity attack
// landing on a defender of affinity defend.
//
// Postcondition: Returns 2.0, 0.5, or 1.0.
func Effectiveness(attack, defend Affinity) float64 {
	switch {
	case strongAgainst[attack] == defend && attack.Valid():
		return 2.0
	case strongAgainst[defend] == attack && defend.Valid():
		return 0.5
	default:
		return 1.0
	}
}

// EffectivenessLabel describes a multiplier for display. Neutral hits return "".
func EffectivenessLabel(multiplier float64) string {
	switch {
	case multiplier > 1:
		return "It's super effective!"
	case multiplier < 1:
		return "It's not very effective..."
	default:
		return ""
	}
}

// Damage computes the damage m deals to a defender of affinity defend:
// floor(power × multiplier), truncated toward zero.
//
// Postcondition: Returns >= 0 for any move with non-negative power.
func Damage(m Move, defend Affinity) int {
	return int(float64(m.Power()) * Effectiveness(m.Affinity(), defend))
}
