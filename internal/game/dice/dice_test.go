package dice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/route1/internal/game/dice"
)

// fixedSrc always returns val, ignoring bounds.
type fixedSrc struct{ val int }

func (f fixedSrc) Intn(_ int) int { return f.val }

func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{Expr: dice.Expression{Count: 2, Sides: 6, Modifier: 3}, Faces: []int{4, 5}}
	assert.Equal(t, 12, r.Total())
}

func TestRollResult_String(t *testing.T) {
	assert.Equal(t, "1d10 → [3] = 3", dice.RollResult{Expr: dice.Die(10), Faces: []int{3}}.String())
	assert.Equal(t, "2d6-1 → [4 5] -1 = 8", dice.RollResult{Expr: dice.Expression{Count: 2, Sides: 6, Modifier: -1}, Faces: []int{4, 5}}.String())
}

func TestProperty_RollResult_Total(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		faces := rapid.SliceOf(rapid.IntRange(1, 20)).Draw(rt, "faces")
		modifier := rapid.IntRange(-100, 100).Draw(rt, "modifier")

		expected := modifier
		for _, f := range faces {
			expected += f
		}
		r := dice.RollResult{Expr: dice.Expression{Count: len(faces), Sides: 20, Modifier: modifier}, Faces: faces}
		assert.Equal(rt, expected, r.Total())
	})
}

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		expr string
		want dice.Expression
		text string
	}{
		{"d10", dice.Expression{Count: 1, Sides: 10}, "1d10"},
		{"1d10", dice.Expression{Count: 1, Sides: 10}, "1d10"},
		{"1d3", dice.Expression{Count: 1, Sides: 3}, "1d3"},
		{"1d1", dice.Expression{Count: 1, Sides: 1}, "1d1"},
		{"2d6+3", dice.Expression{Count: 2, Sides: 6, Modifier: 3}, "2d6+3"},
		{" 4D8-2 ", dice.Expression{Count: 4, Sides: 8, Modifier: -2}, "4d8-2"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			e, err := dice.Parse(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, e)
			assert.Equal(t, tc.text, e.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, expr := range []string{"", "10", "0d6", "-1d6", "1d0", "1dx", "xd6", "1d6+x"} {
		_, err := dice.Parse(expr)
		assert.Error(t, err, "expression %q should be rejected", expr)
	}
}

func TestProperty_Parse_RoundTripsString(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := dice.Expression{
			Count:    rapid.IntRange(1, 20).Draw(rt, "count"),
			Sides:    rapid.IntRange(1, 100).Draw(rt, "sides"),
			Modifier: rapid.IntRange(-50, 50).Draw(rt, "modifier"),
		}
		got, err := dice.Parse(e.String())
		require.NoError(rt, err)
		assert.Equal(rt, e, got)
	})
}

func TestRoll_UsesSource(t *testing.T) {
	r := dice.Roll(dice.Expression{Count: 2, Sides: 10, Modifier: 1}, fixedSrc{val: 2})
	assert.Equal(t, []int{3, 3}, r.Faces)
	assert.Equal(t, 7, r.Total())
}

func TestProperty_Roll_FacesWithinSides(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 10).Draw(rt, "count")
		sides := rapid.IntRange(1, 20).Draw(rt, "sides")
		seed := rapid.Uint64().Draw(rt, "seed")

		r := dice.Roll(dice.Expression{Count: count, Sides: sides}, dice.NewSeededSource(seed))
		require.Len(rt, r.Faces, count)
		for _, f := range r.Faces {
			assert.GreaterOrEqual(rt, f, 1)
			assert.LessOrEqual(rt, f, sides)
		}
	})
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSeededSource_Intn_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(0) })
}

func TestRoller_LogsRollsWithPurpose(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	roller := dice.NewLoggedRoller(fixedSrc{val: 2}, zap.New(core))

	r := roller.Roll("encounter", dice.Die(10))
	assert.Equal(t, 3, r.Total())

	entries := logs.FilterMessage("dice roll").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "encounter", fields["purpose"])
	assert.Equal(t, "1d10", fields["expression"])
	assert.EqualValues(t, 3, fields["total"])
}

func TestRoller_Pick_FixedSource(t *testing.T) {
	roller := dice.NewLoggedRoller(fixedSrc{val: 1}, zap.NewNop())
	assert.Equal(t, 1, roller.Pick("opponent move", 2))
}

func TestProperty_Roller_PickInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 50).Draw(rt, "n")
		seed := rapid.Uint64().Draw(rt, "seed")
		roller := dice.NewLoggedRoller(dice.NewSeededSource(seed), zap.NewNop())
		idx := roller.Pick(fmt.Sprintf("menu of %d", n), n)
		assert.GreaterOrEqual(rt, idx, 0)
		assert.Less(rt, idx, n)
	})
}

func TestRoller_Pick_PanicsOnZero(t *testing.T) {
	roller := dice.NewLoggedRoller(fixedSrc{}, zap.NewNop())
	assert.Panics(t, func() { roller.Pick("wild species", 0) })
}
