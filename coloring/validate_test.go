package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapcolor/coloring"
	"github.com/katalvlaran/mapcolor/core"
)

func TestIsValid(t *testing.T) {
	m := mustMap(t,
		"Chile", []string{"Argentina", "Bolivia"},
		"Argentina", []string{"Chile", "Bolivia"},
		"Bolivia", []string{"Chile", "Argentina"},
	)
	a := coloring.Assignment{"Chile": 1}

	assert.False(t, coloring.IsValid("Argentina", 1, a, m))
	assert.True(t, coloring.IsValid("Argentina", 2, a, m))
	assert.True(t, coloring.IsValid("Nowhere", 1, a, m), "unknown region has no constraints")
	assert.True(t, coloring.IsValid("Chile", 1, a, nil))
	assert.True(t, coloring.IsValid("Bolivia", 1, coloring.Assignment{}, m))

	// Purity: inputs untouched.
	assert.Equal(t, coloring.Assignment{"Chile": 1}, a)
}

func TestIsValid_OnlyDeclaredListCounts(t *testing.T) {
	m := mustMap(t, "A", []string{"B"}, "B", []string{})
	a := coloring.Assignment{"A": 1}
	assert.True(t, coloring.IsValid("B", 1, a, m), "B does not list A")
	assert.False(t, coloring.IsValid("A", 2, coloring.Assignment{"B": 2}, m))
}

func TestVerify(t *testing.T) {
	m := square(t)

	require.NoError(t, coloring.Verify(m, coloring.Assignment{"A": 1, "B": 2, "C": 1, "D": 2}, 2))

	tests := []struct {
		name string
		a    coloring.Assignment
		k    int
		want error
	}{
		{"missing region", coloring.Assignment{"A": 1, "B": 2, "C": 1}, 2, coloring.ErrUncolored},
		{"zero color", coloring.Assignment{"A": 0, "B": 2, "C": 1, "D": 2}, 2, coloring.ErrColorOutOfRange},
		{"beyond palette", coloring.Assignment{"A": 3, "B": 2, "C": 1, "D": 2}, 2, coloring.ErrColorOutOfRange},
		{"conflict", coloring.Assignment{"A": 1, "B": 1, "C": 2, "D": 2}, 2, coloring.ErrConflict},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, coloring.Verify(m, tc.a, tc.k), tc.want)
		})
	}

	assert.ErrorIs(t, coloring.Verify(nil, nil, 1), coloring.ErrMapNil)
	assert.NoError(t, coloring.Verify(core.NewMap(), nil, 0), "empty map is trivially colored")
}

func TestPaletteAndSummarize(t *testing.T) {
	assert.Equal(t, []coloring.Color{1, 2, 3}, coloring.Palette(3))
	assert.Empty(t, coloring.Palette(0))
	assert.Empty(t, coloring.Palette(-2))

	st := coloring.Summarize([]coloring.Step{
		{Region: "A", Color: 1, Accepted: true},
		{Region: "B", Color: 1},
		{Region: "A", Undo: true},
	})
	assert.Equal(t, coloring.Stats{Trials: 2, Accepted: 1, Undos: 1}, st)
}

func TestAssignmentClone(t *testing.T) {
	var nilAsg coloring.Assignment
	assert.Nil(t, nilAsg.Clone())

	a := coloring.Assignment{"A": 1}
	b := a.Clone()
	b["A"] = 2
	assert.Equal(t, coloring.Color(1), a["A"])
}
