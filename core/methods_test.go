// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapcolor/core"
)

// Common region IDs used across core tests.
const (
	RegionA = "A"
	RegionB = "B"
	RegionC = "C"
	RegionD = "D"
	RegionX = "X"
)

func TestMap_ZeroValueUsable(t *testing.T) {
	var m core.Map
	require.NoError(t, m.AddRegion(RegionA))
	assert.Equal(t, []string{RegionA}, m.Regions())
	assert.Equal(t, 1, m.Len())
}

func TestAddRegion_EmptyIDIsARegion(t *testing.T) {
	m := core.NewMap()
	assert.False(t, m.HasRegion(""))
	require.NoError(t, m.AddRegion(""))
	assert.True(t, m.HasRegion(""))
	assert.Equal(t, []string{""}, m.Regions())
}

func TestAddRegion_IdempotentKeepsFirstPosition(t *testing.T) {
	m := core.NewMap()
	for _, id := range []string{RegionC, RegionA, RegionB, RegionA, RegionC} {
		require.NoError(t, m.AddRegion(id))
	}
	assert.Equal(t, []string{RegionC, RegionA, RegionB}, m.Regions())
}

func TestSetNeighbors_VerbatimAndOneDirectional(t *testing.T) {
	m := core.NewMap()
	require.NoError(t, m.SetNeighbors(RegionA, RegionB, RegionX, RegionB))

	nbs, err := m.Neighbors(RegionA)
	require.NoError(t, err)
	assert.Equal(t, []string{RegionB, RegionX, RegionB}, nbs, "duplicates kept verbatim")
	assert.False(t, m.HasRegion(RegionB), "neighbours are not auto-declared")

	// Replacing keeps the region's position.
	require.NoError(t, m.SetNeighbors(RegionB))
	require.NoError(t, m.SetNeighbors(RegionA, RegionC))
	assert.Equal(t, []string{RegionA, RegionB}, m.Regions())
	nbs, _ = m.Neighbors(RegionA)
	assert.Equal(t, []string{RegionC}, nbs)
}

func TestSetNeighbors_EmptyNeighbourKept(t *testing.T) {
	m := core.NewMap()
	require.NoError(t, m.SetNeighbors(RegionA, RegionB, ""))
	require.NoError(t, m.SetNeighbors("", RegionA))

	nbs, err := m.Neighbors(RegionA)
	require.NoError(t, err)
	assert.Equal(t, []string{RegionB, ""}, nbs)
	nbs, err = m.Neighbors("")
	require.NoError(t, err)
	assert.Equal(t, []string{RegionA}, nbs)
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	m := core.NewMap()
	require.NoError(t, m.SetNeighbors(RegionA, RegionB))

	nbs, err := m.Neighbors(RegionA)
	require.NoError(t, err)
	nbs[0] = RegionX

	again, _ := m.Neighbors(RegionA)
	assert.Equal(t, []string{RegionB}, again)
}

func TestNeighbors_Missing(t *testing.T) {
	m := core.NewMap()
	_, err := m.Neighbors(RegionA)
	assert.ErrorIs(t, err, core.ErrRegionNotFound)
	_, err = m.Neighbors("")
	assert.ErrorIs(t, err, core.ErrRegionNotFound)
}

func TestAddNeighbor_Deduplicates(t *testing.T) {
	m := core.NewMap()
	require.NoError(t, m.AddNeighbor(RegionA, RegionB))
	require.NoError(t, m.AddNeighbor(RegionA, RegionB))
	require.NoError(t, m.AddNeighbor(RegionA, RegionC))

	nbs, _ := m.Neighbors(RegionA)
	assert.Equal(t, []string{RegionB, RegionC}, nbs)
	assert.Equal(t, []string{RegionA}, m.Regions())
}

func TestAddBorder(t *testing.T) {
	m := core.NewMap()
	require.NoError(t, m.AddBorder(RegionA, RegionB))
	require.NoError(t, m.AddBorder(RegionB, RegionC))
	require.NoError(t, m.AddBorder(RegionA, RegionB))

	assert.Equal(t, []string{RegionA, RegionB, RegionC}, m.Regions())
	nbs, _ := m.Neighbors(RegionB)
	assert.Equal(t, []string{RegionA, RegionC}, nbs)
	assert.True(t, m.Symmetric())
	assert.Equal(t, 4, m.EdgeCount())

	assert.ErrorIs(t, m.AddBorder(RegionA, RegionA), core.ErrSelfBorder)
	require.NoError(t, m.AddBorder(RegionA, ""))
	assert.True(t, m.HasRegion(""))
	assert.ErrorIs(t, m.AddBorder("", ""), core.ErrSelfBorder)
}

func TestSymmetric_DetectsOneSidedBorders(t *testing.T) {
	m := core.NewMap()
	require.NoError(t, m.SetNeighbors(RegionA, RegionB))
	require.NoError(t, m.SetNeighbors(RegionB))
	assert.False(t, m.Symmetric())

	// Undeclared neighbours and self references do not count.
	s := core.NewMap()
	require.NoError(t, s.SetNeighbors(RegionA, RegionA, RegionX))
	assert.True(t, s.Symmetric())
}

func TestUndeclared(t *testing.T) {
	m := core.NewMap()
	require.NoError(t, m.SetNeighbors(RegionA, RegionX, RegionB, RegionD))
	require.NoError(t, m.SetNeighbors(RegionB, RegionX))
	assert.Equal(t, []string{RegionD, RegionX}, m.Undeclared())
}

func TestRemoveRegion(t *testing.T) {
	m := core.NewMap()
	require.NoError(t, m.AddBorder(RegionA, RegionB))
	require.NoError(t, m.AddBorder(RegionB, RegionC))
	require.NoError(t, m.AddBorder(RegionC, RegionA))

	require.NoError(t, m.RemoveRegion(RegionB))
	assert.Equal(t, []string{RegionA, RegionC}, m.Regions())
	nbs, _ := m.Neighbors(RegionA)
	assert.Equal(t, []string{RegionC}, nbs)
	assert.False(t, m.HasRegion(RegionB))

	// Re-adding appends at the end.
	require.NoError(t, m.AddRegion(RegionB))
	assert.Equal(t, []string{RegionA, RegionC, RegionB}, m.Regions())

	assert.ErrorIs(t, m.RemoveRegion(RegionX), core.ErrRegionNotFound)
	assert.ErrorIs(t, m.RemoveRegion(""), core.ErrRegionNotFound)
}

func TestSnapshotAndClone_AreIndependent(t *testing.T) {
	m := core.NewMap(core.WithCapacity(4))
	require.NoError(t, m.AddBorder(RegionA, RegionB))

	order, adj := m.Snapshot()
	assert.Equal(t, []string{RegionA, RegionB}, order)
	assert.Equal(t, map[string][]string{RegionA: {RegionB}, RegionB: {RegionA}}, adj)

	c := m.Clone()
	require.NoError(t, c.AddBorder(RegionB, RegionC))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 3, c.Len())
	nbs, _ := m.Neighbors(RegionB)
	assert.Equal(t, []string{RegionA}, nbs)
}

func TestClear(t *testing.T) {
	m := core.NewMap()
	require.NoError(t, m.AddBorder(RegionA, RegionB))
	m.Clear()
	assert.Zero(t, m.Len())
	assert.Empty(t, m.Regions())
	require.NoError(t, m.AddRegion(RegionC))
	assert.Equal(t, []string{RegionC}, m.Regions())
}
