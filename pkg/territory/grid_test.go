package territory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeUnits puts n reference units of the owner on the cell at (row, col).
func placeUnits(t *testing.T, g *Grid, owner Player, row, col, n int) []UnitID {
	t.Helper()
	ids := make([]UnitID, n)
	for i := range ids {
		id, err := g.Place(NewUnit(owner), Pos(row, col))
		require.NoError(t, err)
		ids[i] = id
	}
	return ids
}

func place(t *testing.T, g *Grid, owner Player, row, col int) UnitID {
	t.Helper()
	return placeUnits(t, g, owner, row, col, 1)[0]
}

func TestStandardGridTerrain(t *testing.T) {
	g := NewStandardGrid()
	assert.Equal(t, 9, g.Rows())
	assert.Equal(t, 9, g.Cols())

	cases := map[Position]Terrain{
		Pos(4, 4): Mountain,
		Pos(2, 2): Forest,
		Pos(6, 6): Forest,
		Pos(2, 6): Lake,
		Pos(6, 2): Lake,
		Pos(0, 0): Plain,
		Pos(7, 1): Plain,
	}
	for p, want := range cases {
		assert.Equal(t, want, g.CellAt(p).Terrain, "terrain at %s", p)
	}
}

func TestCellAtOffGrid(t *testing.T) {
	g := NewStandardGrid()
	assert.Nil(t, g.CellAt(Pos(-1, 0)))
	assert.Nil(t, g.CellAt(Pos(0, 9)))
	assert.NotNil(t, g.CellAt(Pos(8, 8)))
}

func TestAdjacentCellsCount(t *testing.T) {
	g := NewStandardGrid()
	cases := []struct {
		p    Position
		want int
	}{
		{Pos(0, 0), 2},
		{Pos(8, 8), 2},
		{Pos(0, 4), 3},
		{Pos(4, 8), 3},
		{Pos(5, 5), 4},
	}
	for _, tc := range cases {
		assert.Len(t, g.AdjacentCells(tc.p), tc.want, "neighbours of %s", tc.p)
	}
	assert.Equal(t, []Position{Pos(5, 6), Pos(7, 6), Pos(6, 5), Pos(6, 7)}, g.AdjacentCells(Pos(6, 6)))
}

func TestAdjacentToRegionExcludesRegion(t *testing.T) {
	g := NewStandardGrid()
	region := NewCellSet(Pos(6, 6), Pos(5, 6), Pos(7, 6), Pos(6, 5), Pos(6, 7))

	got := g.AdjacentToRegion(region)

	want := NewCellSet(
		Pos(6, 4), Pos(6, 8), Pos(4, 6), Pos(8, 6),
		Pos(5, 5), Pos(7, 7), Pos(5, 7), Pos(7, 5),
	)
	assert.Equal(t, want, got)
}

func TestPositionOf(t *testing.T) {
	g := NewStandardGrid()
	p, err := g.PositionOf(g.CellAt(Pos(3, 7)))
	require.NoError(t, err)
	assert.Equal(t, Pos(3, 7), p)

	// A cell with identical contents from another grid is a different cell.
	other := g.Clone()
	_, err = g.PositionOf(other.CellAt(Pos(3, 7)))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = g.PositionOf(&Cell{})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = g.PositionOf(nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFoundCity(t *testing.T) {
	g := NewStandardGrid()
	require.NoError(t, g.FoundCity(Pos(7, 1), Player1))
	assert.Equal(t, Player1, g.CellAt(Pos(7, 1)).City)

	assert.ErrorIs(t, g.FoundCity(Pos(7, 1), Player2), ErrCityExists)
	assert.ErrorIs(t, g.FoundCity(Pos(6, 6), Player2), ErrBlockedTerrain)
	assert.ErrorIs(t, g.FoundCity(Pos(9, 9), Player2), ErrOffGrid)
	assert.ErrorIs(t, g.FoundCity(Pos(1, 1), Nobody), ErrInvalidPlayer)
	assert.Equal(t, []Position{Pos(7, 1)}, g.Cities())
}

func TestCloneIndependent(t *testing.T) {
	g := NewStandardGrid()
	id := place(t, g, Player1, 8, 0)
	c := g.Clone()

	require.NoError(t, g.Move(id, Pos(7, 0)))

	p, ok := c.UnitPosition(id)
	require.True(t, ok)
	assert.Equal(t, Pos(8, 0), p, "clone should keep the unit where it was")
	assert.True(t, c.CellAt(Pos(7, 0)).Empty())
}

func TestCellSetSorted(t *testing.T) {
	s := NewCellSet(Pos(2, 1), Pos(0, 5), Pos(2, 0), Pos(1, 3))
	assert.Equal(t, []Position{Pos(0, 5), Pos(1, 3), Pos(2, 0), Pos(2, 1)}, s.Sorted())
}
