package territory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capturedIDs(captures []Capture) []UnitID {
	ids := make([]UnitID, len(captures))
	for i, c := range captures {
		ids[i] = c.Unit.ID
	}
	return ids
}

func TestResolveDirectCapture(t *testing.T) {
	g := NewStandardGrid()
	p1 := place(t, g, Player1, 6, 6)
	p2 := placeUnits(t, g, Player2, 6, 6, 2)

	captures := Resolve(g)

	assert.Equal(t, []UnitID{p1}, capturedIDs(captures))
	assert.Equal(t, Pos(6, 6), captures[0].From)
	assert.True(t, g.PlayerControls(Pos(6, 6), Player2))
	assert.Equal(t, p2, g.CellAt(Pos(6, 6)).Units())
	_, ok := g.Unit(p1)
	assert.False(t, ok)
}

func TestResolveEncirclementCapture(t *testing.T) {
	g := NewStandardGrid()
	p1 := place(t, g, Player1, 6, 6)
	placeUnits(t, g, Player2, 7, 7, 2)
	placeUnits(t, g, Player2, 5, 5, 2)

	// Player 1 holds the cell itself; the capture comes from the ring.
	require.True(t, g.PlayerControls(Pos(6, 6), Player1))
	for _, p := range g.AdjacentCells(Pos(6, 6)) {
		require.True(t, g.PlayerControls(p, Player2), "neighbour %s", p)
	}

	captures := Resolve(g)

	assert.Equal(t, []UnitID{p1}, capturedIDs(captures))
	assert.True(t, g.CellAt(Pos(6, 6)).Empty())
	assert.Equal(t, 4, g.UnitCount(Player2))
}

func TestResolveTieAloneNeverCaptures(t *testing.T) {
	g := NewStandardGrid()
	place(t, g, Player1, 6, 6)
	place(t, g, Player2, 5, 6)

	assert.Empty(t, Resolve(g))
	assert.Equal(t, 1, g.UnitCount(Player1))
	assert.Equal(t, 1, g.UnitCount(Player2))
}

func TestResolveEncircledTie(t *testing.T) {
	g, id := neutralSquareBoard(t)

	captures := Resolve(g)

	assert.Equal(t, []UnitID{id}, capturedIDs(captures))
	assert.Equal(t, 4, g.UnitCount(Player2))
}

// Two player 1 units and one player 2 unit share a cell with player 2 pairs on
// the diagonals. Player 1 holds the cell, so the lone player 2 unit is lost;
// player 2 holds the ring only because of that unit, so player 1 is lost too.
// Both sides are judged on the same snapshot and fall together.
func TestResolveMutualCaptureFallsTogether(t *testing.T) {
	g := NewStandardGrid()
	p1 := placeUnits(t, g, Player1, 6, 6, 2)
	p2 := place(t, g, Player2, 6, 6)
	diag := append(placeUnits(t, g, Player2, 7, 7, 2), placeUnits(t, g, Player2, 5, 5, 2)...)

	require.True(t, g.PlayerControls(Pos(6, 6), Player1))

	captures := Resolve(g)

	assert.ElementsMatch(t, []UnitID{p1[0], p1[1], p2}, capturedIDs(captures))
	for _, c := range captures {
		assert.Equal(t, 1, c.Pass, "all three fall in the first pass")
	}
	assert.True(t, g.CellAt(Pos(6, 6)).Empty())
	for _, id := range diag {
		_, ok := g.Unit(id)
		assert.True(t, ok, "diagonal unit %d survives", id)
	}
}

func TestResolveDecisionsIgnorePlacementOrder(t *testing.T) {
	build := func(reverse bool) *Grid {
		g := NewStandardGrid()
		steps := []func(){
			func() { placeUnits(t, g, Player1, 6, 6, 2) },
			func() { place(t, g, Player2, 6, 6) },
			func() { placeUnits(t, g, Player2, 7, 7, 2) },
			func() { placeUnits(t, g, Player2, 5, 5, 2) },
			func() { place(t, g, Player1, 1, 1) },
		}
		if reverse {
			for i := len(steps) - 1; i >= 0; i-- {
				steps[i]()
			}
		} else {
			for _, s := range steps {
				s()
			}
		}
		return g
	}

	lost := func(g *Grid) map[Position]map[Player]int {
		out := make(map[Position]map[Player]int)
		for _, c := range Resolve(g) {
			if out[c.From] == nil {
				out[c.From] = make(map[Player]int)
			}
			out[c.From][c.Unit.Owner]++
		}
		return out
	}

	assert.Equal(t, lost(build(false)), lost(build(true)))
}

// Two player 1 units share a tied cell between them. Adding a player 2 pair
// next to one of them takes that cell outright; once that unit is gone the
// tie turns and the other unit is encircled on the next pass.
func TestResolveCascade(t *testing.T) {
	g := NewStandardGrid()
	a := place(t, g, Player1, 6, 6)
	b := place(t, g, Player1, 6, 4)
	placeUnits(t, g, Player2, 5, 5, 2)
	placeUnits(t, g, Player2, 7, 3, 2)

	require.Empty(t, Resolve(g), "both player 1 units are safe before reinforcement")
	require.True(t, g.ControlAt(Pos(6, 5)).Contested())

	placeUnits(t, g, Player2, 6, 7, 2)
	captures := Resolve(g)

	require.Len(t, captures, 2)
	assert.Equal(t, a, captures[0].Unit.ID)
	assert.Equal(t, 1, captures[0].Pass)
	assert.Equal(t, b, captures[1].Unit.ID)
	assert.Equal(t, 2, captures[1].Pass)
	assert.Equal(t, 0, g.UnitCount(Player1))
	assert.Equal(t, 6, g.UnitCount(Player2))
}

func TestResolveIsIdempotent(t *testing.T) {
	g := NewStandardGrid()
	place(t, g, Player1, 6, 6)
	place(t, g, Player1, 6, 4)
	placeUnits(t, g, Player2, 5, 5, 2)
	placeUnits(t, g, Player2, 7, 3, 2)
	placeUnits(t, g, Player2, 6, 7, 2)

	first := Resolve(g)
	require.NotEmpty(t, first)
	before := g.Clone()

	assert.Empty(t, Resolve(g))
	for _, p := range g.Positions() {
		assert.Equal(t, before.CellAt(p).Units(), g.CellAt(p).Units(), "units at %s", p)
	}
}

func TestResolveLeavesOnlyFreeUnits(t *testing.T) {
	g, _ := neutralSquareBoard(t)
	Resolve(g)
	for _, p := range g.Positions() {
		for _, u := range g.UnitsAt(p) {
			assert.True(t, g.HasFreedom(p, u.Owner), "unit %d at %s", u.ID, p)
		}
	}
}
