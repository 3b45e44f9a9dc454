package territory

import (
	"math/rand"
	"testing"
)

// FuzzResolve plays random placements and move phases and checks the board
// invariants after every resolution.
func FuzzResolve(f *testing.F) {
	f.Add(int64(42))
	f.Add(int64(123456))
	f.Add(int64(0))

	f.Fuzz(func(t *testing.T, seed int64) {
		rng := rand.New(rand.NewSource(seed))
		g := NewStandardGrid()
		randomCities(rng, g)
		for _, player := range Players() {
			for i := 0; i < MaxUnitsPerPlayer+2; i++ {
				// Failures (blocked terrain, capacity) are part of the exercise.
				g.Place(NewUnit(player), randomPosition(rng, g))
			}
		}
		Resolve(g)
		checkInvariants(t, g)

		for phase := 0; phase < 10; phase++ {
			var orders []Order
			for _, player := range Players() {
				for _, u := range g.UnitsOf(player) {
					from, _ := g.UnitPosition(u.ID)
					orders = append(orders, Order{Unit: u.ID, To: randomStep(rng, from)})
				}
			}
			report := ApplyPhase(g, orders)
			if len(report.Moves) != len(orders) {
				t.Fatalf("expected %d move results, got %d", len(orders), len(report.Moves))
			}
			checkInvariants(t, g)
		}
	})
}

func randomCities(rng *rand.Rand, g *Grid) {
	for _, player := range Players() {
		for {
			if g.FoundCity(randomPosition(rng, g), player) == nil {
				break
			}
		}
	}
}

func randomPosition(rng *rand.Rand, g *Grid) Position {
	return Pos(rng.Intn(g.Rows()), rng.Intn(g.Cols()))
}

func randomStep(rng *rand.Rand, from Position) Position {
	d := [5]Position{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}[rng.Intn(5)]
	return Pos(from.Row+d.Row, from.Col+d.Col)
}

func checkInvariants(t *testing.T, g *Grid) {
	t.Helper()
	if extra := Resolve(g); len(extra) != 0 {
		t.Fatalf("resolve is not idempotent: %d more captures", len(extra))
	}

	seen := make(map[UnitID]int)
	for _, p := range g.Positions() {
		cell := g.CellAt(p)
		if !cell.Empty() && !cell.Terrain.Passable() {
			t.Fatalf("units on impassable cell %s", p)
		}
		for _, u := range g.UnitsAt(p) {
			seen[u.ID]++
			if !g.HasFreedom(p, u.Owner) {
				t.Errorf("unit %d at %s survived without freedom", u.ID, p)
			}
		}
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("unit %d appears in %d cells", id, n)
		}
	}
	for _, player := range Players() {
		units := g.UnitsOf(player)
		if len(units) > MaxUnitsPerPlayer {
			t.Errorf("player %s has %d units", player, len(units))
		}
		if len(units) != g.UnitCount(player) {
			t.Errorf("player %s: UnitsOf=%d UnitCount=%d", player, len(units), g.UnitCount(player))
		}
		for _, u := range units {
			if _, ok := g.UnitPosition(u.ID); !ok {
				t.Errorf("unit %d is listed but has no position", u.ID)
			}
		}
	}
}
