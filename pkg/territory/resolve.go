package territory

import "fmt"

// Capture records a unit removed during resolution.
type Capture struct {
	Unit Unit
	From Position
	Pass int // 1-based resolution pass that condemned the unit
}

// Resolve removes every unit that lacks freedom, repeating until the board is
// stable, and returns the captures in the order they were decided.
//
// Each pass judges both players against one snapshot taken before the pass;
// no removal is visible until every cell has been judged. Groups that only
// survive through each other's control can therefore fall together.
func Resolve(g *Grid) []Capture {
	var captures []Capture
	for pass := 1; ; pass++ {
		condemned := condemn(g, pass)
		if len(condemned) == 0 {
			return captures
		}
		for _, c := range condemned {
			if err := g.remove(c.Unit.ID); err != nil {
				panic(fmt.Sprintf("territory: resolve pass %d: %v", pass, err))
			}
		}
		captures = append(captures, condemned...)
	}
}

// condemn judges every occupied cell against a single snapshot.
func condemn(g *Grid, pass int) []Capture {
	snapshot := g.ControlMap()
	var out []Capture
	for i := range g.cells {
		cell := &g.cells[i]
		if len(cell.units) == 0 {
			continue
		}
		var lost [3]bool
		for _, player := range Players() {
			if hasUnitOf(g, cell, player) {
				lost[player] = !snapshot.HasFreedom(cell.pos, player)
			}
		}
		for _, id := range cell.units {
			u := g.units[id].unit
			if lost[u.Owner] {
				out = append(out, Capture{Unit: u, From: cell.pos, Pass: pass})
			}
		}
	}
	return out
}

func hasUnitOf(g *Grid, c *Cell, player Player) bool {
	for _, id := range c.units {
		if g.units[id].unit.Owner == player {
			return true
		}
	}
	return false
}
