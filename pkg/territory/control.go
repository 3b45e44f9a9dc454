package territory

// Control is the signed influence on a cell: positive favours player 1,
// negative favours player 2. Defined is false when no unit influences the
// cell and it has no city; a defined zero is a contested cell.
type Control struct {
	Value   int
	Defined bool
}

// Contested returns true for a defined tie.
func (c Control) Contested() bool {
	return c.Defined && c.Value == 0
}

// Controller returns the player the control favours, or Nobody.
func (c Control) Controller() Player {
	return ControllingPlayer(c)
}

// ControllingPlayer maps a control value to the advantaged player: positive
// to player 1, negative to player 2, zero or undefined to Nobody.
func ControllingPlayer(c Control) Player {
	switch {
	case !c.Defined || c.Value == 0:
		return Nobody
	case c.Value > 0:
		return Player1
	default:
		return Player2
	}
}

// ControlAt computes the control of the cell at p from the units in it and
// in its orthogonal neighbours.
func (g *Grid) ControlAt(p Position) Control {
	c := g.CellAt(p)
	if c == nil {
		return Control{}
	}
	var p1, p2 int
	tally := func(cell *Cell) {
		for _, id := range cell.units {
			u := g.units[id].unit
			switch u.Owner {
			case Player1:
				p1 += u.Control
			case Player2:
				p2 += u.Control
			}
		}
	}
	tally(c)
	for _, q := range g.AdjacentCells(p) {
		tally(&g.cells[g.index(q)])
	}
	if p1 == 0 && p2 == 0 && c.City == Nobody {
		return Control{}
	}
	return Control{Value: p1 - p2, Defined: true}
}

// PlayerControls returns true if the player holds the advantage on the cell at p.
func (g *Grid) PlayerControls(p Position, player Player) bool {
	return g.ControlAt(p).Controller() == player
}

// ControlMap is a snapshot of every cell's control. Evaluations that must see
// one consistent board (a resolution pass, a win check) read from a map
// rather than from the live grid.
type ControlMap struct {
	g      *Grid
	values []Control // row-major
}

// ControlMap computes the control of every cell of the grid.
func (g *Grid) ControlMap() *ControlMap {
	m := &ControlMap{g: g, values: make([]Control, len(g.cells))}
	for i := range g.cells {
		m.values[i] = g.ControlAt(g.cells[i].pos)
	}
	return m
}

// At returns the snapshot control of the cell at p. Off-grid positions are
// undefined.
func (m *ControlMap) At(p Position) Control {
	if !m.g.InBounds(p) {
		return Control{}
	}
	return m.values[m.g.index(p)]
}

// PlayerControls returns true if the snapshot favours the player at p.
func (m *ControlMap) PlayerControls(p Position, player Player) bool {
	return m.At(p).Controller() == player
}
