package territory

// Place puts a new unit on the cell at p and returns the unit's ID. A failed
// placement leaves the grid untouched.
func (g *Grid) Place(u Unit, p Position) (UnitID, error) {
	if u.Owner != Player1 && u.Owner != Player2 {
		return NoUnit, &RuleError{Op: "place", Unit: NoUnit, At: p, Err: ErrInvalidPlayer}
	}
	if err := g.checkPlacement(u.Owner, p); err != nil {
		return NoUnit, &RuleError{Op: "place", Unit: NoUnit, At: p, Err: err}
	}
	u.ID = UnitID(len(g.units))
	g.units = append(g.units, unitSlot{unit: u, cell: -1})
	g.attach(u.ID, p)
	return u.ID, nil
}

// checkPlacement applies the terrain and capacity rules for adding one unit
// of the owner to p.
func (g *Grid) checkPlacement(owner Player, p Position) error {
	c := g.CellAt(p)
	if c == nil {
		return ErrOffGrid
	}
	if !c.Terrain.Passable() {
		return ErrBlockedTerrain
	}
	if g.UnitCount(owner) >= MaxUnitsPerPlayer {
		return ErrCapacityExceeded
	}
	return nil
}

// ValidateMove checks a single-step move without applying it.
func (g *Grid) ValidateMove(id UnitID, to Position) error {
	u, ok := g.Unit(id)
	if !ok {
		return &RuleError{Op: "move", Unit: id, At: to, Err: ErrUnitNotFound}
	}
	target := g.CellAt(to)
	if target == nil {
		return &RuleError{Op: "move", Unit: id, At: to, Err: ErrOffGrid}
	}
	if !target.Terrain.Passable() {
		return &RuleError{Op: "move", Unit: id, At: to, Err: ErrBlockedTerrain}
	}
	from, _ := g.UnitPosition(id)
	if from.Distance(to) > u.Movement {
		return &RuleError{Op: "move", Unit: id, At: to, Err: ErrTooFar}
	}
	return nil
}

// Move relocates a unit. The unit keeps its ID. If the unit cannot be placed
// at the target after leaving its source cell it is put back where it was.
func (g *Grid) Move(id UnitID, to Position) error {
	if err := g.ValidateMove(id, to); err != nil {
		return err
	}
	return g.relocate(id, to)
}

func (g *Grid) relocate(id UnitID, to Position) error {
	from, _ := g.UnitPosition(id)
	slot := g.detach(id)
	if err := g.checkPlacement(g.units[id].unit.Owner, to); err != nil {
		g.restore(id, from, slot)
		return &RuleError{Op: "move", Unit: id, At: to, Err: err}
	}
	g.attach(id, to)
	return nil
}

// attach appends a detached unit to the cell at p.
func (g *Grid) attach(id UnitID, p Position) {
	i := g.index(p)
	g.cells[i].units = append(g.cells[i].units, id)
	g.units[id].cell = i
}

// restore puts a detached unit back at its former place in the cell's order.
func (g *Grid) restore(id UnitID, p Position, slot int) {
	i := g.index(p)
	units := g.cells[i].units
	units = append(units, NoUnit)
	copy(units[slot+1:], units[slot:])
	units[slot] = id
	g.cells[i].units = units
	g.units[id].cell = i
}

// detach takes a live unit off its cell, keeping its arena slot. It returns
// the unit's former index within the cell.
func (g *Grid) detach(id UnitID) int {
	cell := &g.cells[g.units[id].cell]
	slot := -1
	for k, other := range cell.units {
		if other == id {
			cell.units = append(cell.units[:k], cell.units[k+1:]...)
			slot = k
			break
		}
	}
	g.units[id].cell = -1
	return slot
}

// remove captures a live unit.
func (g *Grid) remove(id UnitID) error {
	if _, ok := g.Unit(id); !ok {
		return &RuleError{Op: "remove", Unit: id, Err: ErrNotFound}
	}
	g.detach(id)
	return nil
}
