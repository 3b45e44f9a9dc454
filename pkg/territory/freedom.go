package territory

// HasFreedom reports whether the player's presence on the cell at p survives
// against the current board.
func (g *Grid) HasFreedom(p Position, player Player) bool {
	return g.ControlMap().HasFreedom(p, player)
}

// ContiguousRegion returns the region the player's presence at p can draw on:
// the flood fill from p over cells that are contested or controlled by the
// player. The seed is always a member.
func (g *Grid) ContiguousRegion(p Position, player Player) CellSet {
	return g.ControlMap().ContiguousRegion(p, player)
}

// HasFreedom evaluates freedom against the snapshot.
//
// A cell the opponent controls outright is lost. Otherwise the contiguous
// region grown from the cell must touch at least one cell the opponent does
// not control; a region whose whole boundary is opponent-controlled is
// encircled. A region with no boundary at all is free.
func (m *ControlMap) HasFreedom(p Position, player Player) bool {
	opponent := player.Opponent()
	if m.PlayerControls(p, opponent) {
		return false
	}
	boundary := m.g.AdjacentToRegion(m.ContiguousRegion(p, player))
	for q := range boundary {
		if !m.PlayerControls(q, opponent) {
			return true
		}
	}
	return len(boundary) == 0
}

// ContiguousRegion grows the player's region from p against the snapshot.
func (m *ControlMap) ContiguousRegion(p Position, player Player) CellSet {
	region := NewCellSet(p)
	if !m.g.InBounds(p) {
		return region
	}
	frontier := []Position{p}
	for len(frontier) > 0 {
		var next []Position
		for _, cur := range frontier {
			for _, q := range m.g.AdjacentCells(cur) {
				if region.Has(q) || !m.holds(q, player) {
					continue
				}
				region.Add(q)
				next = append(next, q)
			}
		}
		frontier = next
	}
	return region
}

// holds classifies a cell as contested or controlled by the player.
func (m *ControlMap) holds(p Position, player Player) bool {
	c := m.At(p)
	return c.Contested() || c.Controller() == player
}
