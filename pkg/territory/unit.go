package territory

// Player identifies one of the two sides.
type Player int

const (
	Nobody  Player = 0
	Player1 Player = 1
	Player2 Player = 2
)

// Players returns both players in turn order.
func Players() []Player {
	return []Player{Player1, Player2}
}

// Opponent returns the other player. Nobody has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Nobody
	}
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "1"
	case Player2:
		return "2"
	default:
		return "none"
	}
}

// MaxUnitsPerPlayer caps the number of live units a player may have on the grid.
const MaxUnitsPerPlayer = 7

// UnitID is the stable arena slot of a unit within its grid.
type UnitID int

// NoUnit is the zero value for "no unit assigned yet".
const NoUnit UnitID = -1

// Unit is a mobile piece. Movement, Control and Vision are magnitudes; the
// reference unit has 1 of each.
type Unit struct {
	ID       UnitID
	Owner    Player
	Movement int
	Control  int
	Vision   int
}

// NewUnit returns a reference unit for the owner. Its ID is assigned by Place.
func NewUnit(owner Player) Unit {
	return Unit{ID: NoUnit, Owner: owner, Movement: 1, Control: 1, Vision: 1}
}

// Unit returns the live unit with the given ID.
func (g *Grid) Unit(id UnitID) (Unit, bool) {
	if id < 0 || int(id) >= len(g.units) || g.units[id].cell < 0 {
		return Unit{}, false
	}
	return g.units[id].unit, true
}

// UnitPosition returns the position of the cell a live unit occupies.
func (g *Grid) UnitPosition(id UnitID) (Position, bool) {
	if _, ok := g.Unit(id); !ok {
		return Position{}, false
	}
	return g.cells[g.units[id].cell].pos, true
}

// UnitsOf returns the live units of a player in row-major cell order, then
// insertion order within a cell.
func (g *Grid) UnitsOf(player Player) []Unit {
	var out []Unit
	for i := range g.cells {
		for _, id := range g.cells[i].units {
			if u := g.units[id].unit; u.Owner == player {
				out = append(out, u)
			}
		}
	}
	return out
}

// UnitCount returns the number of live units a player has on the grid.
func (g *Grid) UnitCount(player Player) int {
	n := 0
	for _, s := range g.units {
		if s.cell >= 0 && s.unit.Owner == player {
			n++
		}
	}
	return n
}

// UnitsAt returns the live units in the cell at p in insertion order.
func (g *Grid) UnitsAt(p Position) []Unit {
	c := g.CellAt(p)
	if c == nil {
		return nil
	}
	out := make([]Unit, len(c.units))
	for i, id := range c.units {
		out[i] = g.units[id].unit
	}
	return out
}
