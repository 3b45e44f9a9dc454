// Package territory implements the rules of Enclave: zone-of-control on a
// grid, freedom of units and cities, and simultaneous capture resolution.
package territory

import (
	"fmt"
	"sort"
)

// StandardSize is the edge length of the reference board.
const StandardSize = 9

// Terrain classifies a cell.
type Terrain int

const (
	Plain    Terrain = iota // Open ground
	Forest                  // Passable, blocks sight from neighbouring cells
	Mountain                // Impassable
	Lake                    // Impassable
)

func (t Terrain) String() string {
	switch t {
	case Plain:
		return "plain"
	case Forest:
		return "forest"
	case Mountain:
		return "mountain"
	case Lake:
		return "lake"
	default:
		return "unknown"
	}
}

// Passable returns true if units may stand on the terrain.
func (t Terrain) Passable() bool {
	return t == Plain || t == Forest
}

// Position addresses a cell by row and column.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{row, col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Distance returns the orthogonal (Manhattan) distance between two positions.
func (p Position) Distance(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Cell is a single square of the board. Cells live inside a Grid and are
// identified by their position, not their contents.
type Cell struct {
	Terrain Terrain
	City    Player // Nobody if the cell has no city

	pos   Position
	units []UnitID // insertion order; display only
}

// Units returns the IDs of the units resident in the cell in insertion order.
func (c *Cell) Units() []UnitID {
	out := make([]UnitID, len(c.units))
	copy(out, c.units)
	return out
}

// Empty returns true if no unit stands on the cell.
func (c *Cell) Empty() bool {
	return len(c.units) == 0
}

// Grid is the board: a fixed rectangle of cells plus the arena of every unit
// ever placed. It is the only mutable state of a game.
type Grid struct {
	rows  int
	cols  int
	cells []Cell     // row-major
	units []unitSlot // indexed by UnitID
}

type unitSlot struct {
	unit Unit
	cell int // index into cells, -1 once captured or detached
}

// NewGrid returns an all-plain grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("territory: invalid grid size %dx%d", rows, cols))
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for i := range g.cells {
		g.cells[i].pos = Position{Row: i / cols, Col: i % cols}
	}
	return g
}

// NewStandardGrid returns the 9x9 reference board: a central mountain, two
// forests and two lakes placed symmetrically.
func NewStandardGrid() *Grid {
	g := NewGrid(StandardSize, StandardSize)
	g.SetTerrain(Pos(4, 4), Mountain)
	g.SetTerrain(Pos(2, 2), Forest)
	g.SetTerrain(Pos(6, 6), Forest)
	g.SetTerrain(Pos(2, 6), Lake)
	g.SetTerrain(Pos(6, 2), Lake)
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds returns true if p addresses a cell of this grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// CellAt returns the cell at p, or nil if p is off the grid.
func (g *Grid) CellAt(p Position) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[g.index(p)]
}

// PositionOf returns the position of a cell of this grid. A cell belonging
// to another grid (for example a clone) yields ErrNotFound.
func (g *Grid) PositionOf(c *Cell) (Position, error) {
	if c != nil && g.InBounds(c.pos) && &g.cells[g.index(c.pos)] == c {
		return c.pos, nil
	}
	return Position{}, ErrNotFound
}

// Positions returns every position of the grid in row-major order.
func (g *Grid) Positions() []Position {
	out := make([]Position, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].pos
	}
	return out
}

// SetTerrain changes the terrain of a cell during board setup.
func (g *Grid) SetTerrain(p Position, t Terrain) {
	c := g.CellAt(p)
	if c == nil {
		panic(fmt.Sprintf("territory: SetTerrain off grid at %s", p))
	}
	c.Terrain = t
}

// FoundCity assigns a city to a plain cell. Each cell holds at most one city
// for the lifetime of the game.
func (g *Grid) FoundCity(p Position, owner Player) error {
	c := g.CellAt(p)
	if c == nil {
		return cityError(p, ErrOffGrid)
	}
	if owner != Player1 && owner != Player2 {
		return cityError(p, ErrInvalidPlayer)
	}
	if c.Terrain != Plain {
		return cityError(p, ErrBlockedTerrain)
	}
	if c.City != Nobody {
		return cityError(p, ErrCityExists)
	}
	c.City = owner
	return nil
}

func cityError(p Position, err error) error {
	return &RuleError{Op: "found city", Unit: NoUnit, At: p, Err: err}
}

// Cities returns the positions of all cities in row-major order.
func (g *Grid) Cities() []Position {
	var out []Position
	for i := range g.cells {
		if g.cells[i].City != Nobody {
			out = append(out, g.cells[i].pos)
		}
	}
	return out
}

// AdjacentCells returns the orthogonal neighbours of p that lie on the grid,
// ordered up, down, left, right.
func (g *Grid) AdjacentCells(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, d := range [4]Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		q := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// AdjacentToRegion returns the cells bordering the region: the union of each
// member's neighbours, minus the region itself.
func (g *Grid) AdjacentToRegion(region CellSet) CellSet {
	boundary := make(CellSet)
	for p := range region {
		for _, q := range g.AdjacentCells(p) {
			if !region.Has(q) {
				boundary.Add(q)
			}
		}
	}
	return boundary
}

// Clone returns a deep copy of the grid. Unit IDs are preserved.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: make([]Cell, len(g.cells)),
		units: make([]unitSlot, len(g.units)),
	}
	copy(c.units, g.units)
	for i, cell := range g.cells {
		c.cells[i] = Cell{Terrain: cell.Terrain, City: cell.City, pos: cell.pos}
		if len(cell.units) > 0 {
			c.cells[i].units = append([]UnitID(nil), cell.units...)
		}
	}
	return c
}

// CellSet is a set of cells addressed by position.
type CellSet map[Position]struct{}

// NewCellSet returns a set holding the given positions.
func NewCellSet(ps ...Position) CellSet {
	s := make(CellSet, len(ps))
	for _, p := range ps {
		s.Add(p)
	}
	return s
}

// Add inserts p.
func (s CellSet) Add(p Position) { s[p] = struct{}{} }

// Has reports whether p is a member.
func (s CellSet) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

// Sorted returns the members in row-major order.
func (s CellSet) Sorted() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
