// Package view projects the board as one player sees it: cells out of sight
// are hidden and player 2 sees the board turned around with the labels
// swapped, so every player sits at the bottom as "1".
package view

import "github.com/freeeve/enclave/pkg/territory"

// Frame converts between board coordinates and a player's own coordinates.
type Frame struct {
	Rows   int
	Cols   int
	Viewer territory.Player
}

// NewFrame returns the frame of the viewer on g.
func NewFrame(g *territory.Grid, viewer territory.Player) Frame {
	return Frame{Rows: g.Rows(), Cols: g.Cols(), Viewer: viewer}
}

// ToBoard maps a position in the viewer's frame to board coordinates.
func (f Frame) ToBoard(p territory.Position) territory.Position {
	if f.Viewer != territory.Player2 {
		return p
	}
	return territory.Pos(f.Rows-1-p.Row, f.Cols-1-p.Col)
}

// FromBoard maps a board position into the viewer's frame. The mirror is its
// own inverse.
func (f Frame) FromBoard(p territory.Position) territory.Position {
	return f.ToBoard(p)
}

// Relative relabels a player so the viewer is always Player1.
func (f Frame) Relative(p territory.Player) territory.Player {
	if f.Viewer == territory.Player2 {
		return p.Opponent()
	}
	return p
}

// Cell is one square as seen by the viewer. Players are relative to the
// viewer. Hidden cells carry terrain only.
type Cell struct {
	Visible bool
	Terrain territory.Terrain
	City    territory.Player
	Units   []territory.Player
	Control territory.Control
}

// View is a read-only snapshot of the board for one player, indexed in the
// viewer's frame.
type View struct {
	Frame
	Cells [][]Cell
}

// At returns the cell at p in the viewer's frame.
func (v *View) At(p territory.Position) Cell {
	return v.Cells[p.Row][p.Col]
}

// Project builds the viewer's view of g. The grid is not modified.
func Project(g *territory.Grid, viewer territory.Player) *View {
	f := NewFrame(g, viewer)
	seen := Visible(g, viewer)
	v := &View{Frame: f, Cells: make([][]Cell, f.Rows)}
	for r := 0; r < f.Rows; r++ {
		v.Cells[r] = make([]Cell, f.Cols)
		for c := 0; c < f.Cols; c++ {
			bp := f.ToBoard(territory.Pos(r, c))
			cell := g.CellAt(bp)
			vc := Cell{Terrain: cell.Terrain}
			if seen.Has(bp) {
				vc.Visible = true
				vc.City = f.Relative(cell.City)
				for _, u := range g.UnitsAt(bp) {
					vc.Units = append(vc.Units, f.Relative(u.Owner))
				}
				vc.Control = g.ControlAt(bp)
				if viewer == territory.Player2 {
					vc.Control.Value = -vc.Control.Value
				}
			}
			v.Cells[r][c] = vc
		}
	}
	return v
}

// Visible returns the board cells the viewer can see: their own city, every
// cell holding one of their units, and every non-forest cell within a unit's
// vision range.
func Visible(g *territory.Grid, viewer territory.Player) territory.CellSet {
	seen := make(territory.CellSet)
	for _, p := range g.Cities() {
		if g.CellAt(p).City == viewer {
			seen.Add(p)
		}
	}
	units := g.UnitsOf(viewer)
	for _, u := range units {
		at, _ := g.UnitPosition(u.ID)
		seen.Add(at)
	}
	for _, p := range g.Positions() {
		if seen.Has(p) || g.CellAt(p).Terrain == territory.Forest {
			continue
		}
		for _, u := range units {
			at, _ := g.UnitPosition(u.ID)
			if at.Distance(p) <= u.Vision {
				seen.Add(p)
				break
			}
		}
	}
	return seen
}
