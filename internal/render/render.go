// Package render draws a player's view of the board as text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/freeeve/enclave/internal/view"
	"github.com/freeeve/enclave/pkg/territory"
)

// CellWidth is the number of characters between cell borders.
const CellWidth = 9

// crowded is the unit count above which a cell shows per-player totals
// instead of one marker per unit.
const crowded = 6

const blank = "   "

// Board writes the view as a boxed grid. Each cell spans three lines:
//
//	(1) 1 (2)   unit markers and the control value (N: no influence)
//	(1)[1](1)   more units, terrain or city
//	(2)(2)7,1   more units, coordinates in the viewer's frame
func Board(w io.Writer, v *view.View) error {
	var b strings.Builder
	sep := strings.Repeat("+"+strings.Repeat("-", CellWidth), v.Cols) + "+\n"

	b.WriteString(sep)
	for r := 0; r < v.Rows; r++ {
		row := v.Cells[r]
		for line := 0; line < 3; line++ {
			b.WriteByte('|')
			for c, cell := range row {
				b.WriteString(cellLine(cell, line, territory.Pos(r, c)))
				b.WriteByte('|')
			}
			b.WriteByte('\n')
		}
		b.WriteString(sep)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func cellLine(c view.Cell, line int, p territory.Position) string {
	switch line {
	case 0:
		if !c.Visible {
			return strings.Repeat(" ", CellWidth)
		}
		if len(c.Units) > crowded {
			return count(c, territory.Player1) + controlLabel(c) + count(c, territory.Player2)
		}
		return unitMarker(c, 0) + controlLabel(c) + unitMarker(c, 1)
	case 1:
		return unitMarker(c, 2) + terrainLabel(c) + unitMarker(c, 3)
	default:
		return unitMarker(c, 4) + unitMarker(c, 5) + fmt.Sprintf("%-3s", p.String())
	}
}

// unitMarker returns the marker of the i-th unit, or blank.
func unitMarker(c view.Cell, i int) string {
	if !c.Visible || len(c.Units) > crowded || i >= len(c.Units) {
		return blank
	}
	return "(" + c.Units[i].String() + ")"
}

func count(c view.Cell, p territory.Player) string {
	n := 0
	for _, owner := range c.Units {
		if owner == p {
			n++
		}
	}
	if n == 0 {
		return blank
	}
	return fmt.Sprintf("%sx%d", p, n)
}

func controlLabel(c view.Cell) string {
	switch {
	case !c.Terrain.Passable():
		return blank
	case !c.Control.Defined:
		return " N "
	case c.Control.Value < 0:
		return fmt.Sprintf("%-3d", c.Control.Value)
	default:
		return fmt.Sprintf(" %-2d", c.Control.Value)
	}
}

func terrainLabel(c view.Cell) string {
	switch c.Terrain {
	case territory.Mountain:
		return "^^^"
	case territory.Forest:
		return ") ("
	case territory.Lake:
		return "~~~"
	}
	if c.Visible && c.City != territory.Nobody {
		return "[" + c.City.String() + "]"
	}
	return blank
}
