package core

import (
	"fmt"
	"strings"
)

// Cell is a single maze position and its content.
// The position is fixed at construction; only Object changes.
type Cell struct {
	Object Object
	x, y   int
}

// X returns the column of the cell.
func (c Cell) X() int { return c.x }

// Y returns the row of the cell.
func (c Cell) Y() int { return c.y }

// Pos returns the cell position as a Coord.
func (c Cell) Pos() Coord { return C(c.x, c.y) }

// Grid is a square maze. Cells are indexed [row][col], i.e. [y][x].
type Grid struct {
	size  int
	cells [][]Cell
}

// NewGrid builds a grid from rows of objects.
// Each object becomes a cell with x = column index and y = row index.
// Every row must have exactly len(rows) objects.
func NewGrid(rows [][]Object) (*Grid, error) {
	size := len(rows)
	for y, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), size)
		}
	}

	cells := make([][]Cell, size)
	for y, row := range rows {
		cells[y] = make([]Cell, size)
		for x, obj := range row {
			cells[y][x] = Cell{Object: obj, x: x, y: y}
		}
	}
	return &Grid{size: size, cells: cells}, nil
}

// NewEmptyGrid creates a size x size grid with every cell empty.
func NewEmptyGrid(size int) *Grid {
	rows := make([][]Object, size)
	for y := range rows {
		rows[y] = make([]Object, size)
	}
	g, _ := NewGrid(rows) // square by construction
	return g
}

// Size returns the number of rows (and columns) of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// mustInBounds panics on out-of-range access. Algorithm code checks
// InBounds before indexing, so reaching this is a bug.
func (g *Grid) mustInBounds(c Coord) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("core: coordinate %v outside %dx%d grid", c, g.size, g.size))
	}
}

// Cell returns the cell at the given coordinate. Panics if out of bounds.
func (g *Grid) Cell(c Coord) Cell {
	g.mustInBounds(c)
	return g.cells[c.Y][c.X]
}

// At returns the object at the given coordinate. Panics if out of bounds.
func (g *Grid) At(c Coord) Object {
	g.mustInBounds(c)
	return g.cells[c.Y][c.X].Object
}

// Set replaces the object at the given coordinate. Panics if out of bounds.
func (g *Grid) Set(c Coord, o Object) {
	g.mustInBounds(c)
	g.cells[c.Y][c.X].Object = o
}

// Row returns a copy of the objects in row y.
func (g *Grid) Row(y int) []Object {
	g.mustInBounds(C(0, y))
	row := make([]Object, g.size)
	for x, cell := range g.cells[y] {
		row[x] = cell.Object
	}
	return row
}

// Rows returns a copy of all objects, indexed [row][col].
func (g *Grid) Rows() [][]Object {
	rows := make([][]Object, g.size)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return rows
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.size)
	for y := range g.cells {
		cells[y] = make([]Cell, g.size)
		copy(cells[y], g.cells[y])
	}
	return &Grid{size: g.size, cells: cells}
}

// Equal returns true if two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of cells holding an object of the given kind.
func (g *Grid) Count(k Kind) int {
	count := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.Object.Kind == k {
				count++
			}
		}
	}
	return count
}

// Diff returns the coordinates whose objects differ between two grids of
// the same size, ordered by row then column.
func (g *Grid) Diff(other *Grid) []Coord {
	var changed []Coord
	if g.size != other.size {
		return changed
	}
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.cells[y][x].Object != other.cells[y][x].Object {
				changed = append(changed, C(x, y))
			}
		}
	}
	return changed
}

// RenderGrid renders the grid using maze file tokens, one row per line.
// Useful for debugging and golden comparisons.
func RenderGrid(g *Grid) string {
	var sb strings.Builder
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.cells[y][x].Object.Token())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
