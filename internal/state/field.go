package state

import (
	"fmt"
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
	"slices"
)

var _ = fmt.Printf

// Cell is the terrain of one position of the field.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellPlayer
	CellFinish
)

//go:generate go tool enumer -type=Cell -trimprefix=Cell -values -text field.go

// CellSymbols used when printing a field as text.
var CellSymbols = [...]rune{' ', '#', 'o', '*'}

// Symbol returns the rune used to print the cell in text.
func (c Cell) Symbol() rune {
	if int(c) >= len(CellSymbols) {
		exceptions.Panicf("invalid Cell(%d)", uint8(c))
	}
	return CellSymbols[c]
}

// IsObstacle returns whether a player can't step into a cell with this terrain.
func (c Cell) IsObstacle() bool {
	return c == CellWall
}

// Field is the rectangular grid of cells of a game, along with the walls of each cell.
//
// Walls are kept mutually consistent by UpdateWalls: if a cell has a wall towards
// direction d, the neighbor in direction d has a wall towards d.Reverse().
// Cells on the border don't store the implicit walls towards off-field positions,
// see BoundaryWalls.
type Field struct {
	width, height int
	cells         []Cell
	walls         []Walls
}

// NewField creates an empty field (all cells CellEmpty, no walls) with the given size.
func NewField(width, height int) *Field {
	if width < 0 || height < 0 {
		exceptions.Panicf("invalid field size %dx%d", width, height)
	}
	klog.V(2).Infof("NewField(%d, %d)", width, height)
	return &Field{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		walls:  make([]Walls, width*height),
	}
}

// NewSquareField creates a field that looks roughly square when drawn:
// with side columns and 2*side+1 rows, the diagonals have the same number of cells.
func NewSquareField(side int) *Field {
	return NewField(side, 2*side+1)
}

// Width is the number of columns.
func (f *Field) Width() int { return f.width }

// Height is the number of rows.
func (f *Field) Height() int { return f.height }

// NumCells is width*height.
func (f *Field) NumCells() int { return f.width * f.height }

// Contains returns whether pos is within the field.
func (f *Field) Contains(pos Pos) bool {
	return pos.X >= 0 && pos.X < f.width && pos.Y >= 0 && pos.Y < f.height
}

// Index returns the row-major index of pos. It assumes pos is within the field.
func (f *Field) Index(pos Pos) int {
	return pos.Y*f.width + pos.X
}

// PosOf is the inverse of Index.
func (f *Field) PosOf(index int) Pos {
	return Pos{X: index % f.width, Y: index / f.width}
}

// Neighbor returns the position one step from pos in direction d, and false if
// that position falls off the field.
func (f *Field) Neighbor(pos Pos, d Direction) (Pos, bool) {
	next := pos.Step(d)
	if !f.Contains(next) {
		return pos, false
	}
	return next, true
}

// CellAt returns the terrain at pos, or defaultValue if pos is off the field.
func (f *Field) CellAt(pos Pos, defaultValue Cell) Cell {
	if !f.Contains(pos) {
		return defaultValue
	}
	return f.cells[f.Index(pos)]
}

// SetCell sets the terrain at pos. It's a no-op if pos is off the field.
func (f *Field) SetCell(pos Pos, value Cell) {
	if !f.Contains(pos) {
		return
	}
	f.cells[f.Index(pos)] = value
}

// FillCells sets the terrain of every cell.
func (f *Field) FillCells(value Cell) {
	for ii := range f.cells {
		f.cells[ii] = value
	}
}

// WallsAt returns the walls stored for pos. Positions off the field are fully walled.
func (f *Field) WallsAt(pos Pos) Walls {
	if !f.Contains(pos) {
		return AllWalls
	}
	return f.walls[f.Index(pos)]
}

// FillWalls sets the walls of every cell to value.
func (f *Field) FillWalls(value Walls) {
	for ii := range f.walls {
		f.walls[ii] = value
	}
}

// UpdateWalls adds (add=true) or removes (add=false) the walls in mask to the cell at pos.
//
// For each direction in mask, the neighbor cell on that side gets the reverse
// direction updated as well, so both sides of a wall stay consistent. Walls facing
// off the field only have the local side.
//
// It's a no-op if pos is off the field.
func (f *Field) UpdateWalls(pos Pos, mask Walls, add bool) {
	if !f.Contains(pos) {
		return
	}
	mask &= AllWalls
	for d := range mask.Directions() {
		if neighbor, ok := f.Neighbor(pos, d); ok {
			f.toggleWalls(neighbor, d.Reverse().Mask(), add)
		}
	}
	f.toggleWalls(pos, mask, add)
}

// UpdateWall is UpdateWalls for a single direction.
func (f *Field) UpdateWall(pos Pos, d Direction, add bool) {
	f.UpdateWalls(pos, d.Mask(), add)
}

// toggleWalls sets or clears the mask bits at pos, which must be within the field.
func (f *Field) toggleWalls(pos Pos, mask Walls, add bool) {
	idx := f.Index(pos)
	if add {
		f.walls[idx] |= mask
	} else {
		f.walls[idx] &^= mask
	}
}

// BoundaryWalls returns the implicit walls of pos towards positions off the field:
// UpLeft/DownLeft on the left edge of even rows, UpRight/DownRight on the right
// edge of odd rows, and the vertical directions leaving through the top or bottom
// two rows.
//
// They are not stored: combine with WallsAt (or use ClosedWallsAt) to know where
// a player can go.
func (f *Field) BoundaryWalls(pos Pos) (boundary Walls) {
	if !f.Contains(pos) {
		return AllWalls
	}
	for _, d := range Directions {
		if !f.Contains(pos.Step(d)) {
			boundary |= d.Mask()
		}
	}
	return
}

// ClosedWallsAt returns the stored walls of pos plus its BoundaryWalls.
func (f *Field) ClosedWallsAt(pos Pos) Walls {
	return f.WallsAt(pos) | f.BoundaryWalls(pos)
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	return &Field{
		width:  f.width,
		height: f.height,
		cells:  slices.Clone(f.cells),
		walls:  slices.Clone(f.walls),
	}
}

// Equal returns whether both fields have the same size, terrain and walls.
func (f *Field) Equal(f2 *Field) bool {
	return f.width == f2.width && f.height == f2.height &&
		slices.Equal(f.cells, f2.cells) && slices.Equal(f.walls, f2.walls)
}
