package fleet

// GridSize is the width and height of a board.
const GridSize = 10

// Direction is the compass direction a ship extends from its anchor.
type Direction rune

const (
	DirUp    Direction = 'U'
	DirRight Direction = 'R'
	DirDown  Direction = 'D'
	DirLeft  Direction = 'L'
)

// ParseDirection maps a direction letter to a Direction.
func ParseDirection(r rune) (Direction, bool) {
	switch d := Direction(r); d {
	case DirUp, DirRight, DirDown, DirLeft:
		return d, true
	}
	return 0, false
}

// delta returns the per-cell step along (row, col).
func (d Direction) delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

// RowIndex converts a row letter ('A'..'J') to a zero-based index.
// Letters outside the board yield an index outside [0, GridSize).
func RowIndex(row rune) int {
	return int(row - 'A')
}

// RowLetter is the inverse of RowIndex.
func RowLetter(idx int) rune {
	return 'A' + rune(idx)
}

// Cell is a (row, col) board coordinate.
type Cell struct {
	Row, Col int
}

func (c Cell) inside() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

// WithinBounds reports whether a ship of the given length anchored at
// (row, col) and extending in dir lies entirely on the board.
func WithinBounds(row rune, col, length int, dir Direction) bool {
	r := RowIndex(row)
	if !(Cell{Row: r, Col: col}).inside() {
		return false
	}

	switch dir {
	case DirUp:
		return r-(length-1) >= 0
	case DirRight:
		return col+(length-1) < GridSize
	case DirDown:
		return r+(length-1) < GridSize
	case DirLeft:
		return col-(length-1) >= 0
	}
	return false
}

// Cells returns the run of cells covered by a ship, anchor first.
// Up/Down walk the row letters, Left/Right walk the column digits.
// Cells off the board are included; callers validate with WithinBounds.
func Cells(row rune, col, length int, dir Direction) []Cell {
	dr, dc := dir.delta()
	r := RowIndex(row)
	out := make([]Cell, 0, length)
	for i := 0; i < length; i++ {
		out = append(out, Cell{Row: r + i*dr, Col: col + i*dc})
	}
	return out
}
