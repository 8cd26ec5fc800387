// Package fleet holds the placement rules and state of the deployment screen.
package fleet

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"
)

// Placement errors.
var (
	ErrOutOfBounds   = errors.New("ship does not fit on the board")
	ErrOverlap       = errors.New("ship overlaps a placed ship")
	ErrFleetComplete = errors.New("all ships already placed")
	ErrWrongClass    = errors.New("ship is not the next class in the catalog")
)

// Ship is a placed ship. It never changes after placement.
type Ship struct {
	Class  int // index into the catalog
	Row    rune
	Col    int
	Dir    Direction
	Length int
}

// Cells returns the board cells covered by the ship.
func (s Ship) Cells() []Cell {
	return Cells(s.Row, s.Col, s.Length, s.Dir)
}

// String renders the ship in the input grammar, e.g. "A3R".
func (s Ship) String() string {
	return fmt.Sprintf("%c%d%c", s.Row, s.Col, s.Dir)
}

// Anchor is the ECS component holding a ship's first cell.
type Anchor struct {
	Row rune
	Col int
}

// Hull is the ECS component holding a ship's class and extent.
type Hull struct {
	Class  int
	Dir    Direction
	Length int
}

// Fleet is the append-only set of ships placed on the player's board.
// Ships are stored as entities in an ark world; order keeps placement order.
type Fleet struct {
	ECS     *ecs.World
	Catalog *Catalog

	spawn   *ecs.Map2[Anchor, Hull]
	anchors *ecs.Map[Anchor]
	hulls   *ecs.Map[Hull]
	order   []ecs.Entity
	board   [GridSize][GridSize]int // class+1 per occupied cell, 0 = water
}

// NewFleet creates an empty fleet for the given catalog.
func NewFleet(catalog *Catalog) *Fleet {
	w := ecs.NewWorld(catalog.Len())
	return &Fleet{
		ECS:     w,
		Catalog: catalog,
		spawn:   ecs.NewMap2[Anchor, Hull](w),
		anchors: ecs.NewMap[Anchor](w),
		hulls:   ecs.NewMap[Hull](w),
		order:   make([]ecs.Entity, 0, catalog.Len()),
	}
}

// Next returns the index and class of the next ship to place.
// ok is false once every class in the catalog has been placed.
func (f *Fleet) Next() (int, ShipClass, bool) {
	idx := len(f.order)
	sc, ok := f.Catalog.Class(idx)
	return idx, sc, ok
}

// Complete reports whether every catalog class has been placed.
func (f *Fleet) Complete() bool {
	return len(f.order) >= f.Catalog.Len()
}

// Len returns the number of placed ships.
func (f *Fleet) Len() int { return len(f.order) }

// NextShip builds the ship for the next catalog class at the given anchor.
func (f *Fleet) NextShip(row rune, col int, dir Direction) (Ship, error) {
	idx, sc, ok := f.Next()
	if !ok {
		return Ship{}, ErrFleetComplete
	}
	return Ship{Class: idx, Row: row, Col: col, Dir: dir, Length: sc.Length}, nil
}

// Place validates a ship and appends it to the fleet.
func (f *Fleet) Place(s Ship) error {
	idx, sc, ok := f.Next()
	if !ok {
		return ErrFleetComplete
	}
	if s.Class != idx || s.Length != sc.Length {
		return fmt.Errorf("%w: got class %d, want %d (%s)", ErrWrongClass, s.Class, idx, sc.Name)
	}
	if !WithinBounds(s.Row, s.Col, s.Length, s.Dir) {
		return fmt.Errorf("%w: %s %s", ErrOutOfBounds, sc.Name, s)
	}
	cells := s.Cells()
	for _, c := range cells {
		if occ := f.board[c.Row][c.Col]; occ != 0 {
			other := f.Catalog.Classes[occ-1].Name
			return fmt.Errorf("%w: %s %s hits %s at %c%d", ErrOverlap, sc.Name, s, other, RowLetter(c.Row), c.Col)
		}
	}

	e := f.spawn.NewEntity(
		&Anchor{Row: s.Row, Col: s.Col},
		&Hull{Class: s.Class, Dir: s.Dir, Length: s.Length},
	)
	f.order = append(f.order, e)
	for _, c := range cells {
		f.board[c.Row][c.Col] = s.Class + 1
	}
	return nil
}

// Ships returns the placed ships in placement order.
func (f *Fleet) Ships() []Ship {
	out := make([]Ship, 0, len(f.order))
	for _, e := range f.order {
		a := f.anchors.Get(e)
		h := f.hulls.Get(e)
		out = append(out, Ship{Class: h.Class, Row: a.Row, Col: a.Col, Dir: h.Dir, Length: h.Length})
	}
	return out
}

// Occupant returns the class index of the ship covering (row, col).
func (f *Fleet) Occupant(row, col int) (int, bool) {
	if !(Cell{Row: row, Col: col}).inside() {
		return 0, false
	}
	occ := f.board[row][col]
	return occ - 1, occ != 0
}
