package fleet

import (
	"testing"

	"github.com/battleships-placement/battleships_placement/assets"
	"github.com/stretchr/testify/require"
)

func classicCatalog(t *testing.T) *Catalog {
	t.Helper()
	data, err := assets.Fleets.ReadFile(assets.DefaultFleet)
	require.NoError(t, err)
	c, err := LoadCatalog(data)
	require.NoError(t, err)
	return c
}

func TestClassicCatalog(t *testing.T) {
	c := classicCatalog(t)
	require.Equal(t, 5, c.Len())

	names := make([]string, 0, c.Len())
	lengths := make([]int, 0, c.Len())
	for _, sc := range c.Classes {
		names = append(names, sc.Name)
		lengths = append(lengths, sc.Length)
	}
	require.Equal(t, []string{"AirCraftCarrier", "BattleShip", "Submarine", "Cruiser", "Destroyer"}, names)
	require.Equal(t, []int{5, 4, 3, 3, 2}, lengths)

	_, ok := c.Class(5)
	require.False(t, ok)
	_, ok = c.Class(-1)
	require.False(t, ok)
}

func TestLoadCatalogRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"no classes", `{"name":"empty","classes":[]}`},
		{"missing name", `{"classes":[{"length":2}]}`},
		{"zero length", `{"classes":[{"name":"Raft","length":0}]}`},
		{"longer than board", `{"classes":[{"name":"Eel","length":11}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func placeAll(t *testing.T, f *Fleet, specs ...string) {
	t.Helper()
	for _, s := range specs {
		var b InputBuffer
		for _, r := range s {
			require.Truef(t, b.Feed(r), "%s: %q", s, r)
		}
		row, col, dir, ok := b.Submit()
		require.True(t, ok)
		ship, err := f.NextShip(row, col, dir)
		require.NoError(t, err)
		require.NoError(t, f.Place(ship), s)
	}
}

func TestFleetPlaceInOrder(t *testing.T) {
	f := NewFleet(classicCatalog(t))

	idx, sc, ok := f.Next()
	require.True(t, ok)
	require.Equal(t, 0, idx)
	require.Equal(t, "AirCraftCarrier", sc.Name)

	placeAll(t, f, "A0D", "A1D", "A2D", "A3D", "A4D")
	require.True(t, f.Complete())
	require.Equal(t, 5, f.Len())

	ships := f.Ships()
	require.Len(t, ships, 5)
	for i, s := range ships {
		require.Equal(t, i, s.Class)
		require.Equal(t, i, s.Col)
		require.Equal(t, 'A', s.Row)
		require.Equal(t, DirDown, s.Dir)
	}
	require.Equal(t, "A0D", ships[0].String())
	require.Equal(t, 2, ships[4].Length)

	cls, ok := f.Occupant(4, 0)
	require.True(t, ok)
	require.Equal(t, 0, cls)
	_, ok = f.Occupant(5, 0)
	require.False(t, ok)
	_, ok = f.Occupant(-1, 0)
	require.False(t, ok)
}

func TestFleetRejectsOutOfBounds(t *testing.T) {
	f := NewFleet(classicCatalog(t))
	ship, err := f.NextShip('A', 0, DirUp)
	require.NoError(t, err)

	err = f.Place(ship)
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.Equal(t, 0, f.Len())
}

func TestFleetRejectsOverlap(t *testing.T) {
	f := NewFleet(classicCatalog(t))
	placeAll(t, f, "C2R") // carrier on C2..C6

	ship, err := f.NextShip('A', 4, DirDown) // battleship A4..D4 crosses C4
	require.NoError(t, err)
	require.ErrorIs(t, f.Place(ship), ErrOverlap)
	require.Equal(t, 1, f.Len())

	ship, err = f.NextShip('A', 7, DirDown)
	require.NoError(t, err)
	require.NoError(t, f.Place(ship))
}

func TestFleetGuardsExhaustedCatalog(t *testing.T) {
	f := NewFleet(classicCatalog(t))
	placeAll(t, f, "A0R", "B0R", "C0R", "D0R", "E0R")

	_, _, ok := f.Next()
	require.False(t, ok)

	_, err := f.NextShip('J', 0, DirRight)
	require.ErrorIs(t, err, ErrFleetComplete)

	err = f.Place(Ship{Class: 5, Row: 'J', Col: 0, Dir: DirRight, Length: 2})
	require.ErrorIs(t, err, ErrFleetComplete)
	require.Equal(t, 5, f.Len())
}

func TestFleetRejectsWrongClass(t *testing.T) {
	f := NewFleet(classicCatalog(t))
	err := f.Place(Ship{Class: 4, Row: 'A', Col: 0, Dir: DirRight, Length: 2})
	require.ErrorIs(t, err, ErrWrongClass)

	err = f.Place(Ship{Class: 0, Row: 'A', Col: 0, Dir: DirRight, Length: 2})
	require.ErrorIs(t, err, ErrWrongClass)
	require.Equal(t, 0, f.Len())
}
