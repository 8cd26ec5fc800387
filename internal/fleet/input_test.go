package fleet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInputBufferSlots(t *testing.T) {
	var b InputBuffer
	require.Equal(t, InputEmpty, b.State())

	// digit and direction are not valid in the row slot
	require.False(t, b.Feed('3'))
	require.False(t, b.Feed('K'))
	require.Equal(t, "", b.String())

	require.True(t, b.Feed('B'))
	require.Equal(t, InputHaveRow, b.State())

	require.False(t, b.Feed('C'))
	require.False(t, b.Feed('R'))
	require.Equal(t, "B", b.String())

	require.True(t, b.Feed('7'))
	require.Equal(t, InputHaveRowCol, b.State())

	require.False(t, b.Feed('X'))
	require.False(t, b.Feed('1'))
	require.True(t, b.Feed('L'))
	require.Equal(t, InputComplete, b.State())

	// full buffer ignores everything
	require.False(t, b.Feed('A'))
	require.Equal(t, "B7L", b.String())
}

func TestInputBufferFoldsCase(t *testing.T) {
	var b InputBuffer
	for _, r := range "j0d" {
		require.True(t, b.Feed(r))
	}
	require.Equal(t, "J0D", b.String())
}

func TestInputBufferRejectsNonASCIILetters(t *testing.T) {
	tests := []struct {
		name string
		r    rune
	}{
		{"dotless i", 'ı'},
		{"long s", 'ſ'},
		{"fullwidth A", 'Ａ'},
		{"kelvin sign", 'K'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b InputBuffer
			require.False(t, b.Feed(tt.r))
			require.Equal(t, InputEmpty, b.State())
			require.Equal(t, "", b.String())
		})
	}
}

func TestInputBufferSubmit(t *testing.T) {
	var b InputBuffer
	for _, r := range "A3" {
		b.Feed(r)
	}
	_, _, _, ok := b.Submit()
	require.False(t, ok)
	require.Equal(t, "A3", b.String(), "incomplete buffer is kept")

	b.Feed('R')
	row, col, dir, ok := b.Submit()
	require.True(t, ok)
	require.Equal(t, 'A', row)
	require.Equal(t, 3, col)
	require.Equal(t, DirRight, dir)
	require.Equal(t, InputEmpty, b.State())
	require.Equal(t, "", b.String())
}

func TestInputBufferBackspace(t *testing.T) {
	var b InputBuffer
	require.False(t, b.Backspace())

	for _, r := range "C5U" {
		b.Feed(r)
	}
	require.True(t, b.Backspace())
	require.Equal(t, "C5", b.String())
	require.Equal(t, InputHaveRowCol, b.State())

	require.True(t, b.Feed('D'))
	require.Equal(t, "C5D", b.String())
}
