package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCellBufferBounds(t *testing.T) {
	buf := NewCellBuffer(4, 2)
	buf.Set(-1, 0, 'x', ColorRed, ColorBlack)
	buf.Set(4, 1, 'x', ColorRed, ColorBlack)
	buf.Set(3, 1, 'y', ColorRed, ColorBlue)

	require.Equal(t, Cell{}, buf.Get(9, 9))
	require.Equal(t, Cell{Glyph: 'y', FG: ColorRed, BG: ColorBlue}, buf.Get(3, 1))
	require.Equal(t, blank, buf.Get(0, 0))

	buf.Clear()
	require.Equal(t, blank, buf.Get(3, 1))
}

func TestCellBufferWriteString(t *testing.T) {
	buf := NewCellBuffer(10, 1)
	buf.WriteString(1, 0, "A─█€", ColorWhite, ColorBlack)

	require.Equal(t, byte('A'), buf.Get(1, 0).Glyph)
	require.Equal(t, byte(196), buf.Get(2, 0).Glyph)
	require.Equal(t, byte(219), buf.Get(3, 0).Glyph)
	require.Equal(t, byte('?'), buf.Get(4, 0).Glyph)
	require.Equal(t, " A─█?", buf.Text(0))
	require.Equal(t, "", buf.Text(5))
}

func TestCP437RoundTrip(t *testing.T) {
	for code := 1; code < 256; code++ {
		r := CP437ToUnicode[code]
		if r == ' ' {
			continue
		}
		require.Equalf(t, byte(code), UnicodeToCP437(r), "code %d (%q)", code, r)
	}
	require.Equal(t, ' ', CP437ToUnicode[0])
}

func TestBoxGlyph(t *testing.T) {
	require.Equal(t, byte(218), BoxGlyph(false, true, false, true))
	require.Equal(t, byte(197), BoxGlyph(true, true, true, true))
	require.Equal(t, byte(' '), BoxGlyph(false, false, false, false))

	buf := NewCellBuffer(3, 3)
	DrawBox(buf, 0, 0, 2, 2, ColorWhite)
	require.Equal(t, "┌─┐", buf.Text(0))
	require.Equal(t, "│ │", buf.Text(1))
	require.Equal(t, "└─┘", buf.Text(2))
}

func TestColorByName(t *testing.T) {
	require.Equal(t, uint8(ColorLightRed), ColorByName("light_red"))
	require.Equal(t, uint8(ColorBrown), ColorByName("brown"))
	require.Equal(t, uint8(ColorWhite), ColorByName("chartreuse"))
}
