package render

// BoxChars maps CP437 codes to single-line box connection flags: {left, right, top, bottom}.
var BoxChars = map[byte][4]bool{
	179: {false, false, true, true}, // │
	180: {true, false, true, true},  // ┤
	191: {true, false, false, true}, // ┐
	192: {false, true, true, false}, // └
	193: {true, true, true, false},  // ┴
	194: {true, true, false, true},  // ┬
	195: {false, true, true, true},  // ├
	196: {true, true, false, false}, // ─
	197: {true, true, true, true},   // ┼
	217: {true, false, true, false}, // ┘
	218: {false, true, false, true}, // ┌
}

var boxByFlags = func() map[[4]bool]byte {
	m := make(map[[4]bool]byte, len(BoxChars))
	for code, f := range BoxChars {
		m[f] = code
	}
	return m
}()

// BoxGlyph returns the box-drawing code joining the given sides,
// or a space if no single-line glyph connects them.
func BoxGlyph(left, right, top, bottom bool) byte {
	if code, ok := boxByFlags[[4]bool{left, right, top, bottom}]; ok {
		return code
	}
	return ' '
}

// DrawBox outlines the rectangle spanning (x0, y0)-(x1, y1) inclusive.
func DrawBox(buf *CellBuffer, x0, y0, x1, y1 int, fg uint8) {
	for x := x0 + 1; x < x1; x++ {
		buf.Set(x, y0, 196, fg, ColorBlack)
		buf.Set(x, y1, 196, fg, ColorBlack)
	}
	for y := y0 + 1; y < y1; y++ {
		buf.Set(x0, y, 179, fg, ColorBlack)
		buf.Set(x1, y, 179, fg, ColorBlack)
	}
	buf.Set(x0, y0, 218, fg, ColorBlack)
	buf.Set(x1, y0, 191, fg, ColorBlack)
	buf.Set(x0, y1, 192, fg, ColorBlack)
	buf.Set(x1, y1, 217, fg, ColorBlack)
}
