package window

import (
	"image/color"

	"github.com/battleships-placement/battleships_placement/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// GridRenderer blits a CellBuffer onto an Ebitengine image, one atlas glyph
// per cell scaled to the cell size.
type GridRenderer struct {
	Atlas *FontAtlas
	CellW int
	CellH int

	pixel *ebiten.Image // 1x1 white, tinted for cell backgrounds
	op    ebiten.DrawImageOptions
}

// NewGridRenderer creates a renderer for cells of cellW x cellH pixels.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &GridRenderer{Atlas: atlas, CellW: cellW, CellH: cellH, pixel: pixel}
}

// Draw paints the whole buffer over a black screen.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *render.CellBuffer) {
	screen.Fill(render.Palette[render.ColorBlack])
	for i, c := range buf.Cells {
		r.drawCell(screen, i%buf.Cols, i/buf.Cols, c)
	}
}

// drawCell paints the background (unless black) and the glyph (unless blank)
// of the cell at column x, row y.
func (r *GridRenderer) drawCell(screen *ebiten.Image, x, y int, c render.Cell) {
	px, py := float64(x*r.CellW), float64(y*r.CellH)

	if c.BG != render.ColorBlack {
		r.tinted(px, py, float64(r.CellW), float64(r.CellH), c.BG)
		screen.DrawImage(r.pixel, &r.op)
	}
	if c.Glyph == ' ' || c.Glyph == 0 {
		return
	}
	r.tinted(px, py, float64(r.CellW)/GlyphWidth, float64(r.CellH)/GlyphHeight, c.FG)
	screen.DrawImage(r.Atlas.Glyph(c.Glyph), &r.op)
}

// tinted resets the shared draw options to a scale, offset and palette tint.
func (r *GridRenderer) tinted(px, py, sx, sy float64, idx uint8) {
	r.op = ebiten.DrawImageOptions{}
	r.op.GeoM.Scale(sx, sy)
	r.op.GeoM.Translate(px, py)
	r.op.ColorScale.ScaleWithColor(render.Palette[idx&15])
}
