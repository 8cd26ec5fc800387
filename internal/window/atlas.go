package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/battleships-placement/battleships_placement/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// FontAtlas holds the CP437 glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas generates a CP437 font atlas.
// ASCII characters (32-126) are rendered with basicfont.Face7x13;
// box-drawing and block characters are drawn by hand.
func NewFontAtlas() (*FontAtlas, error) {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		cx := (code % AtlasCols) * GlyphWidth
		cy := (code / AtlasCols) * GlyphHeight
		r := render.CP437ToUnicode[code]

		if r >= 32 && r <= 126 {
			if _, ok := face.GlyphAdvance(r); !ok {
				return nil, fmt.Errorf("font has no glyph for %q", r)
			}
			drawFontGlyph(img, face, cx, cy, r)
			continue
		}
		if f, ok := render.BoxChars[byte(code)]; ok {
			drawBoxGlyph(img, cx, cy, f[0], f[1], f[2], f[3])
			continue
		}
		drawBlockGlyph(img, cx, cy, byte(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 256; code++ {
		x := (code % AtlasCols) * GlyphWidth
		y := (code / AtlasCols) * GlyphHeight
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a, nil
}

// Glyph returns the cached sub-image for a CP437 character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// drawFontGlyph renders one 7x13 ASCII glyph centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// drawBoxGlyph draws a single-line box-drawing character, 2 pixels wide.
func drawBoxGlyph(img *image.NRGBA, cellX, cellY int, left, right, top, bottom bool) {
	w := color.NRGBA{255, 255, 255, 255}
	cx := cellX + 7
	cy := cellY + 7

	if left {
		fillRect(img, cellX, cy, cx+2, cy+2, w)
	}
	if right {
		fillRect(img, cx, cy, cellX+GlyphWidth, cy+2, w)
	}
	if top {
		fillRect(img, cx, cellY, cx+2, cy+2, w)
	}
	if bottom {
		fillRect(img, cx, cy, cx+2, cellY+GlyphHeight, w)
	}
}

// drawBlockGlyph draws the block and shade characters used on screen.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	w := color.NRGBA{255, 255, 255, 255}

	switch code {
	case 176, 177, 178: // ░ ▒ ▓
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				on := false
				switch code {
				case 176:
					on = (x+y)%4 == 0
				case 177:
					on = (x+y)%2 == 0
				case 178:
					on = (x+y)%4 != 0
				}
				if on {
					img.SetNRGBA(cellX+x, cellY+y, w)
				}
			}
		}
	case 219: // █
		fillRect(img, cellX, cellY, cellX+GlyphWidth, cellY+GlyphHeight, w)
	case 220: // ▄
		fillRect(img, cellX, cellY+GlyphHeight/2, cellX+GlyphWidth, cellY+GlyphHeight, w)
	case 221: // ▌
		fillRect(img, cellX, cellY, cellX+GlyphWidth/2, cellY+GlyphHeight, w)
	case 222: // ▐
		fillRect(img, cellX+GlyphWidth/2, cellY, cellX+GlyphWidth, cellY+GlyphHeight, w)
	case 223: // ▀
		fillRect(img, cellX, cellY, cellX+GlyphWidth, cellY+GlyphHeight/2, w)
	case 254: // ■
		fillRect(img, cellX+4, cellY+4, cellX+12, cellY+12, w)
	}
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
