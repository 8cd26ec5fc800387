package render

import (
	"fmt"

	"github.com/battleships-placement/battleships_placement/internal/fleet"
)

// Screen size in cells.
const (
	ScreenCols = 80
	ScreenRows = 45
)

const (
	title = "BATTLESHIPS - Fleet Deployment"

	// Board geometry: each board cell is 2 columns wide with a 1-column
	// rule, and 1 row tall with a 1-row rule.
	cellSpanX   = 3
	cellSpanY   = 2
	boardWidth  = fleet.GridSize*cellSpanX + 1 // 31
	boardHeight = fleet.GridSize*cellSpanY + 1 // 21

	// Board origins (top-left rule corner).
	playerBoardX = 4
	targetBoardX = 46
	boardY       = 5

	panelY   = 27 // roster and deployment log
	inputY   = 37 // input box top
	inputX0  = 4
	inputX1  = 70
	helpRow  = ScreenRows - 1
	shipCell = 219 // █
)

// DrawPlacementScreen redraws the whole placement screen from the session.
func DrawPlacementScreen(buf *CellBuffer, s *fleet.Session) {
	buf.Clear()

	buf.WriteString(2, 0, title, ColorWhite, ColorBlack)
	buf.WriteString(ScreenCols-len(s.Fleet.Catalog.Name)-4, 0, fmt.Sprintf("[ %s ]", s.Fleet.Catalog.Name), ColorLightCyan, ColorBlack)

	buf.WriteString(playerBoardX, 2, "Your Fleet", ColorLightCyan, ColorBlack)
	buf.WriteString(targetBoardX, 2, "Target Waters", ColorDarkGray, ColorBlack)
	drawBoard(buf, playerBoardX, boardY)
	drawBoard(buf, targetBoardX, boardY)

	for _, ship := range s.Fleet.Ships() {
		drawShip(buf, playerBoardX, boardY, ship, classColor(s.Fleet.Catalog, ship.Class))
	}

	drawRoster(buf, 4, panelY, s.Fleet)
	drawDeployLog(buf, targetBoardX, panelY, s)
	drawInputWindow(buf, s)

	buf.WriteString(2, helpRow, "Type row A-J, column 0-9, direction U/R/D/L then ENTER   BKSP: Edit   ESC: Quit", ColorDarkGray, ColorBlack)
}

// CellOrigin returns the screen position of the left half of board cell
// (row, col) on a board whose top-left rule corner is at (ox, oy).
func CellOrigin(ox, oy, row, col int) (x, y int) {
	return ox + col*cellSpanX + 1, oy + row*cellSpanY + 1
}

// PlayerCell is CellOrigin for the player's board.
func PlayerCell(row, col int) (x, y int) {
	return CellOrigin(playerBoardX, boardY, row, col)
}

// drawBoard draws the grid rules and axis labels of one board.
func drawBoard(buf *CellBuffer, ox, oy int) {
	for gy := 0; gy < boardHeight; gy++ {
		for gx := 0; gx < boardWidth; gx++ {
			onV := gx%cellSpanX == 0
			onH := gy%cellSpanY == 0
			var glyph byte
			switch {
			case onV && onH:
				glyph = BoxGlyph(gx > 0, gx < boardWidth-1, gy > 0, gy < boardHeight-1)
			case onH:
				glyph = 196 // ─
			case onV:
				glyph = 179 // │
			default:
				continue
			}
			buf.Set(ox+gx, oy+gy, glyph, ColorLightGray, ColorBlack)
		}
	}

	for i := 0; i < fleet.GridSize; i++ {
		x, y := CellOrigin(ox, oy, i, i)
		buf.Set(ox-2, y, byte(fleet.RowLetter(i)), ColorWhite, ColorBlack)
		buf.Set(x, oy-1, byte('0'+i), ColorWhite, ColorBlack)
	}
}

func drawShip(buf *CellBuffer, ox, oy int, ship fleet.Ship, clr uint8) {
	for _, c := range ship.Cells() {
		if c.Row < 0 || c.Row >= fleet.GridSize || c.Col < 0 || c.Col >= fleet.GridSize {
			continue
		}
		x, y := CellOrigin(ox, oy, c.Row, c.Col)
		buf.Set(x, y, shipCell, clr, ColorBlack)
		buf.Set(x+1, y, shipCell, clr, ColorBlack)
	}
}

// drawRoster lists the catalog with the placed ships checked off.
func drawRoster(buf *CellBuffer, x, y int, f *fleet.Fleet) {
	buf.WriteString(x, y, "--- Fleet ---", ColorLightCyan, ColorBlack)
	for i, sc := range f.Catalog.Classes {
		row := y + 1 + i
		marker, clr := "[ ]", uint8(ColorDarkGray)
		switch {
		case i < f.Len():
			marker, clr = "[x]", classColor(f.Catalog, i)
		case i == f.Len():
			marker, clr = "[>]", ColorWhite
		}
		buf.WriteString(x, row, fmt.Sprintf("%s %-16s", marker, sc.Name), clr, ColorBlack)
		for n := 0; n < sc.Length; n++ {
			buf.Set(x+21+n, row, 254, classColor(f.Catalog, i), ColorBlack) // ■
		}
	}
}

func drawDeployLog(buf *CellBuffer, x, y int, s *fleet.Session) {
	buf.WriteString(x, y, "--- Deployment Log ---", ColorLightCyan, ColorBlack)
	for i, e := range s.Log.Recent(inputY - y - 2) {
		buf.WriteString(x, y+1+i, e.Text, classColor(s.Fleet.Catalog, e.Class), ColorBlack)
	}
}

// drawInputWindow shows the prompt for the next ship and the typed input.
func drawInputWindow(buf *CellBuffer, s *fleet.Session) {
	DrawBox(buf, inputX0, inputY, inputX1, inputY+4, ColorWhite)
	buf.WriteString(inputX0+2, inputY+1, s.Prompt(), ColorWhite, ColorBlack)
	if s.Fleet.Complete() {
		return
	}
	in := "> " + s.Input.String()
	buf.WriteString(inputX0+2, inputY+3, in, ColorYellow, ColorBlack)
	if s.Input.State() != fleet.InputComplete {
		buf.Set(inputX0+2+len(in), inputY+3, '_', ColorDarkGray, ColorBlack)
	}
}

func classColor(c *fleet.Catalog, class int) uint8 {
	sc, ok := c.Class(class)
	if !ok {
		return ColorWhite
	}
	return ColorByName(sc.Color)
}
