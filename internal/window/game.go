// Package window is the Ebitengine front end of the placement screen.
package window

import (
	"github.com/battleships-placement/battleships_placement/internal/fleet"
	"github.com/battleships-placement/battleships_placement/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Title is the window caption.
const Title = "Battleships"

const (
	cellWidth    = 16
	cellHeight   = 16
	screenWidth  = render.ScreenCols * cellWidth  // 1280
	screenHeight = render.ScreenRows * cellHeight // 720
)

// Game is the Ebitengine game struct. It owns rendering and input;
// all placement state lives in the session.
type Game struct {
	session  *fleet.Session
	renderer *GridRenderer
	buffer   *render.CellBuffer

	chars []rune // reused by AppendInputChars
}

// NewGame builds the font atlas and renderer for a session.
func NewGame(s *fleet.Session) (*Game, error) {
	atlas, err := NewFontAtlas()
	if err != nil {
		return nil, err
	}
	return &Game{
		session:  s,
		renderer: NewGridRenderer(atlas, cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(render.ScreenCols, render.ScreenRows),
	}, nil
}

// Run opens the window and blocks until the session is done.
// cellSize is the on-screen size of one cell in pixels.
func Run(g *Game, cellSize int) error {
	ebiten.SetWindowSize(render.ScreenCols*cellSize, render.ScreenRows*cellSize)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, ev := range translate(g.chars, inpututil.IsKeyJustPressed, ebiten.IsWindowBeingClosed()) {
		g.session.Handle(ev)
	}
	if g.session.Done() {
		return ebiten.Termination
	}

	if g.session.NeedsRedraw() {
		render.DrawPlacementScreen(g.buffer, g.session)
		g.session.MarkDrawn()
	}
	return nil
}

// translate turns one frame of keyboard state into session events:
// typed characters first, then editing keys, then exit requests.
func translate(chars []rune, justPressed func(ebiten.Key) bool, closing bool) []fleet.Event {
	var evs []fleet.Event
	for _, r := range chars {
		evs = append(evs, fleet.Char(r))
	}
	if justPressed(ebiten.KeyBackspace) {
		evs = append(evs, fleet.Event{Kind: fleet.EventBackspace})
	}
	if justPressed(ebiten.KeyEnter) || justPressed(ebiten.KeyNumpadEnter) {
		evs = append(evs, fleet.Event{Kind: fleet.EventEnter})
	}
	if justPressed(ebiten.KeyEscape) {
		evs = append(evs, fleet.Event{Kind: fleet.EventEscape})
	}
	if closing {
		evs = append(evs, fleet.Event{Kind: fleet.EventClose})
	}
	return evs
}

// Draw blits the cached buffer every frame; the buffer itself is only
// rebuilt in Update when the session asks for a redraw.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
