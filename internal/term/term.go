// Package term is the terminal front end of the placement screen. It runs a
// blocking tcell event loop and blits the shared cell buffer to the terminal.
package term

import (
	"github.com/battleships-placement/battleships_placement/internal/fleet"
	"github.com/battleships-placement/battleships_placement/internal/render"
	"github.com/gdamore/tcell/v2"
)

// Open creates and initializes the terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// Loop drives a session from terminal events.
type Loop struct {
	screen  tcell.Screen
	session *fleet.Session
	buffer  *render.CellBuffer
	styles  [16][16]tcell.Style // [fg][bg]
}

// NewLoop binds a session to an initialized screen.
func NewLoop(screen tcell.Screen, s *fleet.Session) *Loop {
	l := &Loop{
		screen:  screen,
		session: s,
		buffer:  render.NewCellBuffer(render.ScreenCols, render.ScreenRows),
	}
	for fg := range l.styles {
		for bg := range l.styles[fg] {
			l.styles[fg][bg] = tcell.StyleDefault.
				Foreground(paletteColor(uint8(fg))).
				Background(paletteColor(uint8(bg)))
		}
	}
	return l
}

// Run blocks on terminal events until the session is done. The screen is
// redrawn only when the session changed and no further events are queued.
func (l *Loop) Run() {
	l.screen.HideCursor()
	for !l.session.Done() {
		ev := l.screen.PollEvent()
		if ev == nil {
			// screen finalized
			return
		}
		l.handle(ev)

		if l.session.NeedsRedraw() && !l.screen.HasPendingEvent() {
			l.draw()
		}
	}
}

func (l *Loop) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if fe, ok := translate(ev); ok {
			l.session.Handle(fe)
		}
	case *tcell.EventResize:
		l.screen.Sync()
		l.session.Invalidate()
	}
}

// translate maps a tcell key event to a session event.
func translate(ev *tcell.EventKey) (fleet.Event, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return fleet.Char(ev.Rune()), true
	case tcell.KeyEnter:
		return fleet.Event{Kind: fleet.EventEnter}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return fleet.Event{Kind: fleet.EventBackspace}, true
	case tcell.KeyEscape:
		return fleet.Event{Kind: fleet.EventEscape}, true
	case tcell.KeyCtrlC:
		return fleet.Event{Kind: fleet.EventClose}, true
	}
	return fleet.Event{}, false
}

func (l *Loop) draw() {
	render.DrawPlacementScreen(l.buffer, l.session)
	l.session.MarkDrawn()

	l.screen.Clear()
	for y := 0; y < l.buffer.Rows; y++ {
		for x := 0; x < l.buffer.Cols; x++ {
			c := l.buffer.Get(x, y)
			l.screen.SetContent(x, y, render.CP437ToUnicode[c.Glyph], nil, l.styles[c.FG&15][c.BG&15])
		}
	}
	l.screen.Show()
}

func paletteColor(idx uint8) tcell.Color {
	c := render.Palette[idx&15]
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
