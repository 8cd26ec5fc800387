package fleet

import (
	"fmt"

	"github.com/rs/zerolog"
)

// EventKind identifies a front-end input event.
type EventKind uint8

const (
	EventChar      EventKind = iota // a typed character, see Event.Rune
	EventEnter                      // Enter or keypad Enter
	EventBackspace                  // delete last character
	EventEscape                     // Escape key
	EventClose                      // window or terminal closed
)

// Event is one input event delivered by a front end.
type Event struct {
	Kind EventKind
	Rune rune
}

// Char is shorthand for a typed-character event.
func Char(r rune) Event { return Event{Kind: EventChar, Rune: r} }

const deployLogSize = 8

// Session is the state of the placement screen: the fleet, the input buffer
// and the loop flags. It is owned by a single event loop.
type Session struct {
	Fleet *Fleet
	Input InputBuffer
	Log   *DeployLog

	// Optional feedback hooks, called after a submission is resolved.
	OnPlaced   func(Ship)
	OnRejected func(error)

	logger zerolog.Logger
	redraw bool
	done   bool
}

// NewSession creates a session for an empty fleet of the given catalog.
func NewSession(catalog *Catalog, logger zerolog.Logger) *Session {
	return &Session{
		Fleet:  NewFleet(catalog),
		Log:    NewDeployLog(deployLogSize),
		logger: logger,
		redraw: true,
	}
}

// Handle applies one event.
func (s *Session) Handle(ev Event) {
	switch ev.Kind {
	case EventChar:
		if s.Input.Feed(ev.Rune) {
			s.logger.Debug().Str("input", s.Input.String()).Msg("input accepted")
		}
		s.redraw = true
	case EventBackspace:
		s.Input.Backspace()
		s.redraw = true
	case EventEnter:
		if s.Input.State() == InputComplete {
			s.submit()
			s.redraw = true
		}
	case EventEscape, EventClose:
		s.done = true
	}
}

func (s *Session) submit() {
	row, col, dir, _ := s.Input.Submit()
	s.logger.Debug().
		Str("row", string(row)).
		Int("col", col).
		Str("direction", string(rune(dir))).
		Msg("parsed input")

	ship, err := s.Fleet.NextShip(row, col, dir)
	if err == nil {
		err = s.Fleet.Place(ship)
	}
	if err != nil {
		s.logger.Debug().Err(err).Msg("placement rejected")
		if s.OnRejected != nil {
			s.OnRejected(err)
		}
		return
	}

	name := s.Fleet.Catalog.Classes[ship.Class].Name
	s.logger.Info().Str("ship", name).Str("at", ship.String()).Msg("ship placed")
	s.Log.Add(fmt.Sprintf("%s deployed at %s", name, ship), ship.Class)
	if s.OnPlaced != nil {
		s.OnPlaced(ship)
	}
}

// Prompt returns the input box caption.
func (s *Session) Prompt() string {
	_, sc, ok := s.Fleet.Next()
	if !ok {
		return "All ships placed. Press ESC to exit."
	}
	return fmt.Sprintf("Enter Position for %s (e.g., A3R):", sc.Name)
}

// NeedsRedraw reports whether state changed since the last MarkDrawn.
func (s *Session) NeedsRedraw() bool { return s.redraw }

// MarkDrawn clears the redraw flag.
func (s *Session) MarkDrawn() { s.redraw = false }

// Invalidate forces a redraw, e.g. after a resize.
func (s *Session) Invalidate() { s.redraw = true }

// Done reports whether the loop should terminate.
func (s *Session) Done() bool { return s.done }
