// Package app wires configuration, logging, sound and a front end around a
// placement session.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/battleships-placement/battleships_placement/assets"
	"github.com/battleships-placement/battleships_placement/internal/config"
	"github.com/battleships-placement/battleships_placement/internal/fleet"
	"github.com/battleships-placement/battleships_placement/internal/sound"
	"github.com/battleships-placement/battleships_placement/internal/term"
	"github.com/battleships-placement/battleships_placement/internal/window"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitError reports a required resource that could not be set up.
type InitError struct {
	Resource string
	Err      error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("Couldn't initialize %s", e.Resource)
}

func (e *InitError) Unwrap() error { return e.Err }

// Run starts the configured front end and blocks until the player quits.
func Run(cfg *config.Config) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return &InitError{Resource: "log file", Err: err}
	}
	defer closeLog()
	log.Logger = logger

	catalog, err := loadCatalog(cfg.Fleet)
	if err != nil {
		return &InitError{Resource: "catalog", Err: err}
	}
	logger.Debug().Str("catalog", catalog.Name).Int("classes", catalog.Len()).Msg("catalog loaded")

	session := fleet.NewSession(catalog, logger)

	player, err := sound.NewPlayer(cfg.Mute)
	if err != nil {
		logger.Warn().Err(err).Msg("sound disabled")
	}
	defer player.Close()
	wireCues(session, player)

	logger.Info().Str("frontend", cfg.Frontend).Msg("starting")
	switch cfg.Frontend {
	case config.FrontendTerm:
		screen, err := term.Open()
		if err != nil {
			return &InitError{Resource: "screen", Err: err}
		}
		defer screen.Fini()
		term.NewLoop(screen, session).Run()
	default:
		g, err := window.NewGame(session)
		if err != nil {
			return &InitError{Resource: "font", Err: err}
		}
		if err := window.Run(g, cfg.CellSize); err != nil {
			return &InitError{Resource: "display", Err: err}
		}
	}

	logger.Info().Int("placed", session.Fleet.Len()).Int("total", catalog.Len()).Msg("exiting")
	return nil
}

// newLogger builds the zerolog logger. The terminal front end owns the tty,
// so without a log file its logs are discarded.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	var out io.Writer
	closeFn := func() {}

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closeFn, err
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case cfg.Frontend == config.FrontendTerm:
		return zerolog.Nop(), closeFn, nil
	default:
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	logger := zerolog.New(out).Level(cfg.LogLevel).With().Timestamp().Logger()
	return logger, closeFn, nil
}

func loadCatalog(path string) (*fleet.Catalog, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = assets.Fleets.ReadFile(assets.DefaultFleet)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return fleet.LoadCatalog(data)
}

// cuePlayer is the part of sound.Player the session hooks need.
type cuePlayer interface {
	Play(sound.Cue)
}

// wireCues hooks feedback tones to the session. The last ship of the
// catalog plays the fleet-ready cue instead of the placed cue.
func wireCues(s *fleet.Session, p cuePlayer) {
	s.OnPlaced = func(fleet.Ship) {
		if s.Fleet.Complete() {
			p.Play(sound.CueFleetReady)
			return
		}
		p.Play(sound.CuePlaced)
	}
	s.OnRejected = func(error) {
		p.Play(sound.CueRejected)
	}
}
