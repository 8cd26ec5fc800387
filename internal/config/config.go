// Package config parses command-line flags and BATTLESHIPS_* environment
// variables into the runtime configuration.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Front ends.
const (
	FrontendWindow = "window"
	FrontendTerm   = "term"
)

const (
	minCellSize = 8
	maxCellSize = 32
)

// ExitError carries the process exit code for a configuration failure.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Config holds everything needed to start the placement screen.
type Config struct {
	Frontend string
	LogLevel zerolog.Level
	LogFile  string // empty: stderr for window, discarded for term
	Mute     bool
	CellSize int // pixels per cell in the window front end
	Fleet    string
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Frontend: FrontendWindow,
		LogLevel: zerolog.InfoLevel,
		CellSize: 16,
		Fleet:    "",
	}
}

// LoadDotEnv loads a .env file from the working directory if present.
// Variables already set in the environment win.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Parse builds a Config from args, with env supplying the defaults.
// It returns shouldExit=true when help was requested.
func Parse(args []string, env func(string) string, output io.Writer) (*Config, bool, error) {
	if env == nil {
		env = os.Getenv
	}
	def := Defaults()

	fs := flag.NewFlagSet("battleships", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
Battleships - fleet deployment screen.

Usage:
  battleships [options]

Type a row letter (A-J), a column digit (0-9) and a direction (U/R/D/L),
then press Enter to place the next ship. Escape quits.

Options:
`)
		fs.PrintDefaults()
	}

	frontend := fs.String("frontend", envOr(env, "BATTLESHIPS_FRONTEND", def.Frontend), "Front end: 'window' or 'term'.")
	logLevel := fs.String("log-level", envOr(env, "BATTLESHIPS_LOG_LEVEL", def.LogLevel.String()), "Log level: 'trace', 'debug', 'info', 'warn', 'error'.")
	logFile := fs.String("log-file", envOr(env, "BATTLESHIPS_LOG_FILE", def.LogFile), "Write logs to this file.")
	fleetFile := fs.String("fleet", envOr(env, "BATTLESHIPS_FLEET", def.Fleet), "Load the ship catalog from this JSON file instead of the built-in one.")

	muteDefault, err := envBool(env, "BATTLESHIPS_MUTE", def.Mute)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	mute := fs.Bool("mute", muteDefault, "Disable sound cues.")

	cellDefault, err := envInt(env, "BATTLESHIPS_CELL_SIZE", def.CellSize)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	cellSize := fs.Int("cell-size", cellDefault, "Window cell size in pixels (8-32).")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	cfg := &Config{
		Frontend: strings.ToLower(*frontend),
		LogFile:  *logFile,
		Mute:     *mute,
		CellSize: *cellSize,
		Fleet:    *fleetFile,
	}
	if cfg.Frontend != FrontendWindow && cfg.Frontend != FrontendTerm {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid frontend %q: must be %q or %q", *frontend, FrontendWindow, FrontendTerm)}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(*logLevel))
	if err != nil || *logLevel == "" {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid log level %q", *logLevel)}
	}
	cfg.LogLevel = lvl
	if cfg.CellSize < minCellSize || cfg.CellSize > maxCellSize {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("cell size %d outside %d-%d", cfg.CellSize, minCellSize, maxCellSize)}
	}
	return cfg, false, nil
}

func envOr(env func(string) string, key, fallback string) string {
	if v := env(key); v != "" {
		return v
	}
	return fallback
}

func envBool(env func(string) string, key string, fallback bool) (bool, error) {
	v := env(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func envInt(env func(string) string, key string, fallback int) (int, error) {
	v := env(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
