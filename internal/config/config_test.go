package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse(nil, envMap(nil), &out)
	require.NoError(t, err)
	require.False(t, exit)

	want := Defaults()
	require.Equal(t, &want, cfg)
}

func TestParseFlagsOverrideEnv(t *testing.T) {
	env := envMap(map[string]string{
		"BATTLESHIPS_FRONTEND":  "term",
		"BATTLESHIPS_LOG_LEVEL": "warn",
		"BATTLESHIPS_MUTE":      "true",
		"BATTLESHIPS_CELL_SIZE": "12",
		"BATTLESHIPS_LOG_FILE":  "/tmp/env.log",
	})

	var out bytes.Buffer
	cfg, _, err := Parse(nil, env, &out)
	require.NoError(t, err)
	require.Equal(t, FrontendTerm, cfg.Frontend)
	require.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
	require.True(t, cfg.Mute)
	require.Equal(t, 12, cfg.CellSize)
	require.Equal(t, "/tmp/env.log", cfg.LogFile)

	cfg, _, err = Parse([]string{"-frontend", "WINDOW", "-log-level", "debug", "-mute=false", "-cell-size", "24", "-fleet", "navy.json"}, env, &out)
	require.NoError(t, err)
	require.Equal(t, FrontendWindow, cfg.Frontend)
	require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	require.False(t, cfg.Mute)
	require.Equal(t, 24, cfg.CellSize)
	require.Equal(t, "navy.json", cfg.Fleet)
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-h"}, envMap(nil), &out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "fleet deployment screen")
	require.Contains(t, out.String(), "-frontend")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"unknown flag", []string{"-bogus"}, nil},
		{"bad frontend", []string{"-frontend", "web"}, nil},
		{"bad log level", []string{"-log-level", "loud"}, nil},
		{"cell too small", []string{"-cell-size", "4"}, nil},
		{"cell too large", []string{"-cell-size", "64"}, nil},
		{"extra argument", []string{"extra"}, nil},
		{"bad env bool", nil, map[string]string{"BATTLESHIPS_MUTE": "sometimes"}},
		{"bad env int", nil, map[string]string{"BATTLESHIPS_CELL_SIZE": "big"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, exit, err := Parse(tt.args, envMap(tt.env), &out)
			require.Nil(t, cfg)
			require.False(t, exit)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
		})
	}
}
