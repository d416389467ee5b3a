package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arcade.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg, err := load("", map[string]string{})
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileThenEnvironment(t *testing.T) {
	path := writeFile(t, `
seed: 7
start_game: wordle
log:
  level: debug
server:
  port: 2300
  idle_timeout: 5m
wordle:
  reconcile: true
`)
	cfg, err := load(path, map[string]string{
		"ARCADE_SERVER_PORT":         "2400",
		"ARCADE_SERVER_MAX_SESSIONS": "4",
		"ARCADE_LOG_PATH":            "/tmp/arcade.log",
	})
	require.NoError(t, err)

	want := Default()
	want.Seed = 7
	want.StartGame = "wordle"
	want.Log = Log{Level: "debug", Path: "/tmp/arcade.log"}
	want.Server.Port = 2400
	want.Server.MaxSessions = 4
	want.Server.IdleTimeout = 5 * time.Minute
	want.Wordle.Reconcile = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "nope.yaml"), map[string]string{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := load(writeFile(t, "server: [1, 2"), map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadBadEnvironment(t *testing.T) {
	_, err := load("", map[string]string{"ARCADE_SEED": "lots"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too big", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"no host key", func(c *Config) { c.Server.HostKey = "" }, "server.host_key"},
		{"no sessions", func(c *Config) { c.Server.MaxSessions = 0 }, "server.max_sessions"},
		{"negative idle", func(c *Config) { c.Server.IdleTimeout = -time.Second }, "server.idle_timeout"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = -1
	cfg.Log.Level = "?"
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "log.level")
}
