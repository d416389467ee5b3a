// Package config loads arcade settings: built-in defaults, then an optional
// YAML file, then ARCADE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ARCADE_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full arcade configuration.
type Config struct {
	Seed      int64  `yaml:"seed" env:"SEED"`             // 0 picks a random seed
	StartGame string `yaml:"start_game" env:"START_GAME"` // open this game instead of the picker
	Log       Log    `yaml:"log" envPrefix:"LOG_"`
	Server    Server `yaml:"server" envPrefix:"SERVER_"`
	Wordle    Wordle `yaml:"wordle" envPrefix:"WORDLE_"`
}

type Log struct {
	Level string `yaml:"level" env:"LEVEL"`
	Path  string `yaml:"path" env:"PATH"` // empty: discard for the TUI, stderr for the server
}

type Server struct {
	Port        int           `yaml:"port" env:"PORT"`
	HostKey     string        `yaml:"host_key" env:"HOST_KEY"`
	MaxSessions int           `yaml:"max_sessions" env:"MAX_SESSIONS"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT"`
}

type Wordle struct {
	// Reconcile scores repeated letters against how often they occur in
	// the answer.
	Reconcile bool `yaml:"reconcile" env:"RECONCILE"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: Log{Level: "info"},
		Server: Server{
			Port:        2222,
			HostKey:     "server_host_key",
			MaxSessions: 32,
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// Load reads path (if not empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	return load(path, nil)
}

// load is Load with an explicit environment; nil means the process's.
func load(path string, environ map[string]string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once. Each one wraps ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: server.port %d out of range", ErrInvalid, c.Server.Port))
	}
	if c.Server.HostKey == "" {
		errs = append(errs, fmt.Errorf("%w: server.host_key is empty", ErrInvalid))
	}
	if c.Server.MaxSessions < 1 {
		errs = append(errs, fmt.Errorf("%w: server.max_sessions must be at least 1", ErrInvalid))
	}
	if c.Server.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: server.idle_timeout is negative", ErrInvalid))
	}
	return errors.Join(errs...)
}
