package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	envLogLevel = "NUMPROMPT_LOG_LEVEL"
	envNoColor  = "NUMPROMPT_NO_COLOR"
	envVerbose  = "NUMPROMPT_VERBOSE"
)

// Config controls logging, color and the default prompt verbosity of the CLI.
type Config struct {
	LogLevel string `env:"NUMPROMPT_LOG_LEVEL" envDefault:"info"`
	NoColor  bool   `env:"NUMPROMPT_NO_COLOR"  envDefault:"false"`
	Verbose  bool   `env:"NUMPROMPT_VERBOSE"   envDefault:"true"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		NoColor:  false,
		Verbose:  true,
	}
}

// Load reads the optional dotenv files (".env" when none are named) and then
// the process environment. Process variables win over file values.
func Load(dotenvFiles ...string) (Config, error) {
	fileEnv, err := godotenv.Read(dotenvFiles...)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read dotenv: %w", err)
		}
		fileEnv = map[string]string{}
	}

	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok {
			fileEnv[key] = value
		}
	}
	return Parse(fileEnv)
}

// Parse builds a Config from an explicit environment map.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("validate config: %s: %w", envLogLevel, err)
	}
	return nil
}

// SlogLevel maps LogLevel onto slog. Invalid levels fall back to info.
func (c Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(raw string) (slog.Level, error) {
	switch raw {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unsupported log level %q (allowed: debug, info, warn, error)", raw)
	}
}
