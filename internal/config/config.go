// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backend selects the entity store implementation.
type Backend string

const (
	// BackendDynamoDB serves from DynamoDB tables.
	BackendDynamoDB Backend = "dynamodb"

	// BackendLocal serves from an embedded store seeded with fixtures.
	BackendLocal Backend = "local"
)

// Config holds runtime settings. Each field maps to one environment variable.
type Config struct {
	MoviesTable string // TABLE_NAME
	CastTable   string // CAST_TABLE_NAME
	RoleIndex   string // ROLE_INDEX_NAME
	Region      string // REGION
	Endpoint    string // DYNAMODB_ENDPOINT

	Backend      Backend // MOVIEAPI_BACKEND
	LocalDBPath  string  // LOCAL_DB_PATH
	FixturesPath string  // FIXTURES_PATH

	Port           string        // PORT
	LogLevel       slog.Level    // LOG_LEVEL
	LogFormat      string        // LOG_FORMAT
	StrictNotFound bool          // STRICT_NOT_FOUND
	RequestTimeout time.Duration // REQUEST_TIMEOUT
}

// Load reads a .env file from the working directory if one exists, then
// builds a Config from the environment. Variables already set in the
// environment take precedence over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup without touching the process
// environment.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		MoviesTable:  get("TABLE_NAME", "Movies"),
		CastTable:    get("CAST_TABLE_NAME", "MovieCast"),
		RoleIndex:    get("ROLE_INDEX_NAME", "roleIx"),
		Region:       get("REGION", "eu-west-1"),
		Endpoint:     get("DYNAMODB_ENDPOINT", ""),
		Backend:      Backend(strings.ToLower(get("MOVIEAPI_BACKEND", string(BackendDynamoDB)))),
		LocalDBPath:  get("LOCAL_DB_PATH", ""),
		FixturesPath: get("FIXTURES_PATH", ""),
		Port:         get("PORT", "8080"),
		LogFormat:    strings.ToLower(get("LOG_FORMAT", "json")),
	}

	switch cfg.Backend {
	case BackendDynamoDB, BackendLocal:
	default:
		return Config{}, fmt.Errorf("config: MOVIEAPI_BACKEND: unknown backend %q", cfg.Backend)
	}

	switch cfg.LogFormat {
	case "json", "text":
	default:
		return Config{}, fmt.Errorf("config: LOG_FORMAT: unknown format %q", cfg.LogFormat)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}

	strict, err := strconv.ParseBool(get("STRICT_NOT_FOUND", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("config: STRICT_NOT_FOUND: %w", err)
	}
	cfg.StrictNotFound = strict

	timeout, err := time.ParseDuration(get("REQUEST_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("config: REQUEST_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return Config{}, fmt.Errorf("config: REQUEST_TIMEOUT: negative duration %s", timeout)
	}
	cfg.RequestTimeout = timeout

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("config: PORT: %w", err)
	}

	return cfg, nil
}

// Addr is the listen address of the local HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
