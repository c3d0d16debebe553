package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Supported DB_DRIVER values
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the service settings read from the environment
type Config struct {
	Port           string  `env:"PORT,default=8080"`
	DBDriver       string  `env:"DB_DRIVER,default=memory"`
	DBDSN          string  `env:"DB_DSN"`
	LogLevel       string  `env:"LOG_LEVEL,default=info"`
	StatusSchedule string  `env:"STATUS_SCHEDULE,default=@every 1m"`
	BidRateLimit   float64 `env:"BID_RATE_LIMIT,default=20"`
	BidRateBurst   int     `env:"BID_RATE_BURST,default=40"`
	SeedDemoData   bool    `env:"SEED_DEMO_DATA,default=false"`
}

// Load reads envFile (when it exists) into the environment and decodes the
// configuration. Variables already set take precedence over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c Config) validate() error {
	switch c.DBDriver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if c.DBDSN == "" {
			return fmt.Errorf("DB_DSN is required for driver %s", c.DBDriver)
		}
	default:
		return fmt.Errorf("DB_DRIVER must be memory, sqlite or postgres, got %q", c.DBDriver)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if c.BidRateLimit <= 0 {
		return fmt.Errorf("BID_RATE_LIMIT must be positive")
	}
	if c.BidRateBurst <= 0 {
		return fmt.Errorf("BID_RATE_BURST must be positive")
	}
	return nil
}
