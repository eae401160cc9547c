// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the API server needs at startup.
type Config struct {
	HTTPPort           string   `envconfig:"HTTP_PORT" default:":8080"`
	DatabaseType       string   `envconfig:"DB_TYPE" default:"postgres"`
	DatabaseHost       string   `envconfig:"DB_HOST" default:"localhost"`
	DatabaseUser       string   `envconfig:"DB_USER" default:"postgres"`
	DatabasePassword   string   `envconfig:"DB_PASSWORD"`
	DatabaseName       string   `envconfig:"DB_NAME" default:"palettes"`
	SSLMode            string   `envconfig:"SSL_MODE" default:"disable"`
	JwtSecret          string   `envconfig:"JWT_SECRET" default:"your-secret-key-change-this"`
	JwtAccessDuration  int      `envconfig:"JWT_ACCESS_DURATION" default:"900"`     // seconds
	JwtRefreshDuration int      `envconfig:"JWT_REFRESH_DURATION" default:"604800"` // seconds
	JwtDomain          string   `envconfig:"JWT_DOMAIN"`
	AllowedOrigins     []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	DevMode            bool     `envconfig:"DEV_MODE" default:"true"`
	LogLevel           string   `envconfig:"LOG_LEVEL" default:"info"`
	LogJSON            bool     `envconfig:"LOG_JSON" default:"false"`
	MigrationsDir      string   `envconfig:"MIGRATIONS_DIR" default:"migrations"`
	DailyPalette       bool     `envconfig:"DAILY_PALETTE" default:"true"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("error processing environment: %w", err)
	}
	return cfg, nil
}

// NewLogger builds the root logger for the given configuration.
func (c Config) NewLogger(name string) hclog.Logger {
	level := hclog.LevelFromString(c.LogLevel)
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		JSONFormat: c.LogJSON,
	})
}
