package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Family   FamilyConfig
	Parser   ParserConfig
	Media    MediaConfig
	Sync     SyncConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string        `env:"SERVER_PORT" envDefault:"8080"`
	Env            string        `env:"SERVER_ENV" envDefault:"development"`
	ReadTimeout    time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout   time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Host      string `env:"DB_HOST" envDefault:"localhost"`
	Port      string `env:"DB_PORT" envDefault:"8000"`
	Namespace string `env:"DB_NAMESPACE" envDefault:"meowhome"`
	Database  string `env:"DB_DATABASE" envDefault:"main"`
	User      string `env:"DB_USER" envDefault:"root"`
	Password  string `env:"DB_PASSWORD" envDefault:"root"`
}

// FamilyConfig identifies the household this instance serves and where
// the device identity file lives.
type FamilyConfig struct {
	ID           string `env:"FAMILY_ID" envDefault:"demo-family"`
	IdentityPath string `env:"IDENTITY_PATH" envDefault:"./data/identity.yaml"`
}

// ParserConfig holds magic input parser settings. An empty API key
// disables the feature.
type ParserConfig struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	BaseURL      string `env:"GEMINI_BASE_URL"`
}

// MediaConfig holds photo binary storage settings
type MediaConfig struct {
	Dir       string `env:"MEDIA_DIR" envDefault:"./data/media"`
	BaseURL   string `env:"MEDIA_BASE_URL" envDefault:"/media"`
	SweepCron string `env:"MEDIA_SWEEP_CRON" envDefault:"0 3 * * *"`
}

// SyncConfig holds realtime sync settings
type SyncConfig struct {
	PollInterval time.Duration `env:"SYNC_POLL_INTERVAL" envDefault:"2s"`
	ReadyTimeout time.Duration `env:"READY_TIMEOUT" envDefault:"1s"`
	RefreshCron  string        `env:"SYNC_REFRESH_CRON" envDefault:"*/15 * * * *"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks configuration consistency and joins all problems into
// one error so operators fix everything in one pass.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server port is required"))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server read timeout must be positive"))
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server write timeout must be positive"))
	}
	if c.Family.ID == "" {
		errs = append(errs, errors.New("family id is required"))
	}
	if c.Family.IdentityPath == "" {
		errs = append(errs, errors.New("identity path is required"))
	}
	if c.Sync.PollInterval <= 0 {
		errs = append(errs, errors.New("sync poll interval must be positive"))
	}
	if c.Sync.ReadyTimeout <= 0 {
		errs = append(errs, errors.New("ready timeout must be positive"))
	}
	if c.Media.Dir == "" {
		errs = append(errs, errors.New("media dir is required"))
	}

	return errors.Join(errs...)
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}
