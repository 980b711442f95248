package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Dwella"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"dwella"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
		TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	}

	Verification struct {
		// CodeSecret keys the HMAC over postcard codes; raw codes are never stored.
		CodeSecret  string        `envconfig:"VERIFICATION_CODE_SECRET" default:"dev-code-secret"`
		CodeLength  int           `envconfig:"VERIFICATION_CODE_LENGTH" default:"6"`
		MaxAttempts int           `envconfig:"VERIFICATION_MAX_ATTEMPTS" default:"5"`
		Throttle    time.Duration `envconfig:"VERIFICATION_THROTTLE" default:"24h"`
		TTL         time.Duration `envconfig:"VERIFICATION_TTL" default:"720h"`
	}

	Postcard struct {
		BaseURL string `envconfig:"POSTCARD_BASE_URL"`
		Token   string `envconfig:"POSTCARD_TOKEN"`
	}

	Notify struct {
		BaseURL string `envconfig:"NOTIFY_BASE_URL"`
		Token   string `envconfig:"NOTIFY_TOKEN"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	// Postcard codes are 6-8 digits regardless of what the environment asks for.
	if cfg.Verification.CodeLength < 6 {
		cfg.Verification.CodeLength = 6
	}

	if cfg.Verification.CodeLength > 8 {
		cfg.Verification.CodeLength = 8
	}

	if cfg.Verification.MaxAttempts < 1 {
		cfg.Verification.MaxAttempts = 1
	}

	return &cfg, nil
}
