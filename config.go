package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment; godotenv/autoload in main.go
// fills the environment from a .env file first.
type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	DBPath       string        `env:"DB_PATH" envDefault:"portfolio.db"`
	ProjectsFile string        `env:"PROJECTS_FILE"` // empty = built-in catalog
	StaticDir    string        `env:"STATIC_DIR" envDefault:"./static"`
	ImagesDir    string        `env:"IMAGES_DIR" envDefault:"./images"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SessionLimit int           `env:"SESSION_LIMIT" envDefault:"10000"`

	SMTP  SMTPConfig  `envPrefix:"SMTP_"`
	Admin AdminConfig `envPrefix:"ADMIN_"`

	// ToEmail is where contact form messages are delivered.
	ToEmail string `env:"TO_EMAIL" envDefault:"contact@example.com"`
}

type SMTPConfig struct {
	Host string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"PORT" envDefault:"587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
}

type AdminConfig struct {
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// LoadConfig parses the process environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.SessionLimit <= 0 {
		return fmt.Errorf("SESSION_LIMIT must be positive")
	}
	return nil
}
