package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 10000, cfg.SessionLimit)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.Empty(t, cfg.ProjectsFile)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PROJECTS_FILE", "/etc/portfolio/projects.yaml")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("ADMIN_USERNAME", "root")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/etc/portfolio/projects.yaml", cfg.ProjectsFile)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "me@example.com", cfg.SMTP.User)
	assert.Equal(t, "root", cfg.Admin.Username)
}

func TestLoadConfigBadDuration(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Port: "8080", DBPath: "x.db", SessionTTL: time.Minute, SessionLimit: 10}
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing db path", func(c *Config) { c.DBPath = "" }, true},
		{"zero ttl", func(c *Config) { c.SessionTTL = 0 }, true},
		{"negative ttl", func(c *Config) { c.SessionTTL = -time.Second }, true},
		{"zero session limit", func(c *Config) { c.SessionLimit = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
