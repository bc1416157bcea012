package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("DATABASE_URL", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Contains(t, cfg.Database.URL, "grocery_inventory")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9091")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/grocery?sslmode=disable")

	cfg := Load()

	assert.Equal(t, "9091", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, "postgres://app:secret@db:5432/grocery?sslmode=disable", cfg.Database.URL)
}
