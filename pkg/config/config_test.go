package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_GeolocationConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("GEOLOCATION_PROVIDER", "google")
	os.Setenv("GEOLOCATION_API_KEY", "test-key")
	os.Setenv("GEOLOCATION_TIMEOUT_MS", "2500")
	defer func() {
		os.Unsetenv("GEOLOCATION_PROVIDER")
		os.Unsetenv("GEOLOCATION_API_KEY")
		os.Unsetenv("GEOLOCATION_TIMEOUT_MS")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "google", cfg.Geolocation.Provider)
	assert.Equal(t, "test-key", cfg.Geolocation.APIKey)
	assert.Equal(t, 2500, cfg.Geolocation.TimeoutMs)
}

func TestLoad_Defaults(t *testing.T) {
	// Ensure env vars are cleared
	os.Unsetenv("GEOLOCATION_PROVIDER")
	os.Unsetenv("GEOLOCATION_API_KEY")
	os.Unsetenv("DB_NAME")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "mock", cfg.Geolocation.Provider)
	assert.Equal(t, "", cfg.Geolocation.APIKey)
	assert.Equal(t, "adfence", cfg.Database.Database)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "app",
		Password: "secret",
		Database: "adfence",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5433 user=app password=secret dbname=adfence sslmode=disable", cfg.DatabaseDSN())
}
