package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, time.Hour, cfg.JWTExpiration)
	assert.Equal(t, "skip", cfg.TaxonomyPolicy)
}

func TestLoad_InvalidTaxonomyPolicy(t *testing.T) {
	t.Setenv("TAXONOMY_POLICY", "sometimes")

	_, err := Load()
	assert.Error(t, err, "should reject unknown policy names")
}

func TestLoad_ResetPolicy(t *testing.T) {
	t.Setenv("TAXONOMY_POLICY", "reset")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "reset", cfg.TaxonomyPolicy)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.example.com",
		DBPort:     "5432",
		DBUser:     "pantry",
		DBPassword: "secret",
		DBName:     "pantry",
	}

	assert.Equal(t,
		"host=db.example.com port=5432 user=pantry password=secret dbname=pantry sslmode=disable",
		cfg.DSN())
}

func TestConfig_RedisAddr(t *testing.T) {
	cfg := &Config{RedisHost: "cache.example.com", RedisPort: "6379"}

	assert.Equal(t, "cache.example.com:6379", cfg.RedisAddr())
}
