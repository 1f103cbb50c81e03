// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds every process-level setting. It is loaded once in main and
// injected; packages never read the environment themselves.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	JWTSecret     string
	JWTExpiration time.Duration

	// TaxonomyPolicy selects the provisioning policy for the whole process:
	// "skip" or "reset". It is a deployment-time decision, never per request.
	TaxonomyPolicy string
}

// Load reads configuration from the environment, applying defaults for
// everything except credentials.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("JWT_EXPIRATION", "1h")
	v.SetDefault("TAXONOMY_POLICY", "skip")

	cfg := &Config{
		Port:           v.GetString("PORT"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		RedisHost:      v.GetString("REDIS_HOST"),
		RedisPort:      v.GetString("REDIS_PORT"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTExpiration:  v.GetDuration("JWT_EXPIRATION"),
		TaxonomyPolicy: v.GetString("TAXONOMY_POLICY"),
	}

	if cfg.TaxonomyPolicy != "skip" && cfg.TaxonomyPolicy != "reset" {
		return nil, fmt.Errorf("invalid TAXONOMY_POLICY %q: must be \"skip\" or \"reset\"", cfg.TaxonomyPolicy)
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// RedisAddr returns the host:port address of the Redis server.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}
