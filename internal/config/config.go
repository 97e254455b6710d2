package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	Env           string
	CORSOrigins   []string
}

// Load binds environment variables into a Config, applying defaults.
// MONGO_URI and JWT_SECRET are required; startup fails without them.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("API_PORT", "8080")
	v.SetDefault("MONGO_DATABASE", "buildingdb")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "*")

	cfg := Config{
		Port:          v.GetString("API_PORT"),
		MongoURI:      v.GetString("MONGO_URI"),
		MongoDatabase: v.GetString("MONGO_DATABASE"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		Env:           v.GetString("ENV"),
		CORSOrigins:   strings.Split(v.GetString("CORS_ORIGINS"), ","),
	}

	if cfg.MongoURI == "" {
		return Config{}, errors.New("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

// IsProduction reports whether the server runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
