package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	GoogleMapsAPIKey   string `mapstructure:"GOOGLE_MAPS_API_KEY"`
	ServerPort         string `mapstructure:"SERVER_PORT"`
	Env                string `mapstructure:"ENV"`
	DatabaseURL        string `mapstructure:"DATABASE_URL"`
	PlacesRadiusMeters uint   `mapstructure:"PLACES_RADIUS_METERS"`
	PlacesType         string `mapstructure:"PLACES_TYPE"`
	PlacesLanguage     string `mapstructure:"PLACES_LANGUAGE"`
}

var defaults = map[string]any{
	"GOOGLE_MAPS_API_KEY":  "",
	"SERVER_PORT":          "8080",
	"ENV":                  "development",
	"DATABASE_URL":         "",
	"PLACES_RADIUS_METERS": 2000,
	"PLACES_TYPE":          "tourist_attraction",
	"PLACES_LANGUAGE":      "pl",
}

// Load reads configuration from the process environment.
// Values in an optional .env file are loaded first and never override
// variables that are already set.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// A missing .env is normal outside local development.
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	cfg.GoogleMapsAPIKey = strings.TrimSpace(cfg.GoogleMapsAPIKey)
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)

	if cfg.PlacesRadiusMeters == 0 || cfg.PlacesRadiusMeters > 50000 {
		return Config{}, fmt.Errorf("load config: PLACES_RADIUS_METERS must be between 1 and 50000, got %d", cfg.PlacesRadiusMeters)
	}

	return cfg, nil
}
