package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Google  GoogleConfig  `yaml:"google"`
	Weather WeatherConfig `yaml:"weather"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port int    `yaml:"port" env:"SERVER_PORT" env-default:"8000"`
}

type GoogleConfig struct {
	// MapsAPIKey enables geocoding and places search. When empty the
	// gateway serves the fixed mock data instead of failing.
	MapsAPIKey string `yaml:"maps_api_key" env:"GOOGLE_MAPS_API_KEY"`
}

type WeatherConfig struct {
	APIKey  string `yaml:"api_key" env:"WEATHER_API_KEY"`
	BaseURL string `yaml:"base_url" env:"WEATHER_BASE_URL" env-default:"https://api.openweathermap.org/data/2.5"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from config.yaml and environment variables.
// Priority: Env Vars > Config File > Defaults.
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, then override with env vars. A missing
	// file falls back to env vars only; a present but unparsable file is an
	// error rather than a silent fallback.
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	return &cfg, nil
}
