// Package config reads the defaults of the command line from the environment
// and an optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	MarketFile    string `env:"MARKETSIM_MARKET_FILE" envDefault:"market.txt"`
	PortfolioFile string `env:"MARKETSIM_PORTFOLIO_FILE" envDefault:"portfolio.txt"`
	Currency      string `env:"MARKETSIM_CURRENCY" envDefault:"USD"`
	Style         string `env:"MARKETSIM_STYLE" envDefault:"auto"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config error: %w", err)
	}
	return cfg, nil
}

// Level returns the slog level named by LogLevel, info by default.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warning", "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
