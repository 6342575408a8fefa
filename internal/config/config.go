package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DeckAPIURL  string        `env:"DECK_API_URL" envDefault:"https://deckofcardsapi.com"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	BotToken    string        `env:"BOT_TOKEN"`
}

// Load reads configuration from the environment, with .env as a fallback.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RequireBotToken fails when BOT_TOKEN is unset. Only the bot needs it.
func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is not set")
	}
	return nil
}
