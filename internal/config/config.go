// Package config loads server configuration from environment variables.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config carries every runtime setting. Values come from the environment,
// with defaults matching the stock deployment; a .env file is loaded by the
// godotenv autoload import in main.
type Config struct {
	Port           string
	OpenAIAPIBase  string
	OpenAIAPIKey   string
	OpenAIModel    string
	TriviaInterval time.Duration
}

// Load reads the environment and returns the effective configuration.
func Load() *Config {
	v := viper.New()
	v.SetDefault("PORT", "3000")
	v.SetDefault("OPENAI_API_BASE", "https://api.openai.com/v1")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	v.SetDefault("TRIVIA_INTERVAL_SECONDS", 25)
	v.AutomaticEnv()

	return &Config{
		Port:           v.GetString("PORT"),
		OpenAIAPIBase:  v.GetString("OPENAI_API_BASE"),
		OpenAIAPIKey:   v.GetString("OPENAI_API_KEY"),
		OpenAIModel:    v.GetString("OPENAI_MODEL"),
		TriviaInterval: time.Duration(v.GetInt("TRIVIA_INTERVAL_SECONDS")) * time.Second,
	}
}
