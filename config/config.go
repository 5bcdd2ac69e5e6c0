package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds everything the client needs to talk to the backend.
// All values come from the environment (optionally via a .env file);
// command-line flags may override BackendURL after loading.
type Config struct {
	BackendURL     string        `env:"BACKEND_URL" envDefault:"http://localhost:8000"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	ArticleLimit   int           `env:"ARTICLE_LIMIT" envDefault:"20"`
	LogFile        string        `env:"LOG_FILE" envDefault:"newshub.log"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Categories the backend's news provider understands. The empty entry
// means "no filter"; the list is cycled by the category key in the TUI.
var Categories = []string{
	"",
	"general",
	"business",
	"technology",
	"science",
	"health",
	"sports",
	"entertainment",
}

// NextCategory returns the category following current in the cycle.
// Unknown values reset to the start of the list.
func NextCategory(current string) string {
	for i, c := range Categories {
		if c == current {
			return Categories[(i+1)%len(Categories)]
		}
	}
	return Categories[0]
}

// Load reads the .env file (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.ArticleLimit <= 0 {
		return Config{}, fmt.Errorf("ARTICLE_LIMIT must be positive, got %d", cfg.ArticleLimit)
	}

	return cfg, nil
}
