package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// BaseURL is the backend API root, without a trailing slash.
	BaseURL string `envconfig:"BUILDMART_API_URL" default:"http://127.0.0.1:8000/api"`

	// CredentialsFile is the SQLite database holding the token pair. Empty
	// defaults to ~/.buildmart/credentials.db.
	CredentialsFile string `envconfig:"BUILDMART_CREDENTIALS_FILE"`

	// RequestRate throttles outbound requests per second. Zero disables
	// throttling.
	RequestRate float64 `envconfig:"BUILDMART_REQUEST_RATE" default:"0"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (Config, error) {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process config from environment: %w", err)
	}

	if cfg.CredentialsFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir for credentials file: %w", err)
		}
		cfg.CredentialsFile = filepath.Join(home, ".buildmart", "credentials.db")
	}

	return cfg, nil
}
