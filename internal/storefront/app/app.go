package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/time/rate"

	"github.com/buildmart/buildmart/pkg/slogx"
	"github.com/buildmart/buildmart/pkg/storesdk"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// App wires the SDK client, session and credential store for the CLI.
type App struct {
	Config  Config
	Logger  *slog.Logger
	Client  *storesdk.Client
	Session *storesdk.Session

	store *storesdk.SQLiteTokenStore
}

// New initializes the application from config.
func New(cfg Config) (*App, error) {
	logger := slogx.New(slogx.Config{
		App:     "storefront",
		Version: BuildVersion,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	if dir := filepath.Dir(cfg.CredentialsFile); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create credentials dir: %w", err)
		}
	}

	store, err := storesdk.NewSQLiteTokenStore(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	client := storesdk.NewClient(cfg.BaseURL, store)
	client.Logger = logger
	if cfg.RequestRate > 0 {
		burst := int(cfg.RequestRate)
		if burst < 1 {
			burst = 1
		}
		client.Limiter = rate.NewLimiter(rate.Limit(cfg.RequestRate), burst)
	}

	return &App{
		Config:  cfg,
		Logger:  logger,
		Client:  client,
		Session: storesdk.NewSession(client, logger),
		store:   store,
	}, nil
}

// Close releases the credential store.
func (a *App) Close() error {
	return a.store.Close()
}
