package cli

import (
	"errors"
	"fmt"

	"github.com/smokifit/smokifit/internal/config"
	"github.com/smokifit/smokifit/internal/logging"
	"github.com/smokifit/smokifit/internal/provider"
	"github.com/smokifit/smokifit/internal/store"
)

// ErrNoAPIKey is returned when a search command runs before an API key
// has been configured.
var ErrNoAPIKey = errors.New(
	"no API key configured: get a free key at https://api-ninjas.com " +
		"and run 'smokifit configure key <key>'")

// openStore opens the user database in the config directory, seeding
// the calorie ledger from the configured default goal on first run.
func openStore(cfg *config.Config) (*store.Store, error) {
	path, err := config.DatabasePath()
	if err != nil {
		return nil, err
	}
	if err := config.EnsureDir(); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}
	return store.Open(path, cfg.DailyGoal, logging.ComponentLogger(logger, "store"))
}

// newProvider builds the api-ninjas client from the configured key.
func newProvider(cfg *config.Config) (*provider.Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	client := provider.New(
		provider.DefaultBaseURL,
		cfg.APIKey,
		nil,
		logging.ComponentLogger(logger, "provider"),
	)
	return client, nil
}
