package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/freight/internal/classification"
	"github.com/Veraticus/freight/internal/common"
	"github.com/Veraticus/freight/internal/config"
	"github.com/Veraticus/freight/internal/session"
	"github.com/Veraticus/freight/internal/storage"
	"github.com/spf13/viper"
)

// loadCatalog builds the category catalog from configuration.
func loadCatalog() (*classification.Catalog, error) {
	catalog, err := config.LoadCatalog(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError("Invalid catalog configuration", err)
	}
	return catalog, nil
}

// initSessions opens the session store and returns a manager over it. The
// returned cleanup closes the store.
func initSessions(ctx context.Context) (*session.Manager, func(), error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.NewSQLiteStorage(config.DatabasePath(viper.GetViper()))
	if err != nil {
		return nil, nil, common.NewUserError("Could not open session store", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return session.NewManager(store, catalog), func() { _ = store.Close() }, nil
}
