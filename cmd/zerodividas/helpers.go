package main

import (
	"context"
	"fmt"

	"github.com/zerodividas/zerodividas/internal/common"
	"github.com/zerodividas/zerodividas/internal/config"
	"github.com/zerodividas/zerodividas/internal/seed"
	"github.com/zerodividas/zerodividas/internal/storage"
	"github.com/zerodividas/zerodividas/internal/store"
)

// openStore loads the persisted snapshot and wires the store to the
// SQLite persister and the demo seeder. The returned cleanup closes the
// database and must be called before the command exits.
func openStore(ctx context.Context) (*store.Store, func(), error) {
	st, err := storage.NewSQLiteStore(config.DatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	cleanup := func() { _ = st.Close() }

	snap, found, err := st.Load(ctx)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to load saved state: %w", err)
	}

	opts := []store.Option{
		store.WithSeeder(seed.Generate),
		store.WithDefaultCategories(seed.DefaultCategories()),
	}
	if found {
		opts = append(opts, store.WithSnapshot(snap))
	}

	return store.New(st, opts...), cleanup, nil
}

// requireAuth guards commands that only make sense inside a session.
func requireAuth(s *store.Store) error {
	if !s.IsAuthenticated() {
		return common.NewUserError(
			"Faça login primeiro com 'zerodividas login'",
			common.ErrNotAuthenticated,
		)
	}
	return nil
}
