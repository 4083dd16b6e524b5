package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/brokerbooks-dev/brokerbooks/internal/api"
	"github.com/brokerbooks-dev/brokerbooks/internal/cache"
	"github.com/brokerbooks-dev/brokerbooks/internal/coa"
	"github.com/brokerbooks-dev/brokerbooks/internal/config"
)

// env bundles the loaded config and API client every online command needs.
type env struct {
	cfg    *config.Config
	client *api.Client
}

func loadEnv(configPath string) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:    cfg,
		client: api.NewClient(cfg.API.BaseURL, config.Token()),
	}, nil
}

// snapshot returns the books, fetched live or loaded from the offline
// cache. Offline reports are only as fresh as the last sync.
func (e *env) snapshot(ctx context.Context, offline bool) (cache.Snapshot, error) {
	if offline {
		store, err := cache.Open(e.cfg.Cache.Path)
		if err != nil {
			return cache.Snapshot{}, err
		}
		defer store.Close()
		return store.Load()
	}

	accounts, err := e.client.ListAccounts(ctx)
	if err != nil {
		return cache.Snapshot{}, fmt.Errorf("fetching accounts: %w", err)
	}
	types, err := e.client.ListAccountTypes(ctx)
	if err != nil {
		return cache.Snapshot{}, fmt.Errorf("fetching account types: %w", err)
	}
	entries, err := e.client.ListJournalEntries(ctx)
	if err != nil {
		return cache.Snapshot{}, fmt.Errorf("fetching journal entries: %w", err)
	}
	return cache.Snapshot{
		Accounts:     accounts,
		AccountTypes: types,
		Entries:      entries,
		SyncedAt:     time.Now().UTC(),
	}, nil
}

// chart builds the chart-of-accounts service from a snapshot.
func chart(snap cache.Snapshot) *coa.Service {
	return coa.NewService(snap.Accounts, snap.AccountTypes)
}

const dateFlagFormat = "2006-01-02"

// parseDateFlag parses a YYYY-MM-DD flag, treating empty as unset.
func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateFlagFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q (want YYYY-MM-DD)", name, value)
	}
	return t, nil
}
