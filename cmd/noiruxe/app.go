package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"noiruxe.app/portfolio/backend"
	"noiruxe.app/portfolio/business/admin"
	"noiruxe.app/translation/cache"
	"noiruxe.app/translation/lang"
	"noiruxe.app/translation/provider"
	"noiruxe.app/translation/store"
)

// app holds the libraries one command invocation works with.
type app struct {
	store      store.Store
	cache      *cache.Cache
	preference *lang.Preference
	closeStore func() error
}

func openApp(ctx context.Context) (*app, error) {
	var st store.Store
	closeFn := func() error { return nil }
	if ephemeral {
		st = store.NewMemory(store.WithMaxBytes(cfg.StorageMaxBytes))
	} else {
		sqlite, err := store.OpenSQLite(cfg.StoragePath, store.WithMaxBytes(cfg.StorageMaxBytes))
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
		st, closeFn = sqlite, sqlite.Close
	}

	c := cache.New(cache.Deps{
		Provider: provider.New(cfg.TranslateEndpoint, provider.WithTimeout(cfg.TranslateTimeout)),
		Store:    st,
		Warn:     logger.Sugar().Warnw,
	})
	c.Load(ctx)
	logger.Debug("translation cache loaded", zap.Int("entries", c.Len()))

	return &app{
		store:      st,
		cache:      c,
		preference: lang.NewPreference(st),
		closeStore: closeFn,
	}, nil
}

func (a *app) Close() {
	if err := a.closeStore(); err != nil {
		logger.Warn("failed to close storage", zap.Error(err))
	}
}

func (a *app) adminBusiness() admin.Business {
	client := backend.NewClient(cfg.BackendURL,
		backend.WithStaticToken(cfg.Token),
		backend.WithTimeout(cfg.BackendTimeout),
	)
	return admin.NewAdminBusiness(client, cacheTranslator{cache: a.cache})
}

// cacheTranslator lets the admin engine fill secondary fields through the
// local cache. The cache already falls back to the source text.
type cacheTranslator struct {
	cache *cache.Cache
}

func (t cacheTranslator) TranslateBatch(ctx context.Context, texts []string, from, to string) ([]string, error) {
	return t.cache.TranslateBatch(ctx, texts, from, to), nil
}

func commandContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	d := timeout
	if d <= 0 {
		d = defaultTimeout
	}
	return context.WithTimeout(parent, d)
}
