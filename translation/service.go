package translation

import (
	"context"
	"time"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"github.com/go-playground/validator/v10"

	"noiruxe.app/translation/cache"
	"noiruxe.app/translation/provider"
	"noiruxe.app/translation/store"
)

var translationDB = sqldb.NewDatabase("translation", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

// translationCache is the part of *cache.Cache the endpoints use.
type translationCache interface {
	Translate(ctx context.Context, text, from, to string) string
	TranslateBatch(ctx context.Context, texts []string, from, to string) []string
	Clear(ctx context.Context) error
	Len() int
}

//encore:service
type Service struct {
	cache translationCache
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(translationDB)

	rlog.Info("initializing translation store", "max_bytes", cfg.StorageMaxBytes())
	st := store.NewPostgres(pgxdb, store.WithMaxBytes(cfg.StorageMaxBytes()))

	client := provider.New(cfg.Endpoint(), provider.WithTimeout(time.Duration(cfg.TimeoutSeconds())*time.Second))

	c := cache.New(cache.Deps{
		Provider: client,
		Store:    st,
		Warn:     rlog.Warn,
	})
	c.Load(context.Background())
	rlog.Info("translation cache loaded", "entries", c.Len())

	return &Service{cache: c}, nil
}
