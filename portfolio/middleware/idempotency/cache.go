package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"noiruxe.app/portfolio/model"
)

var Cluster = cache.NewCluster("portfolio-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Entries holds one entry per endpoint and client key for a day.
var Entries = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Endpoint/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
