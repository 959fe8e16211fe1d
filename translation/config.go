package translation

import "encore.dev/config"

type Config struct {
	// Endpoint is the machine-translation URL.
	Endpoint config.String
	// TimeoutSeconds bounds one provider request.
	TimeoutSeconds config.Int
	// StorageMaxBytes is the quota of the persisted cache. Zero disables it.
	StorageMaxBytes config.Int
}

var cfg = config.Load[*Config]()
