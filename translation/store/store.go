// Package store provides the durable key/value storage behind the translation
// cache and the language preference. Every implementation keeps one opaque
// value per key and enforces an optional per-value quota.
package store

import (
	"context"
	"errors"
)

// ErrQuotaExceeded is returned by Save when a value does not fit the quota.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Store is a durable key/value storage. Load returns nil, nil for a missing key.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Remove(ctx context.Context, key string) error
}

const tableName = "client_storage"

type options struct {
	maxBytes int
}

// Option configures a store.
type Option func(*options)

// WithMaxBytes rejects values larger than n bytes with ErrQuotaExceeded.
// Zero or a negative n disables the check.
func WithMaxBytes(n int) Option {
	return func(o *options) { o.maxBytes = n }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) checkQuota(data []byte) error {
	if o.maxBytes > 0 && len(data) > o.maxBytes {
		return ErrQuotaExceeded
	}
	return nil
}
