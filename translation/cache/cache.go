// Package cache memoizes machine translations in memory and in durable
// storage, and batches several strings into one provider call.
//
// Translation is treated as deterministic: entries never expire and are only
// removed in bulk by Clear. Every failure path returns the input text so
// callers never block on the provider.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"sync"

	"noiruxe.app/translation/store"
)

// DefaultStorageKey holds the serialized cache map.
const DefaultStorageKey = "noiruxe_translation_cache"

// Separator joins uncached batch entries into a single provider request.
const Separator = " ||| "

var separatorRE = regexp.MustCompile(`\s*\|\|\|\s*`)

// Provider performs one uncached translation request.
type Provider interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// WarnFunc logs a warning with key/value pairs.
type WarnFunc func(msg string, keysAndValues ...any)

type Deps struct {
	Provider   Provider
	Store      store.Store
	Warn       WarnFunc
	StorageKey string
}

type Cache struct {
	provider   Provider
	store      store.Store
	warn       WarnFunc
	storageKey string

	mu      sync.RWMutex
	entries map[string]string

	// saveMu orders persistence so the stored snapshot never goes backwards.
	saveMu sync.Mutex
}

func New(d Deps) *Cache {
	c := &Cache{
		provider:   d.Provider,
		store:      d.Store,
		warn:       d.Warn,
		storageKey: d.StorageKey,
		entries:    make(map[string]string),
	}
	if c.warn == nil {
		c.warn = func(string, ...any) {}
	}
	if c.storageKey == "" {
		c.storageKey = DefaultStorageKey
	}
	return c
}

// Key identifies one cached translation.
func Key(text, from, to string) string {
	return from + ":" + to + ":" + text
}

// Load replaces the in-memory map with the persisted one. Any read or parse
// error leaves the cache empty.
func (c *Cache) Load(ctx context.Context) {
	entries := make(map[string]string)
	raw, err := c.store.Load(ctx, c.storageKey)
	switch {
	case err != nil:
		c.warn("failed to load translation cache", "error", err)
	case len(raw) > 0:
		if err := json.Unmarshal(raw, &entries); err != nil {
			c.warn("discarding unreadable translation cache", "error", err)
			entries = make(map[string]string)
		}
	}
	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()
}

// Lookup returns a cached translation without touching the provider.
func (c *Cache) Lookup(text, from, to string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[Key(text, from, to)]
	return v, ok
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Translate returns text translated from one language to another.
func (c *Cache) Translate(ctx context.Context, text, from, to string) string {
	if strings.TrimSpace(text) == "" || from == to {
		return text
	}
	if v, ok := c.Lookup(text, from, to); ok {
		return v
	}
	translated, err := c.provider.Translate(ctx, text, from, to)
	if err != nil {
		c.warn("translation failed", "from", from, "to", to, "error", err)
		return text
	}
	c.put(ctx, map[string]string{Key(text, from, to): translated})
	return translated
}

// TranslateBatch translates texts in one provider call for all uncached
// entries. The result has the same length and order as texts.
func (c *Cache) TranslateBatch(ctx context.Context, texts []string, from, to string) []string {
	out := make([]string, len(texts))
	copy(out, texts)
	if from == to || len(texts) == 0 {
		return out
	}

	var pending []int
	c.mu.RLock()
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		if v, ok := c.entries[Key(text, from, to)]; ok {
			out[i] = v
			continue
		}
		pending = append(pending, i)
	}
	c.mu.RUnlock()
	if len(pending) == 0 {
		return out
	}

	sources := make([]string, len(pending))
	for j, i := range pending {
		sources[j] = texts[i]
	}
	segments, err := c.translateJoined(ctx, sources, from, to)
	if err != nil {
		c.warn("batch translation failed", "from", from, "to", to, "count", len(sources), "error", err)
		return out
	}

	resolved := make(map[string]string, len(pending))
	for j, i := range pending {
		seg := strings.TrimSpace(segments[j])
		if seg == "" {
			continue
		}
		out[i] = seg
		resolved[Key(texts[i], from, to)] = seg
	}
	c.put(ctx, resolved)
	return out
}

var errSegmentMismatch = errors.New("segment count mismatch")

func (c *Cache) translateJoined(ctx context.Context, sources []string, from, to string) ([]string, error) {
	if len(sources) == 1 {
		v, err := c.provider.Translate(ctx, sources[0], from, to)
		if err != nil {
			return nil, err
		}
		return []string{v}, nil
	}
	joined, err := c.provider.Translate(ctx, strings.Join(sources, Separator), from, to)
	if err != nil {
		return nil, err
	}
	segments := separatorRE.Split(strings.TrimSpace(joined), -1)
	if len(segments) != len(sources) {
		return nil, errSegmentMismatch
	}
	return segments, nil
}

// Clear empties the cache and removes the persisted copy.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]string)
	c.mu.Unlock()
	return c.store.Remove(ctx, c.storageKey)
}

// put merges entries and persists the whole map. A quota failure drops the
// cache entirely.
func (c *Cache) put(ctx context.Context, entries map[string]string) {
	if len(entries) == 0 {
		return
	}
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	c.mu.Lock()
	for k, v := range entries {
		c.entries[k] = v
	}
	raw, err := json.Marshal(c.entries)
	c.mu.Unlock()
	if err != nil {
		c.warn("failed to encode translation cache", "error", err)
		return
	}

	err = c.store.Save(ctx, c.storageKey, raw)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrQuotaExceeded):
		c.warn("translation cache exceeds storage quota, clearing", "bytes", len(raw))
		if err := c.Clear(ctx); err != nil {
			c.warn("failed to remove translation cache", "error", err)
		}
	default:
		c.warn("failed to persist translation cache", "error", err)
	}
}
