package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noiruxe.app/translation/store"
)

// dictProvider translates word by word from a fixed dictionary and records
// every request it receives.
type dictProvider struct {
	mu       sync.Mutex
	dict     map[string]string
	err      error
	override func(text string) string
	calls    []string
}

func (p *dictProvider) Translate(_ context.Context, text, from, to string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, text)
	if p.err != nil {
		return "", p.err
	}
	if p.override != nil {
		return p.override(text), nil
	}
	parts := strings.Split(text, Separator)
	for i, part := range parts {
		if v, ok := p.dict[part]; ok {
			parts[i] = v
		}
	}
	// The remote endpoint is free to reformat whitespace around separators.
	return strings.Join(parts, "  |||\n"), nil
}

func (p *dictProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

type warnings struct {
	mu   sync.Mutex
	msgs []string
}

func (w *warnings) warn(msg string, _ ...any) {
	w.mu.Lock()
	w.msgs = append(w.msgs, msg)
	w.mu.Unlock()
}

func newTestCache(p *dictProvider, s store.Store) (*Cache, *warnings) {
	w := &warnings{}
	return New(Deps{Provider: p, Store: s, Warn: w.warn}), w
}

var frDict = map[string]string{
	"Hello":   "Bonjour",
	"Goodbye": "Au revoir",
	"Thanks":  "Merci",
	"Music":   "Musique",
}

func TestTranslate_NoOp(t *testing.T) {
	testCases := []struct {
		name string
		text string
		from string
		to   string
	}{
		{name: "same_language", text: "Hello", from: "en", to: "en"},
		{name: "same_language_empty", text: "", from: "fr", to: "fr"},
		{name: "empty_text", text: "", from: "en", to: "fr"},
		{name: "whitespace_text", text: "  \n\t", from: "en", to: "fr"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := &dictProvider{dict: frDict}
			c, _ := newTestCache(p, store.NewMemory())

			result := c.Translate(context.Background(), tc.text, tc.from, tc.to)

			assert.Equal(t, tc.text, result)
			assert.Zero(t, p.callCount())
			assert.Zero(t, c.Len())
		})
	}
}

func TestTranslate_Idempotent(t *testing.T) {
	p := &dictProvider{dict: frDict}
	c, _ := newTestCache(p, store.NewMemory())
	ctx := context.Background()

	first := c.Translate(ctx, "Hello", "en", "fr")
	second := c.Translate(ctx, "Hello", "en", "fr")

	assert.Equal(t, "Bonjour", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, p.callCount(), "second call must be served from the cache")
}

func TestTranslate_KeyIncludesLanguages(t *testing.T) {
	p := &dictProvider{dict: frDict}
	c, _ := newTestCache(p, store.NewMemory())
	ctx := context.Background()

	c.Translate(ctx, "Hello", "en", "fr")
	c.Translate(ctx, "Hello", "en", "es")

	assert.Equal(t, 2, p.callCount())
	_, ok := c.Lookup("Hello", "en", "es")
	assert.True(t, ok)
}

func TestTranslate_FailOpen(t *testing.T) {
	p := &dictProvider{err: errors.New("endpoint down")}
	s := store.NewMemory()
	c, w := newTestCache(p, s)

	result := c.Translate(context.Background(), "Hello", "en", "fr")

	assert.Equal(t, "Hello", result)
	assert.Zero(t, c.Len(), "failures are not cached")
	assert.Len(t, w.msgs, 1)
	raw, err := s.Load(context.Background(), DefaultStorageKey)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestTranslateBatch_SameLanguage(t *testing.T) {
	p := &dictProvider{dict: frDict}
	c, _ := newTestCache(p, store.NewMemory())

	input := []string{"Hello", "Goodbye"}
	result := c.TranslateBatch(context.Background(), input, "fr", "fr")

	assert.Equal(t, input, result)
	assert.Zero(t, p.callCount())
}

func TestTranslateBatch_MixedHitMiss(t *testing.T) {
	p := &dictProvider{dict: frDict}
	c, _ := newTestCache(p, store.NewMemory())
	ctx := context.Background()

	require.Equal(t, "Au revoir", c.Translate(ctx, "Goodbye", "en", "fr"))
	require.Equal(t, 1, p.callCount())

	result := c.TranslateBatch(ctx, []string{"Hello", "Goodbye", "", "Thanks"}, "en", "fr")

	assert.Equal(t, []string{"Bonjour", "Au revoir", "", "Merci"}, result)
	require.Equal(t, 2, p.callCount(), "all misses share one request")
	assert.Equal(t, "Hello"+Separator+"Thanks", p.calls[1])

	v, ok := c.Lookup("Thanks", "en", "fr")
	assert.True(t, ok)
	assert.Equal(t, "Merci", v)

	again := c.TranslateBatch(ctx, []string{"Thanks", "Hello"}, "en", "fr")
	assert.Equal(t, []string{"Merci", "Bonjour"}, again)
	assert.Equal(t, 2, p.callCount())
}

func TestTranslateBatch_SingleMissUsesPlainRequest(t *testing.T) {
	p := &dictProvider{dict: frDict}
	c, _ := newTestCache(p, store.NewMemory())

	result := c.TranslateBatch(context.Background(), []string{"Music"}, "en", "fr")

	assert.Equal(t, []string{"Musique"}, result)
	assert.Equal(t, []string{"Music"}, p.calls)
}

func TestTranslateBatch_Fallbacks(t *testing.T) {
	testCases := []struct {
		name       string
		provider   *dictProvider
		expected   []string
		expectWarn bool
	}{
		{
			name: "segment_count_mismatch",
			provider: &dictProvider{override: func(string) string {
				return "Bonjour Merci Au revoir"
			}},
			expected:   []string{"Hello", "Thanks", "Goodbye"},
			expectWarn: true,
		},
		{
			name: "too_many_segments",
			provider: &dictProvider{override: func(string) string {
				return "a ||| b ||| c ||| d"
			}},
			expected:   []string{"Hello", "Thanks", "Goodbye"},
			expectWarn: true,
		},
		{
			name:       "provider_error",
			provider:   &dictProvider{err: errors.New("timeout")},
			expected:   []string{"Hello", "Thanks", "Goodbye"},
			expectWarn: true,
		},
		{
			name: "empty_segment_falls_back_for_its_slot",
			provider: &dictProvider{override: func(string) string {
				return "Bonjour |||  ||| Au revoir"
			}},
			expected: []string{"Bonjour", "Thanks", "Au revoir"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := newTestCache(tc.provider, store.NewMemory())

			var result []string
			assert.NotPanics(t, func() {
				result = c.TranslateBatch(context.Background(), []string{"Hello", "Thanks", "Goodbye"}, "en", "fr")
			})

			assert.Equal(t, tc.expected, result)
			for i, src := range []string{"Hello", "Thanks", "Goodbye"} {
				v, ok := c.Lookup(src, "en", "fr")
				if tc.expected[i] == src {
					assert.False(t, ok, "fallback for %q must not be cached", src)
				} else {
					assert.True(t, ok)
					assert.Equal(t, tc.expected[i], v)
				}
			}
			assert.Equal(t, tc.expectWarn, len(w.msgs) > 0)
		})
	}
}

func TestCache_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	p := &dictProvider{dict: frDict}
	c, _ := newTestCache(p, s)

	require.Equal(t, "Bonjour", c.Translate(ctx, "Hello", "en", "fr"))

	raw, err := s.Load(ctx, DefaultStorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"en:fr:Hello":"Bonjour"}`, string(raw))

	reloaded, _ := newTestCache(p, s)
	reloaded.Load(ctx)

	assert.Equal(t, "Bonjour", reloaded.Translate(ctx, "Hello", "en", "fr"))
	assert.Equal(t, 1, p.callCount(), "reloaded cache must not hit the network")
}

func TestCache_LoadCorruptStorage(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	require.NoError(t, s.Save(ctx, DefaultStorageKey, []byte("{not json")))

	c, w := newTestCache(&dictProvider{dict: frDict}, s)
	c.Load(ctx)

	assert.Zero(t, c.Len())
	assert.Len(t, w.msgs, 1)
}

func TestCache_CustomStorageKey(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	c := New(Deps{Provider: &dictProvider{dict: frDict}, Store: s, StorageKey: "custom"})

	c.Translate(ctx, "Hello", "en", "fr")

	raw, err := s.Load(ctx, "custom")
	require.NoError(t, err)
	assert.NotNil(t, raw)
}

func TestCache_Clear(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	p := &dictProvider{dict: frDict}
	c, _ := newTestCache(p, s)

	c.Translate(ctx, "Hello", "en", "fr")
	require.NoError(t, c.Clear(ctx))

	assert.Zero(t, c.Len())
	raw, err := s.Load(ctx, DefaultStorageKey)
	require.NoError(t, err)
	assert.Nil(t, raw)

	c.Translate(ctx, "Hello", "en", "fr")
	assert.Equal(t, 2, p.callCount())
}

func TestCache_QuotaExceededEmptiesCache(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory(store.WithMaxBytes(40))
	p := &dictProvider{dict: frDict}
	c, w := newTestCache(p, s)

	assert.Equal(t, "Bonjour", c.Translate(ctx, "Hello", "en", "fr"))
	require.Equal(t, 1, c.Len())

	// The second entry pushes the serialized map past the quota.
	assert.Equal(t, "Au revoir", c.Translate(ctx, "Goodbye", "en", "fr"), "caller still gets the translation")

	assert.Zero(t, c.Len())
	raw, err := s.Load(ctx, DefaultStorageKey)
	require.NoError(t, err)
	assert.Nil(t, raw)
	assert.NotEmpty(t, w.msgs)
}

type failingStore struct {
	store.Store
}

func (failingStore) Save(context.Context, string, []byte) error {
	return errors.New("disk on fire")
}

func TestCache_PersistFailureKeepsMemory(t *testing.T) {
	c, w := newTestCache(&dictProvider{dict: frDict}, failingStore{store.NewMemory()})

	assert.Equal(t, "Bonjour", c.Translate(context.Background(), "Hello", "en", "fr"))
	assert.Equal(t, 1, c.Len())
	assert.Len(t, w.msgs, 1)
}

func TestCache_ConcurrentIdenticalMisses(t *testing.T) {
	p := &dictProvider{dict: frDict}
	c, _ := newTestCache(p, store.NewMemory())

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Translate(context.Background(), "Hello", "en", "fr")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "Bonjour", r)
	}
	assert.Equal(t, 1, c.Len())
	assert.GreaterOrEqual(t, p.callCount(), 1)
}
