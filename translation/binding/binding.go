// Package binding keeps a displayed value in sync with the translation of a
// source text. The displayed value is the source text until the translation
// resolves, and a resolution is discarded when the inputs changed meanwhile.
package binding

import (
	"context"
	"strings"
	"sync"

	"noiruxe.app/translation/lang"
)

// Translator is satisfied by *cache.Cache.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) string
	TranslateBatch(ctx context.Context, texts []string, from, to string) []string
}

// fence tracks the generation of the latest request. A completion applies
// only if its generation is still current.
type fence struct {
	mu     sync.Mutex
	gen    uint64
	closed bool
}

func (f *fence) next() (uint64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return 0, false
	}
	f.gen++
	return f.gen, true
}

func (f *fence) current(gen uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.closed && f.gen == gen
}

func (f *fence) close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

// runner owns the goroutines of one binding. In-flight requests are not
// aborted when superseded; their results are dropped by the fence.
type runner struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newRunner() *runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &runner{ctx: ctx, cancel: cancel}
}

func (r *runner) goRun(fn func(ctx context.Context)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		fn(r.ctx)
	}()
}

func (r *runner) stop() {
	r.cancel()
	r.wg.Wait()
}

// Text binds a single source text.
type Text struct {
	tr       Translator
	onChange func(string)
	fence    fence
	run      *runner

	// notifyMu serializes value updates with their onChange calls so
	// observers see values in request order. onChange must not call Set.
	notifyMu sync.Mutex
	mu       sync.Mutex
	request  string
	value    string
}

// NewText returns a Text binding. onChange may be nil.
func NewText(tr Translator, onChange func(string)) *Text {
	if onChange == nil {
		onChange = func(string) {}
	}
	return &Text{tr: tr, onChange: onChange, run: newRunner()}
}

// Set requests source, written in sourceLang, displayed in display. A call
// with the same text and languages as the current request is ignored.
func (b *Text) Set(source string, sourceLang, display lang.Code) {
	req := fingerprint([]string{source}, sourceLang, display)

	b.notifyMu.Lock()
	b.mu.Lock()
	same := b.request == req
	b.mu.Unlock()
	if same {
		b.notifyMu.Unlock()
		return
	}
	gen, ok := b.fence.next()
	if !ok {
		b.notifyMu.Unlock()
		return
	}
	b.mu.Lock()
	b.request = req
	b.value = source
	b.mu.Unlock()
	b.onChange(source)
	b.notifyMu.Unlock()

	if sourceLang == display || strings.TrimSpace(source) == "" {
		return
	}
	b.run.goRun(func(ctx context.Context) {
		result := b.tr.Translate(ctx, source, string(sourceLang), string(display))
		b.apply(gen, result)
	})
}

func (b *Text) apply(gen uint64, v string) {
	b.notifyMu.Lock()
	defer b.notifyMu.Unlock()
	if !b.fence.current(gen) {
		return
	}
	b.setValue(v)
	b.onChange(v)
}

func (b *Text) setValue(v string) {
	b.mu.Lock()
	b.value = v
	b.mu.Unlock()
}

// Value returns the currently displayed text.
func (b *Text) Value() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Close discards pending results and waits for in-flight requests.
func (b *Text) Close() {
	b.fence.close()
	b.run.stop()
}
