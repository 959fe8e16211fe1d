package binding

import (
	"context"
	"strings"
	"sync"

	"noiruxe.app/translation/lang"
)

// List binds an ordered list of source texts to a same-length list of
// displayed values, resolved with one batch request.
type List struct {
	tr       Translator
	onChange func([]string)
	fence    fence
	run      *runner

	notifyMu    sync.Mutex
	mu          sync.Mutex
	fingerprint string
	values      []string
}

func NewList(tr Translator, onChange func([]string)) *List {
	if onChange == nil {
		onChange = func([]string) {}
	}
	return &List{tr: tr, onChange: onChange, run: newRunner()}
}

func fingerprint(sources []string, sourceLang, display lang.Code) string {
	return string(sourceLang) + "\x00" + string(display) + "\x00" + strings.Join(sources, "\x1f")
}

// Set requests sources, written in sourceLang, displayed in display. A call
// with the same content and languages as the current request is ignored.
func (l *List) Set(sources []string, sourceLang, display lang.Code) {
	fp := fingerprint(sources, sourceLang, display)

	l.notifyMu.Lock()
	l.mu.Lock()
	same := l.values != nil && l.fingerprint == fp
	l.mu.Unlock()
	if same {
		l.notifyMu.Unlock()
		return
	}
	gen, ok := l.fence.next()
	if !ok {
		l.notifyMu.Unlock()
		return
	}
	initial := append([]string{}, sources...)
	l.mu.Lock()
	l.fingerprint = fp
	l.values = initial
	l.mu.Unlock()
	l.onChange(append([]string{}, initial...))
	l.notifyMu.Unlock()

	if sourceLang == display || len(sources) == 0 {
		return
	}
	input := append([]string{}, sources...)
	l.run.goRun(func(ctx context.Context) {
		result := l.tr.TranslateBatch(ctx, input, string(sourceLang), string(display))
		l.apply(gen, result)
	})
}

func (l *List) apply(gen uint64, result []string) {
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()
	if !l.fence.current(gen) {
		return
	}
	l.mu.Lock()
	if len(result) != len(l.values) {
		l.mu.Unlock()
		return
	}
	l.values = append([]string{}, result...)
	l.mu.Unlock()
	l.onChange(append([]string{}, result...))
}

// Values returns a copy of the displayed values.
func (l *List) Values() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.values...)
}

func (l *List) Close() {
	l.fence.close()
	l.run.stop()
}
