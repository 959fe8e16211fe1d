package binding

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noiruxe.app/translation/lang"
)

func TestPickField(t *testing.T) {
	testCases := []struct {
		name         string
		record       Fields
		display      lang.Code
		expectedText string
		expectedLang lang.Code
	}{
		{
			name:         "display_language_present",
			record:       Fields{"name_en": "Rust", "name_fr": "Rouille"},
			display:      lang.FR,
			expectedText: "Rouille",
			expectedLang: lang.FR,
		},
		{
			name:         "falls_back_to_other_language",
			record:       Fields{"name_en": "Rust", "name_fr": ""},
			display:      lang.FR,
			expectedText: "Rust",
			expectedLang: lang.EN,
		},
		{
			name:         "whitespace_counts_as_empty",
			record:       Fields{"name_en": "   ", "name_fr": "Musique"},
			display:      lang.EN,
			expectedText: "Musique",
			expectedLang: lang.FR,
		},
		{
			name:         "both_empty",
			record:       Fields{},
			display:      lang.EN,
			expectedText: "",
			expectedLang: lang.EN,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text, from := PickField(tc.record, "name", tc.display)
			assert.Equal(t, tc.expectedText, text)
			assert.Equal(t, tc.expectedLang, from)
		})
	}
}

type echoTranslator struct{ calls int }

func (e *echoTranslator) Translate(_ context.Context, text, from, to string) string {
	e.calls++
	return to + "(" + text + ")"
}

func (e *echoTranslator) TranslateBatch(ctx context.Context, texts []string, from, to string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = e.Translate(ctx, t, from, to)
	}
	return out
}

func TestResolveField(t *testing.T) {
	tr := &echoTranslator{}
	ctx := context.Background()

	assert.Equal(t, "Rouille", ResolveField(ctx, tr, Fields{"name_fr": "Rouille"}, "name", lang.FR))
	assert.Zero(t, tr.calls)

	assert.Equal(t, "fr(Rust)", ResolveField(ctx, tr, Fields{"name_en": "Rust"}, "name", lang.FR))
	assert.Equal(t, 1, tr.calls)

	assert.Equal(t, "", ResolveField(ctx, tr, Fields{}, "name", lang.FR))
	assert.Equal(t, 1, tr.calls)
}

func TestField_TranslatesOtherLanguage(t *testing.T) {
	g := newGated()
	obs := newObserver()
	f := NewField(g, obs.onChange)
	defer f.Close()

	f.Set(Fields{"title_en": "Live session", "title_fr": ""}, "title", lang.FR)
	assert.Equal(t, "Live session", f.Value())

	g.release("Live session", "Session live")
	obs.waitFor(t, "Session live")

	require.Eventually(t, func() bool { return f.Value() == "Session live" }, time.Second, 5*time.Millisecond)
}
