package binding

import (
	"context"
	"strings"

	"noiruxe.app/translation/lang"
)

// Record exposes the text fields of a bilingual record.
type Record interface {
	Text(name string) string
}

// Fields adapts a plain map to Record.
type Fields map[string]string

func (f Fields) Text(name string) string { return f[name] }

// PickField chooses the source for the field prefix displayed in display:
// the display-language field when set, else the other language's field,
// else nothing. The returned language is the one the text is written in.
func PickField(r Record, prefix string, display lang.Code) (string, lang.Code) {
	if v := r.Text(prefix + "_" + string(display)); strings.TrimSpace(v) != "" {
		return v, display
	}
	other := display.Other()
	if v := r.Text(prefix + "_" + string(other)); strings.TrimSpace(v) != "" {
		return v, other
	}
	return "", display
}

// ResolveField returns the field text in display, translating on the fly
// when only the other language is filled.
func ResolveField(ctx context.Context, tr Translator, r Record, prefix string, display lang.Code) string {
	text, from := PickField(r, prefix, display)
	if from == display {
		return text
	}
	return tr.Translate(ctx, text, string(from), string(display))
}

// Field binds one bilingual field of a record.
type Field struct {
	text *Text
}

func NewField(tr Translator, onChange func(string)) *Field {
	return &Field{text: NewText(tr, onChange)}
}

func (f *Field) Set(r Record, prefix string, display lang.Code) {
	text, from := PickField(r, prefix, display)
	f.text.Set(text, from, display)
}

func (f *Field) Value() string { return f.text.Value() }

func (f *Field) Close() { f.text.Close() }
