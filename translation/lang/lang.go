// Package lang holds the display languages of the site and the helpers used
// to parse, match and persist them.
package lang

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Code is a two-letter display language.
type Code string

const (
	EN Code = "en"
	FR Code = "fr"
)

// Default is used whenever no valid preference can be resolved.
const Default = EN

// PreferenceKey is the durable storage key holding the display language.
const PreferenceKey = "noiruxe_language"

var supported = []language.Tag{language.English, language.French}

var matcher = language.NewMatcher(supported)

// Supported returns the display languages in preference order.
func Supported() []Code {
	return []Code{EN, FR}
}

// Other returns the opposite display language.
func (c Code) Other() Code {
	if c == FR {
		return EN
	}
	return FR
}

func (c Code) String() string { return string(c) }

// Parse normalizes s to a supported display language. Regional variants are
// accepted, so "fr-CA" parses as FR.
func Parse(s string) (Code, bool) {
	base, err := Normalize(s)
	if err != nil {
		return "", false
	}
	switch Code(base) {
	case EN, FR:
		return Code(base), true
	default:
		return "", false
	}
}

// Normalize returns the base language subtag of any valid BCP 47 tag.
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty language tag")
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", s, err)
	}
	base, _ := tag.Base()
	return base.String(), nil
}

// Match picks the best display language for an Accept-Language header value.
func Match(acceptLanguage string) Code {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return Supported()[idx]
}

// Storage is the subset of durable storage the preference needs.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Preference reads and writes the user's display language.
type Preference struct {
	storage Storage
}

func NewPreference(storage Storage) *Preference {
	return &Preference{storage: storage}
}

// Load returns the stored language, falling back to Default when the key is
// missing, unreadable or holds an unsupported value.
func (p *Preference) Load(ctx context.Context) Code {
	raw, err := p.storage.Load(ctx, PreferenceKey)
	if err != nil || len(raw) == 0 {
		return Default
	}
	code, ok := Parse(string(raw))
	if !ok {
		return Default
	}
	return code
}

func (p *Preference) Save(ctx context.Context, code Code) error {
	if _, ok := Parse(string(code)); !ok {
		return fmt.Errorf("unsupported language %q", code)
	}
	return p.storage.Save(ctx, PreferenceKey, []byte(code))
}
