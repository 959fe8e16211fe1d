// Package provider talks to the remote machine-translation endpoint.
package provider

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// DefaultEndpoint is the public single-shot translation endpoint.
const DefaultEndpoint = "https://translate.googleapis.com/translate_a/single"

// Client issues translation requests. It does not cache; see package cache.
type Client struct {
	endpoint string
	http     *resty.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithRestyClient replaces the underlying HTTP client.
func WithRestyClient(r *resty.Client) Option {
	return func(c *Client) { c.http = r }
}

func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		http:     resty.New().SetTimeout(20 * time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Translate sends text as one request and returns the reassembled translation.
func (c *Client) Translate(ctx context.Context, text, from, to string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     from,
			"tl":     to,
			"dt":     "t",
			"q":      text,
		}).
		Get(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("translate: %s; body: %s", resp.Status(), abbreviate(resp.String(), 200))
	}
	return Decode(resp.Body())
}

// Decode extracts the translated text from the nested-array response. The
// first element is a list of [translated, original, ...] tuples; the
// translated fragments are concatenated in order.
func Decode(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("decode translation: invalid json")
	}
	root := gjson.ParseBytes(body)
	segments := root.Get("0")
	if !root.IsArray() || !segments.IsArray() {
		return "", fmt.Errorf("decode translation: unexpected shape")
	}
	var b strings.Builder
	for _, seg := range segments.Array() {
		if !seg.IsArray() {
			continue
		}
		if part := seg.Get("0"); part.Type == gjson.String {
			b.WriteString(part.String())
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("decode translation: no segments")
	}
	return b.String(), nil
}

// abbreviate cuts s to at most n runes.
func abbreviate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}
