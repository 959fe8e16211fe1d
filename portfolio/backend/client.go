// Package backend is the client of the portfolio REST backend: one
// collection per resource type plus the testimonial and message sub-actions
// and the file upload endpoint.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"noiruxe.app/portfolio/model"
)

const IdempotencyHeader = "Idempotency-Key"

// File is one upload attempt.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type Client interface {
	List(ctx context.Context, resource model.ResourceType) ([]model.Record, error)
	Get(ctx context.Context, resource model.ResourceType, id string) (model.Record, error)
	Create(ctx context.Context, resource model.ResourceType, payload model.Record) (model.Record, error)
	Update(ctx context.Context, resource model.ResourceType, id string, payload model.Record) (model.Record, error)
	Delete(ctx context.Context, resource model.ResourceType, id string) error

	Approve(ctx context.Context, testimonialID string) (model.Record, error)
	Reject(ctx context.Context, testimonialID string) (model.Record, error)
	MarkRead(ctx context.Context, messageID string) (model.Record, error)

	// Upload stores one file under the resource folder and returns its URL.
	Upload(ctx context.Context, resource model.ResourceType, file File) (string, error)
}

type client struct {
	http  *resty.Client
	token string
}

type Option func(*client)

// WithStaticToken authenticates calls whose context carries no token.
func WithStaticToken(token string) Option {
	return func(c *client) { c.token = token }
}

func WithTimeout(d time.Duration) Option {
	return func(c *client) { c.http.SetTimeout(d) }
}

func NewClient(baseURL string, opts ...Option) Client {
	c := &client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(20*time.Second).
			SetHeader("Accept", "application/json"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) request(ctx context.Context) *resty.Request {
	r := c.http.R().SetContext(ctx)
	token := TokenFrom(ctx)
	if token == "" {
		token = c.token
	}
	if token != "" {
		r.SetAuthToken(token)
	}
	if key := IdempotencyKeyFrom(ctx); key != "" {
		r.SetHeader(IdempotencyHeader, key)
	}
	return r
}

func (c *client) do(r *resty.Request, method, path string) ([]byte, error) {
	resp, err := r.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return nil, newError(resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}

func (c *client) List(ctx context.Context, resource model.ResourceType) ([]model.Record, error) {
	body, err := c.do(c.request(ctx), resty.MethodGet, "/"+resource.Path())
	if err != nil {
		return nil, err
	}
	return decodeList(body)
}

func (c *client) Get(ctx context.Context, resource model.ResourceType, id string) (model.Record, error) {
	body, err := c.do(c.request(ctx), resty.MethodGet, itemPath(resource, id))
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

func (c *client) Create(ctx context.Context, resource model.ResourceType, payload model.Record) (model.Record, error) {
	body, err := c.do(c.request(ctx).SetBody(payload), resty.MethodPost, "/"+resource.Path())
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

func (c *client) Update(ctx context.Context, resource model.ResourceType, id string, payload model.Record) (model.Record, error) {
	body, err := c.do(c.request(ctx).SetBody(payload), resty.MethodPut, itemPath(resource, id))
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

func (c *client) Delete(ctx context.Context, resource model.ResourceType, id string) error {
	_, err := c.do(c.request(ctx), resty.MethodDelete, itemPath(resource, id))
	return err
}

func (c *client) Approve(ctx context.Context, testimonialID string) (model.Record, error) {
	return c.subAction(ctx, model.ResourceTestimonials, testimonialID, "approve")
}

func (c *client) Reject(ctx context.Context, testimonialID string) (model.Record, error) {
	return c.subAction(ctx, model.ResourceTestimonials, testimonialID, "reject")
}

func (c *client) MarkRead(ctx context.Context, messageID string) (model.Record, error) {
	return c.subAction(ctx, model.ResourceMessages, messageID, "read")
}

func (c *client) subAction(ctx context.Context, resource model.ResourceType, id, action string) (model.Record, error) {
	body, err := c.do(c.request(ctx), resty.MethodPatch, itemPath(resource, id)+"/"+action)
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

func (c *client) Upload(ctx context.Context, resource model.ResourceType, file File) (string, error) {
	r := c.request(ctx).
		SetMultipartField("file", file.Name, file.ContentType, bytes.NewReader(file.Data)).
		SetFormData(map[string]string{"folder": resource.Path()})
	body, err := c.do(r, resty.MethodPost, "/upload")
	if err != nil {
		return "", err
	}
	loc := gjson.GetBytes(body, "url")
	if loc.Type != gjson.String {
		loc = gjson.GetBytes(body, "data.url")
	}
	if loc.String() == "" {
		return "", fmt.Errorf("upload %s: response has no url", file.Name)
	}
	return loc.String(), nil
}

func itemPath(resource model.ResourceType, id string) string {
	return "/" + resource.Path() + "/" + url.PathEscape(id)
}

// decodeList accepts either a raw array or an object with a data array.
func decodeList(body []byte) ([]model.Record, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("decode list: invalid json")
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		root = root.Get("data")
	}
	if !root.IsArray() {
		return nil, fmt.Errorf("decode list: no array in response")
	}
	items := make([]model.Record, 0, len(root.Array()))
	if err := json.Unmarshal([]byte(root.Raw), &items); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return items, nil
}

// decodeRecord accepts a bare record or one wrapped in data. An empty body
// decodes to an empty record.
func decodeRecord(body []byte) (model.Record, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return model.Record{}, nil
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("decode record: invalid json")
	}
	root := gjson.ParseBytes(body)
	if data := root.Get("data"); data.IsObject() {
		root = data
	}
	if !root.IsObject() {
		return nil, fmt.Errorf("decode record: not an object")
	}
	var rec model.Record
	if err := json.Unmarshal([]byte(root.Raw), &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
