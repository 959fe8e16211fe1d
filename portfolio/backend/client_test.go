package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noiruxe.app/portfolio/model"
)

type seenRequest struct {
	method  string
	path    string
	rawPath string
	auth   string
	idem   string
	body   string
}

type recorder struct {
	mu   sync.Mutex
	reqs []seenRequest
}

func (r *recorder) all() []seenRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]seenRequest{}, r.reqs...)
}

func newServer(t *testing.T, status int, response string) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.reqs = append(rec.reqs, seenRequest{
			method:  r.Method,
			path:    r.URL.Path,
			rawPath: r.URL.EscapedPath(),
			auth:    r.Header.Get("Authorization"),
			idem:    r.Header.Get(IdempotencyHeader),
			body:    string(body),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestClient_List(t *testing.T) {
	testCases := []struct {
		name     string
		response string
		expected []model.Record
		wantErr  bool
	}{
		{
			name:     "raw_array",
			response: `[{"id":1,"name_en":"Rust"}]`,
			expected: []model.Record{{"id": float64(1), "name_en": "Rust"}},
		},
		{
			name:     "data_envelope",
			response: `{"data":[{"id":"a"},{"id":"b"}],"total":2}`,
			expected: []model.Record{{"id": "a"}, {"id": "b"}},
		},
		{
			name:     "empty_array",
			response: `[]`,
			expected: []model.Record{},
		},
		{
			name:     "unexpected_shape",
			response: `{"items":[]}`,
			wantErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv, seen := newServer(t, http.StatusOK, tc.response)
			c := NewClient(srv.URL)

			items, err := c.List(WithToken(context.Background(), "tok"), model.ResourceExperience)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, items)
			require.Len(t, seen.all(), 1)
			assert.Equal(t, "GET", seen.all()[0].method)
			assert.Equal(t, "/work-experience", seen.all()[0].path)
			assert.Equal(t, "Bearer tok", seen.all()[0].auth)
		})
	}
}

func TestClient_CreateSendsPayloadAndKey(t *testing.T) {
	srv, seen := newServer(t, http.StatusCreated, `{"data":{"id":9,"name_en":"Go"}}`)
	c := NewClient(srv.URL, WithStaticToken("static"))

	ctx := WithIdempotencyKey(context.Background(), "key-1")
	rec, err := c.Create(ctx, model.ResourceSkills, model.Record{"name_en": "Go", "icon_url": nil})

	require.NoError(t, err)
	assert.Equal(t, "9", rec.ID())
	require.Len(t, seen.all(), 1)
	got := seen.all()[0]
	assert.Equal(t, "POST", got.method)
	assert.Equal(t, "/skills", got.path)
	assert.Equal(t, "Bearer static", got.auth)
	assert.Equal(t, "key-1", got.idem)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(got.body), &body))
	assert.Equal(t, map[string]any{"name_en": "Go", "icon_url": nil}, body)
}

func TestClient_ContextTokenWins(t *testing.T) {
	srv, seen := newServer(t, http.StatusOK, `{"id":1}`)
	c := NewClient(srv.URL, WithStaticToken("static"))

	_, err := c.Update(WithToken(context.Background(), "user"), model.ResourceProjects, "1", model.Record{})

	require.NoError(t, err)
	assert.Equal(t, "PUT", seen.all()[0].method)
	assert.Equal(t, "/projects/1", seen.all()[0].path)
	assert.Equal(t, "Bearer user", seen.all()[0].auth)
}

func TestClient_SubActions(t *testing.T) {
	testCases := []struct {
		name string
		call func(c Client) (model.Record, error)
		path string
	}{
		{
			name: "approve",
			call: func(c Client) (model.Record, error) { return c.Approve(context.Background(), "4") },
			path: "/testimonials/4/approve",
		},
		{
			name: "reject",
			call: func(c Client) (model.Record, error) { return c.Reject(context.Background(), "4") },
			path: "/testimonials/4/reject",
		},
		{
			name: "mark_read",
			call: func(c Client) (model.Record, error) { return c.MarkRead(context.Background(), "5") },
			path: "/contact-messages/5/read",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv, seen := newServer(t, http.StatusOK, `{"id":4,"status":"approved"}`)

			rec, err := tc.call(NewClient(srv.URL))

			require.NoError(t, err)
			assert.Equal(t, "4", rec.ID())
			assert.Equal(t, "PATCH", seen.all()[0].method)
			assert.Equal(t, tc.path, seen.all()[0].path)
		})
	}
}

func TestClient_DeleteEmptyBody(t *testing.T) {
	srv, seen := newServer(t, http.StatusNoContent, ``)

	err := NewClient(srv.URL).Delete(context.Background(), model.ResourceMessages, "3")

	require.NoError(t, err)
	assert.Equal(t, "DELETE", seen.all()[0].method)
	assert.Equal(t, "/contact-messages/3", seen.all()[0].path)
}

func TestClient_EscapesItemID(t *testing.T) {
	srv, seen := newServer(t, http.StatusNoContent, ``)

	err := NewClient(srv.URL).Delete(context.Background(), model.ResourceSkills, "a/b c")

	require.NoError(t, err)
	require.Len(t, seen.all(), 1)
	assert.Equal(t, "/skills/a%2Fb%20c", seen.all()[0].rawPath)
	assert.Equal(t, "/skills/a/b c", seen.all()[0].path)
}

func TestClient_ErrorMessage(t *testing.T) {
	testCases := []struct {
		name            string
		status          int
		response        string
		expectedMessage string
		expectedCode    errs.ErrCode
	}{
		{
			name:            "message_field",
			status:          http.StatusUnprocessableEntity,
			response:        `{"message":"name_en is too long"}`,
			expectedMessage: "name_en is too long",
			expectedCode:    errs.InvalidArgument,
		},
		{
			name:            "nested_error",
			status:          http.StatusUnauthorized,
			response:        `{"error":{"message":"token expired"}}`,
			expectedMessage: "token expired",
			expectedCode:    errs.Unauthenticated,
		},
		{
			name:            "no_message_uses_fallback",
			status:          http.StatusInternalServerError,
			response:        `oops`,
			expectedMessage: "failed to save skill",
			expectedCode:    errs.Unavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := newServer(t, tc.status, tc.response)

			_, err := NewClient(srv.URL).Create(context.Background(), model.ResourceSkills, model.Record{})

			var be *Error
			require.ErrorAs(t, err, &be)
			assert.Equal(t, tc.status, be.Status)

			apiErr := APIError(err, "failed to save skill")
			var e *errs.Error
			require.ErrorAs(t, apiErr, &e)
			assert.Equal(t, tc.expectedMessage, e.Message)
			assert.Equal(t, tc.expectedCode, e.Code)
		})
	}
}

func TestAPIError_TransportFailure(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")

	_, err := c.List(context.Background(), model.ResourceSkills)
	require.Error(t, err)

	var e *errs.Error
	require.ErrorAs(t, APIError(err, "failed to load skills"), &e)
	assert.Equal(t, errs.Unavailable, e.Code)
	assert.Equal(t, "failed to load skills", e.Message)
}

func TestClient_Upload(t *testing.T) {
	type received struct {
		folder, filename, content string
	}
	got := make(chan received, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		got <- received{folder: r.FormValue("folder"), filename: hdr.Filename, content: string(data)}
		_, _ = io.WriteString(w, `{"url":"https://cdn.example/projects/a.png"}`)
	}))
	defer srv.Close()

	url, err := NewClient(srv.URL).Upload(context.Background(), model.ResourceProjects, File{
		Name:        "a.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/projects/a.png", url)
	r := <-got
	assert.Equal(t, "projects", r.folder)
	assert.Equal(t, "a.png", r.filename)
	assert.Equal(t, "png-bytes", r.content)
}

func TestClient_UploadWithoutURL(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"ok":true}`)

	_, err := NewClient(srv.URL).Upload(context.Background(), model.ResourceProjects, File{Name: "a.png"})

	assert.ErrorContains(t, err, "no url")
}
