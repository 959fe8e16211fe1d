package backend

import (
	"errors"
	"net/http"

	"encore.dev/beta/errs"
	"github.com/tidwall/gjson"
)

// Error is a non-2xx answer from the REST backend.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

// newError extracts the message the backend put in an error body.
func newError(status int, body []byte) *Error {
	e := &Error{Status: status}
	if gjson.ValidBytes(body) {
		for _, path := range []string{"message", "error.message", "error", "detail"} {
			if v := gjson.GetBytes(body, path); v.Type == gjson.String && v.String() != "" {
				e.Message = v.String()
				break
			}
		}
	}
	return e
}

// APIError converts a backend failure into an API error. The backend's
// message is kept when it sent one; otherwise fallback is used.
func APIError(err error, fallback string) error {
	var e *Error
	if !errors.As(err, &e) {
		return &errs.Error{Code: errs.Unavailable, Message: fallback}
	}
	msg := e.Message
	if msg == "" {
		msg = fallback
	}
	return &errs.Error{Code: codeFor(e.Status), Message: msg}
}

func codeFor(status int) errs.ErrCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errs.InvalidArgument
	case http.StatusUnauthorized:
		return errs.Unauthenticated
	case http.StatusForbidden:
		return errs.PermissionDenied
	case http.StatusNotFound:
		return errs.NotFound
	case http.StatusConflict:
		return errs.AlreadyExists
	case http.StatusTooManyRequests:
		return errs.ResourceExhausted
	default:
		if status >= 500 {
			return errs.Unavailable
		}
		return errs.Unknown
	}
}
