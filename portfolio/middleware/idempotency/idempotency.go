// Package idempotency replays the first successful response of a create
// request for every retry carrying the same X-Idempotency-Key.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"noiruxe.app/portfolio/model"
)

const Header = "X-Idempotency-Key"

//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, keyErr := clientKey(req)
	if keyErr != nil {
		return middleware.Response{Err: keyErr}
	}
	ctx := req.Context()
	cacheKey := model.IdempotencyKey{Endpoint: req.Data().Path, Key: key}
	bodyHash := payloadHash(req.Data().Payload)

	entry, err := Entries.Get(ctx, cacheKey)
	switch {
	case errors.Is(err, cache.Miss):
		return firstAttempt(ctx, req, next, cacheKey, bodyHash)
	case err != nil:
		rlog.Error("failed to read idempotency entry", "key", key, "error", err)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
	}

	if conflict := checkConflict(entry, bodyHash); conflict != nil {
		return middleware.Response{Err: conflict}
	}
	switch entry.Status {
	case model.IdempotencyProcessing:
		rlog.Info("duplicate request while first attempt is running", "key", key)
		return inFlight()
	case model.IdempotencyCompleted:
		if resp, ok := replay(req, entry); ok {
			rlog.Info("replaying stored response", "key", key)
			return resp
		}
	}
	return next(req)
}

func firstAttempt(ctx context.Context, req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey, bodyHash string) middleware.Response {
	now := time.Now()
	if err := Entries.Set(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:          model.IdempotencyProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}); err != nil {
		rlog.Error("failed to mark request as processing", "key", cacheKey.Key, "error", err)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to record idempotency key"}}
	}

	resp := next(req)
	if resp.Err != nil {
		// Failed attempts may be retried with the same key.
		if _, err := Entries.Delete(ctx, cacheKey); err != nil {
			rlog.Error("failed to release idempotency key", "key", cacheKey.Key, "error", err)
		}
		return resp
	}
	complete(ctx, cacheKey, bodyHash, now, resp)
	return resp
}

func complete(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string, createdAt time.Time, resp middleware.Response) {
	entry := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyCompleted,
		RequestBodyHash: bodyHash,
		CreatedAt:       createdAt,
		UpdatedAt:       time.Now(),
	}
	if resp.Payload != nil {
		raw, err := json.Marshal(resp.Payload)
		if err != nil {
			rlog.Error("failed to encode response for replay", "key", cacheKey.Key, "error", err)
			return
		}
		entry.Response = raw
	}
	if err := Entries.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to store response for replay", "key", cacheKey.Key, "error", err)
	}
}

func clientKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if h := req.Data().Headers; h != nil {
		key = strings.TrimSpace(h.Get(Header))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: Header + " header is required"}
	}
	if len(key) > 128 {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: Header + " header is too long"}
	}
	return key, nil
}

func payloadHash(payload any) string {
	if payload == nil {
		return ""
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to encode request for hashing", "error", err)
		return ""
	}
	return hash(raw)
}

func hash(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func checkConflict(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash == "" || entry.RequestBodyHash == "" || bodyHash == entry.RequestBodyHash {
		return nil
	}
	return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key reused with a different request body"}
}

func inFlight() middleware.Response {
	return middleware.Response{Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}}
}

// replay decodes the stored payload into the endpoint's response type.
func replay(req middleware.Request, entry model.IdempotencyCacheEntry) (middleware.Response, bool) {
	if len(entry.Response) == 0 {
		return middleware.Response{}, false
	}
	api := req.Data().API
	if api == nil || api.ResponseType == nil {
		return middleware.Response{}, false
	}
	typ := api.ResponseType
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	v := reflect.New(typ).Interface()
	if err := json.Unmarshal(entry.Response, v); err != nil {
		rlog.Error("stored response no longer decodes, running request again", "error", err)
		return middleware.Response{}, false
	}
	return middleware.Response{Payload: v}, true
}
